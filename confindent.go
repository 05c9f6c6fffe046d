package confindent

import (
	"bytes"
	"errors"
	"io"

	"github.com/gennyble/confindent/ast"
	"github.com/gennyble/confindent/internal/lexer"
	"github.com/gennyble/confindent/internal/parser"
)

// Parse parses confindent-encoded data into a full-fidelity document.
// Comments and blank lines are kept so that serializing the result
// reproduces data exactly.
func Parse(data []byte) (*ast.Document, error) {
	l := lexer.New(data)
	p := parser.New(l)

	doc, err := p.Parse()
	if err != nil {
		var perr *parser.Error
		if errors.As(err, &perr) {
			return nil, &ParseError{Line: perr.Line, Err: perr.Err}
		}
		return nil, err
	}
	return doc, nil
}

// ParseString parses confindent-encoded text into a document.
func ParseString(s string) (*ast.Document, error) {
	return Parse([]byte(s))
}

// Marshal returns the confindent encoding of doc.
func Marshal(doc *ast.Document) ([]byte, error) {
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	if err := e.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encoder writes confindent documents to an output stream.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the confindent encoding of doc to the stream. Every line,
// including the last, is terminated with a newline.
func (e *Encoder) Encode(doc *ast.Document) error {
	_, err := io.WriteString(e.w, doc.String())
	return err
}
