// Package parser assembles tokenized lines into a document tree.
package parser

import (
	"fmt"

	"github.com/gennyble/confindent/ast"
	"github.com/gennyble/confindent/internal/lexer"
	"github.com/gennyble/confindent/token"
)

// Error is a parse failure tagged with the 1-based line number where it was
// detected. Err is one of the token package's error kinds.
type Error struct {
	Line int
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Parser consumes lines from a lexer and incrementally builds a Document.
type Parser struct {
	l   *lexer.Lexer
	doc *ast.Document

	// open is the chain of currently open ancestors, root level first.
	// It is exactly the chain of most-recently-attached nodes at each
	// depth: open[i+1] is the last node child of open[i].
	open []*ast.Node
}

// New creates a new parser reading from l.
func New(l *lexer.Lexer) *Parser {
	return &Parser{l: l}
}

// Parse consumes the whole input and returns the document. The first
// invalid line aborts the parse; there is no partial result.
func (p *Parser) Parse() (*ast.Document, error) {
	p.doc = &ast.Document{}
	p.open = p.open[:0]

	for {
		ln, err := p.l.NextLine()
		if err != nil {
			return nil, &Error{Line: ln.Num, Err: err}
		}

		switch ln.Kind {
		case token.EOF:
			return p.doc, nil
		case token.BLANK:
			p.appendDeepest(&ast.Blank{Text: ln.Text})
		case token.COMMENT:
			p.appendDeepest(&ast.Comment{Indent: ln.Indent, Text: ln.Text})
		case token.ENTRY:
			n := &ast.Node{
				Indent:   ln.Indent,
				Key:      ln.Key,
				Value:    ln.Value,
				HasValue: ln.HasValue,
			}
			if err := p.push(n); err != nil {
				return nil, &Error{Line: ln.Num, Err: err}
			}
		}
	}
}

// push attaches n somewhere along the open ancestor chain.
//
// An unindented node starts a new top-level entry. Otherwise the walk
// descends the chain comparing n's indent with the node already at each
// depth: an equal style and count makes n a sibling at that depth, a style
// conflict is an error, and running out of chain makes n the first child of
// the deepest open node. A dedent to a count matching no open level falls
// through to that same deepest-child case.
func (p *Parser) push(n *ast.Node) error {
	if n.Indent.Style == token.None {
		p.doc.Append(n)
		p.open = append(p.open[:0], n)
		return nil
	}

	if len(p.open) == 0 {
		return token.ErrStartedIndented
	}

	for i := 0; ; i++ {
		if i+1 >= len(p.open) {
			p.open[i].Append(n)
			p.open = append(p.open[:i+1], n)
			return nil
		}

		at := p.open[i+1]
		if at.Indent.Style != n.Indent.Style {
			if n.Indent.Style == token.Tabs {
				return token.ErrTabsWithSpaces
			}
			return token.ErrSpacesWithTabs
		}
		if at.Indent.Count == n.Indent.Count {
			p.open[i].Append(n)
			p.open = append(p.open[:i+1], n)
			return nil
		}
		// Count differs at this depth, keep descending.
	}
}

// appendDeepest attaches a comment or blank line at the deepest currently
// open position so serialization reproduces its original placement.
func (p *Parser) appendDeepest(e ast.Entry) {
	if len(p.open) == 0 {
		p.doc.Append(e)
		return
	}
	p.open[len(p.open)-1].Append(e)
}
