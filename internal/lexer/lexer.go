// Package lexer tokenizes confindent source one line at a time.
package lexer

import (
	"strings"

	"github.com/gennyble/confindent/token"
)

// Lexer holds the state for tokenizing confindent source. The whole input
// is split up front; there is no streaming mode.
type Lexer struct {
	lines []string
	pos   int
}

// New creates and returns a new Lexer over data.
func New(data []byte) *Lexer {
	lines := strings.Split(string(data), "\n")
	// A trailing newline is a line terminator, not an extra blank line.
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return &Lexer{lines: lines}
}

// NextLine tokenizes and returns the next line. The returned Line always
// carries its 1-based number, including when an error is returned, so the
// caller can tag the error with it. After the input is exhausted every call
// returns an EOF line.
func (l *Lexer) NextLine() (token.Line, error) {
	if l.pos >= len(l.lines) {
		return token.Line{Kind: token.EOF, Num: len(l.lines) + 1}, nil
	}

	raw := l.lines[l.pos]
	l.pos++
	ln := token.Line{Num: l.pos}

	if strings.TrimSpace(raw) == "" {
		ln.Kind = token.BLANK
		ln.Text = raw
		return ln, nil
	}

	prefix, rest := splitIndent(raw)
	indent, err := token.ParseIndent(prefix)
	if err != nil {
		return ln, err
	}
	ln.Indent = indent

	if after, ok := strings.CutPrefix(rest, "#"); ok {
		ln.Kind = token.COMMENT
		ln.Text = after
		return ln, nil
	}

	ln.Kind = token.ENTRY
	key, value, found := strings.Cut(rest, " ")
	ln.Key = key
	if found && value != "" {
		ln.Value = value
		ln.HasValue = true
	}
	return ln, nil
}

// splitIndent splits a line at the end of its leading run of tabs and
// spaces. Only those two characters count as indentation; anything else
// starts the content.
func splitIndent(s string) (prefix, rest string) {
	i := 0
	for i < len(s) && (s[i] == '\t' || s[i] == ' ') {
		i++
	}
	return s[:i], s[i:]
}
