// Package token defines the shared vocabulary of the confindent format:
// indentation tokens, the per-line tokens produced by the lexer, and the
// parse-error kinds both are reported with.
package token

import (
	"errors"
	"fmt"
	"strings"
)

// Parse-error kinds. Each is surfaced wrapped with the 1-based line number
// at which the document became invalid.
var (
	// ErrStartedIndented means the first content line of the document
	// was indented.
	ErrStartedIndented = errors.New("document starts with an indented line")
	// ErrMixedIndent means a single indentation run mixed tabs and spaces.
	ErrMixedIndent = errors.New("indent mixes tabs and spaces")
	// ErrTabsWithSpaces means a tab-indented line appeared inside a block
	// established with spaces.
	ErrTabsWithSpaces = errors.New("tab indent in a space block")
	// ErrSpacesWithTabs means a space-indented line appeared inside a block
	// established with tabs.
	ErrSpacesWithTabs = errors.New("space indent in a tab block")
)

// Style is the kind of whitespace an indentation run is made of.
type Style int

const (
	// None is zero indentation, only valid at the document root.
	None Style = iota
	// Tabs is a run of '\t' characters.
	Tabs
	// Spaces is a run of ' ' characters.
	Spaces
)

// String returns a human-readable name for the style.
func (s Style) String() string {
	switch s {
	case None:
		return "none"
	case Tabs:
		return "tabs"
	case Spaces:
		return "spaces"
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// Indent is the indentation token of one line: the whitespace style and how
// many of that character the run holds. The zero value is no indentation.
type Indent struct {
	Style Style
	Count int
}

// ParseIndent classifies a run of leading whitespace.
//
// The input must consist only of tabs and spaces; the caller is expected to
// have isolated the whitespace prefix already. Anything else is a bug in the
// caller, not malformed input, and panics.
//
// An empty string is no indentation. A run mixing tabs and spaces fails with
// ErrMixedIndent.
func ParseIndent(s string) (Indent, error) {
	if s == "" {
		return Indent{}, nil
	}

	var style Style
	switch s[0] {
	case '\t':
		style = Tabs
	case ' ':
		style = Spaces
	default:
		panic(fmt.Sprintf("token: ParseIndent called with non-whitespace %q", s))
	}

	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\t':
			if style == Spaces {
				return Indent{}, ErrMixedIndent
			}
		case ' ':
			if style == Tabs {
				return Indent{}, ErrMixedIndent
			}
		default:
			panic(fmt.Sprintf("token: ParseIndent called with non-whitespace %q", s))
		}
	}

	return Indent{Style: style, Count: len(s)}, nil
}

// String renders the indentation run itself: Count tabs or spaces.
func (in Indent) String() string {
	switch in.Style {
	case Tabs:
		return strings.Repeat("\t", in.Count)
	case Spaces:
		return strings.Repeat(" ", in.Count)
	}
	return ""
}

// Deepen returns the indent one level deeper than in, keeping its style.
// Deepening no indentation starts a tab block.
func (in Indent) Deepen() Indent {
	if in.Style == None {
		return Indent{Style: Tabs, Count: 1}
	}
	return Indent{Style: in.Style, Count: in.Count + 1}
}

// Kind identifies what a raw line tokenized to.
type Kind string

const (
	// ENTRY is a key line with an optional value.
	ENTRY Kind = "ENTRY"
	// COMMENT is a line whose content starts with '#'.
	COMMENT Kind = "COMMENT"
	// BLANK is an empty or whitespace-only line.
	BLANK Kind = "BLANK"
	// EOF marks the end of the input.
	EOF Kind = "EOF"
)

// Line is one tokenized line of input.
type Line struct {
	Kind   Kind
	Indent Indent

	// Key and Value are set for ENTRY lines. HasValue distinguishes an
	// absent value from an empty one; a line with nothing after the key,
	// or nothing after the separating space, has no value.
	Key      string
	Value    string
	HasValue bool

	// Text is the comment body for COMMENT lines (everything after '#')
	// and the verbatim original text for BLANK lines.
	Text string

	// Num is the 1-based line number.
	Num int
}
