package confindent

import (
	"fmt"

	"github.com/gennyble/confindent/token"
)

// Error kinds carried by ParseError, re-exported from the token package so
// callers can match them with errors.Is without an extra import.
var (
	ErrStartedIndented = token.ErrStartedIndented
	ErrMixedIndent     = token.ErrMixedIndent
	ErrTabsWithSpaces  = token.ErrTabsWithSpaces
	ErrSpacesWithTabs  = token.ErrSpacesWithTabs
)

// A ParseError reports the first line at which a document became invalid.
// Any parse error aborts the whole parse; there is no partial document.
type ParseError struct {
	// Line is the 1-based number of the offending line.
	Line int
	// Err is one of the error kinds above.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("confindent: line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
