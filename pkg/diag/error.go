package diag

import (
	"fmt"

	"src.weir.sh/pkg/strutil"
)

// Error is an error with a source context attached, and can be shown against
// that source.
type Error struct {
	Type    string
	Message string
	Context Context
}

// Overridden in tests.
var (
	messageStart = "\033[31;1m"
	messageEnd   = "\033[m"
)

// Error returns a plain text representation of the error.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %d-%d in %s: %s",
		e.Type, e.Context.From, e.Context.To, e.Context.Name, e.Message)
}

// Range returns the range of the error.
func (e *Error) Range() Ranging {
	return e.Context.Range()
}

// Show shows the error with a header line and the source context.
func (e *Error) Show(indent string) string {
	header := fmt.Sprintf("%s: %s%s%s\n",
		strutil.Title(e.Type), messageStart, e.Message, messageEnd)
	return header + e.Context.ShowCompact(indent+"  ")
}
