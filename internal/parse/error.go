// Package parse defines the event protocol between a graph description
// parser and its consumer, and the provenance-carrying error type the two
// sides share.
package parse

import "fmt"

// Position is a 1-based line/column location in a graph description.
type Position struct {
	Line   int
	Column int
}

// String renders the position in its diagnostic form, e.g. "3:5".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Error is a fatal parse or evaluation failure. Pos locates the innermost
// failure site. Origin traces the enclosing fragment invocation sites
// outward, nearest invocation first; it is a finite slice owned by the
// error, empty for failures outside any expansion.
type Error struct {
	Message string
	Pos     Position
	Origin  []Position
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("[%d:%d] %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Errorf builds an Error at the given position with a formatted message.
func Errorf(pos Position, format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...), Pos: pos}
}
