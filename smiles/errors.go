package smiles

import (
	"errors"
	"fmt"
)

// Sentinel errors. Parse returns them wrapped in *Error, so errors.Is works
// directly and errors.As recovers the offset.
var (
	// ErrSyntax indicates a malformed token or misplaced bond/branch symbol.
	ErrSyntax = errors.New("smiles: syntax error")

	// ErrUnclosedRing indicates a ring-closure number that was opened but never closed.
	ErrUnclosedRing = errors.New("smiles: unclosed ring")

	// ErrUnclosedBranch indicates a '(' without matching ')'.
	ErrUnclosedBranch = errors.New("smiles: unclosed branch")

	// ErrUnknownElement indicates an element symbol outside the periodic table.
	ErrUnknownElement = errors.New("smiles: unknown element")

	// ErrKekulize indicates aromatic input with no valid Kekulé structure.
	ErrKekulize = errors.New("smiles: cannot assign Kekulé structure")
)

// Error is a parse failure at a byte offset of the input.
type Error struct {
	Offset int
	Err    error
}

func (e *Error) Error() string { return fmt.Sprintf("offset %d: %v", e.Offset, e.Err) }

// Unwrap exposes the sentinel.
func (e *Error) Unwrap() error { return e.Err }

func errAt(offset int, err error) *Error { return &Error{Offset: offset, Err: err} }
