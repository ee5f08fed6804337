package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid is the reason reported when the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid is empty")
	// ErrRaggedGrid is the reason reported when rows differ in length.
	ErrRaggedGrid = errors.New("rows differ in length")
)

// MalformedGridError reports input that cannot form a rectangular grid.
// Row, Want and Got are only meaningful for ErrRaggedGrid.
type MalformedGridError struct {
	Reason error
	Row    int
	Want   int
	Got    int
}

func (e *MalformedGridError) Error() string {
	if errors.Is(e.Reason, ErrRaggedGrid) {
		return fmt.Sprintf("malformed grid: %v: row %d has %d columns, want %d", e.Reason, e.Row, e.Got, e.Want)
	}
	return fmt.Sprintf("malformed grid: %v", e.Reason)
}

// Unwrap exposes Reason to errors.Is.
func (e *MalformedGridError) Unwrap() error {
	return e.Reason
}
