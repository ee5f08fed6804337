package schematic

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/schematicscan/internal/grid"
)

// ErrNumberOverflow is returned when a digit run does not fit in an int.
var ErrNumberOverflow = errors.New("part number overflows int")

// UnexpectedCharacterError reports a character outside the alphabet, found
// while scanning.
type UnexpectedCharacterError struct {
	Char byte
	At   grid.Coord
}

func (e *UnexpectedCharacterError) Error() string {
	return fmt.Sprintf("unexpected character %q at row %d, column %d", e.Char, e.At.Row, e.At.Col)
}
