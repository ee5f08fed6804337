package schematic

import (
	"fmt"
	"strings"
)

// Kind is the category of a single grid character.
type Kind int

const (
	KindDigit Kind = iota
	KindSeparator
	KindSymbol
)

func (k Kind) String() string {
	switch k {
	case KindDigit:
		return "digit"
	case KindSeparator:
		return "separator"
	case KindSymbol:
		return "symbol"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

const (
	// DefaultSeparator marks an empty cell.
	DefaultSeparator = '.'
	// DefaultGear is the symbol that can form a gear ratio.
	DefaultGear = '*'
	// DefaultSymbols is the symbol set of the stock schematic format.
	DefaultSymbols = "@#$%&*-+=/"
)

// Alphabet decides which characters may appear in a grid and what they mean.
// The zero value is not usable; build one with DefaultAlphabet or NewAlphabet.
type Alphabet struct {
	separator byte
	gear      byte
	symbols   [256]bool
}

// DefaultAlphabet returns the stock alphabet: '.' separates, '*' is the gear,
// and "@#$%&*-+=/" are symbols.
func DefaultAlphabet() Alphabet {
	a, err := NewAlphabet(DefaultSeparator, DefaultGear, []byte(DefaultSymbols))
	if err != nil {
		panic(err)
	}
	return a
}

// NewAlphabet validates and builds an Alphabet. Every character must be
// printable ASCII, neither the separator nor any symbol may be a digit, the
// separator may not also be a symbol, and the gear must be one of the symbols.
func NewAlphabet(separator, gear byte, symbols []byte) (Alphabet, error) {
	var a Alphabet
	if !isPrintable(separator) {
		return a, fmt.Errorf("separator %q is not a printable ASCII character", separator)
	}
	if isDigit(separator) {
		return a, fmt.Errorf("separator %q cannot be a digit", separator)
	}
	if len(symbols) == 0 {
		return a, fmt.Errorf("symbol set is empty")
	}
	for _, s := range symbols {
		switch {
		case !isPrintable(s):
			return a, fmt.Errorf("symbol %q is not a printable ASCII character", s)
		case isDigit(s):
			return a, fmt.Errorf("symbol %q cannot be a digit", s)
		case s == separator:
			return a, fmt.Errorf("symbol %q is also the separator", s)
		}
		a.symbols[s] = true
	}
	if !a.symbols[gear] {
		return a, fmt.Errorf("gear %q is not in the symbol set %q", gear, string(symbols))
	}
	a.separator = separator
	a.gear = gear
	return a, nil
}

// Classify returns the Kind of ch. ok is false if ch is outside the alphabet.
func (a Alphabet) Classify(ch byte) (kind Kind, ok bool) {
	switch {
	case isDigit(ch):
		return KindDigit, true
	case ch == a.separator:
		return KindSeparator, true
	case a.symbols[ch]:
		return KindSymbol, true
	default:
		return 0, false
	}
}

// IsSymbol reports whether ch is in the symbol set.
func (a Alphabet) IsSymbol(ch byte) bool {
	return a.symbols[ch]
}

// IsGear reports whether ch is the gear character.
func (a Alphabet) IsGear(ch byte) bool {
	return ch == a.gear
}

// Separator returns the separator character.
func (a Alphabet) Separator() byte { return a.separator }

// Gear returns the gear character.
func (a Alphabet) Gear() byte { return a.gear }

// Symbols returns the symbol set in byte order.
func (a Alphabet) Symbols() string {
	var b strings.Builder
	for i, ok := range a.symbols {
		if ok {
			b.WriteByte(byte(i))
		}
	}
	return b.String()
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isPrintable(ch byte) bool {
	return ch > ' ' && ch < 0x7f
}
