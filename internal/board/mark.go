package board

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-hashes/internal/apperror"
)

// Mark - occupancy of a single cell. The numeric values are part of the hash format.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

// StartingMark - X always moves first.
const StartingMark = X

// MarkFromDigit - converts a base-3 digit of a hash into a mark.
func MarkFromDigit(digit Hash) (Mark, error) {
	switch digit {
	case 0:
		return Empty, nil
	case 1:
		return X, nil
	case 2:
		return O, nil
	default:
		return Empty, fmt.Errorf("%w: %d", apperror.ErrInvalidMark, digit)
	}
}

func (that Mark) value() Hash {
	return Hash(that)
}

func (that Mark) String() string {
	switch that {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// Symbol - mark as used in JSON payloads, empty cells are "".
func (that Mark) Symbol() string {
	if that == Empty {
		return ""
	}

	return that.String()
}
