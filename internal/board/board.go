package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-hashes/internal/apperror"
	"github.com/samber/lo"
)

const (
	// Size - number of cells on the board.
	Size = 9

	// MaxHash - hash of the board where every cell holds O (3^9 - 1).
	MaxHash Hash = 19682
)

// Hash - two-way base-3 encoding of a board. It is a bijection, not a digest.
type Hash uint16

// Board - cells in row-major order plus whose turn it is.
// Turn is caller metadata: it is neither hashed nor checked against the cells.
type Board struct {
	Cells [Size]Mark
	Turn  Mark
}

func New(cells [Size]Mark, turn Mark) Board {
	return Board{Cells: cells, Turn: turn}
}

// Init - empty board with X to move.
func Init() Board {
	return New([Size]Mark{}, StartingMark)
}

// Hash - encodes the cells as sum(value(cell[i]) * 3^i).
func (that Board) Hash() Hash {
	var hash Hash
	place := Hash(1)
	for _, cell := range that.Cells {
		hash += cell.value() * place
		place *= 3
	}

	return hash
}

// Decode - rebuilds a board from its hash, reading base-3 digits from cell 8 down to cell 0.
func Decode(hash Hash, turn Mark) (Board, error) {
	if hash > MaxHash {
		return Board{}, fmt.Errorf("%w: %d", apperror.ErrHashOutOfRange, hash)
	}

	var cells [Size]Mark
	place := pow3(Size - 1)
	for i := Size - 1; i >= 0; i-- {
		digit := hash / place
		hash -= digit * place

		mark, err := MarkFromDigit(digit)
		if err != nil {
			return Board{}, fmt.Errorf("cell %d: %w", i, err)
		}
		cells[i] = mark

		place /= 3
	}

	return New(cells, turn), nil
}

// ParseHash - parses a decimal board hash.
func ParseHash(s string) (Hash, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid hash %q: %w", s, err)
	}

	if n > uint64(MaxHash) {
		return 0, fmt.Errorf("%w: %d", apperror.ErrHashOutOfRange, n)
	}

	return Hash(n), nil
}

// Count - number of cells holding the given mark.
func (that Board) Count(mark Mark) int {
	return lo.Count(that.Cells[:], mark)
}

func (that Board) String() string {
	var sb strings.Builder
	for row := 0; row < 3; row++ {
		start := row * 3
		fmt.Fprintf(&sb, "%s | %s | %s\n", that.Cells[start], that.Cells[start+1], that.Cells[start+2])
	}

	return sb.String()
}

func pow3(n int) Hash {
	p := Hash(1)
	for range n {
		p *= 3
	}

	return p
}
