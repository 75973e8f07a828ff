// Package generator sweeps the board hash space and keeps the boards that are
// rule-legal with exactly one winner.
//
// The filter is necessary but not sufficient for reachability: a board can
// pass the count and single-winner checks and still be impossible to reach by
// real play. Such boards are kept.
package generator

import (
	"context"
	"fmt"
	"iter"

	"github.com/rocketscienceinc/tictactoe-hashes/internal/board"
	"golang.org/x/sync/errgroup"
)

// DefaultChunkSize - hashes per chunk in Enumerate.
const DefaultChunkSize = 2048

// Classify - checks the board is legal (xs - os is 0 or 1 and not both marks win)
// and whether it is won.
func Classify(b board.Board) (bool, bool) {
	diff := b.Count(board.X) - b.Count(board.O)
	if diff != 0 && diff != 1 {
		return false, false
	}

	xWins, oWins := b.IsWinning(board.X), b.IsWinning(board.O)
	switch {
	case xWins && oWins:
		return false, false
	case xWins != oWins:
		return true, true
	default:
		return true, false
	}
}

// IsLegalWin - a board counted by the enumeration.
func IsLegalWin(b board.Board) bool {
	legal, winning := Classify(b)
	return legal && winning
}

// Sweep - legal winning hashes in [from, to], ascending.
func Sweep(from, to board.Hash) ([]board.Hash, error) {
	var hashes []board.Hash
	for h, err := range sweep(from, to) {
		if err != nil {
			return nil, err
		}
		hashes = append(hashes, h)
	}

	return hashes, nil
}

// WinningHashes - lazy ascending sequence over the whole hash space.
// It stops after yielding the first decode error.
func WinningHashes() iter.Seq2[board.Hash, error] {
	return sweep(0, board.MaxHash)
}

// Enumerate - same result as Sweep(0, board.MaxHash), computed over contiguous
// chunks on up to workers goroutines and joined in chunk order.
func Enumerate(ctx context.Context, workers int) ([]board.Hash, error) {
	return enumerate(ctx, workers, DefaultChunkSize)
}

func enumerate(ctx context.Context, workers, chunkSize int) ([]board.Hash, error) {
	if workers < 1 {
		workers = 1
	}
	if chunkSize < 1 {
		chunkSize = DefaultChunkSize
	}

	total := int(board.MaxHash) + 1
	chunks := make([][]board.Hash, (total+chunkSize-1)/chunkSize)

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for i := range chunks {
		from := i * chunkSize
		to := min(from+chunkSize, total) - 1

		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			hashes, err := Sweep(board.Hash(from), board.Hash(to))
			if err != nil {
				return fmt.Errorf("chunk [%d, %d]: %w", from, to, err)
			}
			chunks[i] = hashes

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("enumeration failed: %w", err)
	}

	var result []board.Hash
	for _, chunk := range chunks {
		result = append(result, chunk...)
	}

	return result, nil
}

func sweep(from, to board.Hash) iter.Seq2[board.Hash, error] {
	return func(yield func(board.Hash, error) bool) {
		for h := int(from); h <= int(to); h++ {
			b, err := board.Decode(board.Hash(h), board.Empty)
			if err != nil {
				yield(0, fmt.Errorf("decode %d: %w", h, err))
				return
			}

			if IsLegalWin(b) && !yield(b.Hash(), nil) {
				return
			}
		}
	}
}
