package generator

import (
	"context"
	"testing"

	"github.com/rocketscienceinc/tictactoe-hashes/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hashes/internal/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	e = board.Empty
	x = board.X
	o = board.O
)

func TestClassify(t *testing.T) {
	t.Run("Too many X is illegal regardless of lines", func(t *testing.T) {
		// Given: 5 X and 3 O with X holding the top row
		b := board.New([board.Size]board.Mark{
			x, x, x,
			o, x, o,
			x, o, e,
		}, o)

		// When: classifying the board
		legal, winning := Classify(b)

		// Then: it should be neither legal nor winning
		assert.False(t, legal)
		assert.False(t, winning)
	})

	t.Run("More O than X is illegal", func(t *testing.T) {
		// Given: O holds a line but has one more mark than X
		b := board.New([board.Size]board.Mark{
			o, o, o,
			x, x, e,
			e, e, e,
		}, x)

		legal, winning := Classify(b)

		assert.False(t, legal)
		assert.False(t, winning)
	})

	t.Run("Both players winning is illegal", func(t *testing.T) {
		// Given: X and O both complete a row with equal counts
		b := board.New([board.Size]board.Mark{
			x, x, x,
			o, o, o,
			e, e, e,
		}, x)

		legal, winning := Classify(b)

		assert.False(t, legal)
		assert.False(t, winning)
	})

	t.Run("Single X win is legal and winning", func(t *testing.T) {
		b := board.New([board.Size]board.Mark{
			x, x, x,
			o, o, e,
			e, e, e,
		}, o)

		legal, winning := Classify(b)

		assert.True(t, legal)
		assert.True(t, winning)
	})

	t.Run("Single O win is legal and winning", func(t *testing.T) {
		b := board.New([board.Size]board.Mark{
			o, x, x,
			e, o, x,
			e, e, o,
		}, x)

		legal, winning := Classify(b)

		assert.True(t, legal)
		assert.True(t, winning)
	})

	t.Run("Ongoing game is legal but not winning", func(t *testing.T) {
		b := board.New([board.Size]board.Mark{
			x, o, e,
			e, x, e,
			e, e, e,
		}, o)

		legal, winning := Classify(b)

		assert.True(t, legal)
		assert.False(t, winning)
	})

	t.Run("Empty board is legal but not winning", func(t *testing.T) {
		legal, winning := Classify(board.Init())

		assert.True(t, legal)
		assert.False(t, winning)
	})
}

func TestSweep(t *testing.T) {
	t.Run("Full sweep is ascending, unique and all legal wins", func(t *testing.T) {
		// When: sweeping the whole hash space
		hashes, err := Sweep(0, board.MaxHash)
		require.NoError(t, err)

		// Then: the result should not be empty
		require.NotEmpty(t, hashes)

		// And: every hash should be strictly greater than the previous one and classify as a legal win
		for i, h := range hashes {
			if i > 0 {
				require.Greater(t, h, hashes[i-1])
			}

			b, err := board.Decode(h, board.Empty)
			require.NoError(t, err)

			legal, winning := Classify(b)
			require.True(t, legal, "hash %d", h)
			require.True(t, winning, "hash %d", h)
		}
	})

	t.Run("Every skipped hash is not a legal win", func(t *testing.T) {
		hashes, err := Sweep(0, board.MaxHash)
		require.NoError(t, err)

		included := make(map[board.Hash]bool, len(hashes))
		for _, h := range hashes {
			included[h] = true
		}

		for h := board.Hash(0); h <= board.MaxHash; h++ {
			b, err := board.Decode(h, board.Empty)
			require.NoError(t, err)
			require.Equal(t, IsLegalWin(b), included[h], "hash %d", h)
		}
	})

	t.Run("Known boards are included", func(t *testing.T) {
		// Given: X won on the top row, O has two marks
		won := board.New([board.Size]board.Mark{
			x, x, x,
			o, o, e,
			e, e, e,
		}, o)

		hashes, err := Sweep(0, board.MaxHash)
		require.NoError(t, err)

		assert.Contains(t, hashes, won.Hash())
		assert.NotContains(t, hashes, board.Init().Hash())
	})

	t.Run("Error on range past MaxHash", func(t *testing.T) {
		_, err := Sweep(board.MaxHash, board.MaxHash+1)

		require.ErrorIs(t, err, apperror.ErrHashOutOfRange)
	})
}

func TestWinningHashes(t *testing.T) {
	t.Run("Matches the sweep", func(t *testing.T) {
		expected, err := Sweep(0, board.MaxHash)
		require.NoError(t, err)

		var got []board.Hash
		for h, err := range WinningHashes() {
			require.NoError(t, err)
			got = append(got, h)
		}

		assert.Equal(t, expected, got)
	})

	t.Run("Restartable and stops early", func(t *testing.T) {
		seq := WinningHashes()

		var first, second []board.Hash
		for h := range seq {
			first = append(first, h)
			if len(first) == 3 {
				break
			}
		}
		for h := range seq {
			second = append(second, h)
			if len(second) == 3 {
				break
			}
		}

		assert.Len(t, first, 3)
		assert.Equal(t, first, second)
	})
}

func TestEnumerate(t *testing.T) {
	expected, err := Sweep(0, board.MaxHash)
	require.NoError(t, err)

	t.Run("Parallel result equals the sequential sweep", func(t *testing.T) {
		for _, workers := range []int{0, 1, 4, 16} {
			got, err := Enumerate(context.Background(), workers)

			require.NoError(t, err)
			assert.Equal(t, expected, got, "workers %d", workers)
		}
	})

	t.Run("Uneven chunks keep the order", func(t *testing.T) {
		got, err := enumerate(context.Background(), 3, 1000)

		require.NoError(t, err)
		assert.Equal(t, expected, got)
	})

	t.Run("Canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := Enumerate(ctx, 2)

		require.ErrorIs(t, err, context.Canceled)
	})
}
