package entity

import (
	"github.com/rocketscienceinc/tictactoe-hashes/internal/board"
	"github.com/samber/lo"
)

// BoardView - a decoded board hash as served to clients.
type BoardView struct {
	Hash     board.Hash `json:"hash"`
	Cells    [9]string  `json:"cells"`
	Turn     string     `json:"turn"`
	Legal    bool       `json:"legal"`
	Winning  bool       `json:"winning"`
	Winner   string     `json:"winner"`
	Rendered string     `json:"rendered"`
}

func NewBoardView(b board.Board, legal, winning bool) *BoardView {
	view := &BoardView{
		Hash:     b.Hash(),
		Turn:     b.Turn.Symbol(),
		Legal:    legal,
		Winning:  winning,
		Rendered: b.String(),
	}

	copy(view.Cells[:], lo.Map(b.Cells[:], func(cell board.Mark, _ int) string {
		return cell.Symbol()
	}))

	// only a legal winning board has a single winner
	if legal && winning {
		view.Winner = lo.Ternary(b.IsWinning(board.X), board.X.Symbol(), board.O.Symbol())
	}

	return view
}
