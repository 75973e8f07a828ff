package board

// WinCombos - the 8 lines: rows, columns and both diagonals.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// IsWinning - reports whether any line holds three of the given mark.
// Empty is never a winner.
func (that Board) IsWinning(mark Mark) bool {
	if mark == Empty {
		return false
	}

	for _, combo := range WinCombos {
		a, b, c := that.Cells[combo[0]], that.Cells[combo[1]], that.Cells[combo[2]]
		if a == mark && a == b && b == c {
			return true
		}
	}

	return false
}
