package game

// directions lists the eight rays a placement can flip along.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

func inside(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// flips appends to dst every opponent disc that placing player on (row, col) would capture.
func (b *Board) flips(dst []Move, row, col int, player Color) []Move {
	if b.cells[row][col] != Empty {
		return dst
	}
	opponent := Opponent(player)
	for _, d := range directions {
		r, c := row+d[0], col+d[1]
		start := len(dst)
		for inside(r, c) && b.cells[r][c] == opponent {
			dst = append(dst, Move{Row: r, Col: c})
			r, c = r+d[0], c+d[1]
		}
		// Ray must be closed by one of the player's own discs
		if !inside(r, c) || b.cells[r][c] != player {
			dst = dst[:start]
		}
	}
	return dst
}

// captures reports whether placing player on (row, col) flips at least one disc.
func (b *Board) captures(row, col int, player Color) bool {
	if b.cells[row][col] != Empty {
		return false
	}
	opponent := Opponent(player)
	for _, d := range directions {
		r, c := row+d[0], col+d[1]
		seen := false
		for inside(r, c) && b.cells[r][c] == opponent {
			seen = true
			r, c = r+d[0], c+d[1]
		}
		if seen && inside(r, c) && b.cells[r][c] == player {
			return true
		}
	}
	return false
}
