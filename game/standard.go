package game

// NewBoard returns the standard starting position with Black to move.
func NewBoard() *Board {
	b := &Board{player: Black}
	mid := BoardSize / 2
	b.cells[mid-1][mid-1], b.cells[mid][mid] = Black, Black
	b.cells[mid-1][mid], b.cells[mid][mid-1] = White, White
	return b
}

// NewBoardFrom builds a position from rows of 'X', 'O' and '.' characters.
// It panics on malformed input and is meant for fixtures and tests.
func NewBoardFrom(rows []string, player Color) *Board {
	if len(rows) != BoardSize {
		panic("board needs 8 rows")
	}
	b := &Board{player: player}
	for r, line := range rows {
		if len(line) != BoardSize {
			panic("board row needs 8 cells: " + line)
		}
		for c, ch := range line {
			switch ch {
			case 'X':
				b.cells[r][c] = Black
			case 'O':
				b.cells[r][c] = White
			case '.':
				b.cells[r][c] = Empty
			default:
				panic("unexpected cell " + string(ch))
			}
		}
	}
	return b
}
