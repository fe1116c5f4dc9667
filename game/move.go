package game

import "fmt"

// Move places a disc on (Row, Col). The discs it flips are derived by the board.
type Move struct {
	Row int
	Col int
}

// NoMove is returned where no move applies, e.g. from a MIN node or a terminal position.
var NoMove = Move{Row: -1, Col: -1}

func (m Move) IsNone() bool {
	return m == NoMove
}

func (m Move) OnBoard() bool {
	return m.Row >= 0 && m.Row < BoardSize && m.Col >= 0 && m.Col < BoardSize
}

func (m Move) String() string {
	if m.IsNone() {
		return "none"
	}
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}
