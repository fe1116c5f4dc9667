package game

// Board dimensions are fixed: the engine only plays 8x8 Reversi.
const (
	BoardSize = 8
	Cells     = BoardSize * BoardSize
)

// Color is the content of a cell and also identifies a side.
type Color uint8

const (
	Empty Color = iota
	Black
	White
)

// Opponent returns the other side. Empty has no opponent.
func Opponent(c Color) Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

func (c Color) String() string {
	switch c {
	case Black:
		return "X"
	case White:
		return "O"
	default:
		return "."
	}
}

// State should be immutable - operations on State always return a new copy
type State interface {
	Player() Color
	At(row, col int) Color
	LegalMoves() []Move
	Play(Move) State
	// WithPlayer returns a copy with the mover forced to c, used to probe either side's options.
	WithPlayer(c Color) State
	Count(c Color) int
	Winner() Color
	// SameCells compares the grids only, ignoring whose turn it is.
	SameCells(other State) bool
}

// Evaluate scores a state for a fixed side. Larger is better for that side.
type Evaluate func(State) float64
