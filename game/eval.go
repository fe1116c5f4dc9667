package game

import "golang.org/x/exp/constraints"

// Infinity is the sentinel score for a decided position.
const Infinity = 6000.0

// Feature weights of the blended score
const (
	CoinWeight            = 0.50
	CornerWeight          = 0.30
	CornerClosenessWeight = 0.15
	MobilityWeight        = 0.05

	cornerValue    = 25.0
	closenessValue = -8.333
)

var corners = [4]Move{{0, 0}, {0, 7}, {7, 0}, {7, 7}}

// cornerNeighbors holds, per corner, the two edge cells and the diagonal cell touching it.
var cornerNeighbors = [4][3]Move{
	{{0, 1}, {1, 1}, {1, 0}},
	{{0, 6}, {1, 6}, {1, 7}},
	{{7, 1}, {6, 1}, {6, 0}},
	{{6, 7}, {6, 6}, {7, 6}},
}

// Evaluator scores positions from the point of view of one side.
type Evaluator struct {
	self     Color
	opponent Color
}

func NewEvaluator(self Color) *Evaluator {
	if self != Black && self != White {
		panic("evaluator needs a side to play for")
	}
	return &Evaluator{self: self, opponent: Opponent(self)}
}

func (e *Evaluator) Self() Color {
	return e.self
}

// Utility blends coin, corner, corner closeness and mobility advantages.
// A side without moves or without discs short-circuits to ±Infinity.
func (e *Evaluator) Utility(s State) float64 {
	mobility := e.Mobility(s)
	if mobility > 100 || mobility < -100 {
		return mobility
	}

	coins := e.Coins(s)
	if coins > 100 || coins < -100 {
		return coins
	}

	corner := e.Corners(s)
	closeness := e.CornerCloseness(s)

	return CoinWeight*coins + CornerWeight*corner + CornerClosenessWeight*closeness + MobilityWeight*mobility
}

// Mobility compares the number of legal moves each side would have if it were to move now.
// A side without moves scores ±Infinity, except on a wipeout, which is left to Coins.
func (e *Evaluator) Mobility(s State) float64 {
	if s.Count(e.self) == 0 || s.Count(e.opponent) == 0 {
		return 0
	}
	mine := len(s.WithPlayer(e.self).LegalMoves())
	theirs := len(s.WithPlayer(e.opponent).LegalMoves())
	switch {
	case mine == 0:
		return -Infinity
	case theirs == 0:
		return Infinity
	}
	return advantage(mine, theirs)
}

// Coins compares disc counts over the whole grid.
func (e *Evaluator) Coins(s State) float64 {
	mine, theirs := 0, 0
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			switch s.At(r, c) {
			case e.self:
				mine++
			case e.opponent:
				theirs++
			}
		}
	}

	if mine == 0 {
		return -Infinity
	} else if theirs == 0 {
		return Infinity
	}
	return advantage(mine, theirs)
}

// Corners is 25 per corner held, minus 25 per corner the opponent holds.
func (e *Evaluator) Corners(s State) float64 {
	mine, theirs := e.tally(s, corners[:])
	return cornerValue * float64(mine-theirs)
}

// CornerCloseness penalises discs next to a corner that is still open.
func (e *Evaluator) CornerCloseness(s State) float64 {
	mine, theirs := 0, 0
	for i, corner := range corners {
		if s.At(corner.Row, corner.Col) != Empty {
			continue
		}
		m, t := e.tally(s, cornerNeighbors[i][:])
		mine += m
		theirs += t
	}
	return closenessValue * float64(mine-theirs)
}

func (e *Evaluator) tally(s State, cells []Move) (mine, theirs int) {
	for _, cell := range cells {
		switch s.At(cell.Row, cell.Col) {
		case e.self:
			mine++
		case e.opponent:
			theirs++
		}
	}
	return mine, theirs
}

// advantage maps two counts to [-100, 100]: the leader's share of the total, signed by who leads.
func advantage[T constraints.Integer](mine, theirs T) float64 {
	total := float64(mine) + float64(theirs)
	switch {
	case total == 0 || mine == theirs:
		return 0
	case mine > theirs:
		return 100.0 * float64(mine) / total
	default:
		return -100.0 * float64(theirs) / total
	}
}
