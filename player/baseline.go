package player

import (
	"golang.org/x/exp/rand"

	"reversi/game"
	"reversi/searcher"
)

// Random picks uniformly among the legal moves.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) GetMove(_ game.State, moves []game.Move) (game.Move, error) {
	if len(moves) == 0 {
		return game.NoMove, searcher.ErrNoMoves
	}
	return moves[r.rng.Intn(len(moves))], nil
}

// Greedy plays the move whose resulting position scores best, looking one ply ahead.
type Greedy struct {
	evaluator *game.Evaluator
}

func NewGreedy(color game.Color) *Greedy {
	return &Greedy{evaluator: game.NewEvaluator(color)}
}

func (g *Greedy) GetMove(state game.State, moves []game.Move) (game.Move, error) {
	if len(moves) == 0 {
		return game.NoMove, searcher.ErrNoMoves
	}
	best := moves[0]
	bestUtility := g.evaluator.Utility(state.Play(best))
	for _, move := range moves[1:] {
		if u := g.evaluator.Utility(state.Play(move)); u > bestUtility {
			best, bestUtility = move, u
		}
	}
	return best, nil
}
