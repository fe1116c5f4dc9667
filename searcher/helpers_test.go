package searcher

import (
	"golang.org/x/exp/rand"

	"reversi/game"
)

// randomPosition plays plies random moves from the start, passing when the mover is stuck.
func randomPosition(seed uint64, plies int) game.State {
	rng := rand.New(rand.NewSource(seed))
	var s game.State = game.NewBoard()
	for i := 0; i < plies; i++ {
		moves := s.LegalMoves()
		if len(moves) == 0 {
			passed := s.WithPlayer(game.Opponent(s.Player()))
			if len(passed.LegalMoves()) == 0 {
				return s
			}
			s = passed
			continue
		}
		s = s.Play(moves[rng.Intn(len(moves))])
	}
	return s
}

func constant(value float64) game.Evaluate {
	return func(game.State) float64 { return value }
}

// countdown reports no more time after n checks.
func countdown(n int) NoMoreTime {
	return func() bool {
		n--
		return n < 0
	}
}
