package book

import (
	"github.com/rs/zerolog/log"

	"reversi/game"
	"reversi/utils"
)

// Follower tracks one agent's game against the book: the history of tokens played so far and the
// board the agent expects to see once the opponent has replied. History only ever grows.
type Follower struct {
	book      *Book
	history   string
	predicted game.State
	lost      bool
}

func NewFollower(b *Book) *Follower {
	return &Follower{book: b, predicted: game.NewBoard()}
}

func (f *Follower) History() string {
	return f.history
}

// Exhausted reports that the book can no longer answer for this game.
func (f *Follower) Exhausted() bool {
	return f.lost || len(f.history) >= MaxDepth
}

// Observe appends the opponent's reply when the observed board differs from the prediction.
func (f *Follower) Observe(state game.State) {
	if f.Exhausted() || state.SameCells(f.predicted) {
		return
	}
	reply, ok := f.diff(state)
	if !ok {
		// Board changed without a new disc: the game is not the one being tracked
		log.Debug().Str("history", f.history).Msg("lost track of the game, leaving the book")
		f.lost = true
		return
	}
	f.history += Token(f.ply(), reply)
	f.predicted = state
}

// Next returns the book's continuation for the game so far, if the book knows one and it is among moves.
// A continuation that cannot be played leaves history and prediction as they were.
func (f *Follower) Next(state game.State, moves []game.Move) (game.Move, bool) {
	f.Observe(state)
	if f.Exhausted() {
		return game.NoMove, false
	}

	token, ok := f.book.Lookup(f.history)
	if !ok {
		return game.NoMove, false
	}
	move, err := ParseToken(token)
	if err != nil || !utils.Contains(moves, move) {
		log.Warn().Str("history", f.history).Str("token", token).Msg("book continuation is not playable")
		return game.NoMove, false
	}

	f.history += token
	f.predicted = state.Play(move)
	return move, true
}

// Record appends a move the agent chose without the book, keeping history and prediction in step.
func (f *Follower) Record(state game.State, move game.Move) {
	if f.Exhausted() {
		return
	}
	f.history += Token(f.ply(), move)
	f.predicted = state.Play(move)
}

func (f *Follower) ply() int {
	return len(f.history) / TokenLen
}

// diff finds the first cell, in row-major order, that was empty in the prediction and is now occupied.
func (f *Follower) diff(state game.State) (game.Move, bool) {
	for r := 0; r < game.BoardSize; r++ {
		for c := 0; c < game.BoardSize; c++ {
			if f.predicted.At(r, c) == game.Empty && state.At(r, c) != game.Empty {
				return game.Move{Row: r, Col: c}, true
			}
		}
	}
	return game.NoMove, false
}
