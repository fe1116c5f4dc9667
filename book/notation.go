package book

import (
	"errors"
	"fmt"

	"reversi/game"
)

var ErrBadNotation = errors.New("bad book notation")

// Notation converts a grid move to the book's two-character label: column letter, then row digit
// counted from the bottom row.
func Notation(m game.Move) string {
	if !m.OnBoard() {
		panic("move off the board: " + m.String())
	}
	return string([]byte{byte('a' + m.Col), byte('8' - m.Row)})
}

// ParseNotation is the inverse of Notation.
func ParseNotation(label string) (game.Move, error) {
	if len(label) != 2 {
		return game.NoMove, fmt.Errorf("%w: %q", ErrBadNotation, label)
	}
	col := int(label[0]) - 'a'
	row := '8' - int(label[1])
	m := game.Move{Row: row, Col: col}
	if !m.OnBoard() {
		return game.NoMove, fmt.Errorf("%w: %q", ErrBadNotation, label)
	}
	return m, nil
}

// Polarity returns the marker of the token played at the given ply: '+' on even plies, '-' on odd.
func Polarity(ply int) byte {
	if ply%2 == 0 {
		return '+'
	}
	return '-'
}

// Token encodes the move played at ply as a three-character book token.
func Token(ply int, m game.Move) string {
	return string(Polarity(ply)) + Notation(m)
}

// ParseToken validates a three-character token and decodes its coordinate.
func ParseToken(token string) (game.Move, error) {
	if len(token) != TokenLen || (token[0] != '+' && token[0] != '-') {
		return game.NoMove, fmt.Errorf("%w: token %q", ErrBadNotation, token)
	}
	return ParseNotation(token[1:])
}
