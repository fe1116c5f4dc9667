package game

import (
	"strings"
)

// Board is the value-type Reversi position: the grid plus the side to move.
// Copying a Board copies the whole grid, so sibling search branches never share cells.
type Board struct {
	cells  [BoardSize][BoardSize]Color
	player Color
}

func (b *Board) Player() Color {
	return b.player
}

func (b *Board) At(row, col int) Color {
	return b.cells[row][col]
}

// LegalMoves lists the mover's placements in row-major order.
func (b *Board) LegalMoves() []Move {
	if b.player == Empty {
		return nil
	}
	var moves []Move
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if b.captures(r, c, b.player) {
				moves = append(moves, Move{Row: r, Col: c})
			}
		}
	}
	return moves
}

// Play places the mover's disc, flips captured discs and passes the turn to the opponent.
// Passing when the opponent has no reply is left to the game loop.
func (b *Board) Play(move Move) State {
	if !move.OnBoard() {
		panic("move off the board: " + move.String())
	}
	flipped := b.flips(make([]Move, 0, 8), move.Row, move.Col, b.player)
	if len(flipped) == 0 {
		panic("illegal move " + move.String() + " for " + b.player.String())
	}

	next := *b
	next.cells[move.Row][move.Col] = b.player
	for _, f := range flipped {
		next.cells[f.Row][f.Col] = b.player
	}
	next.player = Opponent(b.player)
	return &next
}

func (b *Board) WithPlayer(c Color) State {
	next := *b
	next.player = c
	return &next
}

func (b *Board) Count(c Color) int {
	n := 0
	for r := 0; r < BoardSize; r++ {
		for col := 0; col < BoardSize; col++ {
			if b.cells[r][col] == c {
				n++
			}
		}
	}
	return n
}

// Winner returns the side with more discs once neither side can move, otherwise Empty.
func (b *Board) Winner() Color {
	if len(b.WithPlayer(Black).LegalMoves()) > 0 || len(b.WithPlayer(White).LegalMoves()) > 0 {
		return Empty
	}
	black, white := b.Count(Black), b.Count(White)
	switch {
	case black > white:
		return Black
	case white > black:
		return White
	default:
		return Empty
	}
}

func (b *Board) SameCells(other State) bool {
	if o, ok := other.(*Board); ok {
		return b.cells == o.cells
	}
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if b.cells[r][c] != other.At(r, c) {
				return false
			}
		}
	}
	return true
}

func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  01234567\n")
	for r := 0; r < BoardSize; r++ {
		sb.WriteByte(byte('0' + r))
		sb.WriteByte(' ')
		for c := 0; c < BoardSize; c++ {
			sb.WriteString(b.cells[r][c].String())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("to move: ")
	sb.WriteString(b.player.String())
	return sb.String()
}
