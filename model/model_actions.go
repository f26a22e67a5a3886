package model

import (
	"errors"
	"fmt"
)

var ErrInvalidBoard = errors.New("invalid board")

// DefaultBoard is the 100 square board with 6 ladders and 5 snakes.
func DefaultBoard() Board {
	return Board{
		Start:  1,
		Finish: 100,
		Ladders: map[int]int{
			80: 99,
			2:  38,
			4:  14,
			9:  31,
			33: 85,
			52: 88,
		},
		Snakes: map[int]int{
			62: 57,
			98: 8,
			56: 15,
			92: 53,
			51: 11,
		},
	}
}

func (b Board) Validate() error {
	if b.Finish <= b.Start {
		return fmt.Errorf("%w: finish %d must be past start %d", ErrInvalidBoard, b.Finish, b.Start)
	}
	for base, dest := range b.Ladders {
		if dest <= base {
			return fmt.Errorf("%w: ladder %d->%d does not lead up", ErrInvalidBoard, base, dest)
		}
		if !b.onBoard(base) || !b.onBoard(dest) {
			return fmt.Errorf("%w: ladder %d->%d is off the board", ErrInvalidBoard, base, dest)
		}
		if _, clash := b.Snakes[base]; clash {
			return fmt.Errorf("%w: square %d is both ladder and snake", ErrInvalidBoard, base)
		}
	}
	for head, dest := range b.Snakes {
		if dest >= head {
			return fmt.Errorf("%w: snake %d->%d does not lead down", ErrInvalidBoard, head, dest)
		}
		if !b.onBoard(head) || !b.onBoard(dest) {
			return fmt.Errorf("%w: snake %d->%d is off the board", ErrInvalidBoard, head, dest)
		}
	}
	return nil
}

func (b Board) onBoard(square int) bool {
	return square >= b.Start && square <= b.Finish
}

// Transport looks up square in the ladders first, then the snakes.
func (b Board) Transport(square int) (dest int, kind EventKind, ok bool) {
	if dest, found := b.Ladders[square]; found {
		return dest, ClimbedLadder, true
	}
	if dest, found := b.Snakes[square]; found {
		return dest, SlidDownSnake, true
	}
	return square, Moved, false
}

func NewPlayers(board Board, names [2]string) [2]Player {
	var players [2]Player
	for i, name := range names {
		players[i] = Player{Name: name, Position: board.Start}
	}
	return players
}
