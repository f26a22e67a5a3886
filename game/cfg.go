package game

import (
	"errors"
	"fmt"
)

var (
	ErrDieTooSmall = errors.New("a single sided die cannot be used in this game")
	ErrDieTooLarge = errors.New("a die larger than 64 is not allowed")
)

func checkDie(sides int) error {
	if sides < MIN_DIE_SIDES {
		return fmt.Errorf("%w: got %d sides", ErrDieTooSmall, sides)
	}
	if sides > MAX_DIE_SIDES {
		return fmt.Errorf("%w: got %d sides", ErrDieTooLarge, sides)
	}
	return nil
}

func (gs GameState) Name() string {
	switch gs {
	case GS_NEW:
		return "GS_NEW"
	case GS_PLAY:
		return "GS_PLAY"
	case GS_OVER:
		return "GS_OVER"
	default:
		return fmt.Sprintf("n/a:%d", gs)
	}
}
