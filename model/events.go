package model

import "fmt"

type EventKind int

const (
	Moved EventKind = iota + 1
	Reverted
	ClimbedLadder
	SlidDownSnake
)

// TurnEvent records one turn. Landed is the square reached by the roll
// before any transport; To is where the player ends the turn.
type TurnEvent struct {
	Turn   int
	Player int
	Name   string
	Roll   int
	From   int
	Landed int
	To     int
	Kind   EventKind
}

type Result struct {
	Turns       int
	DieSides    int
	CoinToss    int
	FirstPlayer int
	Winner      int
	Players     [2]Player
	Events      []TurnEvent
}

func (k EventKind) String() string {
	switch k {
	case Moved:
		return "MOVED"
	case Reverted:
		return "REVERTED"
	case ClimbedLadder:
		return "CLIMBED_LADDER"
	case SlidDownSnake:
		return "SLID_DOWN_SNAKE"
	default:
		return fmt.Sprintf("n/a:%d", int(k))
	}
}

// Player returns the record of player number n (1 or 2).
func (r *Result) Player(n int) *Player {
	if n < 1 || n > len(r.Players) {
		return nil
	}
	return &r.Players[n-1]
}
