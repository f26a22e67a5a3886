// Package narrator turns game events into the play-by-play text.
package narrator

import (
	"errors"
	"fmt"
	"io"

	"github.com/zucenko/snakes/dice"
	"github.com/zucenko/snakes/game"
	"github.com/zucenko/snakes/model"
)

const Divider = "-----------------------------------------"

type Narrator struct {
	w      io.Writer
	finish int
	err    error
}

// New writes to w. finish is the square named when a roll overshoots.
func New(w io.Writer, finish int) *Narrator {
	return &Narrator{w: w, finish: finish}
}

// Err returns the first write error, if any.
func (n *Narrator) Err() error {
	return n.err
}

func (n *Narrator) println(a ...interface{}) {
	if n.err != nil {
		return
	}
	_, n.err = fmt.Fprintln(n.w, a...)
}

func (n *Narrator) printf(format string, a ...interface{}) {
	if n.err != nil {
		return
	}
	_, n.err = fmt.Fprintf(n.w, format+"\n", a...)
}

// Rejected explains why a game could not start.
func (n *Narrator) Rejected(err error) {
	switch {
	case errors.Is(err, game.ErrDieTooSmall):
		n.println("Sorry, a single sided die cannot be used in this game.")
		n.println("It causes an infinite loop to occur and is not allowed.")
	case errors.Is(err, game.ErrDieTooLarge):
		n.println("Sorry, a die larger than 64 is not allowed.")
	default:
		n.printf("Sorry, the game cannot start: %v", err)
	}
}

func (n *Narrator) Start(dieSides int) {
	n.printf("Using a %d sided die.", dieSides)
	n.println()
}

func (n *Narrator) Turn(ev model.TurnEvent) {
	n.println(Divider)
	switch ev.Kind {
	case model.Reverted:
		n.printf("%s's roll landed past %d,", ev.Name, n.finish)
		n.printf("moves back to previous spot: %d.", ev.To)
	case model.ClimbedLadder:
		n.printf("%s moves to square %d,", ev.Name, ev.Landed)
		n.println("landed on a ladder,")
		n.printf("climbs to %d.", ev.To)
	case model.SlidDownSnake:
		n.printf("%s moves to square %d,", ev.Name, ev.Landed)
		n.println("gets bit by a snake,")
		n.printf("slides down to %d.", ev.To)
	default:
		n.printf("%s moves to square %d.", ev.Name, ev.To)
	}
}

func (n *Narrator) Report(res *model.Result) {
	n.println(Divider)
	if w := res.Player(res.Winner); w != nil {
		n.printf("After %d turns: %s wins!", res.Turns, w.Name)
	}
	n.println(Divider)
	for _, p := range res.Players {
		n.printf("%s total ladders : %d", p.Name, p.Ladders)
		n.printf("%s total snakes  : %d", p.Name, p.Snakes)
		n.println(Divider)
	}
	if f := res.Player(res.FirstPlayer); f != nil {
		n.printf("%s went first.", f.Name)
	}
	n.println(Divider)
}

// Play runs one game and narrates it as it goes. Rejected input is narrated
// and returned; the caller decides whether that is fatal.
func Play(w io.Writer, board model.Board, roller dice.Roller, dieSides int, player1, player2 string) (*model.Result, error) {
	n := New(w, board.Finish)
	g, err := game.NewGame(board, roller, dieSides, player1, player2)
	if err != nil {
		n.Rejected(err)
		return nil, err
	}
	n.Start(dieSides)
	g.Observe(n.Turn)
	res := g.Play()
	n.Report(res)
	return res, n.Err()
}
