package game

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/snakes/dice"
	"github.com/zucenko/snakes/model"
)

// NewGame validates the die and the board, places both players on the start
// square and tosses the coin. A toss of 1 gives player 2 the first turn, a
// toss of 2 gives it to player 1.
func NewGame(board model.Board, roller dice.Roller, dieSides int, player1, player2 string) (*Game, error) {
	if err := checkDie(dieSides); err != nil {
		log.Warnf("NewGame rejected die: %v", err)
		return nil, err
	}
	if err := board.Validate(); err != nil {
		log.Warnf("NewGame rejected board: %v", err)
		return nil, err
	}

	g := &Game{
		State:    GS_NEW,
		Board:    board,
		Players:  model.NewPlayers(board, [2]string{player1, player2}),
		DieSides: dieSides,
		roller:   roller,
	}
	g.CoinToss = roller.Roll(1, 2)
	if g.CoinToss == 1 {
		g.first = 1
	} else {
		g.first = 0
	}
	// the first Turn toggles onto the toss winner
	g.current = 1 - g.first
	log.Debugf("NewGame coin toss:%d first:%s", g.CoinToss, g.Players[g.first].Name)
	return g, nil
}

func (g *Game) Observe(o Observer) {
	g.observers = append(g.observers, o)
}

// Over is true once either player stands exactly on the finish square.
func (g *Game) Over() bool {
	for _, p := range g.Players {
		if p.Position >= g.Board.Finish {
			return true
		}
	}
	return false
}

// Turn plays one turn for the next player. It returns false once the game is over.
func (g *Game) Turn() (model.TurnEvent, bool) {
	if g.Over() {
		g.State = GS_OVER
		return model.TurnEvent{}, false
	}
	g.State = GS_PLAY
	g.Turns++
	g.current = 1 - g.current

	p := &g.Players[g.current]
	roll := g.roller.Roll(1, g.DieSides)
	ev := model.TurnEvent{
		Turn:   g.Turns,
		Player: g.current + 1,
		Name:   p.Name,
		Roll:   roll,
		From:   p.Position,
	}

	p.Position += roll
	ev.Landed = p.Position
	if p.Position > g.Board.Finish {
		// exact roll needed to finish
		p.Position -= roll
		ev.Kind = model.Reverted
	} else if dest, kind, ok := g.Board.Transport(p.Position); ok {
		switch kind {
		case model.ClimbedLadder:
			p.Ladders++
		case model.SlidDownSnake:
			p.Snakes++
		}
		p.Position = dest
		ev.Kind = kind
	} else {
		ev.Kind = model.Moved
	}
	ev.To = p.Position

	log.Debugf("Game.Turn %d %s roll:%d %d->%d %s", ev.Turn, ev.Name, roll, ev.From, ev.To, ev.Kind)
	g.Events = append(g.Events, ev)
	for _, o := range g.observers {
		o(ev)
	}
	if g.Over() {
		g.State = GS_OVER
	}
	return ev, true
}

// Winner scans players in order; a later player must be strictly ahead to win,
// so equal positions go to player 1.
func (g *Game) Winner() int {
	winner, best := 0, 0
	for i, p := range g.Players {
		if p.Position > best {
			best = p.Position
			winner = i + 1
		}
	}
	return winner
}

func (g *Game) Result() *model.Result {
	return &model.Result{
		Turns:       g.Turns,
		DieSides:    g.DieSides,
		CoinToss:    g.CoinToss,
		FirstPlayer: g.first + 1,
		Winner:      g.Winner(),
		Players:     g.Players,
		Events:      g.Events,
	}
}

// Run plays a whole game. There is no turn limit; a fair die ends the game
// with probability 1.
func Run(board model.Board, roller dice.Roller, dieSides int, player1, player2 string, observers ...Observer) (*model.Result, error) {
	g, err := NewGame(board, roller, dieSides, player1, player2)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	for _, o := range observers {
		g.Observe(o)
	}
	return g.Play(), nil
}

// Play takes turns until the game is over.
func (g *Game) Play() *model.Result {
	for {
		if _, ok := g.Turn(); !ok {
			break
		}
	}
	res := g.Result()
	log.Debugf("Game.Play finished after %d turns, winner player %d", res.Turns, res.Winner)
	return res
}
