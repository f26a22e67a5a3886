package game

import (
	"github.com/zucenko/snakes/dice"
	"github.com/zucenko/snakes/model"
)

const (
	MIN_DIE_SIDES = 2
	MAX_DIE_SIDES = 64
)

type GameState int

const (
	GS_NEW GameState = iota
	GS_PLAY
	GS_OVER
)

// Observer receives every turn as soon as it is played.
type Observer func(model.TurnEvent)

// Game is one simulation. Players are indexed 0 and 1 for players 1 and 2.
type Game struct {
	State     GameState
	Board     model.Board
	Players   [2]model.Player
	DieSides  int
	CoinToss  int
	Turns     int
	Events    []model.TurnEvent
	roller    dice.Roller
	current   int
	first     int
	observers []Observer
}
