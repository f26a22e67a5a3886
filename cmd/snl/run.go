package main

import (
	"errors"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/snakes/config"
	"github.com/zucenko/snakes/dice"
	"github.com/zucenko/snakes/game"
	"github.com/zucenko/snakes/model"
	"github.com/zucenko/snakes/narrator"
)

// run plays one game and returns the exit code. A die of the wrong size is
// reported on out and still exits 0.
func run(args []string, out io.Writer) int {
	cfg, err := config.Load("snl", args)
	if err != nil {
		log.Errorf("config: %v", err)
		return 1
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warnf("unknown log level %q, keeping %s", cfg.LogLevel, log.GetLevel())
	} else {
		log.SetLevel(level)
	}

	seed, err := dice.NewSeed()
	if err != nil {
		log.Errorf("dice: %v", err)
		return 1
	}
	log.Debugf("starting game die:%d players:%s,%s", cfg.DieSides, cfg.Player1, cfg.Player2)

	_, err = narrator.Play(out, model.DefaultBoard(), dice.NewRandom(seed), cfg.DieSides, cfg.Player1, cfg.Player2)
	switch {
	case err == nil:
	case errors.Is(err, game.ErrDieTooSmall), errors.Is(err, game.ErrDieTooLarge):
		log.Infof("game not played: %v", err)
	default:
		log.Errorf("narration: %v", err)
		return 1
	}
	return 0
}
