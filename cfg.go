package main

import (
	"math/rand"

	log "github.com/sirupsen/logrus"

	"github.com/zucenko/snakeladder/board"
	"github.com/zucenko/snakeladder/config"
	"github.com/zucenko/snakeladder/minigame"
	"github.com/zucenko/snakeladder/model"
	"github.com/zucenko/snakeladder/render"
	"github.com/zucenko/snakeladder/turn"
)

// LoadBoard reads the configured layout file, or builds the classic board.
func LoadBoard(cfg *config.Config, r *rand.Rand) (*board.Board, error) {
	if cfg.Layout == "" {
		return board.Default(cfg.Specials, r)
	}
	log.WithField("path", cfg.Layout).Info("loading board layout")
	return board.Load(cfg.Layout, cfg.Specials, r)
}

// NewController seats the players and wires board, dice and minigames together.
func NewController(cfg *config.Config, r *rand.Rand) (*turn.Controller, error) {
	b, err := LoadBoard(cfg, r)
	if err != nil {
		return nil, err
	}
	players, err := model.NewPlayers(cfg.Players)
	if err != nil {
		return nil, err
	}
	games := minigame.NewRegistry(minigame.Env{
		Width:  cfg.Width,
		Height: cfg.Height,
		FPS:    cfg.FPS,
		Rand:   r,
		Log:    log.WithField("part", "minigame"),
	})
	if err := games.Only(cfg.Minigames...); err != nil {
		return nil, err
	}
	return turn.New(turn.Options{
		Board:      b,
		Players:    players,
		Layout:     render.NewLayout(cfg.Width, cfg.Height),
		Dice:       turn.NewDice(r),
		Games:      games,
		FPS:        cfg.FPS,
		MaxRerolls: cfg.MaxRerolls,
		Log:        log.WithField("part", "turn"),
	})
}
