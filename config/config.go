// Package config reads the game settings from SNAKELADDER_* environment variables.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/snakeladder/model"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Width  int `env:"SNAKELADDER_WIDTH"  envDefault:"1280"`
	Height int `env:"SNAKELADDER_HEIGHT" envDefault:"720"`
	FPS    int `env:"SNAKELADDER_FPS"    envDefault:"30"`

	Players    int `env:"SNAKELADDER_PLAYERS"     envDefault:"2"`
	Specials   int `env:"SNAKELADDER_SPECIALS"    envDefault:"5"`
	MaxRerolls int `env:"SNAKELADDER_MAX_REROLLS" envDefault:"3"`
	// Seed fixes the dice and board, 0 seeds from the clock
	Seed int64 `env:"SNAKELADDER_SEED"`
	// Layout is an optional board file, the classic board is used without one
	Layout    string   `env:"SNAKELADDER_LAYOUT"`
	Minigames []string `env:"SNAKELADDER_MINIGAMES" envSeparator:","`

	// Spectator is the listen address of the watch server, empty disables it
	Spectator string `env:"SNAKELADDER_SPECTATOR"`
	LogLevel  string `env:"SNAKELADDER_LOG_LEVEL" envDefault:"info"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: window %dx%d", ErrInvalid, c.Width, c.Height)
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps %d", ErrInvalid, c.FPS)
	case c.Players < model.MinPlayers || c.Players > model.MaxPlayers:
		return fmt.Errorf("%w: %d players", ErrInvalid, c.Players)
	case c.Specials < 0:
		return fmt.Errorf("%w: %d special squares", ErrInvalid, c.Specials)
	case c.MaxRerolls <= 0:
		return fmt.Errorf("%w: max rerolls %d", ErrInvalid, c.MaxRerolls)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Level is the parsed log level, Validate has already vetted it.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// RandSeed resolves a zero Seed to the clock.
func (c *Config) RandSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
