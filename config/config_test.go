package config

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1280, cfg.Width)
	assert.Equal(t, 720, cfg.Height)
	assert.Equal(t, 30, cfg.FPS)
	assert.Equal(t, 2, cfg.Players)
	assert.Equal(t, 5, cfg.Specials)
	assert.Equal(t, 3, cfg.MaxRerolls)
	assert.Empty(t, cfg.Layout)
	assert.Empty(t, cfg.Minigames)
	assert.Empty(t, cfg.Spectator)
	assert.Equal(t, log.InfoLevel, cfg.Level())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SNAKELADDER_PLAYERS", "4")
	t.Setenv("SNAKELADDER_SEED", "42")
	t.Setenv("SNAKELADDER_MINIGAMES", "SNAKE,SIMON")
	t.Setenv("SNAKELADDER_SPECTATOR", ":8080")
	t.Setenv("SNAKELADDER_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Players)
	assert.Equal(t, int64(42), cfg.RandSeed())
	assert.Equal(t, []string{"SNAKE", "SIMON"}, cfg.Minigames)
	assert.Equal(t, ":8080", cfg.Spectator)
	assert.Equal(t, log.DebugLevel, cfg.Level())
}

func TestLoadRejects(t *testing.T) {
	cases := map[string]string{
		"SNAKELADDER_PLAYERS":     "5",
		"SNAKELADDER_FPS":         "0",
		"SNAKELADDER_SPECIALS":    "-1",
		"SNAKELADDER_MAX_REROLLS": "0",
		"SNAKELADDER_LOG_LEVEL":   "loud",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load()
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoadParseError(t *testing.T) {
	t.Setenv("SNAKELADDER_WIDTH", "wide")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestZeroSeedUsesClock(t *testing.T) {
	cfg := &Config{}
	assert.NotZero(t, cfg.RandSeed())
}
