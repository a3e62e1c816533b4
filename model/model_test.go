package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDifficultyFor(t *testing.T) {
	cases := map[int]Difficulty{0: EASY, 32: EASY, 33: MEDIUM, 65: MEDIUM, 66: HARD, 98: HARD}
	for pos, want := range cases {
		assert.Equal(t, want, DifficultyFor(pos), "position %d", pos)
	}
}

func TestPick(t *testing.T) {
	assert.Equal(t, 3, Pick(EASY, 3, 4, 5))
	assert.Equal(t, 4, Pick(MEDIUM, 3, 4, 5))
	assert.Equal(t, 5, Pick(HARD, 3, 4, 5))
	assert.Equal(t, "medium", MEDIUM.Name())
}

func TestClampStaysOnBoard(t *testing.T) {
	for pos := 0; pos <= Last; pos++ {
		for delta := -6; delta <= 6; delta++ {
			got := Clamp(pos + delta)
			require.GreaterOrEqual(t, got, 0)
			require.LessOrEqual(t, got, Last)
		}
	}
	assert.Equal(t, 0, Clamp(-4))
	assert.Equal(t, Last, Clamp(101))
	assert.Equal(t, 42, Clamp(42))
}

func TestNewPlayers(t *testing.T) {
	players, err := NewPlayers(4)
	require.NoError(t, err)
	require.Len(t, players, 4)
	for i, p := range players {
		assert.Equal(t, i, p.Id)
		assert.Zero(t, p.Position)
		assert.Equal(t, COLORS[i], p.Color)
	}
	assert.Equal(t, "P1", players[0].Name())

	_, err = NewPlayers(1)
	assert.ErrorIs(t, err, ErrPlayerCount)
	_, err = NewPlayers(5)
	assert.ErrorIs(t, err, ErrPlayerCount)
}

func TestGameColorIsOpaque(t *testing.T) {
	r, g, b, a := HexToF32(0xff0000, 1).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Zero(t, g)
	assert.Zero(t, b)
	assert.Equal(t, uint32(0xffff), a)
}
