package model

import (
	"errors"
	"fmt"
)

var ErrPlayerCount = errors.New("player count out of range")

// NewPlayers seats n players on square 0 with the default colors.
func NewPlayers(n int) ([]*Player, error) {
	if n < MinPlayers || n > MaxPlayers {
		return nil, fmt.Errorf("%w: %d not in [%d,%d]", ErrPlayerCount, n, MinPlayers, MaxPlayers)
	}
	players := make([]*Player, 0, n)
	for i := 0; i < n; i++ {
		players = append(players, &Player{Id: i, Color: COLORS[i%len(COLORS)]})
	}
	return players, nil
}

// Clamp keeps a position on the board.
func Clamp(pos int) int {
	return min(max(pos, 0), Last)
}
