// Package server broadcasts a running game to websocket spectators.
package server

import (
	"time"

	"github.com/gorilla/websocket"

	"github.com/zucenko/snakeladder/model"
)

// Hub owns the spectator sessions. Only Loop touches Sessions and Setup.
type Hub struct {
	Sessions        []*Session
	Setup           model.Setup
	ConnectRequests chan ConnectRequest
	Events          chan model.Event
	Errors          chan int32
	Upgrader        *websocket.Upgrader

	nextId int32
	done   chan struct{}
}

type SessionState int

const (
	SS_NEW SessionState = iota + 1
	SS_WATCH
	SS_ERR
	SS_OVER
)

type Session struct {
	State    SessionState
	Id       int32
	Hub      *Hub
	Conn     *websocket.Conn
	GameOver chan struct{}

	MessagesToSend chan model.ServerMessage

	DebugOutMessages int
	DebugLastPing    time.Time
	DebugPings       int
}
