package server

import (
	"fmt"

	"github.com/gorilla/websocket"
)

func (s SessionState) Name() string {
	switch s {
	case SS_NEW:
		return "NEW"
	case SS_WATCH:
		return "WATCH"
	case SS_ERR:
		return "ERR"
	case SS_OVER:
		return "OVER"
	default:
		return fmt.Sprintf("N/A(%d)", s)
	}
}

type ConnectRequest struct {
	Con      *websocket.Conn
	GameOver chan struct{}
}
