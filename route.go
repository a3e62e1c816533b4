package main

import (
	"net/http"

	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/snakeladder/server"
)

const URI_WS = "/watch"

type Server struct {
	router *way.Router
	Hub    *server.Hub
}

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("GET", URI_WS, s.Hub.HandleHttpCall())
}

// Serve blocks serving spectators on addr.
func (s *Server) Serve(addr string) {
	s.routes()
	log.WithField("addr", addr).Info("spectator server listening")
	if err := http.ListenAndServe(addr, s.router); err != nil {
		log.Errorf("spectator server stopped %v", err)
	}
}
