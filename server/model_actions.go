package server

import (
	"context"
	"encoding/gob"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/snakeladder/board"
	"github.com/zucenko/snakeladder/model"
)

const (
	eventBuffer = 64
	sendBuffer  = 16
	timeout     = 200 * time.Millisecond
)

// NewSetup captures the board and seats as the first message a spectator gets.
func NewSetup(b *board.Board, players []*model.Player) model.Setup {
	seats := make([]model.Player, 0, len(players))
	for _, p := range players {
		seats = append(seats, *p)
	}
	return model.Setup{
		Snakes:  b.Snakes,
		Ladders: b.Ladders,
		Special: b.SpecialSquares(),
		Players: seats,
	}
}

func NewHub(setup model.Setup) *Hub {
	return &Hub{
		Sessions:        make([]*Session, 0),
		Setup:           setup,
		ConnectRequests: make(chan ConnectRequest),
		Events:          make(chan model.Event, eventBuffer),
		Errors:          make(chan int32),
		Upgrader:        &websocket.Upgrader{},
		done:            make(chan struct{}),
	}
}

// Notify queues ev for the spectators. It never blocks the game, a full queue drops the event.
func (h *Hub) Notify(ev model.Event) {
	select {
	case h.Events <- ev:
	default:
		log.WithField("event", ev.Kind.Name()).Warn("Hub.Notify events queue full, dropping")
	}
}

func (h *Hub) HandleHttpCall() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.WithField("remote", r.RemoteAddr).Info("HandleHttpCall spectator connecting")

		con, err := h.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Warnf("HandleHttpCall websocket upgrade err %v", err)
			return
		}
		defer con.Close()

		gameOver := make(chan struct{})
		select {
		case h.ConnectRequests <- ConnectRequest{Con: con, GameOver: gameOver}:
		case <-time.After(timeout):
			log.Warn("HandleHttpCall ConnectRequests TIMEOUTED")
			return
		}

		// hold the connection until the hub lets go of it
		<-gameOver
		log.WithField("remote", r.RemoteAddr).Info("HandleHttpCall spectator gone")
	}
}

// Loop serves connects, game events and session errors until ctx ends.
func (h *Hub) Loop(ctx context.Context) {
	log.Info("Hub.Loop starting")
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for len(h.Sessions) > 0 {
				h.remove(h.Sessions[0], SS_OVER)
			}
			log.Info("Hub.Loop ended")
			return
		case cr := <-h.ConnectRequests:
			s := h.addSession(cr.Con, cr.GameOver)
			if !h.send(s, model.ServerMessage{Setup: []model.Setup{h.snapshot()}}) {
				h.remove(s, SS_ERR)
			}
		case ev := <-h.Events:
			h.apply(ev)
			slow := make([]*Session, 0)
			for _, s := range h.Sessions {
				if !h.send(s, model.ServerMessage{Events: []model.Event{ev}}) {
					slow = append(slow, s)
				}
			}
			for _, s := range slow {
				h.remove(s, SS_ERR)
			}
		case id := <-h.Errors:
			for _, s := range h.Sessions {
				if s.Id == id {
					h.remove(s, SS_ERR)
					break
				}
			}
		}
	}
}

func (h *Hub) addSession(conn *websocket.Conn, gameOver chan struct{}) *Session {
	h.nextId++
	s := &Session{
		State:          SS_WATCH,
		Id:             h.nextId,
		Hub:            h,
		Conn:           conn,
		GameOver:       gameOver,
		MessagesToSend: make(chan model.ServerMessage, sendBuffer),
	}
	log.WithField("session", s.Id).Info("Hub.addSession")
	conn.SetPingHandler(
		func(message string) error {
			err := conn.WriteControl(websocket.PongMessage, []byte(message), time.Now().Add(time.Second))
			s.DebugLastPing = time.Now()
			s.DebugPings++
			if err == websocket.ErrCloseSent {
				return nil
			} else if e, ok := err.(net.Error); ok && e.Timeout() {
				return nil
			}
			return err
		})
	go s.LoopChannelRead()
	go s.LoopChannelWrite()
	h.Sessions = append(h.Sessions, s)
	return s
}

func (h *Hub) send(s *Session, msg model.ServerMessage) bool {
	select {
	case s.MessagesToSend <- msg:
		return true
	default:
		log.WithField("session", s.Id).Warn("Hub.send spectator too slow")
		return false
	}
}

func (h *Hub) remove(s *Session, state SessionState) {
	s.State = state
	close(s.MessagesToSend)
	close(s.GameOver)
	for i, other := range h.Sessions {
		if other == s {
			h.Sessions = append(h.Sessions[:i], h.Sessions[i+1:]...)
			break
		}
	}
	log.WithFields(log.Fields{"session": s.Id, "state": state.Name()}).Info("Hub.remove")
}

// apply keeps the setup current, so late spectators see today's board.
func (h *Hub) apply(ev model.Event) {
	h.Setup.History = append(h.Setup.History, ev)
	for i := range h.Setup.Players {
		if h.Setup.Players[i].Id == ev.Player {
			h.Setup.Players[i].Position = ev.To
		}
	}
}

func (h *Hub) snapshot() model.Setup {
	setup := h.Setup
	setup.Players = append([]model.Player(nil), h.Setup.Players...)
	setup.History = append([]model.Event(nil), h.Setup.History...)
	return setup
}

func (h *Hub) report(id int32) {
	select {
	case h.Errors <- id:
	case <-h.done:
	}
}

// LoopChannelRead only drains control frames, spectators have nothing to say.
func (s *Session) LoopChannelRead() {
	for {
		if _, _, err := s.Conn.NextReader(); err != nil {
			log.WithField("session", s.Id).Infof("LoopChannelRead ended %v", err)
			s.Hub.report(s.Id)
			return
		}
	}
}

// LoopChannelWrite encodes every queued message as one binary frame until the hub closes the queue.
func (s *Session) LoopChannelWrite() {
	for mes := range s.MessagesToSend {
		if err := s.write(mes); err != nil {
			log.WithField("session", s.Id).Warnf("LoopChannelWrite %v", err)
			s.Hub.report(s.Id)
			return
		}
		s.DebugOutMessages++
	}
}

func (s *Session) write(mes model.ServerMessage) error {
	w, err := s.Conn.NextWriter(websocket.BinaryMessage)
	if err != nil {
		return err
	}
	if err := gob.NewEncoder(w).Encode(mes); err != nil {
		return err
	}
	return w.Close()
}
