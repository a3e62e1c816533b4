// Command spectator follows a running game from the terminal.
package main

import (
	"encoding/gob"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/snakeladder/model"
)

type Config struct {
	URL string `env:"SNAKELADDER_WATCH_URL" envDefault:"ws://localhost:8080/watch"`
}

func main() {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("parse env: %v", err)
	}

	log.Printf("dialing %s", cfg.URL)
	con, _, err := websocket.DefaultDialer.Dial(cfg.URL, nil)
	if err != nil {
		log.Fatal(err)
	}
	defer con.Close()

	for {
		_, r, err := con.NextReader()
		if err != nil {
			log.Infof("game over or gone: %v", err)
			return
		}
		var msg model.ServerMessage
		if err := gob.NewDecoder(r).Decode(&msg); err != nil {
			log.Warnf("cant decode %v", err)
			return
		}
		for _, s := range msg.Setup {
			printSetup(s)
		}
		for _, ev := range msg.Events {
			printEvent(ev)
		}
	}
}

func printSetup(s model.Setup) {
	log.WithFields(log.Fields{
		"snakes":  len(s.Snakes),
		"ladders": len(s.Ladders),
		"special": fmt.Sprint(s.Special),
		"players": len(s.Players),
	}).Info("joined game")
	for _, p := range s.Players {
		log.WithField("square", p.Position).Info(p.Name())
	}
	for _, ev := range s.History {
		printEvent(ev)
	}
}

func printEvent(ev model.Event) {
	fields := log.Fields{"player": ev.Player + 1, "to": ev.To}
	switch ev.Kind {
	case model.EV_ROLLED:
		fields["roll"] = ev.Roll
	case model.EV_MINIGAME:
		fields["minigame"] = ev.Minigame
		fields["difficulty"] = ev.Difficulty.Name()
		fields["won"] = ev.Won
	case model.EV_LANDED, model.EV_SLID:
		fields["square"] = ev.Square
	}
	log.WithFields(fields).Info(ev.Kind.Name())
	if ev.Prompt != "" {
		fmt.Println(ev.Prompt)
	}
}
