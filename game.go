package main

import (
	"context"
	"errors"
	"math/rand"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/snakeladder/config"
	"github.com/zucenko/snakeladder/input"
	"github.com/zucenko/snakeladder/server"
	"github.com/zucenko/snakeladder/turn"
)

const title = "Snakes and Ladders"

type Game struct {
	Controller *turn.Controller
	Surface    *Surface
	Poller     *Poller
}

func (g *Game) update(screen *ebiten.Image) error {
	if err := g.Controller.Update(g.Poller.Poll()); err != nil {
		return err
	}

	if ebiten.IsDrawingSkipped() {
		return nil
	}

	g.Surface.Target = screen
	g.Controller.Draw(g.Surface)
	log.Tracef("frame %s", g.Controller.State.Name())
	if log.IsLevelEnabled(log.DebugLevel) {
		ebitenutil.DebugPrintAt(screen, g.Controller.State.Name(), 0, 0)
	}
	return nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(cfg.Level())

	seed := cfg.RandSeed()
	log.WithField("seed", seed).Info("starting")
	r := rand.New(rand.NewSource(seed))

	controller, err := NewController(cfg, r)
	if err != nil {
		log.Fatal(err)
	}

	surface, err := NewSurface()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.Spectator != "" {
		hub := server.NewHub(server.NewSetup(controller.Board, controller.Players))
		controller.Observe(hub)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go hub.Loop(ctx)
		s := &Server{Hub: hub}
		go s.Serve(cfg.Spectator)
	}

	game := &Game{
		Controller: controller,
		Surface:    surface,
		Poller:     NewPoller(),
	}
	ebiten.SetMaxTPS(cfg.FPS)
	err = ebiten.Run(game.update, cfg.Width, cfg.Height, 1, title)
	switch {
	case errors.Is(err, input.ErrQuit):
		log.Info("quit")
	case err != nil:
		log.Fatal(err)
	default:
		log.Info("window closed")
	}
}
