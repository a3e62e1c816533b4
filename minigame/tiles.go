package minigame

import (
	"image"
	"image/color"

	"github.com/zucenko/snakeladder/input"
	"github.com/zucenko/snakeladder/model"
	"github.com/zucenko/snakeladder/render"
)

const (
	TILES = "tiles"

	TileSize = 50
	TileGap  = 10
)

var (
	tileHidden = color.RGBA{0x80, 0x80, 0x80, 0xff}
	tileShown  = color.RGBA{0x00, 0x00, 0xff, 0xff}
	tileWrong  = color.RGBA{0xff, 0x00, 0x00, 0xff}
)

// TileMemory flashes a pattern of tiles, then the player has to click all of them back.
type TileMemory struct {
	outcome
	env     Env
	width   int
	targets []bool
	flipped []bool
	left    int
	showing int
	miss    int
	xMargin int
	yMargin int
}

func NewTileMemory(d model.Difficulty, env Env) Minigame {
	env = env.ready()
	w := model.Pick(d, 3, 4, 5)
	n := w * w
	targets := make([]bool, n)
	// 4 for 3x3, 7 for 4x4, 11 for 5x5
	k := n * 4 / 9
	for i := 0; i < k; i++ {
		targets[i] = true
	}
	env.Rand.Shuffle(n, func(i, j int) { targets[i], targets[j] = targets[j], targets[i] })
	return &TileMemory{
		env:     env,
		width:   w,
		targets: targets,
		flipped: make([]bool, n),
		left:    k,
		showing: env.Ticks(3),
		miss:    -1,
		xMargin: (env.Width - w*(TileSize+TileGap)) / 2,
		yMargin: (env.Height - w*(TileSize+TileGap)) / 2,
	}
}

func (g *TileMemory) Name() string {
	return TILES
}

func (g *TileMemory) tileRect(i int) image.Rectangle {
	row, col := i/g.width, i%g.width
	return render.Rect(g.xMargin+col*(TileSize+TileGap), g.yMargin+row*(TileSize+TileGap), TileSize, TileSize)
}

// tileAt finds the tile under a pixel, gaps excluded.
func (g *TileMemory) tileAt(x, y int) (int, bool) {
	if x < g.xMargin || y < g.yMargin {
		return 0, false
	}
	col := (x - g.xMargin) / (TileSize + TileGap)
	row := (y - g.yMargin) / (TileSize + TileGap)
	if col >= g.width || row >= g.width {
		return 0, false
	}
	if (x-g.xMargin)%(TileSize+TileGap) >= TileSize || (y-g.yMargin)%(TileSize+TileGap) >= TileSize {
		return 0, false
	}
	return row*g.width + col, true
}

func (g *TileMemory) Update(events []input.Event) {
	if g.ended() {
		return
	}
	if g.showing > 0 {
		g.showing--
		return
	}
	for _, e := range events {
		if e.Kind != input.MOUSE_DOWN {
			continue
		}
		i, ok := g.tileAt(e.X, e.Y)
		if !ok || g.flipped[i] {
			continue
		}
		g.flipped[i] = true
		if !g.targets[i] {
			g.miss = i
			g.finish(false, g.env.Ticks(1.5))
			return
		}
		g.left--
		if g.left == 0 {
			g.finish(true, g.env.Ticks(1))
			return
		}
	}
}

func (g *TileMemory) Draw(s render.Surface) {
	s.Fill(color.Black)
	for i := range g.targets {
		clr := tileHidden
		switch {
		case i == g.miss:
			clr = tileWrong
		case g.flipped[i], g.showing > 0 && g.targets[i]:
			clr = tileShown
		}
		s.DrawRect(g.tileRect(i), clr, 0)
	}
	if g.showing > 0 {
		s.Text("Remember the blue tiles", color.White, g.xMargin, g.yMargin-2*TileGap)
	}
	g.banner(s, g.env, color.White)
}
