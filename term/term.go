// Package term renders a kinetype Scene into a terminal with tcell. One
// world unit maps to one character cell by default, so texts built with
// kinetype.MonoFace{CellW: 1, CellH: 1} line up with the grid.
package term

import (
	"context"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/kinetype"
)

// Config controls how world space maps onto the terminal grid.
type Config struct {
	// CellW and CellH are the world-space size of one cell. Zero means 1.
	CellW, CellH float64

	// ShapeRune fills cells covered by shape nodes. Zero means '█'.
	ShapeRune rune

	// Background is the style used to clear the screen.
	Background tcell.Style
}

func (c Config) withDefaults() Config {
	if c.CellW <= 0 {
		c.CellW = 1
	}
	if c.CellH <= 0 {
		c.CellH = 1
	}
	if c.ShapeRune == 0 {
		c.ShapeRune = '█'
	}
	return c
}

// Renderer draws scenes onto a tcell.Screen.
type Renderer struct {
	screen tcell.Screen
	cfg    Config
}

// NewRenderer creates a renderer for an initialised screen.
func NewRenderer(screen tcell.Screen, cfg Config) *Renderer {
	return &Renderer{screen: screen, cfg: cfg.withDefaults()}
}

// WorldSize returns the visible area in world units.
func (r *Renderer) WorldSize() (w, h float64) {
	cw, ch := r.screen.Size()
	return float64(cw) * r.cfg.CellW, float64(ch) * r.cfg.CellH
}

// Cell returns the cell containing world point p.
func (r *Renderer) Cell(p kinetype.Vec2) (x, y int) {
	return int(math.Floor(p.X / r.cfg.CellW)), int(math.Floor(p.Y / r.cfg.CellH))
}

// Draw clears the screen, draws every visible glyph and shape of scene, and
// shows the result. It must not run concurrently with Scene.Update.
func (r *Renderer) Draw(scene *kinetype.Scene) {
	r.screen.SetStyle(r.cfg.Background)
	r.screen.Clear()
	scene.Walk(func(n *kinetype.Node) bool {
		switch n.Type {
		case kinetype.NodeTypeShape:
			r.fillShape(n)
		case kinetype.NodeTypeGlyph:
			b := n.Bounds()
			// Glyphs occupy the cell under their box's center.
			x, y := r.Cell(kinetype.Vec2{X: b.X + b.Width/2, Y: b.Y + b.Height/2})
			r.screen.SetContent(x, y, n.Rune, nil, r.style(n))
		}
		return true
	})
	r.screen.Show()
}

func (r *Renderer) fillShape(n *kinetype.Node) {
	outline := n.Outline()
	b := n.Bounds()
	x0, y0 := r.Cell(kinetype.Vec2{X: b.MinX(), Y: b.MinY()})
	x1, y1 := r.Cell(kinetype.Vec2{X: b.MaxX(), Y: b.MaxY()})
	sw, sh := r.screen.Size()
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, sw-1), min(y1, sh-1)

	style := r.style(n)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			cx := (float64(x) + 0.5) * r.cfg.CellW
			cy := (float64(y) + 0.5) * r.cfg.CellH
			if outline.Contains(cx, cy) {
				r.screen.SetContent(x, y, r.cfg.ShapeRune, nil, style)
			}
		}
	}
}

func (r *Renderer) style(n *kinetype.Node) tcell.Style {
	a := n.WorldAlpha() * n.Color.A
	c := n.Color
	return r.cfg.Background.Foreground(tcell.NewRGBColor(
		int32(c.R*a*255), int32(c.G*a*255), int32(c.B*a*255),
	))
}

// Run steps scene at its tick rate and redraws after every step until ctx is
// cancelled, the user presses Escape or Ctrl-C, or the scene's update func
// fails. onKey, if non-nil, receives every other key event between steps.
func Run(ctx context.Context, screen tcell.Screen, scene *kinetype.Scene, cfg Config, onKey func(*tcell.EventKey)) error {
	r := NewRenderer(screen, cfg)
	tick := time.Duration(float64(time.Second) / scene.Physics().TickRate)
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go screen.ChannelEvents(events, quit)

	r.Draw(scene)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return nil
				}
				if onKey != nil {
					onKey(ev)
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			if err := scene.Update(); err != nil {
				return err
			}
			r.Draw(scene)
		}
	}
}
