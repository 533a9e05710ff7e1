package term

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/kinetype"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func TestDrawGlyphs(t *testing.T) {
	screen := newSimScreen(t, 20, 5)
	scene := kinetype.NewScene()
	word := kinetype.NewText("hi", "hi", kinetype.MonoFace{CellW: 1, CellH: 1})
	word.SetPosition(3, 2)
	scene.Root().AddChild(word)

	NewRenderer(screen, Config{}).Draw(scene)

	if got := runeAt(screen, 3, 2); got != 'h' {
		t.Errorf("cell (3,2) = %q, want 'h'", got)
	}
	if got := runeAt(screen, 4, 2); got != 'i' {
		t.Errorf("cell (4,2) = %q, want 'i'", got)
	}
	if got := runeAt(screen, 5, 2); got != ' ' {
		t.Errorf("cell (5,2) = %q, want blank", got)
	}
}

func TestDrawScaledCells(t *testing.T) {
	screen := newSimScreen(t, 10, 10)
	scene := kinetype.NewScene()
	g := kinetype.NewGlyph("g", 'g', kinetype.Rect{Width: 8, Height: 16})
	g.SetPosition(16, 32)
	scene.Root().AddChild(g)

	r := NewRenderer(screen, Config{CellW: 8, CellH: 16})
	r.Draw(scene)

	if got := runeAt(screen, 2, 2); got != 'g' {
		t.Errorf("cell (2,2) = %q, want 'g'", got)
	}
	w, h := r.WorldSize()
	if w != 80 || h != 160 {
		t.Errorf("WorldSize = (%v,%v), want (80,160)", w, h)
	}
}

func TestDrawShapeFill(t *testing.T) {
	screen := newSimScreen(t, 10, 5)
	scene := kinetype.NewScene()
	wall := kinetype.NewShape("wall", kinetype.RectPolygon(kinetype.Rect{X: 0, Y: 4, Width: 10, Height: 1}))
	scene.Root().AddChild(wall)

	NewRenderer(screen, Config{ShapeRune: '#'}).Draw(scene)

	for x := 0; x < 10; x++ {
		if got := runeAt(screen, x, 4); got != '#' {
			t.Errorf("cell (%d,4) = %q, want '#'", x, got)
		}
		if got := runeAt(screen, x, 3); got == '#' {
			t.Errorf("cell (%d,3) should be empty", x)
		}
	}
}

func TestDrawSkipsHidden(t *testing.T) {
	screen := newSimScreen(t, 10, 5)
	scene := kinetype.NewScene()
	g := kinetype.NewGlyph("g", 'x', kinetype.Rect{Width: 1, Height: 1})
	g.Visible = false
	scene.Root().AddChild(g)

	NewRenderer(screen, Config{}).Draw(scene)
	if got := runeAt(screen, 0, 0); got == 'x' {
		t.Error("hidden glyph should not be drawn")
	}
}

func TestRunStopsOnEscape(t *testing.T) {
	screen := newSimScreen(t, 10, 5)
	scene := kinetype.NewScene()

	go func() {
		time.Sleep(50 * time.Millisecond)
		screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := Run(ctx, screen, scene, Config{}, nil); err != nil {
		t.Errorf("Run = %v, want nil after Escape", err)
	}
	if scene.Frame() == 0 {
		t.Error("scene should have been stepped at least once")
	}
}

func TestRunReturnsUpdateError(t *testing.T) {
	screen := newSimScreen(t, 10, 5)
	scene := kinetype.NewScene()
	boom := errors.New("boom")
	scene.SetUpdateFunc(func() error { return boom })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := Run(ctx, screen, scene, Config{}, nil); !errors.Is(err, boom) {
		t.Errorf("Run = %v, want boom", err)
	}
}

func TestRunHonoursContext(t *testing.T) {
	screen := newSimScreen(t, 10, 5)
	scene := kinetype.NewScene()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Run(ctx, screen, scene, Config{}, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("Run = %v, want context.Canceled", err)
	}
}
