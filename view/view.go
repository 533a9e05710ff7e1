// Package view renders a kinetype Scene with Ebitengine.
//
//	scene := kinetype.NewScene()
//	// ... populate ...
//	if err := view.Run(scene, view.RunConfig{Title: "bounce", Width: 640, Height: 480}); err != nil {
//		log.Fatal(err)
//	}
package view

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/kinetype"
)

// RunConfig configures the Ebitengine window opened by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int

	// Background fills the screen before each frame. The zero value is black.
	Background kinetype.Color

	// Face draws glyphs whose text does not carry a *TTFFace. When nil such
	// glyphs are drawn as filled boxes.
	Face *TTFFace

	// ShowFPS draws an FPS/TPS readout in the top-left corner.
	ShowFPS bool

	// ShowOutlines strokes every solid node's world outline.
	ShowOutlines bool
}

// Game adapts a Scene to ebiten.Game. Update steps the scene once per tick;
// Draw reads the final positions.
type Game struct {
	scene *kinetype.Scene
	cfg   RunConfig
	fps   *fpsOverlay
}

// NewGame wraps scene for use with ebiten.RunGame.
func NewGame(scene *kinetype.Scene, cfg RunConfig) *Game {
	g := &Game{scene: scene, cfg: cfg}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	return g
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if err := g.scene.Update(); err != nil {
		return err
	}
	if g.fps != nil {
		g.fps.update(1 / g.scene.Physics().TickRate)
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	bg := g.cfg.Background
	screen.Fill(color.RGBA{
		R: uint8(bg.R * 255), G: uint8(bg.G * 255), B: uint8(bg.B * 255), A: 255,
	})
	DrawScene(screen, g.scene, DrawOptions{Face: g.cfg.Face, Outlines: g.cfg.ShowOutlines})
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and drives the scene at its configured tick rate until
// the window closes or the scene's update func returns an error.
func Run(scene *kinetype.Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("view: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(int(scene.Physics().TickRate))
	return ebiten.RunGame(NewGame(scene, cfg))
}
