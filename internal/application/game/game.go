// Package game implements ebiten.Game on top of the Scene interface.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/boom/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	ticks   int
}

// New creates a new Game with the given initial scene ticking at tps updates
// per second. The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH, tps int) *Game {
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / float64(tps),
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}
	g.ticks++

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the fixed logical screen size; ebiten scales it to the window.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Close runs the current scene's OnExit. Call it after ebiten.RunGame returns.
func (g *Game) Close() {
	g.current.OnExit()
}

// Ticks returns the number of successful updates
func (g *Game) Ticks() int {
	return g.ticks
}

// DT returns the delta time passed to each update
func (g *Game) DT() float64 {
	return g.dt
}
