// Package playing provides the first-person walking scene.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/boom/internal/application/scene"
	"github.com/younwookim/boom/internal/application/state"
	"github.com/younwookim/boom/internal/application/system"
	"github.com/younwookim/boom/internal/domain/entity"
	"github.com/younwookim/boom/internal/infrastructure/config"
	"github.com/younwookim/boom/internal/infrastructure/render"
)

// Colors for overlays
var (
	colorOverlay    = color.RGBA{0, 0, 0, 128}
	colorMapWall    = color.RGBA{80, 80, 100, 255}
	colorMapFloor   = color.RGBA{20, 20, 30, 200}
	colorMapRay     = color.RGBA{255, 215, 0, 160}
	colorMapPlayer  = color.RGBA{100, 200, 100, 255}
	minimapScale    = 1.0 / 8
	minimapRayEvery = 8
)

// Playing is the first-person scene
type Playing struct {
	config      *config.GameConfig
	engine      *system.Engine
	player      *entity.Player
	inputSystem *system.InputSystem
	state       state.GameState
	frame       system.Frame
	ticks       int
	screenW     int
	screenH     int
	background  color.RGBA

	// Input recording
	recorder       *Recorder
	recordFilename string
}

// New creates a new Playing scene.
// If recordPath is not empty, input will be recorded.
func New(cfg *config.GameConfig, recordPath string) *Playing {
	grid := system.LoadGrid(cfg.Stage)
	player := system.SpawnPlayer(cfg.Stage)

	p := &Playing{
		config:         cfg,
		engine:         system.NewEngine(cfg.Engine, grid),
		player:         player,
		inputSystem:    system.NewInputSystem(),
		state:          state.StatePlaying,
		screenW:        cfg.Engine.Display.ScreenWidth,
		screenH:        cfg.Engine.Display.ScreenHeight,
		background:     cfg.Engine.Shading.Background.RGBA(),
		recordFilename: recordPath,
	}
	p.frame = p.engine.View(player)

	if recordPath != "" {
		p.recorder = NewRecorder(cfg.Stage.ID, player)
		log.Printf("Recording enabled: %s", recordPath)
	}

	return p
}

// Update proceeds the scene state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	switch p.state {
	case state.StatePlaying:
		p.updatePlaying()
	case state.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.state = p.state.Toggle()
		}
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) updatePlaying() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.state = p.state.Toggle()
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		p.ToggleFisheye()
	}

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	p.step(p.inputSystem.GetInput())
}

// step runs one tick with the given input
func (p *Playing) step(input system.InputState) {
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	p.frame = p.engine.Tick(input, p.player)
	p.ticks++
}

// ToggleFisheye flips fisheye correction and re-projects the current view
func (p *Playing) ToggleFisheye() {
	proj := p.engine.Projector()
	proj.SetFisheyeCorrection(!proj.FisheyeCorrection())
	p.frame = p.engine.View(p.player)
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename, p.player); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// Draw renders the view
func (p *Playing) Draw(screen *ebiten.Image) {
	canvas := render.NewCanvas(screen)
	canvas.Clear(p.background)

	p.engine.Draw(canvas, p.frame)

	if ebiten.IsKeyPressed(ebiten.KeyTab) {
		p.drawMinimap(canvas)
	}

	p.drawUI(screen)

	if p.state == state.StatePaused {
		p.drawPauseOverlay(canvas)
	}
}

// drawMinimap draws the grid top-down with a sample of the current rays
func (p *Playing) drawMinimap(canvas *render.Canvas) {
	grid := p.engine.Grid()
	cell := float32(grid.CellSize * minimapScale)

	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			c := colorMapFloor
			if grid.TileAt(row, col).IsWall() {
				c = colorMapWall
			}
			canvas.DrawFilledRect(float32(col)*cell, float32(row)*cell, cell, cell, c)
		}
	}

	px := float32(p.player.X * minimapScale)
	py := float32(p.player.Y * minimapScale)
	for i, ray := range p.frame.Rays {
		if i%minimapRayEvery != 0 || !ray.Hit {
			continue
		}
		vector.StrokeLine(canvas.Image(), px, py,
			float32(ray.HitX*minimapScale), float32(ray.HitY*minimapScale), 1, colorMapRay, false)
	}
	canvas.DrawFilledRect(px-2, py-2, 4, 4, colorMapPlayer)
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	mode := "raw"
	if p.engine.Projector().FisheyeCorrection() {
		mode = "corrected"
	}

	text := fmt.Sprintf("x=%.1f y=%.1f angle=%.1f deg | fisheye: %s | tps %.0f",
		p.player.X, p.player.Y, p.player.Angle*180/math.Pi, mode, ebiten.ActualTPS())
	if p.recorder != nil {
		text += fmt.Sprintf(" | REC %d", p.recorder.FrameCount())
	}
	text += "\nArrows/WASD: Move | F: Fisheye | Tab: Map | F5: Save | ESC: Pause"
	ebitenutil.DebugPrint(screen, text)
}

func (p *Playing) drawPauseOverlay(canvas *render.Canvas) {
	canvas.DrawFilledRect(0, 0, float32(p.screenW), float32(p.screenH), colorOverlay)

	text := "PAUSED\n\nPress ESC to resume"
	ebitenutil.DebugPrintAt(canvas.Image(), text, p.screenW/2-50, p.screenH/2-20)
}

// Player returns the player
func (p *Playing) Player() *entity.Player {
	return p.player
}

// Ticks returns the number of ticks run
func (p *Playing) Ticks() int {
	return p.ticks
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Layout returns the scene's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
