package config

import (
	"fmt"
	"image/color"
	"math"
)

// EngineConfig is the root config for engine.json
type EngineConfig struct {
	Display  DisplayConfig  `json:"display"`
	Camera   CameraConfig   `json:"camera"`
	Movement MovementConfig `json:"movement"`
	Shading  ShadingConfig  `json:"shading"`
}

type DisplayConfig struct {
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	Framerate    int    `json:"framerate"`
	Title        string `json:"title"`
}

// CameraConfig configures the ray fan and the projection
type CameraConfig struct {
	FOVDeg       float64 `json:"fovDeg"`
	ViewDistance float64 `json:"viewDistance"` // Distance to the projection plane (pixels)
	Resolution   int     `json:"resolution"`   // Screen pixels per ray column
	WallHeight   float64 `json:"wallHeight"`   // 0 = use the stage cell size
	// FisheyeCorrection projects each ray onto the view axis before sizing
	// its column. Off by default to keep the flat projection.
	FisheyeCorrection bool `json:"fisheyeCorrection"`
	Workers           int  `json:"workers"` // Parallel cast workers; 0 or 1 = sequential
}

type MovementConfig struct {
	StepDistance float64 `json:"stepDistance"` // World units per tick
	RotateDeg    float64 `json:"rotateDeg"`    // Degrees per tick
}

type ShadingConfig struct {
	Vertical   ColorConfig `json:"vertical"`
	Horizontal ColorConfig `json:"horizontal"`
	Background ColorConfig `json:"background"`
}

// ColorConfig is an RGBA color
type ColorConfig struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// RGBA converts to image/color
func (c ColorConfig) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FOV returns the field of view in radians
func (c CameraConfig) FOV() float64 {
	return c.FOVDeg * math.Pi / 180
}

// ProjectionConstant converts wall-height-over-distance into screen pixels:
// the width of the projection plane at ViewDistance.
func (c CameraConfig) ProjectionConstant() float64 {
	return 2 * c.ViewDistance * math.Tan(c.FOV()/2)
}

// NumRays returns one ray per screen column strip
func (c *EngineConfig) NumRays() int {
	if c.Camera.Resolution <= 0 {
		return 0
	}
	return c.Display.ScreenWidth / c.Camera.Resolution
}

// RotateStep returns the per-tick rotation in radians
func (c MovementConfig) RotateStep() float64 {
	return c.RotateDeg * math.Pi / 180
}

// Validate checks values the engine cannot run without
func (c *EngineConfig) Validate() error {
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, c.Display.ScreenWidth, c.Display.ScreenHeight)
	}
	if c.Display.Framerate <= 0 {
		return fmt.Errorf("%w: framerate %d", ErrInvalidConfig, c.Display.Framerate)
	}
	if c.Camera.FOVDeg <= 0 || c.Camera.FOVDeg >= 180 {
		return fmt.Errorf("%w: fovDeg %v must be in (0, 180)", ErrInvalidConfig, c.Camera.FOVDeg)
	}
	if c.Camera.ViewDistance <= 0 {
		return fmt.Errorf("%w: viewDistance %v", ErrInvalidConfig, c.Camera.ViewDistance)
	}
	if c.Camera.Resolution <= 0 || c.Camera.Resolution > c.Display.ScreenWidth {
		return fmt.Errorf("%w: resolution %d", ErrInvalidConfig, c.Camera.Resolution)
	}
	if c.Camera.WallHeight < 0 {
		return fmt.Errorf("%w: wallHeight %v", ErrInvalidConfig, c.Camera.WallHeight)
	}
	if c.Camera.Workers < 0 {
		return fmt.Errorf("%w: workers %d", ErrInvalidConfig, c.Camera.Workers)
	}
	if c.Movement.StepDistance < 0 || c.Movement.RotateDeg < 0 {
		return fmt.Errorf("%w: negative movement speed", ErrInvalidConfig)
	}
	return nil
}
