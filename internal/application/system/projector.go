package system

import (
	"image/color"
	"math"

	"github.com/younwookim/boom/internal/domain/entity"
	"github.com/younwookim/boom/internal/infrastructure/config"
)

// Drawer is the host's drawing primitive.
// The projector calls it once per screen column.
type Drawer interface {
	DrawFilledRect(x, y, width, height float32, clr color.Color)
}

// Column is one vertical strip of the rendered view
type Column struct {
	Index  int
	X      float64
	Width  float64
	Top    float64
	Height float64
	Shade  color.RGBA
}

// Projector turns ray distances into screen columns
type Projector struct {
	wallHeight     float64
	viewportHeight float64
	projection     float64
	columnWidth    float64
	correctFisheye bool

	shadeVertical   color.RGBA
	shadeHorizontal color.RGBA
}

// NewProjector creates a projector from the engine config.
// wallHeight is in world units, usually the grid cell size.
func NewProjector(cfg *config.EngineConfig, wallHeight float64) *Projector {
	return &Projector{
		wallHeight:      wallHeight,
		viewportHeight:  float64(cfg.Display.ScreenHeight),
		projection:      cfg.Camera.ProjectionConstant(),
		columnWidth:     float64(cfg.Camera.Resolution),
		correctFisheye:  cfg.Camera.FisheyeCorrection,
		shadeVertical:   cfg.Shading.Vertical.RGBA(),
		shadeHorizontal: cfg.Shading.Horizontal.RGBA(),
	}
}

// ColumnHeight is the inverse-distance perspective projection:
// (wallHeight / distance) * projection. Closer walls are taller.
func ColumnHeight(wallHeight, distance, projection float64) float64 {
	return wallHeight / distance * projection
}

// ColumnTop centers a column of the given height in the viewport
func ColumnTop(height, viewportHeight float64) float64 {
	return viewportHeight/2 - height/2
}

// FisheyeCorrection reports whether distances are projected onto the view axis
func (p *Projector) FisheyeCorrection() bool {
	return p.correctFisheye
}

// SetFisheyeCorrection switches between the raw Euclidean distance and the
// distance along the facing direction.
func (p *Projector) SetFisheyeCorrection(on bool) {
	p.correctFisheye = on
}

// Shade returns the column color for a hit orientation
func (p *Projector) Shade(o entity.Orientation) color.RGBA {
	switch o {
	case entity.VerticalLine:
		return p.shadeVertical
	default:
		return p.shadeHorizontal
	}
}

// Project sizes the column for one ray. facing is the player's angle and is
// only used when fisheye correction is on. Heights are not clamped to the
// viewport; clipping is left to the drawer.
func (p *Projector) Project(ray entity.Ray, facing float64) (top, height float64, shade color.RGBA) {
	distance := ray.Distance
	if p.correctFisheye {
		distance *= math.Cos(ray.Angle - facing)
	}

	height = ColumnHeight(p.wallHeight, distance, p.projection)
	return ColumnTop(height, p.viewportHeight), height, p.Shade(ray.Orientation)
}

// ProjectAll projects a fan into columns with matching indices
func (p *Projector) ProjectAll(rays []entity.Ray, facing float64) []Column {
	columns := make([]Column, len(rays))
	for i, ray := range rays {
		top, height, shade := p.Project(ray, facing)
		columns[i] = Column{
			Index:  i,
			X:      float64(i) * p.columnWidth,
			Width:  p.columnWidth,
			Top:    top,
			Height: height,
			Shade:  shade,
		}
	}
	return columns
}

// Draw issues one filled rectangle per column
func (p *Projector) Draw(d Drawer, columns []Column) {
	for _, c := range columns {
		d.DrawFilledRect(float32(c.X), float32(c.Top), float32(c.Width), float32(c.Height), c.Shade)
	}
}
