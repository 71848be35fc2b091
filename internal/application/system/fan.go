package system

import (
	"golang.org/x/sync/errgroup"

	"github.com/younwookim/boom/internal/domain/entity"
)

// FanBuilder casts one ray per screen column across the field of view
type FanBuilder struct {
	caster  *RayCaster
	fov     float64
	numRays int
	workers int
}

// NewFanBuilder creates a fan of numRays rays spanning fov radians.
// workers > 1 splits the columns across that many goroutines; each column
// only reads the grid, so the result is identical to a sequential cast.
func NewFanBuilder(caster *RayCaster, fov float64, numRays, workers int) *FanBuilder {
	return &FanBuilder{
		caster:  caster,
		fov:     fov,
		numRays: numRays,
		workers: workers,
	}
}

// NumRays returns the number of rays per fan
func (f *FanBuilder) NumRays() int {
	return f.numRays
}

// Angles returns the ray angles left to right, evenly spaced over
// [center - fov/2, center + fov/2] with both ends included.
// A single ray points straight at center.
func (f *FanBuilder) Angles(center float64) []float64 {
	if f.numRays <= 0 {
		return nil
	}
	if f.numRays == 1 {
		return []float64{center}
	}

	start := center - f.fov/2
	gap := f.fov / float64(f.numRays-1)

	angles := make([]float64, f.numRays)
	for i := range angles {
		angles[i] = start + float64(i)*gap
	}
	return angles
}

// Cast casts the whole fan from (x, y) around the facing angle.
// rays[i] belongs to screen column i.
func (f *FanBuilder) Cast(x, y, facing float64) []entity.Ray {
	angles := f.Angles(facing)
	rays := make([]entity.Ray, len(angles))

	if f.workers <= 1 || len(angles) < f.workers {
		for i, angle := range angles {
			rays[i] = f.caster.Cast(x, y, angle)
		}
		return rays
	}

	chunk := (len(angles) + f.workers - 1) / f.workers
	var g errgroup.Group
	g.SetLimit(f.workers)
	for start := 0; start < len(angles); start += chunk {
		start, end := start, min(start+chunk, len(angles))
		g.Go(func() error {
			for i := start; i < end; i++ {
				rays[i] = f.caster.Cast(x, y, angles[i])
			}
			return nil
		})
	}
	_ = g.Wait() // workers never fail

	return rays
}
