package court

import (
	"fmt"

	"github.com/golang/geo/r2"

	"github.com/Dodga010/KP/internal/models"
)

// Frame is the canonical court coordinate space every visualization renders
// against. Raw shot coordinates arrive in the source's own units (historical
// exports mixed meters and pre-scaled pixels, with and without a flipped
// y-axis); a Frame pins the target extent, the raw bounds, the orientation
// and the basket anchor once, so no call site carries its own constants.
type Frame struct {
	// Width and Height are the target extent, in render units.
	Width  float64
	Height float64

	// RawXMax and RawYMax are the physical bounds of the raw coordinate
	// system, e.g. court length/width in meters. Supplied, never inferred.
	RawXMax float64
	RawYMax float64

	// Anchor is the basket plumb point in frame units. All zone thresholds
	// measure from here.
	Anchor r2.Point

	// FlipY maps increasing raw y to decreasing frame y.
	FlipY bool

	// PaintRadius and MidRadius are the zone thresholds in frame units.
	// Distances below PaintRadius are paint shots, below MidRadius
	// mid-range, everything else beyond.
	PaintRadius float64
	MidRadius   float64
}

// Validate reports a configuration error for a frame that cannot scale or
// classify coordinates.
func (f Frame) Validate() error {
	switch {
	case f.Width <= 0 || f.Height <= 0:
		return fmt.Errorf("%w: frame extent %gx%g", models.ErrConfiguration, f.Width, f.Height)
	case f.RawXMax == 0 || f.RawYMax == 0:
		return fmt.Errorf("%w: raw bounds %gx%g", models.ErrConfiguration, f.RawXMax, f.RawYMax)
	case f.PaintRadius <= 0 || f.MidRadius <= f.PaintRadius:
		return fmt.Errorf("%w: zone radii paint=%g mid=%g", models.ErrConfiguration, f.PaintRadius, f.MidRadius)
	}
	return nil
}

// Normalize scales a raw coordinate pair into the frame. Each axis scales
// independently; the y-axis flips when the frame declares it. No clamping:
// points outside [0,Width]x[0,Height] pass through unchanged, since shots
// beyond the visualized extent are real data.
func (f Frame) Normalize(x, y float64) r2.Point {
	nx := x * (f.Width / f.RawXMax)
	ny := y * (f.Height / f.RawYMax)
	if f.FlipY {
		ny = f.Height - ny
	}
	return r2.Point{X: nx, Y: ny}
}

// NormalizeShot maps one raw event into the frame and tags its zone.
func (f Frame) NormalizeShot(ev models.ShotEvent) models.NormalizedShot {
	p := f.Normalize(ev.X, ev.Y)
	return models.NormalizedShot{
		X:          p.X,
		Y:          p.Y,
		Outcome:    ev.Outcome,
		Zone:       f.Classify(p),
		ActionType: ev.ActionType,
	}
}

// Contains reports whether a frame point lies within the rendered extent.
func (f Frame) Contains(p r2.Point) bool {
	return p.X >= 0 && p.X <= f.Width && p.Y >= 0 && p.Y <= f.Height
}
