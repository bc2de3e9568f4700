package court

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/r2"

	"github.com/Dodga010/KP/internal/models"
)

func fibaFrame() Frame {
	return Frame{
		Width:       280,
		Height:      150,
		RawXMax:     28,
		RawYMax:     15,
		Anchor:      r2.Point{X: 15.75, Y: 75},
		FlipY:       true,
		PaintRadius: 45,
		MidRadius:   67.5,
	}
}

func TestNormalizeScalesIntoFrame(t *testing.T) {
	f := fibaFrame()
	cases := []struct{ x, y, wantX, wantY float64 }{
		{0, 0, 0, 150},
		{28, 15, 280, 0},
		{14, 7.5, 140, 75},
		{1.575, 7.5, 15.75, 75},
	}
	for _, tc := range cases {
		p := f.Normalize(tc.x, tc.y)
		if math.Abs(p.X-tc.wantX) > 1e-9 || math.Abs(p.Y-tc.wantY) > 1e-9 {
			t.Fatalf("Normalize(%g, %g) = (%g, %g), want (%g, %g)", tc.x, tc.y, p.X, p.Y, tc.wantX, tc.wantY)
		}
	}
}

func TestNormalizeKeepsRawBoundsInsideFrame(t *testing.T) {
	f := fibaFrame()
	for x := 0.0; x <= 28; x += 3.5 {
		for y := 0.0; y <= 15; y += 2.5 {
			p := f.Normalize(x, y)
			if !f.Contains(p) {
				t.Fatalf("Normalize(%g, %g) = (%g, %g) escaped the frame", x, y, p.X, p.Y)
			}
		}
	}
}

func TestNormalizeDoesNotClamp(t *testing.T) {
	f := fibaFrame()
	p := f.Normalize(35, -2)
	if p.X != 350 {
		t.Fatalf("expected heave x to pass through as 350, got %g", p.X)
	}
	if p.Y != 170 {
		t.Fatalf("expected out-of-range y to pass through as 170, got %g", p.Y)
	}
}

func TestNormalizeRoundTripsWithInverseScale(t *testing.T) {
	f := fibaFrame()
	inverse := Frame{
		Width:   f.RawXMax,
		Height:  f.RawYMax,
		RawXMax: f.Width,
		RawYMax: f.Height,
		FlipY:   true,
	}

	for _, raw := range []r2.Point{{X: 3.2, Y: 11.7}, {X: 27.9, Y: 0.1}, {X: 14, Y: 7.5}} {
		p := f.Normalize(raw.X, raw.Y)
		back := inverse.Normalize(p.X, p.Y)
		if math.Abs(back.X-raw.X) > 1e-9 || math.Abs(back.Y-raw.Y) > 1e-9 {
			t.Fatalf("round trip of (%g, %g) gave (%g, %g)", raw.X, raw.Y, back.X, back.Y)
		}
	}
}

func TestNormalizePreservedOrientation(t *testing.T) {
	f := fibaFrame()
	f.FlipY = false
	p := f.Normalize(0, 15)
	if p.Y != 150 {
		t.Fatalf("expected y=150 without flip, got %g", p.Y)
	}
}

func TestValidateRejectsZeroBounds(t *testing.T) {
	f := fibaFrame()
	f.RawXMax = 0
	if err := f.Validate(); !errors.Is(err, models.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestValidateRejectsInvertedRadii(t *testing.T) {
	f := fibaFrame()
	f.MidRadius = f.PaintRadius
	if err := f.Validate(); !errors.Is(err, models.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	if err := fibaFrame().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
