package config

import (
	"github.com/golang/geo/r2"

	"github.com/Dodga010/KP/internal/court"
)

// CourtConfig declares the canonical court frame. The defaults encode the
// FIBA court at 10 render units per meter: a 280x150 frame over 28x15 m raw
// bounds, basket anchor 1.575 m from the baseline on the centre line, paint
// threshold at 4.5 m and the three-point arc at 6.75 m.
type CourtConfig struct {
	Width       float64 `koanf:"width"`
	Height      float64 `koanf:"height"`
	RawXMax     float64 `koanf:"raw_x_max"`
	RawYMax     float64 `koanf:"raw_y_max"`
	AnchorX     float64 `koanf:"anchor_x"`
	AnchorY     float64 `koanf:"anchor_y"`
	FlipY       bool    `koanf:"flip_y"`
	PaintRadius float64 `koanf:"paint_radius"`
	MidRadius   float64 `koanf:"mid_radius"`
}

// DensityConfig controls the heatmap surface sampling.
type DensityConfig struct {
	GridW     int     `koanf:"grid_w"`
	GridH     int     `koanf:"grid_h"`
	Bandwidth float64 `koanf:"bandwidth"` // <= 0 selects Scott's rule
}

// Config holds process configuration.
type Config struct {
	Port      string        `koanf:"port"`
	DBPath    string        `koanf:"db_path"`
	JWTSecret string        `koanf:"jwt_secret"`
	RateLimit int           `koanf:"rate_limit"` // requests per minute per IP
	Court     CourtConfig   `koanf:"court"`
	Density   DensityConfig `koanf:"density"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Port:      ":8080",
		DBPath:    "./data/kp.db",
		JWTSecret: "",
		RateLimit: 300,
		Court: CourtConfig{
			Width:       280,
			Height:      150,
			RawXMax:     28,
			RawYMax:     15,
			AnchorX:     15.75,
			AnchorY:     75,
			FlipY:       true,
			PaintRadius: 45,
			MidRadius:   67.5,
		},
		Density: DensityConfig{
			GridW: 56,
			GridH: 30,
		},
	}
}

// Frame materializes the configured court frame.
func (c *Config) Frame() court.Frame {
	return court.Frame{
		Width:       c.Court.Width,
		Height:      c.Court.Height,
		RawXMax:     c.Court.RawXMax,
		RawYMax:     c.Court.RawYMax,
		Anchor:      r2.Point{X: c.Court.AnchorX, Y: c.Court.AnchorY},
		FlipY:       c.Court.FlipY,
		PaintRadius: c.Court.PaintRadius,
		MidRadius:   c.Court.MidRadius,
	}
}
