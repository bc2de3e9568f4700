package config

import (
	"errors"
	"testing"

	"github.com/Dodga010/KP/internal/models"
)

func TestDefaultsValidate(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default configuration should validate: %v", err)
	}
}

func TestLoadAppliesEnvOverrides(t *testing.T) {
	t.Setenv("KP_PORT", ":9090")
	t.Setenv("KP_COURT__PAINT_RADIUS", "40")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != ":9090" {
		t.Fatalf("expected port override, got %q", cfg.Port)
	}
	if cfg.Court.PaintRadius != 40 {
		t.Fatalf("expected nested override, got %g", cfg.Court.PaintRadius)
	}
	// Untouched keys keep their defaults.
	if cfg.Court.Width != 280 {
		t.Fatalf("expected default width 280, got %g", cfg.Court.Width)
	}
}

func TestLoadRejectsBrokenFrame(t *testing.T) {
	t.Setenv("KP_COURT__RAW_X_MAX", "0")

	_, err := Load()
	if !errors.Is(err, models.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestFrameMaterialization(t *testing.T) {
	cfg := Default()
	frame := cfg.Frame()
	if frame.Anchor.X != cfg.Court.AnchorX || frame.Anchor.Y != cfg.Court.AnchorY {
		t.Fatalf("anchor not carried into frame: %+v", frame.Anchor)
	}
	if !frame.FlipY {
		t.Fatal("default orientation should flip y")
	}
}
