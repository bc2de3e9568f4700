package court

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"

	"github.com/Dodga010/KP/internal/models"
)

func zoneFrame() Frame {
	return Frame{
		Width:       280,
		Height:      150,
		RawXMax:     28,
		RawYMax:     15,
		Anchor:      r2.Point{X: 100, Y: 75},
		PaintRadius: 45,
		MidRadius:   67.5,
	}
}

func TestClassifyBands(t *testing.T) {
	f := zoneFrame()
	cases := []struct {
		p    r2.Point
		want models.Zone
	}{
		{r2.Point{X: 100, Y: 75}, models.ZonePaint},
		{r2.Point{X: 130, Y: 75}, models.ZonePaint},
		{r2.Point{X: 150, Y: 75}, models.ZoneMidRange},
		{r2.Point{X: 180, Y: 75}, models.ZoneBeyond},
		{r2.Point{X: 100, Y: 149}, models.ZoneBeyond},
	}
	for _, tc := range cases {
		if got := f.Classify(tc.p); got != tc.want {
			t.Fatalf("Classify(%v) = %s, want %s", tc.p, got, tc.want)
		}
	}
}

func TestClassifyBoundariesBelongToOuterZone(t *testing.T) {
	f := zoneFrame()

	// Exactly on the paint threshold: distance 45.
	onPaint := r2.Point{X: 145, Y: 75}
	if got := f.Classify(onPaint); got != models.ZoneMidRange {
		t.Fatalf("shot on paint boundary classified %s, want %s", got, models.ZoneMidRange)
	}

	// Exactly on the mid-range threshold: distance 67.5.
	onMid := r2.Point{X: 167.5, Y: 75}
	if got := f.Classify(onMid); got != models.ZoneBeyond {
		t.Fatalf("shot on mid boundary classified %s, want %s", got, models.ZoneBeyond)
	}
}

func TestClassifyIsTotal(t *testing.T) {
	f := zoneFrame()
	// Sweep a lattice including points far outside the frame; every point
	// gets exactly one of the three zones.
	for x := -100.0; x <= 400; x += 25 {
		for y := -100.0; y <= 300; y += 25 {
			switch f.Classify(r2.Point{X: x, Y: y}) {
			case models.ZonePaint, models.ZoneMidRange, models.ZoneBeyond:
			default:
				t.Fatalf("point (%g, %g) got no zone", x, y)
			}
		}
	}
}

func TestNormalizeShotTagsZone(t *testing.T) {
	f := fibaFrame()
	shot := f.NormalizeShot(models.ShotEvent{
		PlayerName: "A",
		X:          1.575,
		Y:          7.5,
		Outcome:    models.OutcomeMade,
	})
	if shot.Zone != models.ZonePaint {
		t.Fatalf("shot at the rim classified %s, want %s", shot.Zone, models.ZonePaint)
	}
	if math.Abs(shot.X-15.75) > 1e-9 || math.Abs(shot.Y-75) > 1e-9 {
		t.Fatalf("unexpected normalized location (%g, %g)", shot.X, shot.Y)
	}
}
