package court

import (
	"github.com/golang/geo/r2"

	"github.com/Dodga010/KP/internal/models"
)

// Classify assigns the scoring zone for a point already in frame units.
// Bands are inclusive on their lower bound and exclusive on the upper, so a
// shot exactly on a threshold belongs to the outer band and is never counted
// twice: d == PaintRadius is mid-range, d == MidRadius is beyond. Total over
// all inputs; there is no unknown zone.
func (f Frame) Classify(p r2.Point) models.Zone {
	d := p.Sub(f.Anchor).Norm()
	switch {
	case d < f.PaintRadius:
		return models.ZonePaint
	case d < f.MidRadius:
		return models.ZoneMidRange
	default:
		return models.ZoneBeyond
	}
}

// Distance returns the distance from a frame point to the basket anchor.
func (f Frame) Distance(p r2.Point) float64 {
	return p.Sub(f.Anchor).Norm()
}
