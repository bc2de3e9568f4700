package models

// DensityGrid is a sampled shot-density surface over the court frame.
// X and Y hold cell-center coordinates; Values is row-major, one row per Y
// entry. The surface is clipped to the frame, not renormalized.
type DensityGrid struct {
	X      []float64   `json:"x"`
	Y      []float64   `json:"y"`
	Values [][]float64 `json:"values"`
	// Bandwidth actually used, after the Scott's-rule default is applied.
	Bandwidth float64 `json:"bandwidth"`
	// MaxValue is the largest sampled density, for color scaling.
	MaxValue float64 `json:"maxValue"`
}

// HeatmapResponse is the heatmap API payload. Density is nil when the
// estimator reported insufficient data; the shots remain renderable as
// markers.
type HeatmapResponse struct {
	PlayerName string           `json:"playerName"`
	Shots      []NormalizedShot `json:"shots"`
	Density    *DensityGrid     `json:"density,omitempty"`
	NoDensity  bool             `json:"noDensity,omitempty"`
}
