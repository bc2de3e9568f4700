package models

// HeatmapFilter represents query parameters for the heatmap endpoint.
// Zero values fall back to the configured defaults.
type HeatmapFilter struct {
	GridW     int     `form:"grid_w"`
	GridH     int     `form:"grid_h"`
	Bandwidth float64 `form:"bandwidth"`
}

// HeadToHeadFilter represents query parameters for the head-to-head endpoint.
type HeadToHeadFilter struct {
	Team1 string `form:"team1"`
	Team2 string `form:"team2"`
}
