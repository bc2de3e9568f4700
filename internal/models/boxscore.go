package models

// Box-score stat field names. Aggregates and head-to-head vectors are keyed
// by these so the two sides of a comparison can be aligned on the union of
// names.
const (
	StatPoints         = "points"
	StatFouls          = "fouls"
	StatFreeThrowsMade = "free_throws_made"
	StatFieldGoalsMade = "field_goals_made"
	StatAssists        = "assists"
	StatRebounds       = "rebounds"
	StatSteals         = "steals"
	StatTurnovers      = "turnovers"
	StatBlocks         = "blocks"
)

// StatFields lists the numeric box-score columns in report order.
var StatFields = []string{
	StatPoints,
	StatFouls,
	StatFreeThrowsMade,
	StatFieldGoalsMade,
	StatAssists,
	StatRebounds,
	StatSteals,
	StatTurnovers,
	StatBlocks,
}

// TeamGameRow is one team's box-score line for one game.
type TeamGameRow struct {
	GameID   int64              `json:"gameId" db:"game_id"`
	TeamName string             `json:"teamName" db:"team_name"`
	Home     bool               `json:"home" db:"is_home"`
	Stats    map[string]float64 `json:"stats"`
}

// TeamSeasonAggregate is the arithmetic mean of every box-score field over
// all rows sharing a (team, home/away) group key.
type TeamSeasonAggregate struct {
	TeamName    string             `json:"teamName"`
	Home        bool               `json:"home"`
	GamesPlayed int                `json:"gamesPlayed"`
	AvgStats    map[string]float64 `json:"avgStats"`
}

// AvgPoints is the sort key for aggregate tables.
func (a TeamSeasonAggregate) AvgPoints() float64 {
	return a.AvgStats[StatPoints]
}

// HeadToHeadRow pairs one stat field across two teams.
type HeadToHeadRow struct {
	Field string  `json:"field"`
	Team1 float64 `json:"team1"`
	Team2 float64 `json:"team2"`
}

// HeadToHeadComparison is the side-by-side stat table for two teams,
// averaged over home and away splits.
type HeadToHeadComparison struct {
	Team1 string          `json:"team1"`
	Team2 string          `json:"team2"`
	Rows  []HeadToHeadRow `json:"rows"`
}
