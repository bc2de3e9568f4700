package models

// RoleCommissioner is the officiating role excluded from referee aggregates.
const RoleCommissioner = "commissioner"

// RefereeGameRow is one official's record for one game.
type RefereeGameRow struct {
	GameID      int64   `json:"gameId" db:"game_id"`
	FullName    string  `json:"fullName" db:"full_name"`
	Role        string  `json:"role" db:"role"`
	FoulsCalled float64 `json:"foulsCalled" db:"fouls_called"`
}

// RefereeSeasonAggregate is the mean fouls-per-game for one official.
type RefereeSeasonAggregate struct {
	FullName string  `json:"fullName"`
	Games    int     `json:"games"`
	AvgFouls float64 `json:"avgFouls"`
}
