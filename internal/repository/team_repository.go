package repository

import (
	"database/sql"
	"fmt"

	"github.com/Dodga010/KP/internal/models"
)

// TeamRepository handles database operations for team box scores
type TeamRepository struct {
	db *sql.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *sql.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// GetGameRows retrieves every team box-score line. Aggregates are
// recomputed from the full row set on demand, so there is no season table
// to read.
func (r *TeamRepository) GetGameRows() ([]models.TeamGameRow, error) {
	query := `SELECT game_id, team_name, is_home,
		points, fouls, free_throws_made, field_goals_made,
		assists, rebounds, steals, turnovers, blocks
		FROM Team_Stats
		ORDER BY game_id, team_name`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query team stats: %w", err)
	}
	defer rows.Close()

	var result []models.TeamGameRow
	for rows.Next() {
		var row models.TeamGameRow
		var isHome int
		stats := make(map[string]float64, len(models.StatFields))
		var points, fouls, ftm, fgm, assists, rebounds, steals, turnovers, blocks float64

		err := rows.Scan(
			&row.GameID, &row.TeamName, &isHome,
			&points, &fouls, &ftm, &fgm,
			&assists, &rebounds, &steals, &turnovers, &blocks,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan team stats row: %w", err)
		}

		row.Home = isHome == 1
		stats[models.StatPoints] = points
		stats[models.StatFouls] = fouls
		stats[models.StatFreeThrowsMade] = ftm
		stats[models.StatFieldGoalsMade] = fgm
		stats[models.StatAssists] = assists
		stats[models.StatRebounds] = rebounds
		stats[models.StatSteals] = steals
		stats[models.StatTurnovers] = turnovers
		stats[models.StatBlocks] = blocks
		row.Stats = stats

		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate team stats: %w", err)
	}

	return result, nil
}
