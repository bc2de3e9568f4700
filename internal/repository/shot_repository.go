package repository

import (
	"database/sql"
	"fmt"

	"github.com/Dodga010/KP/internal/models"
)

// ShotRepository handles database operations for shot events
type ShotRepository struct {
	db *sql.DB
}

// NewShotRepository creates a new shot repository
func NewShotRepository(db *sql.DB) *ShotRepository {
	return &ShotRepository{db: db}
}

// GetShotsByPlayer retrieves all shot events for one player in stable row
// order. Row order matters downstream: the profile's mode-location tie-break
// is defined over it.
func (r *ShotRepository) GetShotsByPlayer(playerName string) ([]models.ShotEvent, error) {
	query := `SELECT player_name, x_coord, y_coord, shot_result, action_type
		FROM Shots
		WHERE player_name = ?
		ORDER BY id`

	rows, err := r.db.Query(query, playerName)
	if err != nil {
		return nil, fmt.Errorf("failed to query shots: %w", err)
	}
	defer rows.Close()

	var shots []models.ShotEvent
	for rows.Next() {
		var ev models.ShotEvent
		var rawResult string
		var actionType sql.NullString
		if err := rows.Scan(&ev.PlayerName, &ev.X, &ev.Y, &rawResult, &actionType); err != nil {
			return nil, fmt.Errorf("failed to scan shot: %w", err)
		}

		// Historical exports encode the result as "made"/"missed", 0/1 or
		// a boolean; normalize before anything else sees the row.
		outcome, err := models.ParseOutcome(rawResult)
		if err != nil {
			return nil, fmt.Errorf("failed to normalize shot result: %w", err)
		}
		ev.Outcome = outcome
		if actionType.Valid {
			ev.ActionType = actionType.String
		}

		shots = append(shots, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shots: %w", err)
	}

	return shots, nil
}

// GetPlayers retrieves the distinct player names with recorded shots.
func (r *ShotRepository) GetPlayers() ([]string, error) {
	rows, err := r.db.Query(`SELECT DISTINCT player_name FROM Shots ORDER BY player_name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	var players []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan player name: %w", err)
		}
		players = append(players, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate players: %w", err)
	}

	return players, nil
}
