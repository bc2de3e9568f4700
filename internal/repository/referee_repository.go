package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/Dodga010/KP/internal/models"
)

// RefereeRepository handles database operations for game officials
type RefereeRepository struct {
	db *sql.DB
}

// NewRefereeRepository creates a new referee repository
func NewRefereeRepository(db *sql.DB) *RefereeRepository {
	return &RefereeRepository{db: db}
}

// GetGameRows retrieves per-game officiating records. Commissioners sit in
// the same table but do not officiate, so they are excluded here.
func (r *RefereeRepository) GetGameRows() ([]models.RefereeGameRow, error) {
	query := `SELECT game_id, full_name, role, fouls_called
		FROM Officials
		WHERE LOWER(role) != ?
		ORDER BY game_id, full_name`

	rows, err := r.db.Query(query, strings.ToLower(models.RoleCommissioner))
	if err != nil {
		return nil, fmt.Errorf("failed to query officials: %w", err)
	}
	defer rows.Close()

	var result []models.RefereeGameRow
	for rows.Next() {
		var row models.RefereeGameRow
		if err := rows.Scan(&row.GameID, &row.FullName, &row.Role, &row.FoulsCalled); err != nil {
			return nil, fmt.Errorf("failed to scan official row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate officials: %w", err)
	}

	return result, nil
}
