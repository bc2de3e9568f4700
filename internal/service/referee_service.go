package service

import (
	"sort"

	"github.com/Dodga010/KP/internal/models"
	"github.com/Dodga010/KP/internal/stats"
)

// RefereeSource provides officiating rows from the data store. The source
// already excludes non-officiating roles.
type RefereeSource interface {
	GetGameRows() ([]models.RefereeGameRow, error)
}

// RefereeService computes per-official season averages.
type RefereeService struct {
	referees RefereeSource
}

// NewRefereeService creates a new referee service
func NewRefereeService(referees RefereeSource) *RefereeService {
	return &RefereeService{referees: referees}
}

// GetSeasonAggregates returns mean fouls-per-game and game counts grouped by
// the official's full name, ordered by average fouls descending.
func (s *RefereeService) GetSeasonAggregates() ([]models.RefereeSeasonAggregate, error) {
	rows, err := s.referees.GetGameRows()
	if err != nil {
		return nil, err
	}
	return AggregateReferees(rows), nil
}

// AggregateReferees groups officiating rows by full name.
func AggregateReferees(rows []models.RefereeGameRow) []models.RefereeSeasonAggregate {
	fouls := make(map[string][]float64)
	order := make([]string, 0)

	for _, row := range rows {
		if _, ok := fouls[row.FullName]; !ok {
			order = append(order, row.FullName)
		}
		fouls[row.FullName] = append(fouls[row.FullName], row.FoulsCalled)
	}

	aggregates := make([]models.RefereeSeasonAggregate, 0, len(order))
	for _, name := range order {
		values := fouls[name]
		aggregates = append(aggregates, models.RefereeSeasonAggregate{
			FullName: name,
			Games:    len(values),
			AvgFouls: stats.Mean(values),
		})
	}

	sort.SliceStable(aggregates, func(i, j int) bool {
		if aggregates[i].AvgFouls != aggregates[j].AvgFouls {
			return aggregates[i].AvgFouls > aggregates[j].AvgFouls
		}
		return aggregates[i].FullName < aggregates[j].FullName
	})

	return aggregates
}
