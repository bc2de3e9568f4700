package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Dodga010/KP/internal/models"
	"github.com/Dodga010/KP/internal/stats"
)

// TeamSource provides team box-score rows from the data store.
type TeamSource interface {
	GetGameRows() ([]models.TeamGameRow, error)
}

// TeamService computes season aggregates and head-to-head comparisons from
// the raw per-game rows. Aggregates are pure functions of the current row
// set; nothing is cached between requests.
type TeamService struct {
	teams TeamSource
}

// NewTeamService creates a new team service
func NewTeamService(teams TeamSource) *TeamService {
	return &TeamService{teams: teams}
}

// GetSeasonAggregates returns one aggregate row per group, ordered by
// average points descending. With splitHomeAway the group key is
// (team, home/away); otherwise each team forms a single group.
func (s *TeamService) GetSeasonAggregates(splitHomeAway bool) ([]models.TeamSeasonAggregate, error) {
	rows, err := s.teams.GetGameRows()
	if err != nil {
		return nil, err
	}
	return AggregateTeams(rows, splitHomeAway), nil
}

// AggregateTeams groups rows and takes the arithmetic mean of every stat
// field. Games played is the group's row count.
func AggregateTeams(rows []models.TeamGameRow, splitHomeAway bool) []models.TeamSeasonAggregate {
	type key struct {
		team string
		home bool
	}

	groups := make(map[key]map[string][]float64)
	counts := make(map[key]int)
	order := make([]key, 0)

	for _, row := range rows {
		k := key{team: row.TeamName}
		if splitHomeAway {
			k.home = row.Home
		}
		fields, ok := groups[k]
		if !ok {
			fields = make(map[string][]float64, len(models.StatFields))
			groups[k] = fields
			order = append(order, k)
		}
		counts[k]++
		for name, v := range row.Stats {
			fields[name] = append(fields[name], v)
		}
	}

	aggregates := make([]models.TeamSeasonAggregate, 0, len(order))
	for _, k := range order {
		fields := groups[k]
		avg := make(map[string]float64, len(fields))
		for name, values := range fields {
			avg[name] = stats.Mean(values)
		}
		aggregates = append(aggregates, models.TeamSeasonAggregate{
			TeamName:    k.team,
			Home:        splitHomeAway && k.home,
			GamesPlayed: counts[k],
			AvgStats:    avg,
		})
	}

	sort.SliceStable(aggregates, func(i, j int) bool {
		if aggregates[i].AvgPoints() != aggregates[j].AvgPoints() {
			return aggregates[i].AvgPoints() > aggregates[j].AvgPoints()
		}
		return aggregates[i].TeamName < aggregates[j].TeamName
	})

	return aggregates
}

// HeadToHead compares two teams' overall season averages side by side.
// Comparing a team with itself is a user-input error, as is naming a team
// absent from the aggregate table.
func (s *TeamService) HeadToHead(team1, team2 string) (*models.HeadToHeadComparison, error) {
	team1 = strings.TrimSpace(team1)
	team2 = strings.TrimSpace(team2)
	if team1 == "" || team2 == "" {
		return nil, fmt.Errorf("%w: both team names are required", models.ErrUnknownTeam)
	}
	if strings.EqualFold(team1, team2) {
		return nil, fmt.Errorf("%w: %s", models.ErrIdenticalTeams, team1)
	}

	aggregates, err := s.GetSeasonAggregates(false)
	if err != nil {
		return nil, err
	}

	stats1, err := findTeam(aggregates, team1)
	if err != nil {
		return nil, err
	}
	stats2, err := findTeam(aggregates, team2)
	if err != nil {
		return nil, err
	}

	return &models.HeadToHeadComparison{
		Team1: team1,
		Team2: team2,
		Rows:  alignStatVectors(stats1, stats2),
	}, nil
}

func findTeam(aggregates []models.TeamSeasonAggregate, name string) (map[string]float64, error) {
	for _, a := range aggregates {
		if strings.EqualFold(a.TeamName, name) {
			return a.AvgStats, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", models.ErrUnknownTeam, name)
}

// alignStatVectors pairs two stat maps on the union of field names. A field
// missing from one side reports 0 rather than dropping the pair, so the two
// vectors always chart against the same axis.
func alignStatVectors(stats1, stats2 map[string]float64) []models.HeadToHeadRow {
	seen := make(map[string]bool, len(models.StatFields))
	fields := make([]string, 0, len(models.StatFields))

	for _, name := range models.StatFields {
		if _, ok1 := stats1[name]; ok1 {
			seen[name] = true
			fields = append(fields, name)
			continue
		}
		if _, ok2 := stats2[name]; ok2 {
			seen[name] = true
			fields = append(fields, name)
		}
	}

	var extra []string
	for name := range stats1 {
		if !seen[name] {
			seen[name] = true
			extra = append(extra, name)
		}
	}
	for name := range stats2 {
		if !seen[name] {
			seen[name] = true
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	fields = append(fields, extra...)

	rows := make([]models.HeadToHeadRow, 0, len(fields))
	for _, name := range fields {
		rows = append(rows, models.HeadToHeadRow{
			Field: name,
			Team1: stats1[name],
			Team2: stats2[name],
		})
	}
	return rows
}
