package service

import (
	"errors"
	"fmt"

	"github.com/Dodga010/KP/internal/court"
	"github.com/Dodga010/KP/internal/models"
	"github.com/Dodga010/KP/internal/stats"
)

// ShotSource provides raw shot events from the data store.
type ShotSource interface {
	GetShotsByPlayer(playerName string) ([]models.ShotEvent, error)
	GetPlayers() ([]string, error)
}

// DensityOptions are the default heatmap sampling settings; request filters
// may override any of them per call.
type DensityOptions struct {
	GridW     int
	GridH     int
	Bandwidth float64
}

// ShotService builds shot charts, shooting profiles and density surfaces for
// a player. Each request reads its own snapshot of rows and computes from
// that; the service itself holds no mutable state.
type ShotService struct {
	shots ShotSource
	frame court.Frame
	opts  DensityOptions
}

// NewShotService creates a new shot service
func NewShotService(shots ShotSource, frame court.Frame, opts DensityOptions) *ShotService {
	return &ShotService{shots: shots, frame: frame, opts: opts}
}

// GetPlayers lists players with recorded shots.
func (s *ShotService) GetPlayers() ([]string, error) {
	return s.shots.GetPlayers()
}

// GetNormalizedShots fetches one player's shots mapped into the court frame
// and tagged with zones, preserving the source row order.
func (s *ShotService) GetNormalizedShots(playerName string) ([]models.NormalizedShot, error) {
	if err := s.frame.Validate(); err != nil {
		return nil, err
	}

	events, err := s.shots.GetShotsByPlayer(playerName)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, fmt.Errorf("%w: no shots for player %s", models.ErrEmptyResult, playerName)
	}

	shots := make([]models.NormalizedShot, len(events))
	for i, ev := range events {
		shots[i] = s.frame.NormalizeShot(ev)
	}
	return shots, nil
}

// GetProfile computes the shooting profile for one player.
func (s *ShotService) GetProfile(playerName string) (*models.PlayerShotProfile, error) {
	shots, err := s.GetNormalizedShots(playerName)
	if err != nil {
		return nil, err
	}
	return BuildProfile(playerName, shots), nil
}

// BuildProfile aggregates normalized shots into a profile. Every output is
// order-independent except the mode-location tie-break, which deliberately
// favors the pair seen first in the input order.
func BuildProfile(playerName string, shots []models.NormalizedShot) *models.PlayerShotProfile {
	profile := &models.PlayerShotProfile{
		PlayerName: playerName,
		Zones: map[models.Zone]models.ZoneBreakdown{
			models.ZonePaint:    {},
			models.ZoneMidRange: {},
			models.ZoneBeyond:   {},
		},
	}

	type loc struct{ x, y float64 }
	counts := make(map[loc]int, len(shots))

	for _, shot := range shots {
		profile.Attempts++
		made := shot.Outcome == models.OutcomeMade
		if made {
			profile.Made++
		}

		zb := profile.Zones[shot.Zone]
		zb.Attempts++
		if made {
			zb.Made++
		}
		profile.Zones[shot.Zone] = zb

		if shot.ActionType == models.ActionType3PT {
			profile.ThreePoint.Attempts++
			if made {
				profile.ThreePoint.Made++
			}
		}

		counts[loc{shot.X, shot.Y}]++
	}

	profile.FGPct = stats.Ratio(profile.Made, profile.Attempts)
	for zone, zb := range profile.Zones {
		zb.Pct = stats.Ratio(zb.Made, zb.Attempts)
		profile.Zones[zone] = zb
	}
	profile.ThreePoint.Pct = stats.Ratio(profile.ThreePoint.Made, profile.ThreePoint.Attempts)

	// Mode location: second pass in input order, so among tied pairs the
	// first-encountered one wins regardless of map iteration order.
	best := 0
	for k := range counts {
		if counts[k] > best {
			best = counts[k]
		}
	}
	for _, shot := range shots {
		if counts[loc{shot.X, shot.Y}] == best {
			profile.ModeLocation = &models.CourtLocation{X: shot.X, Y: shot.Y}
			break
		}
	}

	return profile
}

// EstimateDensity builds the sampled density surface over the court frame.
// Returns ErrInsufficientDensityData when the shot set has no usable spread;
// the caller still has the shots for marker rendering.
func (s *ShotService) EstimateDensity(shots []models.NormalizedShot, filter models.HeatmapFilter) (*models.DensityGrid, error) {
	xs := make([]float64, len(shots))
	ys := make([]float64, len(shots))
	for i, shot := range shots {
		xs[i] = shot.X
		ys[i] = shot.Y
	}

	bandwidth := s.opts.Bandwidth
	if filter.Bandwidth > 0 {
		bandwidth = filter.Bandwidth
	}

	kde, err := stats.NewKDE2D(xs, ys, bandwidth)
	if err != nil {
		if errors.Is(err, stats.ErrDegenerateSample) {
			return nil, fmt.Errorf("%w: %v", models.ErrInsufficientDensityData, err)
		}
		return nil, fmt.Errorf("failed to build density estimator: %w", err)
	}

	gridW := s.opts.GridW
	if filter.GridW > 0 {
		gridW = filter.GridW
	}
	gridH := s.opts.GridH
	if filter.GridH > 0 {
		gridH = filter.GridH
	}

	// Sample only inside the frame; mass outside is clipped, never
	// renormalized.
	gx, gy, values := kde.Grid(0, s.frame.Width, 0, s.frame.Height, gridW, gridH)

	var maxValue float64
	for _, row := range values {
		if m := stats.Max(row); m > maxValue {
			maxValue = m
		}
	}

	return &models.DensityGrid{
		X:         gx,
		Y:         gy,
		Values:    values,
		Bandwidth: kde.Bandwidth(),
		MaxValue:  maxValue,
	}, nil
}

// GetHeatmap assembles the heatmap payload: markers always, density when the
// sample supports it.
func (s *ShotService) GetHeatmap(playerName string, filter models.HeatmapFilter) (*models.HeatmapResponse, error) {
	shots, err := s.GetNormalizedShots(playerName)
	if err != nil {
		return nil, err
	}

	resp := &models.HeatmapResponse{
		PlayerName: playerName,
		Shots:      shots,
	}

	density, err := s.EstimateDensity(shots, filter)
	if err != nil {
		if errors.Is(err, models.ErrInsufficientDensityData) {
			resp.NoDensity = true
			return resp, nil
		}
		return nil, err
	}
	resp.Density = density

	return resp, nil
}
