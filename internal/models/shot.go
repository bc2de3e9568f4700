package models

import (
	"fmt"
	"strings"
)

// Outcome is the two-valued result of a shot attempt. Raw sources encode it
// as "made"/"missed", 0/1 or a boolean depending on export revision; it is
// normalized here at the ingestion boundary and nothing downstream ever sees
// the raw encoding.
type Outcome int

const (
	OutcomeMissed Outcome = iota
	OutcomeMade
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	if o == OutcomeMade {
		return "made"
	}
	return "missed"
}

// MarshalJSON encodes the outcome as its canonical string form.
func (o Outcome) MarshalJSON() ([]byte, error) {
	return []byte(`"` + o.String() + `"`), nil
}

// ParseOutcome normalizes the encodings seen across data exports.
func ParseOutcome(raw string) (Outcome, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "made", "make", "1", "true", "t":
		return OutcomeMade, nil
	case "missed", "miss", "0", "false", "f":
		return OutcomeMissed, nil
	}
	return OutcomeMissed, fmt.Errorf("unrecognized shot result %q", raw)
}

// Zone is a named scoring region of the court.
type Zone string

const (
	ZonePaint    Zone = "paint"
	ZoneMidRange Zone = "mid_range"
	ZoneBeyond   Zone = "beyond"
)

// ActionType3PT is the action tag marking a three-point attempt.
const ActionType3PT = "3pt"

// ShotEvent is one raw attempt as stored in the Shots table. Coordinates are
// in the source's units; they carry no assumption about scale or orientation.
type ShotEvent struct {
	PlayerName string  `json:"playerName" db:"player_name"`
	X          float64 `json:"x" db:"x_coord"`
	Y          float64 `json:"y" db:"y_coord"`
	Outcome    Outcome `json:"outcome" db:"shot_result"`
	ActionType string  `json:"actionType,omitempty" db:"action_type"`
}

// NormalizedShot is a ShotEvent mapped into the canonical court frame and
// tagged with its scoring zone. Coordinates may fall outside the frame;
// heaves past the visualized extent are legitimate data.
type NormalizedShot struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Outcome    Outcome `json:"outcome"`
	Zone       Zone    `json:"zone"`
	ActionType string  `json:"actionType,omitempty"`
}

// ZoneBreakdown is the attempts/makes/percentage triple for one zone or
// action-type subset.
type ZoneBreakdown struct {
	Attempts int     `json:"attempts"`
	Made     int     `json:"made"`
	Pct      float64 `json:"pct"`
}

// CourtLocation is a point in the canonical frame.
type CourtLocation struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PlayerShotProfile aggregates one player's normalized shots.
type PlayerShotProfile struct {
	PlayerName   string                 `json:"playerName"`
	Attempts     int                    `json:"attempts"`
	Made         int                    `json:"made"`
	FGPct        float64                `json:"fgPct"`
	Zones        map[Zone]ZoneBreakdown `json:"zones"`
	ThreePoint   ZoneBreakdown          `json:"threePoint"`
	ModeLocation *CourtLocation         `json:"modeLocation,omitempty"`
}

// ShotChartResponse carries normalized shots for marker rendering.
type ShotChartResponse struct {
	PlayerName string           `json:"playerName"`
	Shots      []NormalizedShot `json:"shots"`
	Count      int              `json:"count"`
}
