package models

import "errors"

// Sentinel errors shared across repositories, services and handlers.
// Handlers map these to HTTP statuses with errors.Is.
var (
	// ErrConfiguration marks an invalid or missing court frame / scale setup.
	// Fatal for the request; never retried.
	ErrConfiguration = errors.New("invalid analytics configuration")

	// ErrEmptyResult marks a query that matched no rows. Callers render a
	// "no data" state instead of failing.
	ErrEmptyResult = errors.New("no rows for the requested entity")

	// ErrUnknownTeam marks a head-to-head request naming a team that is not
	// present in the aggregate table. User input error, not a system fault.
	ErrUnknownTeam = errors.New("unknown team")

	// ErrIdenticalTeams marks a head-to-head request comparing a team with
	// itself.
	ErrIdenticalTeams = errors.New("head-to-head teams must differ")

	// ErrInsufficientDensityData signals that a density surface could not be
	// estimated (fewer than two distinct points, or zero variance along an
	// axis). The shot profile itself is still valid.
	ErrInsufficientDensityData = errors.New("not enough spread in shot locations for a density surface")
)
