package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Dodga010/KP/internal/models"
	"github.com/Dodga010/KP/internal/service"
	"github.com/Dodga010/KP/pkg/response"
)

// TeamHandler handles HTTP requests for team aggregates
type TeamHandler struct {
	teamService *service.TeamService
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService *service.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// GetAggregates handles GET /api/v1/teams/aggregates
// ?split=home_away groups by (team, home/away) instead of by team alone.
func (h *TeamHandler) GetAggregates(c *gin.Context) {
	splitHomeAway := c.Query("split") == "home_away"

	aggregates, err := h.teamService.GetSeasonAggregates(splitHomeAway)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, aggregates)
}

// GetHeadToHead handles GET /api/v1/teams/head-to-head
func (h *TeamHandler) GetHeadToHead(c *gin.Context) {
	var filter models.HeadToHeadFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	comparison, err := h.teamService.HeadToHead(filter.Team1, filter.Team2)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrIdenticalTeams):
			response.BadRequest(c, err.Error())
		case errors.Is(err, models.ErrUnknownTeam):
			response.NotFound(c, err.Error())
		default:
			response.InternalError(c, err.Error())
		}
		return
	}

	response.Success(c, comparison)
}
