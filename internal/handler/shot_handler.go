package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Dodga010/KP/internal/models"
	"github.com/Dodga010/KP/internal/service"
	"github.com/Dodga010/KP/pkg/response"
)

// ShotHandler handles HTTP requests for shot analytics
type ShotHandler struct {
	shotService *service.ShotService
}

// NewShotHandler creates a new shot handler
func NewShotHandler(shotService *service.ShotService) *ShotHandler {
	return &ShotHandler{shotService: shotService}
}

// GetPlayers handles GET /api/v1/players
func (h *ShotHandler) GetPlayers(c *gin.Context) {
	players, err := h.shotService.GetPlayers()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, players)
}

// GetShotChart handles GET /api/v1/players/:name/shots
func (h *ShotHandler) GetShotChart(c *gin.Context) {
	playerName := c.Param("name")

	shots, err := h.shotService.GetNormalizedShots(playerName)
	if err != nil {
		respondShotError(c, err)
		return
	}

	response.Success(c, models.ShotChartResponse{
		PlayerName: playerName,
		Shots:      shots,
		Count:      len(shots),
	})
}

// GetProfile handles GET /api/v1/players/:name/profile
func (h *ShotHandler) GetProfile(c *gin.Context) {
	playerName := c.Param("name")

	profile, err := h.shotService.GetProfile(playerName)
	if err != nil {
		respondShotError(c, err)
		return
	}

	response.Success(c, profile)
}

// GetHeatmap handles GET /api/v1/players/:name/heatmap
func (h *ShotHandler) GetHeatmap(c *gin.Context) {
	playerName := c.Param("name")

	var filter models.HeatmapFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	heatmap, err := h.shotService.GetHeatmap(playerName, filter)
	if err != nil {
		respondShotError(c, err)
		return
	}

	response.Success(c, heatmap)
}

func respondShotError(c *gin.Context, err error) {
	if errors.Is(err, models.ErrEmptyResult) {
		response.NotFound(c, err.Error())
		return
	}
	response.InternalError(c, err.Error())
}
