package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Dodga010/KP/internal/service"
	"github.com/Dodga010/KP/pkg/response"
)

// RefereeHandler handles HTTP requests for referee aggregates
type RefereeHandler struct {
	refereeService *service.RefereeService
}

// NewRefereeHandler creates a new referee handler
func NewRefereeHandler(refereeService *service.RefereeService) *RefereeHandler {
	return &RefereeHandler{refereeService: refereeService}
}

// GetAggregates handles GET /api/v1/referees/aggregates
func (h *RefereeHandler) GetAggregates(c *gin.Context) {
	aggregates, err := h.refereeService.GetSeasonAggregates()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, aggregates)
}
