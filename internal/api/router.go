package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Dodga010/KP/internal/config"
	"github.com/Dodga010/KP/internal/handler"
	"github.com/Dodga010/KP/internal/middleware"
)

// Handlers bundles the route handlers the router mounts.
type Handlers struct {
	Shots    *handler.ShotHandler
	Teams    *handler.TeamHandler
	Referees *handler.RefereeHandler
}

// SetupRouter builds the Gin engine and mounts all routes.
func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS for the dashboard frontend
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "KP analytics API is running",
		})
	})

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(cfg.RateLimit, time.Minute))
	if cfg.JWTSecret != "" {
		api.Use(middleware.Auth(cfg.JWTSecret))
	}
	{
		players := api.Group("/players")
		{
			players.GET("", h.Shots.GetPlayers)
			players.GET("/:name/shots", h.Shots.GetShotChart)
			players.GET("/:name/profile", h.Shots.GetProfile)
			players.GET("/:name/heatmap", h.Shots.GetHeatmap)
		}

		teams := api.Group("/teams")
		{
			teams.GET("/aggregates", h.Teams.GetAggregates)
			teams.GET("/head-to-head", h.Teams.GetHeadToHead)
		}

		referees := api.Group("/referees")
		{
			referees.GET("/aggregates", h.Referees.GetAggregates)
		}
	}

	return r
}
