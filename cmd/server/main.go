package main

import (
	"log"

	"github.com/Dodga010/KP/internal/api"
	"github.com/Dodga010/KP/internal/config"
	"github.com/Dodga010/KP/internal/database"
	"github.com/Dodga010/KP/internal/handler"
	"github.com/Dodga010/KP/internal/repository"
	"github.com/Dodga010/KP/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.Open(database.Config{Path: cfg.DBPath})
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	shotRepo := repository.NewShotRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	refereeRepo := repository.NewRefereeRepository(db)

	shotService := service.NewShotService(shotRepo, cfg.Frame(), service.DensityOptions{
		GridW:     cfg.Density.GridW,
		GridH:     cfg.Density.GridH,
		Bandwidth: cfg.Density.Bandwidth,
	})
	teamService := service.NewTeamService(teamRepo)
	refereeService := service.NewRefereeService(refereeRepo)

	router := api.SetupRouter(cfg, api.Handlers{
		Shots:    handler.NewShotHandler(shotService),
		Teams:    handler.NewTeamHandler(teamService),
		Referees: handler.NewRefereeHandler(refereeService),
	})

	log.Printf("Server starting on %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
