package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"mathgames/internal/config"
	"mathgames/internal/database"
	"mathgames/internal/models"
	"mathgames/internal/repository"
)

// userExport bundles everything recorded for one user
type userExport struct {
	ExportedAt    time.Time              `json:"exportedAt"`
	Stats         *models.UserStats      `json:"stats"`
	Sessions      []models.GameSession   `json:"sessions"`
	DailyProgress []models.DailyProgress `json:"dailyProgress"`
}

func main() {
	userID := flag.String("user", "", "User ID to export (required unless -games)")
	gamesOnly := flag.Bool("games", false, "Export the game catalog instead of user data")
	output := flag.String("output", "", "Output file path (default: export_YYYYMMDD_HHMMSS.json)")
	flag.Parse()

	if *userID == "" && !*gamesOnly {
		fmt.Println("Usage: export -user <userId> [-output file.json]")
		fmt.Println("       export -games [-output file.json]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg := config.Load()

	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	outputPath := *output
	if outputPath == "" {
		outputPath = fmt.Sprintf("export_%s.json", time.Now().Format("20060102_150405"))
	}

	var payload interface{}
	if *gamesOnly {
		payload, err = exportGames(db)
	} else {
		payload, err = exportUser(db, *userID)
	}
	if err != nil {
		log.Fatalf("Export failed: %v", err)
	}

	if err := writeJSON(outputPath, payload); err != nil {
		log.Fatalf("Failed to write export: %v", err)
	}

	log.Printf("Export written to %s", outputPath)
}

func exportGames(db *database.DB) ([]models.Game, error) {
	return repository.NewGameRepository(db).ListActive()
}

func exportUser(db *database.DB, userID string) (*userExport, error) {
	stats, err := repository.NewStatsRepository(db).GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("no stats recorded for user %s: %w", userID, err)
	}

	sessions, err := repository.NewSessionRepository(db).ListByUser(userID, 10000, 0, 0)
	if err != nil {
		return nil, err
	}

	// Everything from day one
	progress, err := repository.NewProgressRepository(db).ListSince(userID, "0000-00-00")
	if err != nil {
		return nil, err
	}

	return &userExport{
		ExportedAt:    time.Now(),
		Stats:         stats,
		Sessions:      sessions,
		DailyProgress: progress,
	}, nil
}

func writeJSON(path string, payload interface{}) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
