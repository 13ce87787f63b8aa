package service

import (
	"database/sql"
	"errors"

	"mathgames/internal/models"
	"mathgames/internal/repository"
)

// GameUpdate carries the optional fields of a catalog update; nil
// fields are left unchanged.
type GameUpdate struct {
	Title       *string
	Description *string
	Icon        *string
	Color       *string
	Difficulty  *string
	Category    *string
	IsActive    *bool
}

// GameService handles game catalog operations. The catalog is plain
// CRUD over the games table; no aggregation state lives here.
type GameService struct {
	repo *repository.GameRepository
}

// NewGameService creates a new game service
func NewGameService(repo *repository.GameRepository) *GameService {
	return &GameService{repo: repo}
}

// ListGames returns the active catalog, most-played first
func (s *GameService) ListGames() ([]models.Game, error) {
	return s.repo.ListActive()
}

// GetGame retrieves one game by ID
func (s *GameService) GetGame(id int64) (*models.Game, error) {
	game, err := s.repo.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return game, err
}

// CreateGame validates and inserts a new catalog entry
func (s *GameService) CreateGame(game *models.Game) (*models.Game, error) {
	var missing []string
	if game.Title == "" {
		missing = append(missing, "title")
	}
	if game.Description == "" {
		missing = append(missing, "description")
	}
	if game.Difficulty == "" {
		missing = append(missing, "difficulty")
	}
	if len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}

	if !models.IsValidDifficulty(game.Difficulty) {
		return nil, &InvalidDifficultyError{Difficulty: game.Difficulty, Valid: models.ValidDifficulties}
	}
	if game.Category != "" && !models.IsValidCategory(game.Category) {
		return nil, &InvalidCategoryError{Category: game.Category, Valid: models.ValidCategories}
	}

	game.IsActive = true
	return s.repo.Create(game)
}

// UpdateGame applies the non-nil fields of update to an existing game
func (s *GameService) UpdateGame(id int64, update GameUpdate) (*models.Game, error) {
	game, err := s.GetGame(id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		game.Title = *update.Title
	}
	if update.Description != nil {
		game.Description = *update.Description
	}
	if update.Icon != nil {
		game.Icon = *update.Icon
	}
	if update.Color != nil {
		game.Color = *update.Color
	}
	if update.Difficulty != nil {
		if !models.IsValidDifficulty(*update.Difficulty) {
			return nil, &InvalidDifficultyError{Difficulty: *update.Difficulty, Valid: models.ValidDifficulties}
		}
		game.Difficulty = *update.Difficulty
	}
	if update.Category != nil {
		if *update.Category != "" && !models.IsValidCategory(*update.Category) {
			return nil, &InvalidCategoryError{Category: *update.Category, Valid: models.ValidCategories}
		}
		game.Category = *update.Category
	}
	if update.IsActive != nil {
		game.IsActive = *update.IsActive
	}

	return s.repo.Update(game)
}

// DeleteGame soft-deletes a game so history referencing it stays intact
func (s *GameService) DeleteGame(id int64) error {
	err := s.repo.SoftDelete(id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// RecordPlay bumps the players counter and returns the updated game
func (s *GameService) RecordPlay(id int64) (*models.Game, error) {
	err := s.repo.IncrementPlayers(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.GetGame(id)
}
