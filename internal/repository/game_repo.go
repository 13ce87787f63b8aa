package repository

import (
	"database/sql"
	"fmt"

	"mathgames/internal/database"
	"mathgames/internal/models"
)

// GameRepository handles database operations for the game catalog
type GameRepository struct {
	db database.DBTX
}

// NewGameRepository creates a new game repository
func NewGameRepository(db database.DBTX) *GameRepository {
	return &GameRepository{db: db}
}

const gameColumns = `id, title, description, icon, color, difficulty, players, category, is_active, created_at, updated_at`

// ListActive returns the active games ordered by player count descending
func (r *GameRepository) ListActive() ([]models.Game, error) {
	query := `
		SELECT ` + gameColumns + `
		FROM games
		WHERE is_active = ?
		ORDER BY players DESC
	`

	rows, err := r.db.Query(query, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	defer rows.Close()

	games := []models.Game{}
	for rows.Next() {
		game, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		games = append(games, *game)
	}
	return games, rows.Err()
}

// GetByID retrieves a game by ID, returning sql.ErrNoRows if it does not exist
func (r *GameRepository) GetByID(id int64) (*models.Game, error) {
	query := `
		SELECT ` + gameColumns + `
		FROM games
		WHERE id = ?
	`
	return scanGame(r.db.QueryRow(query, id))
}

// Create inserts a new game into the catalog
func (r *GameRepository) Create(game *models.Game) (*models.Game, error) {
	query := `
		INSERT INTO games (title, description, icon, color, difficulty, players, category, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	id, err := r.db.ExecReturningID(query,
		game.Title, game.Description, game.Icon, game.Color,
		game.Difficulty, game.Players, game.Category, game.IsActive)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return r.GetByID(id)
}

// Update overwrites the mutable fields of a game
func (r *GameRepository) Update(game *models.Game) (*models.Game, error) {
	query := `
		UPDATE games
		SET title = ?, description = ?, icon = ?, color = ?, difficulty = ?,
		    players = ?, category = ?, is_active = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`

	if _, err := r.db.Exec(query,
		game.Title, game.Description, game.Icon, game.Color, game.Difficulty,
		game.Players, game.Category, game.IsActive, game.ID); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return r.GetByID(game.ID)
}

// SoftDelete deactivates a game instead of removing the row
func (r *GameRepository) SoftDelete(id int64) error {
	query := "UPDATE games SET is_active = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?"
	result, err := r.db.Exec(query, false, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate game: %w", err)
	}
	return requireRowAffected(result)
}

// IncrementPlayers bumps the players counter for a game
func (r *GameRepository) IncrementPlayers(id int64) error {
	query := "UPDATE games SET players = players + 1, updated_at = CURRENT_TIMESTAMP WHERE id = ?"
	result, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to increment players: %w", err)
	}
	return requireRowAffected(result)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanGame(row rowScanner) (*models.Game, error) {
	game := &models.Game{}
	var category sql.NullString

	err := row.Scan(
		&game.ID,
		&game.Title,
		&game.Description,
		&game.Icon,
		&game.Color,
		&game.Difficulty,
		&game.Players,
		&category,
		&game.IsActive,
		&game.CreatedAt,
		&game.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	game.Category = category.String
	return game, nil
}

// requireRowAffected maps a zero-row UPDATE to sql.ErrNoRows so callers
// can distinguish a missing record from a storage failure
func requireRowAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
