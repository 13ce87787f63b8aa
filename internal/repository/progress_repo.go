package repository

import (
	"fmt"

	"mathgames/internal/database"
	"mathgames/internal/models"
)

// ProgressRepository handles database operations for daily progress rollups
type ProgressRepository struct {
	db database.DBTX
}

// NewProgressRepository creates a new progress repository
func NewProgressRepository(db database.DBTX) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// GetByUserAndDate retrieves the rollup for one user and day,
// returning sql.ErrNoRows if no session was recorded that day
func (r *ProgressRepository) GetByUserAndDate(userID, date string) (*models.DailyProgress, error) {
	query := `
		SELECT id, user_id, date, score, games_played
		FROM daily_progress
		WHERE user_id = ? AND date = ?
	`

	p := &models.DailyProgress{}
	err := r.db.QueryRow(query, userID, date).Scan(&p.ID, &p.UserID, &p.Date, &p.Score, &p.GamesPlayed)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Insert creates the first rollup row for a (user, date) pair
func (r *ProgressRepository) Insert(p *models.DailyProgress) error {
	query := `
		INSERT INTO daily_progress (user_id, date, score, games_played)
		VALUES (?, ?, ?, ?)
	`

	id, err := r.db.ExecReturningID(query, p.UserID, p.Date, p.Score, p.GamesPlayed)
	if err != nil {
		return fmt.Errorf("failed to insert daily progress: %w", err)
	}
	p.ID = id
	return nil
}

// Update overwrites the accumulated score and play count for a rollup row
func (r *ProgressRepository) Update(p *models.DailyProgress) error {
	query := `
		UPDATE daily_progress
		SET score = ?, games_played = ?
		WHERE id = ?
	`

	result, err := r.db.Exec(query, p.Score, p.GamesPlayed, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update daily progress: %w", err)
	}
	return requireRowAffected(result)
}

// ListSince returns a user's rollups from the given date onward, oldest first
func (r *ProgressRepository) ListSince(userID, fromDate string) ([]models.DailyProgress, error) {
	query := `
		SELECT id, user_id, date, score, games_played
		FROM daily_progress
		WHERE user_id = ? AND date >= ?
		ORDER BY date ASC
	`

	rows, err := r.db.Query(query, userID, fromDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily progress: %w", err)
	}
	defer rows.Close()

	progress := []models.DailyProgress{}
	for rows.Next() {
		p := models.DailyProgress{}
		if err := rows.Scan(&p.ID, &p.UserID, &p.Date, &p.Score, &p.GamesPlayed); err != nil {
			return nil, err
		}
		progress = append(progress, p)
	}
	return progress, rows.Err()
}

// DeleteByUser removes all rollups for a user
func (r *ProgressRepository) DeleteByUser(userID string) error {
	_, err := r.db.Exec("DELETE FROM daily_progress WHERE user_id = ?", userID)
	if err != nil {
		return fmt.Errorf("failed to delete daily progress for user %s: %w", userID, err)
	}
	return nil
}
