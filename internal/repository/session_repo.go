package repository

import (
	"fmt"
	"time"

	"mathgames/internal/database"
	"mathgames/internal/models"
)

// SessionRepository handles database operations for game sessions.
// Sessions are append-only; nothing but a full user reset removes them.
type SessionRepository struct {
	db database.DBTX
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db database.DBTX) *SessionRepository {
	return &SessionRepository{db: db}
}

// Insert appends a new game session and fills in its ID and timestamp
func (r *SessionRepository) Insert(session *models.GameSession) error {
	query := `
		INSERT INTO game_sessions (user_id, game_id, game_name, category, score,
			time_played, level, correct_answers, wrong_answers, accuracy)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	id, err := r.db.ExecReturningID(query,
		session.UserID, session.GameID, session.GameName, session.Category,
		session.Score, session.TimePlayed, session.Level,
		session.CorrectAnswers, session.WrongAnswers, session.Accuracy)
	if err != nil {
		return fmt.Errorf("failed to insert game session: %w", err)
	}

	session.ID = id
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}
	return nil
}

// ListByUser returns one page of a user's sessions, newest first.
// A non-zero gameID restricts the page to that game.
func (r *SessionRepository) ListByUser(userID string, limit, offset int, gameID int64) ([]models.GameSession, error) {
	query := `
		SELECT id, user_id, game_id, game_name, category, score, time_played,
		       level, correct_answers, wrong_answers, accuracy, created_at
		FROM game_sessions
		WHERE user_id = ?
	`
	args := []interface{}{userID}

	if gameID != 0 {
		query += ` AND game_id = ?`
		args = append(args, gameID)
	}

	query += `
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`
	args = append(args, limit, offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	sessions := []models.GameSession{}
	for rows.Next() {
		s := models.GameSession{}
		err := rows.Scan(
			&s.ID, &s.UserID, &s.GameID, &s.GameName, &s.Category, &s.Score,
			&s.TimePlayed, &s.Level, &s.CorrectAnswers, &s.WrongAnswers,
			&s.Accuracy, &s.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// CountByUser returns the number of sessions a user has, optionally per game
func (r *SessionRepository) CountByUser(userID string, gameID int64) (int, error) {
	query := "SELECT COUNT(*) FROM game_sessions WHERE user_id = ?"
	args := []interface{}{userID}

	if gameID != 0 {
		query += ` AND game_id = ?`
		args = append(args, gameID)
	}

	var count int
	if err := r.db.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}
	return count, nil
}

// DeleteByUser removes all sessions for a user
func (r *SessionRepository) DeleteByUser(userID string) error {
	_, err := r.db.Exec("DELETE FROM game_sessions WHERE user_id = ?", userID)
	if err != nil {
		return fmt.Errorf("failed to delete sessions for user %s: %w", userID, err)
	}
	return nil
}
