package repository

import (
	"encoding/json"
	"fmt"
	"strings"

	"mathgames/internal/database"
	"mathgames/internal/models"
)

// StatsRepository handles database operations for user statistics.
// The per-category maps and the achievement list are stored as JSON
// columns; they are (un)marshaled into typed fields here so the rest
// of the code never sees raw JSON.
type StatsRepository struct {
	db database.DBTX
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db database.DBTX) *StatsRepository {
	return &StatsRepository{db: db}
}

const statsColumns = `user_id, total_games, total_score, total_time, current_streak,
		best_streak, last_played_date, games_per_category, scores_per_category, achievements`

// GetByUserID retrieves the stats row for a user, returning sql.ErrNoRows if absent
func (r *StatsRepository) GetByUserID(userID string) (*models.UserStats, error) {
	query := `
		SELECT ` + statsColumns + `
		FROM user_stats
		WHERE user_id = ?
	`

	stats := &models.UserStats{}
	var gamesJSON, scoresJSON, achievementsJSON string

	err := r.db.QueryRow(query, userID).Scan(
		&stats.UserID,
		&stats.TotalGames,
		&stats.TotalScore,
		&stats.TotalTime,
		&stats.CurrentStreak,
		&stats.BestStreak,
		&stats.LastPlayedDate,
		&gamesJSON,
		&scoresJSON,
		&achievementsJSON,
	)
	if err != nil {
		return nil, err
	}

	if err := unmarshalStatsFields(stats, gamesJSON, scoresJSON, achievementsJSON); err != nil {
		return nil, fmt.Errorf("corrupt stats row for user %s: %w", userID, err)
	}
	return stats, nil
}

// Create inserts a zeroed stats row for a user who has never played
func (r *StatsRepository) Create(userID string) (*models.UserStats, error) {
	query := `
		INSERT INTO user_stats (user_id, total_games, total_score, total_time,
			current_streak, best_streak, last_played_date,
			games_per_category, scores_per_category, achievements)
		VALUES (?, 0, 0, 0, 0, 0, '', '{}', '{}', '[]')
	`

	if _, err := r.db.Exec(query, userID); err != nil {
		return nil, fmt.Errorf("failed to create stats for user %s: %w", userID, err)
	}

	return models.NewUserStats(userID), nil
}

// Update persists the full stats row for a user
func (r *StatsRepository) Update(stats *models.UserStats) error {
	gamesJSON, scoresJSON, achievementsJSON, err := marshalStatsFields(stats)
	if err != nil {
		return fmt.Errorf("failed to encode stats for user %s: %w", stats.UserID, err)
	}

	query := `
		UPDATE user_stats
		SET total_games = ?, total_score = ?, total_time = ?,
		    current_streak = ?, best_streak = ?, last_played_date = ?,
		    games_per_category = ?, scores_per_category = ?, achievements = ?,
		    updated_at = CURRENT_TIMESTAMP
		WHERE user_id = ?
	`

	result, err := r.db.Exec(query,
		stats.TotalGames, stats.TotalScore, stats.TotalTime,
		stats.CurrentStreak, stats.BestStreak, stats.LastPlayedDate,
		gamesJSON, scoresJSON, achievementsJSON,
		stats.UserID)
	if err != nil {
		return fmt.Errorf("failed to update stats for user %s: %w", stats.UserID, err)
	}
	return requireRowAffected(result)
}

// ListTop returns up to limit stats rows ordered by total score descending.
// When category is non-empty, only users with at least one game recorded
// in that category are included (matched against the JSON column).
func (r *StatsRepository) ListTop(limit int, category string) ([]models.UserStats, error) {
	query := `
		SELECT ` + statsColumns + `
		FROM user_stats
	`
	args := []interface{}{}

	if category != "" {
		query += ` WHERE games_per_category LIKE ?`
		args = append(args, `%"`+category+`"%`)
	}

	query += `
		ORDER BY total_score DESC
		LIMIT ?
	`
	args = append(args, limit)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	entries := []models.UserStats{}
	for rows.Next() {
		stats := models.UserStats{}
		var gamesJSON, scoresJSON, achievementsJSON string

		err := rows.Scan(
			&stats.UserID,
			&stats.TotalGames,
			&stats.TotalScore,
			&stats.TotalTime,
			&stats.CurrentStreak,
			&stats.BestStreak,
			&stats.LastPlayedDate,
			&gamesJSON,
			&scoresJSON,
			&achievementsJSON,
		)
		if err != nil {
			return nil, err
		}

		if err := unmarshalStatsFields(&stats, gamesJSON, scoresJSON, achievementsJSON); err != nil {
			return nil, fmt.Errorf("corrupt stats row for user %s: %w", stats.UserID, err)
		}
		entries = append(entries, stats)
	}
	return entries, rows.Err()
}

// DeleteByUser removes the stats row for a user
func (r *StatsRepository) DeleteByUser(userID string) error {
	_, err := r.db.Exec("DELETE FROM user_stats WHERE user_id = ?", userID)
	if err != nil {
		return fmt.Errorf("failed to delete stats for user %s: %w", userID, err)
	}
	return nil
}

func marshalStatsFields(stats *models.UserStats) (string, string, string, error) {
	gamesJSON, err := json.Marshal(stats.GamesPerCategory)
	if err != nil {
		return "", "", "", err
	}
	scoresJSON, err := json.Marshal(stats.ScoresPerCategory)
	if err != nil {
		return "", "", "", err
	}
	achievementsJSON, err := json.Marshal(stats.Achievements)
	if err != nil {
		return "", "", "", err
	}
	return string(gamesJSON), string(scoresJSON), string(achievementsJSON), nil
}

func unmarshalStatsFields(stats *models.UserStats, gamesJSON, scoresJSON, achievementsJSON string) error {
	stats.GamesPerCategory = make(map[string]int)
	stats.ScoresPerCategory = make(map[string]int)
	stats.Achievements = []models.Achievement{}

	if s := strings.TrimSpace(gamesJSON); s != "" {
		if err := json.Unmarshal([]byte(s), &stats.GamesPerCategory); err != nil {
			return fmt.Errorf("games_per_category: %w", err)
		}
	}
	if s := strings.TrimSpace(scoresJSON); s != "" {
		if err := json.Unmarshal([]byte(s), &stats.ScoresPerCategory); err != nil {
			return fmt.Errorf("scores_per_category: %w", err)
		}
	}
	if s := strings.TrimSpace(achievementsJSON); s != "" {
		if err := json.Unmarshal([]byte(s), &stats.Achievements); err != nil {
			return fmt.Errorf("achievements: %w", err)
		}
	}
	return nil
}
