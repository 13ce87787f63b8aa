package service

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"math"
	"sort"
	"sync"
	"time"

	"mathgames/internal/database"
	"mathgames/internal/leaderboard"
	"mathgames/internal/models"
	"mathgames/internal/repository"
)

// SessionInput is one session-save request. Score is a pointer so a
// missing score can be told apart from an explicit zero; the optional
// fields default to 0 (level to 1) when left out.
type SessionInput struct {
	UserID         string
	GameID         int64
	GameName       string
	Category       string
	Score          *int
	TimePlayed     int
	Level          int
	CorrectAnswers int
	WrongAnswers   int
}

// RecordResult is everything produced by one session save
type RecordResult struct {
	Session         *models.GameSession
	Stats           *models.UserStats
	NewAchievements []models.Achievement
}

// UserStatsView is the full stats snapshot served to clients
type UserStatsView struct {
	models.UserStats
	AverageScore  int                    `json:"averageScore"`
	DailyProgress []models.DailyProgress `json:"dailyProgress"`
	StrongAreas   []string               `json:"strongAreas"`
	WeakAreas     []string               `json:"weakAreas"`
}

// HistoryPage is one page of a user's session history
type HistoryPage struct {
	Sessions []models.GameSession
	Total    int
	Page     int
	Limit    int
	Pages    int
}

// LeaderboardEntry is one ranked row of the global leaderboard
type LeaderboardEntry struct {
	Rank         int    `json:"rank"`
	UserID       string `json:"userId"`
	TotalScore   int    `json:"totalScore"`
	TotalGames   int    `json:"totalGames"`
	BestStreak   int    `json:"bestStreak"`
	AverageScore int    `json:"averageScore"`
}

// StatsService owns session aggregation and the read-only stats views.
// Session saves for the same user are serialized through a per-user
// mutex so the read-modify-write over user_stats cannot interleave;
// different users proceed in parallel.
type StatsService struct {
	db    *database.DB
	board *leaderboard.Board
	now   func() time.Time

	mu        sync.Mutex
	userLocks map[string]*sync.Mutex
}

// NewStatsService creates a new stats service. board may be nil, in
// which case the leaderboard is read straight from SQL.
func NewStatsService(db *database.DB, board *leaderboard.Board) *StatsService {
	return &StatsService{
		db:        db,
		board:     board,
		now:       time.Now,
		userLocks: make(map[string]*sync.Mutex),
	}
}

// lockUser returns the mutex serializing writes for one user
func (s *StatsService) lockUser(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.userLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.userLocks[userID] = lock
	}
	return lock
}

// RecordSession validates and persists one play session, updating the
// user's aggregate stats, daily progress, streak, and achievements in a
// single transaction. Either every write lands or none do.
func (s *StatsService) RecordSession(input SessionInput) (*RecordResult, error) {
	if err := validateSessionInput(input); err != nil {
		return nil, err
	}

	now := s.now()
	today := now.Format(dateLayout)

	session := &models.GameSession{
		UserID:         input.UserID,
		GameID:         input.GameID,
		GameName:       input.GameName,
		Category:       input.Category,
		Score:          *input.Score,
		TimePlayed:     input.TimePlayed,
		Level:          input.Level,
		CorrectAnswers: input.CorrectAnswers,
		WrongAnswers:   input.WrongAnswers,
		Accuracy:       computeAccuracy(input.CorrectAnswers, input.WrongAnswers),
		CreatedAt:      now,
	}
	if session.Level == 0 {
		session.Level = 1
	}

	lock := s.lockUser(input.UserID)
	lock.Lock()
	defer lock.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	sessionRepo := repository.NewSessionRepository(tx)
	statsRepo := repository.NewStatsRepository(tx)
	progressRepo := repository.NewProgressRepository(tx)

	if err := sessionRepo.Insert(session); err != nil {
		return nil, err
	}

	stats, err := statsRepo.GetByUserID(input.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		stats, err = statsRepo.Create(input.UserID)
	}
	if err != nil {
		return nil, err
	}

	stats.TotalGames++
	stats.TotalScore += session.Score
	stats.TotalTime += session.TimePlayed
	stats.GamesPerCategory[session.Category]++
	stats.ScoresPerCategory[session.GameName] += session.Score

	if err := upsertDailyProgress(progressRepo, input.UserID, today, session.Score); err != nil {
		return nil, err
	}

	stats.CurrentStreak, stats.BestStreak, stats.LastPlayedDate = nextStreak(
		stats.LastPlayedDate, now, stats.CurrentStreak, stats.BestStreak)

	earned := evaluateAchievements(stats, now)
	stats.Achievements = append(stats.Achievements, earned...)

	if err := statsRepo.Update(stats); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit session save: %w", err)
	}

	// Cache refresh happens outside the transaction; a cache miss is
	// recoverable, a lost session is not.
	if s.board != nil {
		if err := s.board.UpdateScore(stats.UserID, stats.TotalScore); err != nil {
			log.Printf("Warning: failed to update leaderboard cache for %s: %v", stats.UserID, err)
		}
	}

	return &RecordResult{
		Session:         session,
		Stats:           stats,
		NewAchievements: earned,
	}, nil
}

// upsertDailyProgress accumulates score and play count for (user, date)
func upsertDailyProgress(repo *repository.ProgressRepository, userID, date string, score int) error {
	progress, err := repo.GetByUserAndDate(userID, date)
	if errors.Is(err, sql.ErrNoRows) {
		return repo.Insert(&models.DailyProgress{
			UserID:      userID,
			Date:        date,
			Score:       score,
			GamesPlayed: 1,
		})
	}
	if err != nil {
		return err
	}

	progress.Score += score
	progress.GamesPlayed++
	return repo.Update(progress)
}

// GetUserStats returns the full stats view for a user, lazily creating
// an empty stats row on first read.
func (s *StatsService) GetUserStats(userID string) (*UserStatsView, error) {
	if userID == "" {
		return nil, &MissingFieldsError{Fields: []string{"userId"}}
	}

	statsRepo := repository.NewStatsRepository(s.db)

	stats, err := statsRepo.GetByUserID(userID)
	if errors.Is(err, sql.ErrNoRows) {
		lock := s.lockUser(userID)
		lock.Lock()
		stats, err = statsRepo.GetByUserID(userID)
		if errors.Is(err, sql.ErrNoRows) {
			stats, err = statsRepo.Create(userID)
		}
		lock.Unlock()
	}
	if err != nil {
		return nil, err
	}

	fromDate := s.now().AddDate(0, 0, -30).Format(dateLayout)
	progress, err := repository.NewProgressRepository(s.db).ListSince(userID, fromDate)
	if err != nil {
		return nil, err
	}

	strong, weak := splitAreas(stats.ScoresPerCategory)

	return &UserStatsView{
		UserStats:     *stats,
		AverageScore:  averageScore(stats.TotalScore, stats.TotalGames),
		DailyProgress: progress,
		StrongAreas:   strong,
		WeakAreas:     weak,
	}, nil
}

// GetHistory returns one page of a user's sessions, newest first.
// gameID of 0 means no game filter.
func (s *StatsService) GetHistory(userID string, page, limit int, gameID int64) (*HistoryPage, error) {
	if userID == "" {
		return nil, &MissingFieldsError{Fields: []string{"userId"}}
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	sessionRepo := repository.NewSessionRepository(s.db)

	total, err := sessionRepo.CountByUser(userID, gameID)
	if err != nil {
		return nil, err
	}

	sessions, err := sessionRepo.ListByUser(userID, limit, (page-1)*limit, gameID)
	if err != nil {
		return nil, err
	}

	return &HistoryPage{
		Sessions: sessions,
		Total:    total,
		Page:     page,
		Limit:    limit,
		Pages:    (total + limit - 1) / limit,
	}, nil
}

// GetLeaderboard returns the top players by total score. When category
// is set only users who played that category are ranked; that path
// always reads from SQL because the filter lives in the stats rows.
func (s *StatsService) GetLeaderboard(limit int, category string) ([]LeaderboardEntry, error) {
	if limit < 1 || limit > 100 {
		limit = 10
	}

	statsRepo := repository.NewStatsRepository(s.db)

	if s.board != nil && category == "" {
		entries, err := s.leaderboardFromCache(statsRepo, limit)
		if err == nil {
			return entries, nil
		}
		log.Printf("Warning: leaderboard cache read failed, falling back to SQL: %v", err)
	}

	rows, err := statsRepo.ListTop(limit, category)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(rows))
	for i, row := range rows {
		entries = append(entries, leaderboardEntry(i+1, &row))
	}

	if s.board != nil && category == "" {
		s.rebuildCache(statsRepo)
	}

	return entries, nil
}

// leaderboardFromCache ranks users via the Redis sorted set, loading
// the per-user detail rows from SQL
func (s *StatsService) leaderboardFromCache(statsRepo *repository.StatsRepository, limit int) ([]LeaderboardEntry, error) {
	userIDs, err := s.board.Top(limit)
	if err != nil {
		return nil, err
	}
	if len(userIDs) == 0 {
		return nil, fmt.Errorf("leaderboard cache is empty")
	}

	entries := make([]LeaderboardEntry, 0, len(userIDs))
	for _, userID := range userIDs {
		stats, err := statsRepo.GetByUserID(userID)
		if errors.Is(err, sql.ErrNoRows) {
			// Reset user still cached; drop from the board and skip
			if remErr := s.board.Remove(userID); remErr != nil {
				log.Printf("Warning: failed to evict %s from leaderboard cache: %v", userID, remErr)
			}
			continue
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, leaderboardEntry(len(entries)+1, stats))
	}
	return entries, nil
}

// rebuildCache repopulates the Redis board from SQL, best effort
func (s *StatsService) rebuildCache(statsRepo *repository.StatsRepository) {
	rows, err := statsRepo.ListTop(100, "")
	if err != nil {
		log.Printf("Warning: failed to load stats for leaderboard rebuild: %v", err)
		return
	}

	scores := make(map[string]int, len(rows))
	for _, row := range rows {
		scores[row.UserID] = row.TotalScore
	}
	if err := s.board.Rebuild(scores); err != nil {
		log.Printf("Warning: failed to rebuild leaderboard cache: %v", err)
	}
}

// ResetUser irreversibly deletes all stats, sessions, and daily
// progress for a user. Intended for development and testing.
func (s *StatsService) ResetUser(userID string) error {
	if userID == "" {
		return &MissingFieldsError{Fields: []string{"userId"}}
	}

	lock := s.lockUser(userID)
	lock.Lock()
	defer lock.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := repository.NewStatsRepository(tx).DeleteByUser(userID); err != nil {
		return err
	}
	if err := repository.NewSessionRepository(tx).DeleteByUser(userID); err != nil {
		return err
	}
	if err := repository.NewProgressRepository(tx).DeleteByUser(userID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit user reset: %w", err)
	}

	if s.board != nil {
		if err := s.board.Remove(userID); err != nil {
			log.Printf("Warning: failed to remove %s from leaderboard cache: %v", userID, err)
		}
	}
	return nil
}

// validateSessionInput checks required fields and the category enum
// before any write happens
func validateSessionInput(input SessionInput) error {
	var missing []string
	if input.UserID == "" {
		missing = append(missing, "userId")
	}
	if input.GameID == 0 {
		missing = append(missing, "gameId")
	}
	if input.GameName == "" {
		missing = append(missing, "gameName")
	}
	if input.Category == "" {
		missing = append(missing, "category")
	}
	if input.Score == nil {
		missing = append(missing, "score")
	}
	if len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}

	if !models.IsValidCategory(input.Category) {
		return &InvalidCategoryError{Category: input.Category, Valid: models.ValidCategories}
	}
	return nil
}

// computeAccuracy derives the rounded percentage of correct answers,
// 0 when no answers were recorded
func computeAccuracy(correct, wrong int) int {
	total := correct + wrong
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

// leaderboardEntry builds one ranked row from a stats snapshot
func leaderboardEntry(rank int, stats *models.UserStats) LeaderboardEntry {
	return LeaderboardEntry{
		Rank:         rank,
		UserID:       stats.UserID,
		TotalScore:   stats.TotalScore,
		TotalGames:   stats.TotalGames,
		BestStreak:   stats.BestStreak,
		AverageScore: averageScore(stats.TotalScore, stats.TotalGames),
	}
}

// averageScore is the rounded mean score per game, 0 before any play
func averageScore(totalScore, totalGames int) int {
	if totalGames == 0 {
		return 0
	}
	return int(math.Round(float64(totalScore) / float64(totalGames)))
}

// splitAreas returns the top-2 and bottom-2 keys of scores ordered by
// value descending. Ties order lexicographically so results are stable
// across the JSON round-trip of the stored map.
func splitAreas(scores map[string]int) (strong, weak []string) {
	type entry struct {
		name  string
		score int
	}

	entries := make([]entry, 0, len(scores))
	for name, score := range scores {
		entries = append(entries, entry{name, score})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].score != entries[j].score {
			return entries[i].score > entries[j].score
		}
		return entries[i].name < entries[j].name
	})

	strong = []string{}
	weak = []string{}
	for i, e := range entries {
		if i < 2 {
			strong = append(strong, e.name)
		}
		if i >= len(entries)-2 {
			weak = append(weak, e.name)
		}
	}
	return strong, weak
}
