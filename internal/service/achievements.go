package service

import (
	"time"

	"mathgames/internal/models"
)

// achievementRule pairs an achievement with its unlock predicate over a
// stats snapshot. Rules are evaluated in table order.
type achievementRule struct {
	Name      string
	Icon      string
	Qualifies func(*models.UserStats) bool
}

// achievementRules is the fixed unlock table. The totalGames milestones
// check exact equality on purpose: the aggregator only ever adds one
// game per call, so the counter cannot skip a milestone.
var achievementRules = []achievementRule{
	{"Primera Partida", "🎮", func(s *models.UserStats) bool { return s.TotalGames == 1 }},
	{"Jugador Dedicado", "🎯", func(s *models.UserStats) bool { return s.TotalGames == 10 }},
	{"Centurión", "💯", func(s *models.UserStats) bool { return s.TotalGames == 100 }},
	{"Racha de 5", "🔥", func(s *models.UserStats) bool { return s.CurrentStreak >= 5 }},
	{"Racha de 10", "🔥🔥", func(s *models.UserStats) bool { return s.CurrentStreak >= 10 }},
	{"Racha de 30", "🔥🔥🔥", func(s *models.UserStats) bool { return s.CurrentStreak >= 30 }},
	{"Mil Puntos", "⭐", func(s *models.UserStats) bool { return s.TotalScore >= 1000 }},
	{"Diez Mil Puntos", "⭐⭐", func(s *models.UserStats) bool { return s.TotalScore >= 10000 }},
	{"Maestro Matemático", "🏆", func(s *models.UserStats) bool { return s.TotalScore >= 50000 }},
	{"Maratonista", "⏱️", func(s *models.UserStats) bool { return s.TotalTime >= 3600 }},
}

// evaluateAchievements returns the achievements newly earned by the
// given stats snapshot, skipping any the user already holds.
// Re-running on an unchanged snapshot yields nothing, so unlocking is
// one-time.
func evaluateAchievements(stats *models.UserStats, now time.Time) []models.Achievement {
	var earned []models.Achievement
	for _, rule := range achievementRules {
		if stats.HasAchievement(rule.Name) {
			continue
		}
		if rule.Qualifies(stats) {
			earned = append(earned, models.Achievement{
				Name:       rule.Name,
				Icon:       rule.Icon,
				UnlockedAt: now,
			})
		}
	}
	return earned
}
