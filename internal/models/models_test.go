package models

import (
	"testing"
	"time"
)

func TestIsValidCategory(t *testing.T) {
	tests := []struct {
		name     string
		category string
		want     bool
	}{
		{
			name:     "arithmetic",
			category: "Aritmética",
			want:     true,
		},
		{
			name:     "algebra",
			category: "Álgebra",
			want:     true,
		},
		{
			name:     "geometry",
			category: "Geometría",
			want:     true,
		},
		{
			name:     "unknown subject",
			category: "Trigonometría",
			want:     false,
		},
		{
			name:     "missing accent is a different string",
			category: "Aritmetica",
			want:     false,
		},
		{
			name:     "empty",
			category: "",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidCategory(tt.category); got != tt.want {
				t.Errorf("IsValidCategory(%q) = %v, want %v", tt.category, got, tt.want)
			}
		})
	}
}

func TestIsValidDifficulty(t *testing.T) {
	tests := []struct {
		name       string
		difficulty string
		want       bool
	}{
		{
			name:       "easy",
			difficulty: "Fácil",
			want:       true,
		},
		{
			name:       "medium",
			difficulty: "Medio",
			want:       true,
		},
		{
			name:       "hard",
			difficulty: "Difícil",
			want:       true,
		},
		{
			name:       "unknown level",
			difficulty: "Imposible",
			want:       false,
		},
		{
			name:       "empty",
			difficulty: "",
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidDifficulty(tt.difficulty); got != tt.want {
				t.Errorf("IsValidDifficulty(%q) = %v, want %v", tt.difficulty, got, tt.want)
			}
		})
	}
}

func TestNewUserStats(t *testing.T) {
	stats := NewUserStats("u1")

	if stats.UserID != "u1" {
		t.Errorf("UserID = %q, want u1", stats.UserID)
	}
	if stats.TotalGames != 0 || stats.TotalScore != 0 || stats.TotalTime != 0 {
		t.Errorf("fresh stats not zeroed: %+v", stats)
	}
	if stats.LastPlayedDate != "" {
		t.Errorf("LastPlayedDate = %q, want empty for a new user", stats.LastPlayedDate)
	}
	if stats.GamesPerCategory == nil || stats.ScoresPerCategory == nil {
		t.Error("category maps must be initialized")
	}
	if stats.Achievements == nil || len(stats.Achievements) != 0 {
		t.Errorf("Achievements = %v, want empty slice", stats.Achievements)
	}
}

func TestHasAchievement(t *testing.T) {
	stats := NewUserStats("u1")
	stats.Achievements = append(stats.Achievements, Achievement{
		Name:       "Primera Partida",
		Icon:       "🎮",
		UnlockedAt: time.Now(),
	})

	if !stats.HasAchievement("Primera Partida") {
		t.Error("expected HasAchievement to find an unlocked achievement")
	}
	if stats.HasAchievement("Centurión") {
		t.Error("expected HasAchievement to be false for a locked achievement")
	}
	if stats.HasAchievement("") {
		t.Error("expected HasAchievement to be false for an empty name")
	}
}
