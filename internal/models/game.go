package models

import "time"

// Game difficulty levels as shown in the catalog
const (
	DifficultyEasy   = "Fácil"
	DifficultyMedium = "Medio"
	DifficultyHard   = "Difícil"
)

// ValidDifficulties lists the accepted difficulty values
var ValidDifficulties = []string{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Game represents a catalog entry for a playable math game
type Game struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Color       string    `json:"color"`
	Difficulty  string    `json:"difficulty"`
	Players     int       `json:"players"`
	Category    string    `json:"category"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// IsValidDifficulty reports whether d is one of the accepted difficulty values
func IsValidDifficulty(d string) bool {
	for _, v := range ValidDifficulties {
		if v == d {
			return true
		}
	}
	return false
}
