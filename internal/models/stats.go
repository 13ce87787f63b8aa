package models

import "time"

// Achievement is a one-time milestone unlocked by a user
type Achievement struct {
	Name       string    `json:"name"`
	Icon       string    `json:"icon"`
	UnlockedAt time.Time `json:"unlockedAt"`
}

// UserStats holds the denormalized aggregate statistics for one user.
// LastPlayedDate is a calendar date in YYYY-MM-DD form; empty means the
// user has never played. ScoresPerCategory is keyed by game name, not
// category (the field name predates the implementation and the API
// contract depends on it).
type UserStats struct {
	UserID            string         `json:"userId"`
	TotalGames        int            `json:"totalGames"`
	TotalScore        int            `json:"totalScore"`
	TotalTime         int            `json:"totalTime"`
	CurrentStreak     int            `json:"currentStreak"`
	BestStreak        int            `json:"bestStreak"`
	LastPlayedDate    string         `json:"lastPlayedDate,omitempty"`
	GamesPerCategory  map[string]int `json:"gamesPerCategory"`
	ScoresPerCategory map[string]int `json:"scoresPerCategory"`
	Achievements      []Achievement  `json:"achievements"`
}

// NewUserStats returns a zeroed stats row for a user who has never played
func NewUserStats(userID string) *UserStats {
	return &UserStats{
		UserID:            userID,
		GamesPerCategory:  make(map[string]int),
		ScoresPerCategory: make(map[string]int),
		Achievements:      []Achievement{},
	}
}

// HasAchievement reports whether the user already unlocked the named achievement
func (s *UserStats) HasAchievement(name string) bool {
	for _, a := range s.Achievements {
		if a.Name == name {
			return true
		}
	}
	return false
}
