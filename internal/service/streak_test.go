package service

import (
	"testing"
	"time"
)

func TestNextStreak(t *testing.T) {
	today := time.Date(2024, 1, 20, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name        string
		lastPlayed  string
		current     int
		best        int
		wantCurrent int
		wantBest    int
	}{
		{
			name:        "first ever play",
			lastPlayed:  "",
			current:     0,
			best:        0,
			wantCurrent: 1,
			wantBest:    1,
		},
		{
			name:        "first play keeps higher best from reset state",
			lastPlayed:  "",
			current:     0,
			best:        7,
			wantCurrent: 1,
			wantBest:    7,
		},
		{
			name:        "same day repeat play",
			lastPlayed:  "2024-01-20",
			current:     3,
			best:        5,
			wantCurrent: 3,
			wantBest:    5,
		},
		{
			name:        "consecutive day continues streak",
			lastPlayed:  "2024-01-19",
			current:     3,
			best:        5,
			wantCurrent: 4,
			wantBest:    5,
		},
		{
			name:        "consecutive day sets new best",
			lastPlayed:  "2024-01-19",
			current:     5,
			best:        5,
			wantCurrent: 6,
			wantBest:    6,
		},
		{
			name:        "two day gap resets streak",
			lastPlayed:  "2024-01-18",
			current:     9,
			best:        9,
			wantCurrent: 1,
			wantBest:    9,
		},
		{
			name:        "long gap resets streak",
			lastPlayed:  "2023-12-01",
			current:     4,
			best:        8,
			wantCurrent: 1,
			wantBest:    8,
		},
		{
			name:        "last played after today resets streak",
			lastPlayed:  "2024-01-25",
			current:     4,
			best:        8,
			wantCurrent: 1,
			wantBest:    8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current, best, lastPlayed := nextStreak(tt.lastPlayed, today, tt.current, tt.best)
			if current != tt.wantCurrent {
				t.Errorf("current = %d, want %d", current, tt.wantCurrent)
			}
			if best != tt.wantBest {
				t.Errorf("best = %d, want %d", best, tt.wantBest)
			}
			if lastPlayed != "2024-01-20" {
				t.Errorf("lastPlayed = %q, want %q", lastPlayed, "2024-01-20")
			}
		})
	}
}

func TestNextStreakThreeConsecutiveDays(t *testing.T) {
	day := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	current, best, lastPlayed := 0, 0, ""
	for i := 0; i < 3; i++ {
		current, best, lastPlayed = nextStreak(lastPlayed, day.AddDate(0, 0, i), current, best)
	}

	if current != 3 {
		t.Errorf("current after 3 consecutive days = %d, want 3", current)
	}
	if best < 3 {
		t.Errorf("best after 3 consecutive days = %d, want >= 3", best)
	}
}
