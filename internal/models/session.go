package models

import "time"

// Math topic categories a game can belong to
const (
	CategoryArithmetic = "Aritmética"
	CategoryAlgebra    = "Álgebra"
	CategoryGeometry   = "Geometría"
)

// ValidCategories lists the accepted game categories, in display order
var ValidCategories = []string{CategoryArithmetic, CategoryAlgebra, CategoryGeometry}

// GameSession is an immutable record of one completed play of a game.
// Accuracy is a rounded percentage (0-100) derived from the answer counts.
type GameSession struct {
	ID             int64     `json:"id"`
	UserID         string    `json:"userId"`
	GameID         int64     `json:"gameId"`
	GameName       string    `json:"gameName"`
	Category       string    `json:"category"`
	Score          int       `json:"score"`
	TimePlayed     int       `json:"timePlayed"`
	Level          int       `json:"level"`
	CorrectAnswers int       `json:"correctAnswers"`
	WrongAnswers   int       `json:"wrongAnswers"`
	Accuracy       int       `json:"accuracy"`
	CreatedAt      time.Time `json:"playedAt"`
}

// IsValidCategory reports whether c is one of the accepted categories
func IsValidCategory(c string) bool {
	for _, v := range ValidCategories {
		if v == c {
			return true
		}
	}
	return false
}
