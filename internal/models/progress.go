package models

// DailyProgress accumulates score and play count for one user on one
// calendar day. Date is YYYY-MM-DD; (UserID, Date) is unique.
type DailyProgress struct {
	ID          int64  `json:"-"`
	UserID      string `json:"-"`
	Date        string `json:"date"`
	Score       int    `json:"score"`
	GamesPlayed int    `json:"gamesPlayed"`
}
