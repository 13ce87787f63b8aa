package service

import "time"

// dateLayout is the canonical calendar-day format used throughout
const dateLayout = "2006-01-02"

// nextStreak computes the streak state after a session played on today.
// lastPlayed is the previous play date in YYYY-MM-DD form, empty for a
// first-ever play. Comparisons are by calendar day only:
//   - first play: streak starts at 1
//   - same day:   repeat plays neither advance nor break the streak
//   - yesterday:  streak continues
//   - otherwise:  streak resets to 1 (including a lastPlayed after today)
func nextStreak(lastPlayed string, today time.Time, current, best int) (newCurrent, newBest int, newLastPlayed string) {
	todayStr := today.Format(dateLayout)
	yesterdayStr := today.AddDate(0, 0, -1).Format(dateLayout)

	switch {
	case lastPlayed == "":
		newCurrent = 1
		newBest = best
		if newBest < 1 {
			newBest = 1
		}
	case lastPlayed == todayStr:
		newCurrent = current
		newBest = best
	case lastPlayed == yesterdayStr:
		newCurrent = current + 1
		newBest = best
		if newCurrent > newBest {
			newBest = newCurrent
		}
	default:
		newCurrent = 1
		newBest = best
	}

	return newCurrent, newBest, todayStr
}
