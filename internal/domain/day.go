package domain

import "time"

// AddedLabel returns a short user-friendly label for when a word was added
func AddedLabel(added, now time.Time) string {
	added = added.In(now.Location())

	// Check if today
	if sameDay(added, now) {
		return "today"
	}

	// Check if yesterday
	if sameDay(added, now.AddDate(0, 0, -1)) {
		return "yesterday"
	}

	return added.Format("2 Jan 2006")
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
