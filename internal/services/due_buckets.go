package services

import (
	"time"

	"taskforge.com/taskforge/internal/constants"
	dto "taskforge.com/taskforge/internal/data_models"
)

// ResolveDueBucket turns a named bucket into concrete UTC bounds, using now's
// location for calendar boundaries. Weeks start on Monday. Unknown buckets
// resolve to nil and apply no filter.
func ResolveDueBucket(bucket constants.DueBucket, now time.Time) *dto.DueRange {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch bucket {
	case constants.DueToday:
		return between(startOfDay, startOfDay.AddDate(0, 0, 1))
	case constants.DueOverdue:
		before := now.UTC()
		return &dto.DueRange{Before: &before, ExcludeCompleted: true}
	case constants.DueThisWeek:
		offset := (int(startOfDay.Weekday()) + 6) % 7
		monday := startOfDay.AddDate(0, 0, -offset)
		return between(monday, monday.AddDate(0, 0, 7))
	case constants.DueThisMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return between(first, first.AddDate(0, 1, 0))
	}

	return nil
}

func between(from, until time.Time) *dto.DueRange {
	f, u := from.UTC(), until.UTC()
	return &dto.DueRange{From: &f, Until: &u}
}
