package dto

import (
	"time"

	"taskforge.com/taskforge/internal/constants"
)

// Includes names the relations a caller asked to have attached.
type Includes struct {
	List       bool
	Tags       bool
	Tasks      bool
	TasksCount bool
}

// DueRange is a due-date bucket resolved into concrete UTC bounds.
// From is inclusive, Until and Before are exclusive.
type DueRange struct {
	From             *time.Time
	Until            *time.Time
	Before           *time.Time
	ExcludeCompleted bool
}

// TaskQuery is the parsed form of the GET /tasks query string.
type TaskQuery struct {
	ListID      *uint
	WithoutList bool
	Completed   *bool
	Priority    *constants.Priority
	Search      string
	DueBucket   constants.DueBucket
	Include     Includes
	Sort        string
	Descending  bool
	PerPage     int
	Page        int
}
