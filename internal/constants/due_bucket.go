package constants

type DueBucket string

const (
	DueToday     DueBucket = "today"
	DueOverdue   DueBucket = "overdue"
	DueThisWeek  DueBucket = "this_week"
	DueThisMonth DueBucket = "this_month"
)
