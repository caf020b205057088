package services

import "time"

// Clock returns the current instant in the application's timezone.
type Clock func() time.Time

func SystemClock(loc *time.Location) Clock {
	return func() time.Time {
		return time.Now().In(loc)
	}
}

// storedTime normalises a timestamp for writing: UTC, whole seconds.
func storedTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}
