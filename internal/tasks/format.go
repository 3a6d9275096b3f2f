package tasks

import (
	"fmt"
	"time"
)

// FormatDuration renders elapsed time as "1h 5m" or "25m".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Minute)
	hours := total / 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, total%60)
	}
	return fmt.Sprintf("%dm", total)
}

// Elapsed returns how long the task has been going at now.
func Elapsed(t Task, now time.Time) time.Duration {
	return now.Sub(t.StartTime)
}

// Remaining returns the whole minutes left on a running task's estimate.
// ok is false when the task is not running or has no estimate. A
// non-positive result means the task is overtime.
func Remaining(t Task, now time.Time) (minutes int, ok bool) {
	if t.Status != StatusRunning || t.EstimatedTime == nil || *t.EstimatedTime == 0 {
		return 0, false
	}
	elapsed := int(now.Sub(t.StartTime) / time.Minute)
	return *t.EstimatedTime - elapsed, true
}

// TimeLeft renders Remaining as "12m left" or "Overtime". The empty string
// means there is nothing to show.
func TimeLeft(t Task, now time.Time) string {
	m, ok := Remaining(t, now)
	if !ok {
		return ""
	}
	if m > 0 {
		return fmt.Sprintf("%dm left", m)
	}
	return "Overtime"
}
