package scheduler

import (
	"time"

	"pawtrack/models"
)

// Eligible reports whether a reminder should be notified at now, given
// the lookback cutoff. Pure function; the rules apply in order:
//
//   - a zero due date never fires (the record failed validation);
//   - a future due date never fires (re-checked even though the due
//     query should not return it);
//   - a one-shot reminder older than the lookback cutoff is presumed
//     stale or abandoned and is skipped rather than fired late.
//     Repeating reminders are exempt: their due date legitimately
//     rolls forward, so an old due date is still a real occurrence;
//   - otherwise the lastNotifiedAt guard allows at most one
//     notification per distinct due date.
func Eligible(r *models.Reminder, now, lookback time.Time) bool {
	if r.DueDate.IsZero() {
		return false
	}
	if r.DueDate.After(now) {
		return false
	}
	if r.DueDate.Before(lookback) && r.RepeatType == models.RepeatNone {
		return false
	}
	if r.LastNotifiedAt == nil {
		return true
	}
	return r.LastNotifiedAt.Before(r.DueDate)
}
