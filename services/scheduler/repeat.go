package scheduler

import (
	"time"

	"pawtrack/models"
)

// NextDueDate computes the next occurrence by adding one repeat unit
// to the current due date (never to the wall clock, so a late send
// does not drift the schedule). ok is false when the reminder does not
// repeat — including a custom policy whose interval is missing or not
// positive, which is treated as non-repeating so a malformed config
// deactivates instead of staying due forever.
//
// Calendar arithmetic follows time.AddDate, so month and year steps on
// month-end dates overflow into the following month (Jan 31 + 1 month
// lands in early March) rather than clamping.
func NextDueDate(r *models.Reminder) (time.Time, bool) {
	switch r.RepeatType {
	case models.RepeatWeekly:
		return r.DueDate.AddDate(0, 0, 7), true
	case models.RepeatMonthly:
		return r.DueDate.AddDate(0, 1, 0), true
	case models.RepeatYearly:
		return r.DueDate.AddDate(1, 0, 0), true
	case models.RepeatCustomDays:
		if r.CustomDaysInterval <= 0 {
			return time.Time{}, false
		}
		return r.DueDate.AddDate(0, 0, r.CustomDaysInterval), true
	default:
		return time.Time{}, false
	}
}
