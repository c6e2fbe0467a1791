// File: pawtrack/models/reminder.go
package models

import "time"

// Reminder types.
const (
	ReminderTypeVaccine    = "vaccine"
	ReminderTypeMedication = "medication"
	ReminderTypeVetVisit   = "vet_visit"
)

// Repeat policies.
const (
	RepeatNone       = "none"
	RepeatWeekly     = "weekly"
	RepeatMonthly    = "monthly"
	RepeatYearly     = "yearly"
	RepeatCustomDays = "custom_days"
)

// Reminder is a scheduled pet-care notification owned by one user and
// one pet. A reminder with Active=false is permanently out of the
// scheduler's reach until the user reactivates it.
type Reminder struct {
	ID                 string     `bson:"id" json:"id"`
	OwnerID            string     `bson:"ownerId" json:"ownerId"`
	PetID              string     `bson:"petId" json:"petId"`
	Title              string     `bson:"title" json:"title"`
	Type               string     `bson:"type" json:"type"`
	DueDate            time.Time  `bson:"dueDate" json:"dueDate"`
	RepeatType         string     `bson:"repeatType" json:"repeatType"`
	CustomDaysInterval int        `bson:"customDaysInterval,omitempty" json:"customDaysInterval,omitempty"`
	Active             bool       `bson:"active" json:"active"`
	LastNotifiedAt     *time.Time `bson:"lastNotifiedAt,omitempty" json:"lastNotifiedAt,omitempty"`
	CreatedAt          time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// ReminderKey identifies a reminder together with its owning user and
// pet. It is carried alongside the record from the point of query so
// ownership never has to be re-derived from a path string.
type ReminderKey struct {
	OwnerID    string
	PetID      string
	ReminderID string
}

func (k ReminderKey) Valid() bool {
	return k.OwnerID != "" && k.PetID != "" && k.ReminderID != ""
}

// Key returns the structured identity of the reminder.
func (r *Reminder) Key() ReminderKey {
	return ReminderKey{OwnerID: r.OwnerID, PetID: r.PetID, ReminderID: r.ID}
}

// SchedulePatch is the merge update the scheduler writes back onto a
// reminder after a processed attempt. Nil pointer fields are left
// untouched in the stored record.
type SchedulePatch struct {
	DueDate        *time.Time
	Active         *bool
	LastNotifiedAt time.Time
}

// ReminderTypeLabel maps a reminder type to its display label used in
// push notification titles.
func ReminderTypeLabel(reminderType string) string {
	switch reminderType {
	case ReminderTypeVaccine:
		return "Vaccine Reminder"
	case ReminderTypeMedication:
		return "Medication Reminder"
	case ReminderTypeVetVisit:
		return "Vet Visit Reminder"
	default:
		return "Reminder"
	}
}
