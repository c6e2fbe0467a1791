// File: pawtrack/models/summary.go
package models

// Summary task kinds.
const (
	SummaryKindHealth            = "health_summary"
	SummaryKindVetVisit          = "vet_visit_summary"
	SummaryKindReminderSuggested = "reminder_suggestion"
)

// Summary sources.
const (
	SummarySourceGemini = "gemini"
	SummarySourceLocal  = "local"
)

// SummaryRequest asks for an AI-generated summary for one pet.
type SummaryRequest struct {
	OwnerID string `json:"ownerId"`
	PetID   string `json:"petId" binding:"required"`
	Kind    string `json:"kind" binding:"required,oneof=health_summary vet_visit_summary reminder_suggestion"`
	Prompt  string `json:"prompt,omitempty"`
}

// SummarySection is a titled group of summary lines.
type SummarySection struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// Summary is the generated result. Source records whether it came
// from the external model or the local fallback.
type Summary struct {
	Title      string           `json:"title"`
	Meta       string           `json:"meta,omitempty"`
	Highlights []string         `json:"highlights"`
	Sections   []SummarySection `json:"sections"`
	Source     string           `json:"source"`
}
