package summary

import (
	"testing"
	"time"

	"pawtrack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fallbackNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func TestLocalSummary_AlwaysWellFormed(t *testing.T) {
	// Zero input records still produce a complete, valid shape.
	s := localSummary(models.SummaryKindHealth, "", nil, nil, nil, fallbackNow)

	assert.NotEmpty(t, s.Title)
	assert.NotNil(t, s.Highlights)
	assert.NotEmpty(t, s.Highlights)
	require.Len(t, s.Sections, 3)
	for _, section := range s.Sections {
		assert.NotEmpty(t, section.Title)
		assert.NotNil(t, section.Items)
	}
	assert.Equal(t, models.SummarySourceLocal, s.Source)
}

func TestLocalSummary_TopTagsAreDeterministic(t *testing.T) {
	logs := []models.HealthLog{
		{Kind: "symptom", Tags: []string{"itching", "skin"}, OccurredAt: fallbackNow.AddDate(0, 0, -1)},
		{Kind: "symptom", Tags: []string{"itching"}, OccurredAt: fallbackNow.AddDate(0, 0, -2)},
		{Kind: "checkup", Tags: []string{"teeth"}, OccurredAt: fallbackNow.AddDate(0, 0, -3)},
	}

	first := localSummary(models.SummaryKindHealth, "Biscuit", logs, nil, nil, fallbackNow)
	second := localSummary(models.SummaryKindHealth, "Biscuit", logs, nil, nil, fallbackNow)

	assert.Equal(t, first, second)
	// Most frequent tag leads; ties break alphabetically.
	assert.Equal(t, "Frequent topic: itching", first.Highlights[0])
	assert.Equal(t, "Frequent topic: skin", first.Highlights[1])
	assert.Equal(t, "Frequent topic: teeth", first.Highlights[2])
}

func TestLocalSummary_UpcomingRemindersNearestFirst(t *testing.T) {
	reminders := []models.Reminder{
		{Title: "Annual checkup", Active: true, DueDate: fallbackNow.AddDate(0, 2, 0)},
		{Title: "Flea treatment", Active: true, DueDate: fallbackNow.AddDate(0, 0, 3)},
		{Title: "Old dose", Active: true, DueDate: fallbackNow.AddDate(0, 0, -3)},
		{Title: "Disabled", Active: false, DueDate: fallbackNow.AddDate(0, 0, 5)},
	}

	s := localSummary(models.SummaryKindHealth, "Biscuit", nil, reminders, nil, fallbackNow)

	var upcoming models.SummarySection
	for _, section := range s.Sections {
		if section.Title == "Upcoming reminders" {
			upcoming = section
		}
	}
	require.Len(t, upcoming.Items, 2, "past and inactive reminders are excluded")
	assert.Contains(t, upcoming.Items[0], "Flea treatment")
	assert.Contains(t, upcoming.Items[1], "Annual checkup")
}

func TestLocalSummary_WeightTrend(t *testing.T) {
	weights := []models.WeightEntry{
		{WeightKg: 12.5, MeasuredAt: fallbackNow.AddDate(0, 0, -30)},
		{WeightKg: 13.0, MeasuredAt: fallbackNow.AddDate(0, 0, -1)},
	}

	s := localSummary(models.SummaryKindHealth, "Biscuit", nil, nil, weights, fallbackNow)

	var weight models.SummarySection
	for _, section := range s.Sections {
		if section.Title == "Weight" {
			weight = section
		}
	}
	require.Len(t, weight.Items, 2)
	assert.Contains(t, weight.Items[0], "13.0 kg")
	assert.Contains(t, weight.Items[1], "Up 0.5 kg")
}
