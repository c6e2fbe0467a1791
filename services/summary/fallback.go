package summary

import (
	"fmt"
	"sort"
	"time"

	"pawtrack/models"
)

const (
	fallbackHighlightCount = 3
	fallbackUpcomingCount  = 3
)

// localSummary builds a deterministic summary from the pet's own
// records: most frequent health tags, most recent entries, nearest
// upcoming reminders and the latest weight trend. It always produces a
// well-formed result; it has no failure mode of its own.
func localSummary(kind, petName string, logs []models.HealthLog, reminders []models.Reminder, weights []models.WeightEntry, now time.Time) *models.Summary {
	s := &models.Summary{
		Title:      fallbackTitle(kind, petName),
		Meta:       fmt.Sprintf("Generated locally on %s", now.Format("Jan 2, 2006")),
		Highlights: []string{},
		Sections:   []models.SummarySection{},
		Source:     models.SummarySourceLocal,
	}

	if tags := topTags(logs, fallbackHighlightCount); len(tags) > 0 {
		for _, tag := range tags {
			s.Highlights = append(s.Highlights, fmt.Sprintf("Frequent topic: %s", tag))
		}
	} else if len(logs) > 0 {
		s.Highlights = append(s.Highlights, fmt.Sprintf("%d health entries on record", len(logs)))
	} else {
		s.Highlights = append(s.Highlights, "No health entries recorded yet")
	}

	s.Sections = append(s.Sections, recentEntriesSection(logs))
	s.Sections = append(s.Sections, upcomingSection(reminders, now))
	s.Sections = append(s.Sections, weightSection(weights))

	return s
}

func fallbackTitle(kind, petName string) string {
	subject := petName
	if subject == "" {
		subject = "Your pet"
	}
	switch kind {
	case models.SummaryKindVetVisit:
		return fmt.Sprintf("%s — vet visit overview", subject)
	case models.SummaryKindReminderSuggested:
		return fmt.Sprintf("%s — care suggestions", subject)
	default:
		return fmt.Sprintf("%s — health summary", subject)
	}
}

// topTags returns the most frequent tags, ordered by count descending
// then name ascending so output is deterministic.
func topTags(logs []models.HealthLog, limit int) []string {
	counts := make(map[string]int)
	for _, entry := range logs {
		for _, tag := range entry.Tags {
			counts[tag]++
		}
	}
	tags := make([]string, 0, len(counts))
	for tag := range counts {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		if counts[tags[i]] != counts[tags[j]] {
			return counts[tags[i]] > counts[tags[j]]
		}
		return tags[i] < tags[j]
	})
	if len(tags) > limit {
		tags = tags[:limit]
	}
	return tags
}

func recentEntriesSection(logs []models.HealthLog) models.SummarySection {
	section := models.SummarySection{Title: "Recent entries", Items: []string{}}

	sorted := make([]models.HealthLog, len(logs))
	copy(sorted, logs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].OccurredAt.After(sorted[j].OccurredAt)
	})

	for i, entry := range sorted {
		if i == fallbackHighlightCount {
			break
		}
		item := entry.Kind
		if entry.Note != "" {
			item = fmt.Sprintf("%s — %s", entry.Kind, entry.Note)
		}
		section.Items = append(section.Items, fmt.Sprintf("%s (%s)", item, entry.OccurredAt.Format("Jan 2")))
	}
	return section
}

func upcomingSection(reminders []models.Reminder, now time.Time) models.SummarySection {
	section := models.SummarySection{Title: "Upcoming reminders", Items: []string{}}

	var upcoming []models.Reminder
	for _, r := range reminders {
		if r.Active && r.DueDate.After(now) {
			upcoming = append(upcoming, r)
		}
	}
	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].DueDate.Before(upcoming[j].DueDate)
	})

	for i, r := range upcoming {
		if i == fallbackUpcomingCount {
			break
		}
		section.Items = append(section.Items, fmt.Sprintf("%s — %s", r.Title, r.DueDate.Format("Jan 2, 2006")))
	}
	return section
}

func weightSection(weights []models.WeightEntry) models.SummarySection {
	section := models.SummarySection{Title: "Weight", Items: []string{}}
	if len(weights) == 0 {
		return section
	}

	sorted := make([]models.WeightEntry, len(weights))
	copy(sorted, weights)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].MeasuredAt.After(sorted[j].MeasuredAt)
	})

	latest := sorted[0]
	section.Items = append(section.Items, fmt.Sprintf("Latest: %.1f kg (%s)", latest.WeightKg, latest.MeasuredAt.Format("Jan 2")))

	if len(sorted) > 1 {
		delta := latest.WeightKg - sorted[1].WeightKg
		switch {
		case delta > 0:
			section.Items = append(section.Items, fmt.Sprintf("Up %.1f kg since last measurement", delta))
		case delta < 0:
			section.Items = append(section.Items, fmt.Sprintf("Down %.1f kg since last measurement", -delta))
		default:
			section.Items = append(section.Items, "Unchanged since last measurement")
		}
	}
	return section
}
