package summary

import (
	"encoding/json"
	"fmt"
	"strings"

	"pawtrack/models"
)

// parseSummary decodes and validates a model response. The shape is
// strict: a string title, an array of highlight strings, and an array
// of sections each carrying a title and an array of item strings.
// Anything else is rejected so the caller can fall back.
func parseSummary(raw string) (*models.Summary, error) {
	raw = stripCodeFences(raw)
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("empty response")
	}

	var payload struct {
		Title      string `json:"title"`
		Meta       string `json:"meta"`
		Highlights []string `json:"highlights"`
		Sections   []struct {
			Title string   `json:"title"`
			Items []string `json:"items"`
		} `json:"sections"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %w", err)
	}

	if payload.Title == "" {
		return nil, fmt.Errorf("response has no title")
	}
	if payload.Highlights == nil {
		return nil, fmt.Errorf("response has no highlights array")
	}
	if payload.Sections == nil {
		return nil, fmt.Errorf("response has no sections array")
	}

	result := &models.Summary{
		Title:      payload.Title,
		Meta:       payload.Meta,
		Highlights: payload.Highlights,
		Sections:   make([]models.SummarySection, 0, len(payload.Sections)),
	}
	for i, section := range payload.Sections {
		if section.Title == "" {
			return nil, fmt.Errorf("section %d has no title", i)
		}
		if section.Items == nil {
			return nil, fmt.Errorf("section %q has no items array", section.Title)
		}
		result.Sections = append(result.Sections, models.SummarySection{
			Title: section.Title,
			Items: section.Items,
		})
	}
	return result, nil
}

// stripCodeFences removes a surrounding markdown code fence, which
// models emit even when asked for bare JSON.
func stripCodeFences(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
