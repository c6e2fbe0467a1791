package summary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	healthRepo "pawtrack/database/repository/health"
	petRepo "pawtrack/database/repository/pet"
	reminderRepo "pawtrack/database/repository/reminder"
	"pawtrack/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	recordWindow    = 20
	generateTimeout = 30 * time.Second
	cacheTTL        = time.Hour
)

// ErrNotReady is returned when a requested summary has not been
// generated (or has expired from the cache).
var ErrNotReady = errors.New("summary not ready")

// Service generates pet summaries.
type Service interface {
	// Generate produces a summary for the request, preferring the
	// external model and falling back to the local computation. The
	// result is cached. The fallback path cannot fail; an error is
	// only returned when the pet's records cannot be loaded.
	Generate(ctx context.Context, req models.SummaryRequest) (*models.Summary, error)
	// GetCached returns a previously generated summary, or ErrNotReady.
	GetCached(ctx context.Context, req models.SummaryRequest) (*models.Summary, error)
}

// DefaultService is the production implementation.
type DefaultService struct {
	Gen       TextGenerator
	Pets      petRepo.PetRepository
	Health    healthRepo.HealthRepository
	Reminders reminderRepo.ReminderRepository
	Cache     *redis.Client
	Logger    *zap.Logger
}

func NewDefaultService(gen TextGenerator, pets petRepo.PetRepository, health healthRepo.HealthRepository, reminders reminderRepo.ReminderRepository, cache *redis.Client, logger *zap.Logger) *DefaultService {
	return &DefaultService{
		Gen:       gen,
		Pets:      pets,
		Health:    health,
		Reminders: reminders,
		Cache:     cache,
		Logger:    logger.Named("SummaryService"),
	}
}

func cacheKey(req models.SummaryRequest) string {
	return fmt.Sprintf("summary:%s:%s:%s", req.OwnerID, req.PetID, req.Kind)
}

func (s *DefaultService) Generate(ctx context.Context, req models.SummaryRequest) (*models.Summary, error) {
	petName := ""
	if name, err := s.Pets.GetName(ctx, req.OwnerID, req.PetID); err == nil {
		petName = name
	}

	logs, err := s.Health.ListLogs(ctx, req.OwnerID, req.PetID, recordWindow)
	if err != nil {
		return nil, fmt.Errorf("load health logs: %w", err)
	}
	weights, err := s.Health.ListWeights(ctx, req.OwnerID, req.PetID, recordWindow)
	if err != nil {
		return nil, fmt.Errorf("load weights: %w", err)
	}
	reminders, err := s.Reminders.ListByPet(ctx, req.OwnerID, req.PetID)
	if err != nil {
		return nil, fmt.Errorf("load reminders: %w", err)
	}

	result := s.generate(ctx, req, petName, logs, reminders, weights)
	s.cache(ctx, req, result)
	return result, nil
}

// generate tries the external model first; any failure or invalid
// shape silently degrades to the local computation.
func (s *DefaultService) generate(ctx context.Context, req models.SummaryRequest, petName string, logs []models.HealthLog, reminders []models.Reminder, weights []models.WeightEntry) *models.Summary {
	if s.Gen != nil {
		genCtx, cancel := context.WithTimeout(ctx, generateTimeout)
		defer cancel()

		raw, err := s.Gen.GenerateContent(genCtx, buildPrompt(req, petName, logs, reminders, weights))
		if err == nil {
			if result, perr := parseSummary(raw); perr == nil {
				result.Source = models.SummarySourceGemini
				return result
			} else {
				s.Logger.Warn("model response failed validation, using local fallback", zap.Error(perr))
			}
		} else {
			s.Logger.Warn("model call failed, using local fallback", zap.Error(err))
		}
	}
	return localSummary(req.Kind, petName, logs, reminders, weights, time.Now())
}

func (s *DefaultService) GetCached(ctx context.Context, req models.SummaryRequest) (*models.Summary, error) {
	if s.Cache == nil {
		return nil, ErrNotReady
	}
	raw, err := s.Cache.Get(ctx, cacheKey(req)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotReady
		}
		return nil, fmt.Errorf("read summary cache: %w", err)
	}

	var result models.Summary
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("decode cached summary: %w", err)
	}
	return &result, nil
}

func (s *DefaultService) cache(ctx context.Context, req models.SummaryRequest, result *models.Summary) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, cacheKey(req), raw, cacheTTL).Err(); err != nil {
		s.Logger.Warn("failed to cache summary", zap.Error(err))
	}
}

func buildPrompt(req models.SummaryRequest, petName string, logs []models.HealthLog, reminders []models.Reminder, weights []models.WeightEntry) string {
	var sb strings.Builder
	sb.WriteString("You are a pet-care assistant. Produce a JSON object with the exact shape ")
	sb.WriteString(`{"title": string, "meta": string, "highlights": [string], "sections": [{"title": string, "items": [string]}]}. `)
	sb.WriteString("No markdown, no prose outside the JSON.\n\n")

	switch req.Kind {
	case models.SummaryKindVetVisit:
		sb.WriteString("Task: summarize the records below as preparation notes for a vet visit.\n")
	case models.SummaryKindReminderSuggested:
		sb.WriteString("Task: suggest care reminders based on the records below.\n")
	default:
		sb.WriteString("Task: summarize the pet's recent health from the records below.\n")
	}

	if petName != "" {
		fmt.Fprintf(&sb, "Pet name: %s\n", petName)
	}
	if req.Prompt != "" {
		fmt.Fprintf(&sb, "Owner's note: %s\n", req.Prompt)
	}

	sb.WriteString("\nHealth log entries:\n")
	for _, entry := range logs {
		fmt.Fprintf(&sb, "- %s | %s | %s | tags: %s\n",
			entry.OccurredAt.Format("2006-01-02"), entry.Kind, entry.Note, strings.Join(entry.Tags, ","))
	}
	sb.WriteString("\nReminders:\n")
	for _, r := range reminders {
		fmt.Fprintf(&sb, "- %s | %s | due %s | active=%t\n",
			r.Type, r.Title, r.DueDate.Format("2006-01-02"), r.Active)
	}
	sb.WriteString("\nWeight history:\n")
	for _, w := range weights {
		fmt.Fprintf(&sb, "- %s | %.1f kg\n", w.MeasuredAt.Format("2006-01-02"), w.WeightKg)
	}
	return sb.String()
}
