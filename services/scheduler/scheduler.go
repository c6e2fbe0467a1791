package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"pawtrack/models"
	"pawtrack/services/notification"

	"go.uber.org/zap"
)

// Defaults for the scan contract.
const (
	DefaultLookback   = 10 * time.Minute
	DefaultBatchLimit = 200
)

// ReminderSource is the slice of the reminder store the scheduler needs.
type ReminderSource interface {
	FindDue(ctx context.Context, now time.Time, limit int64) ([]models.Reminder, error)
	PatchSchedule(ctx context.Context, key models.ReminderKey, patch models.SchedulePatch) error
}

// DeviceTokenSource is the slice of the device token store the
// scheduler needs.
type DeviceTokenSource interface {
	ListByOwner(ctx context.Context, ownerID string) ([]models.DeviceToken, error)
	Delete(ctx context.Context, ownerID, token string) error
}

// PetNameSource resolves a pet's display name for notification bodies.
type PetNameSource interface {
	GetName(ctx context.Context, ownerID, petID string) (string, error)
}

// Stats summarizes one scan for observability.
type Stats struct {
	Processed int
	Sent      int
	Skipped   int
	Retried   int
	Failed    int
}

// Config carries the scan knobs.
type Config struct {
	Lookback   time.Duration
	BatchLimit int64
	// Location is the timezone for human-facing due times in
	// notification bodies.
	Location *time.Location
}

// Scheduler scans due reminders, sends pushes, prunes dead tokens and
// advances repeat schedules. It is safe under at-least-once
// re-invocation: duplicate sends are prevented by the lastNotifiedAt
// guard, not by mutual exclusion.
type Scheduler struct {
	reminders ReminderSource
	devices   DeviceTokenSource
	pets      PetNameSource
	push      notification.PushSender
	logger    *zap.Logger

	lookback   time.Duration
	batchLimit int64
	location   *time.Location

	now func() time.Time
}

func New(reminders ReminderSource, devices DeviceTokenSource, pets PetNameSource, push notification.PushSender, logger *zap.Logger, cfg Config) *Scheduler {
	if cfg.Lookback <= 0 {
		cfg.Lookback = DefaultLookback
	}
	if cfg.BatchLimit <= 0 {
		cfg.BatchLimit = DefaultBatchLimit
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &Scheduler{
		reminders:  reminders,
		devices:    devices,
		pets:       pets,
		push:       push,
		logger:     logger.Named("ReminderScheduler"),
		lookback:   cfg.Lookback,
		batchLimit: cfg.BatchLimit,
		location:   cfg.Location,
		now:        time.Now,
	}
}

type outcome int

const (
	outcomeSkipped outcome = iota
	outcomeSent
	outcomeRetry
)

// RunOnce performs one scan over the due queue. Each reminder is
// processed in isolation: an error on one is logged and counted, never
// fatal to the batch.
func (s *Scheduler) RunOnce(ctx context.Context) Stats {
	now := s.now()
	lookback := now.Add(-s.lookback)

	due, err := s.reminders.FindDue(ctx, now, s.batchLimit)
	if err != nil {
		s.logger.Error("due reminder query failed", zap.Error(err))
		return Stats{}
	}
	if len(due) == 0 {
		s.logger.Debug("no due reminders")
		return Stats{}
	}

	var st Stats
	for i := range due {
		r := &due[i]
		st.Processed++

		result, err := s.processOne(ctx, now, lookback, r)
		if err != nil {
			st.Failed++
			s.logger.Error("reminder processing failed",
				zap.String("ownerId", r.OwnerID),
				zap.String("petId", r.PetID),
				zap.String("reminderId", r.ID),
				zap.Error(err))
			continue
		}
		switch result {
		case outcomeSent:
			st.Sent++
		case outcomeSkipped:
			st.Skipped++
		case outcomeRetry:
			st.Retried++
		}
	}

	s.logger.Info("reminder scan finished",
		zap.Int("processed", st.Processed),
		zap.Int("sent", st.Sent),
		zap.Int("skipped", st.Skipped),
		zap.Int("retried", st.Retried),
		zap.Int("failed", st.Failed))
	return st
}

func (s *Scheduler) processOne(ctx context.Context, now, lookback time.Time, r *models.Reminder) (outcome, error) {
	key := r.Key()
	if !key.Valid() {
		// Fails closed: an incomplete key is a data integrity problem,
		// not a transient error.
		s.logger.Warn("reminder with malformed key skipped",
			zap.String("ownerId", r.OwnerID),
			zap.String("petId", r.PetID),
			zap.String("reminderId", r.ID))
		return outcomeSkipped, nil
	}

	if !Eligible(r, now, lookback) {
		return outcomeSkipped, nil
	}

	tokens, err := s.devices.ListByOwner(ctx, key.OwnerID)
	if err != nil {
		return 0, fmt.Errorf("load device tokens: %w", err)
	}

	if len(tokens) == 0 {
		// Nothing to send, but the schedule still progresses so an
		// owner with no registered device does not accumulate an
		// ever-growing due backlog.
		if err := s.advance(ctx, now, r); err != nil {
			return 0, err
		}
		s.logger.Debug("no device tokens, schedule advanced",
			zap.String("ownerId", key.OwnerID),
			zap.String("reminderId", key.ReminderID))
		return outcomeSent, nil
	}

	msg := s.buildMessage(ctx, r)
	report, err := s.push.Send(ctx, tokenStrings(tokens), msg)
	if err != nil {
		return 0, fmt.Errorf("send push: %w", err)
	}

	s.pruneTokens(ctx, key.OwnerID, report.InvalidTokens)

	if report.SuccessCount == 0 {
		// Fully-failed send is presumed transient: lastNotifiedAt was
		// not updated, so the reminder stays eligible next cycle.
		return outcomeRetry, nil
	}

	if err := s.advance(ctx, now, r); err != nil {
		return 0, err
	}
	return outcomeSent, nil
}

// advance writes the next schedule state: repeating reminders roll the
// due date forward, one-shots deactivate. Both record the attempt time.
func (s *Scheduler) advance(ctx context.Context, now time.Time, r *models.Reminder) error {
	patch := models.SchedulePatch{LastNotifiedAt: now}
	if next, ok := NextDueDate(r); ok {
		patch.DueDate = &next
	} else {
		inactive := false
		patch.Active = &inactive
	}
	if err := s.reminders.PatchSchedule(ctx, r.Key(), patch); err != nil {
		return fmt.Errorf("patch schedule: %w", err)
	}
	return nil
}

// pruneTokens deletes permanently invalid tokens concurrently.
// Deletions are best-effort: individual failures are logged and
// swallowed so one stuck delete never blocks the others.
func (s *Scheduler) pruneTokens(ctx context.Context, ownerID string, invalid []string) {
	if len(invalid) == 0 {
		return
	}

	var wg sync.WaitGroup
	for _, token := range invalid {
		wg.Add(1)
		go func(token string) {
			defer wg.Done()
			if err := s.devices.Delete(ctx, ownerID, token); err != nil {
				s.logger.Warn("failed to delete dead device token",
					zap.String("ownerId", ownerID),
					zap.Error(err))
				return
			}
			s.logger.Info("pruned dead device token", zap.String("ownerId", ownerID))
		}(token)
	}
	wg.Wait()
}

func (s *Scheduler) buildMessage(ctx context.Context, r *models.Reminder) notification.Message {
	petName := ""
	if name, err := s.pets.GetName(ctx, r.OwnerID, r.PetID); err == nil {
		petName = name
	}

	due := r.DueDate.In(s.location).Format("Mon, Jan 2 at 15:04")
	body := fmt.Sprintf("%s (due %s)", r.Title, due)
	if petName != "" {
		body = fmt.Sprintf("%s: %s (due %s)", petName, r.Title, due)
	}

	return notification.Message{
		Title: "PawTrack · " + models.ReminderTypeLabel(r.Type),
		Body:  body,
		Data: map[string]string{
			"kind":         "reminder",
			"reminderId":   r.ID,
			"petId":        r.PetID,
			"reminderType": r.Type,
			"screen":       "reminders",
		},
	}
}

func tokenStrings(tokens []models.DeviceToken) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, t.Token)
	}
	return out
}
