package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"pawtrack/models"
	"pawtrack/services/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeReminders struct {
	due     []models.Reminder
	patches map[models.ReminderKey]models.SchedulePatch
	findErr error
}

func newFakeReminders(due ...models.Reminder) *fakeReminders {
	return &fakeReminders{due: due, patches: make(map[models.ReminderKey]models.SchedulePatch)}
}

func (f *fakeReminders) FindDue(ctx context.Context, now time.Time, limit int64) ([]models.Reminder, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if int64(len(f.due)) > limit {
		return f.due[:limit], nil
	}
	return f.due, nil
}

func (f *fakeReminders) PatchSchedule(ctx context.Context, key models.ReminderKey, patch models.SchedulePatch) error {
	f.patches[key] = patch
	return nil
}

type fakeDevices struct {
	mu      sync.Mutex
	tokens  map[string][]models.DeviceToken
	deleted []string
	listErr map[string]error
	delErr  error
}

func newFakeDevices() *fakeDevices {
	return &fakeDevices{tokens: make(map[string][]models.DeviceToken), listErr: make(map[string]error)}
}

func (f *fakeDevices) add(ownerID string, tokens ...string) {
	for _, t := range tokens {
		f.tokens[ownerID] = append(f.tokens[ownerID], models.DeviceToken{Token: t, OwnerID: ownerID})
	}
}

func (f *fakeDevices) ListByOwner(ctx context.Context, ownerID string) ([]models.DeviceToken, error) {
	if err := f.listErr[ownerID]; err != nil {
		return nil, err
	}
	return f.tokens[ownerID], nil
}

func (f *fakeDevices) Delete(ctx context.Context, ownerID, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.delErr != nil {
		return f.delErr
	}
	f.deleted = append(f.deleted, token)
	return nil
}

type fakePets struct{ names map[string]string }

func (f *fakePets) GetName(ctx context.Context, ownerID, petID string) (string, error) {
	if f.names == nil {
		return "", errors.New("pet not found")
	}
	name, ok := f.names[petID]
	if !ok {
		return "", errors.New("pet not found")
	}
	return name, nil
}

type fakePush struct {
	reports  map[string]*notification.SendReport
	sendErr  error
	messages []notification.Message
	sentTo   [][]string
}

func (f *fakePush) Send(ctx context.Context, tokens []string, msg notification.Message) (*notification.SendReport, error) {
	f.messages = append(f.messages, msg)
	f.sentTo = append(f.sentTo, tokens)
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	if r, ok := f.reports[msg.Data["reminderId"]]; ok {
		return r, nil
	}
	return &notification.SendReport{SuccessCount: len(tokens)}, nil
}

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestScheduler(rems *fakeReminders, devs *fakeDevices, pets *fakePets, push *fakePush) *Scheduler {
	s := New(rems, devs, pets, push, zap.NewNop(), Config{})
	s.now = func() time.Time { return testNow }
	return s
}

func oneShot(id string) models.Reminder {
	return models.Reminder{
		ID: id, OwnerID: "owner-1", PetID: "pet-1",
		Title: "Rabies booster", Type: models.ReminderTypeVaccine,
		DueDate: testNow.Add(-2 * time.Minute), RepeatType: models.RepeatNone,
		Active: true,
	}
}

func TestRunOnce_OneShotDeactivatesAfterSend(t *testing.T) {
	rems := newFakeReminders(oneShot("rem-1"))
	devs := newFakeDevices()
	devs.add("owner-1", "tok-a", "tok-b")
	push := &fakePush{}

	s := newTestScheduler(rems, devs, &fakePets{names: map[string]string{"pet-1": "Biscuit"}}, push)
	st := s.RunOnce(context.Background())

	assert.Equal(t, Stats{Processed: 1, Sent: 1}, st)

	patch, ok := rems.patches[models.ReminderKey{OwnerID: "owner-1", PetID: "pet-1", ReminderID: "rem-1"}]
	require.True(t, ok, "schedule patch should be persisted")
	require.NotNil(t, patch.Active)
	assert.False(t, *patch.Active)
	assert.Nil(t, patch.DueDate, "one-shot must not advance its due date")
	assert.Equal(t, testNow, patch.LastNotifiedAt)
}

func TestRunOnce_WeeklyAdvancesFromDueDate(t *testing.T) {
	r := oneShot("rem-1")
	r.RepeatType = models.RepeatWeekly
	rems := newFakeReminders(r)
	devs := newFakeDevices()
	devs.add("owner-1", "tok-a")

	s := newTestScheduler(rems, devs, &fakePets{}, &fakePush{})
	s.RunOnce(context.Background())

	patch := rems.patches[r.Key()]
	require.NotNil(t, patch.DueDate)
	assert.Equal(t, r.DueDate.AddDate(0, 0, 7), *patch.DueDate, "advance is relative to the due date, not now")
	assert.Nil(t, patch.Active)
}

func TestRunOnce_ZeroTokensStillAdvances(t *testing.T) {
	r := oneShot("rem-1")
	r.RepeatType = models.RepeatMonthly
	rems := newFakeReminders(r)
	push := &fakePush{}

	s := newTestScheduler(rems, newFakeDevices(), &fakePets{}, push)
	st := s.RunOnce(context.Background())

	assert.Equal(t, 1, st.Sent)
	assert.Empty(t, push.messages, "nothing should be sent with zero tokens")

	patch := rems.patches[r.Key()]
	require.NotNil(t, patch.DueDate)
	assert.Equal(t, r.DueDate.AddDate(0, 1, 0), *patch.DueDate)
}

func TestRunOnce_AllFailedSendLeavesReminderDue(t *testing.T) {
	// The single token is dead: it gets pruned, but with zero
	// successes the schedule must NOT advance. Pruning and retry are
	// independent outcomes that occur together here.
	rems := newFakeReminders(oneShot("rem-1"))
	devs := newFakeDevices()
	devs.add("owner-1", "tok-dead")
	push := &fakePush{reports: map[string]*notification.SendReport{
		"rem-1": {SuccessCount: 0, FailureCount: 1, InvalidTokens: []string{"tok-dead"}},
	}}

	s := newTestScheduler(rems, devs, &fakePets{}, push)
	st := s.RunOnce(context.Background())

	assert.Equal(t, Stats{Processed: 1, Retried: 1}, st)
	assert.Equal(t, []string{"tok-dead"}, devs.deleted)
	assert.Empty(t, rems.patches, "failed send must not advance the schedule")
}

func TestRunOnce_PartialSuccessPrunesAndAdvances(t *testing.T) {
	r := oneShot("rem-1")
	r.RepeatType = models.RepeatCustomDays
	r.CustomDaysInterval = 3
	rems := newFakeReminders(r)
	devs := newFakeDevices()
	devs.add("owner-1", "tok-live", "tok-dead")
	push := &fakePush{reports: map[string]*notification.SendReport{
		"rem-1": {SuccessCount: 1, FailureCount: 1, InvalidTokens: []string{"tok-dead"}},
	}}

	s := newTestScheduler(rems, devs, &fakePets{}, push)
	st := s.RunOnce(context.Background())

	assert.Equal(t, 1, st.Sent)
	assert.Equal(t, []string{"tok-dead"}, devs.deleted)

	patch := rems.patches[r.Key()]
	require.NotNil(t, patch.DueDate)
	assert.Equal(t, r.DueDate.AddDate(0, 0, 3), *patch.DueDate)
}

func TestRunOnce_MalformedCustomIntervalDeactivates(t *testing.T) {
	r := oneShot("rem-1")
	r.RepeatType = models.RepeatCustomDays
	r.CustomDaysInterval = 0
	rems := newFakeReminders(r)
	devs := newFakeDevices()
	devs.add("owner-1", "tok-a")

	s := newTestScheduler(rems, devs, &fakePets{}, &fakePush{})
	s.RunOnce(context.Background())

	patch := rems.patches[r.Key()]
	require.NotNil(t, patch.Active)
	assert.False(t, *patch.Active, "a malformed repeat config must deactivate, not loop")
	assert.Nil(t, patch.DueDate)
}

func TestRunOnce_PerReminderIsolation(t *testing.T) {
	// The first reminder's token load blows up; the second must still
	// be processed.
	broken := oneShot("rem-broken")
	broken.OwnerID = "owner-broken"
	healthy := oneShot("rem-ok")

	rems := newFakeReminders(broken, healthy)
	devs := newFakeDevices()
	devs.add("owner-1", "tok-a")
	devs.listErr["owner-broken"] = errors.New("store unavailable")

	s := newTestScheduler(rems, devs, &fakePets{}, &fakePush{})
	st := s.RunOnce(context.Background())

	assert.Equal(t, Stats{Processed: 2, Sent: 1, Failed: 1}, st)
	_, ok := rems.patches[healthy.Key()]
	assert.True(t, ok)
}

func TestRunOnce_MalformedKeySkipped(t *testing.T) {
	r := oneShot("rem-1")
	r.PetID = ""
	rems := newFakeReminders(r)
	push := &fakePush{}

	s := newTestScheduler(rems, newFakeDevices(), &fakePets{}, push)
	st := s.RunOnce(context.Background())

	assert.Equal(t, Stats{Processed: 1, Skipped: 1}, st)
	assert.Empty(t, push.messages)
	assert.Empty(t, rems.patches)
}

func TestRunOnce_AlreadyNotifiedSkipped(t *testing.T) {
	// Overlapping runs are tolerated because the lastNotifiedAt guard
	// makes re-processing a no-op.
	r := oneShot("rem-1")
	notified := testNow.Add(-time.Minute)
	r.LastNotifiedAt = &notified
	rems := newFakeReminders(r)
	devs := newFakeDevices()
	devs.add("owner-1", "tok-a")
	push := &fakePush{}

	s := newTestScheduler(rems, devs, &fakePets{}, push)
	st := s.RunOnce(context.Background())

	assert.Equal(t, Stats{Processed: 1, Skipped: 1}, st)
	assert.Empty(t, push.messages)
}

func TestRunOnce_StaleOneShotSkippedButStaleWeeklySent(t *testing.T) {
	stale := oneShot("rem-stale")
	stale.DueDate = testNow.Add(-20 * time.Minute)

	weekly := oneShot("rem-weekly")
	weekly.DueDate = testNow.Add(-20 * time.Minute)
	weekly.RepeatType = models.RepeatWeekly

	rems := newFakeReminders(stale, weekly)
	devs := newFakeDevices()
	devs.add("owner-1", "tok-a")

	s := newTestScheduler(rems, devs, &fakePets{}, &fakePush{})
	st := s.RunOnce(context.Background())

	assert.Equal(t, Stats{Processed: 2, Sent: 1, Skipped: 1}, st)
	_, staleAdvanced := rems.patches[stale.Key()]
	assert.False(t, staleAdvanced)
	_, weeklyAdvanced := rems.patches[weekly.Key()]
	assert.True(t, weeklyAdvanced)
}

func TestRunOnce_PayloadContents(t *testing.T) {
	rems := newFakeReminders(oneShot("rem-1"))
	devs := newFakeDevices()
	devs.add("owner-1", "tok-a")
	push := &fakePush{}

	s := newTestScheduler(rems, devs, &fakePets{names: map[string]string{"pet-1": "Biscuit"}}, push)
	s.RunOnce(context.Background())

	require.Len(t, push.messages, 1)
	msg := push.messages[0]
	assert.Equal(t, "PawTrack · Vaccine Reminder", msg.Title)
	assert.Contains(t, msg.Body, "Biscuit")
	assert.Contains(t, msg.Body, "Rabies booster")
	assert.Equal(t, "reminder", msg.Data["kind"])
	assert.Equal(t, "rem-1", msg.Data["reminderId"])
	assert.Equal(t, "pet-1", msg.Data["petId"])
	assert.Equal(t, models.ReminderTypeVaccine, msg.Data["reminderType"])
	assert.Equal(t, "reminders", msg.Data["screen"])
	assert.Equal(t, [][]string{{"tok-a"}}, push.sentTo)
}

func TestRunOnce_EmptyQueueIsNoOp(t *testing.T) {
	rems := newFakeReminders()
	push := &fakePush{}

	s := newTestScheduler(rems, newFakeDevices(), &fakePets{}, push)
	st := s.RunOnce(context.Background())

	assert.Equal(t, Stats{}, st)
	assert.Empty(t, push.messages)
}

func TestRunOnce_QueryErrorAbortsQuietly(t *testing.T) {
	rems := newFakeReminders()
	rems.findErr = errors.New("index missing")

	s := newTestScheduler(rems, newFakeDevices(), &fakePets{}, &fakePush{})
	st := s.RunOnce(context.Background())

	assert.Equal(t, Stats{}, st)
}

func TestRunOnce_PruneFailureDoesNotFailProcessing(t *testing.T) {
	r := oneShot("rem-1")
	r.RepeatType = models.RepeatWeekly
	rems := newFakeReminders(r)
	devs := newFakeDevices()
	devs.add("owner-1", "tok-live", "tok-dead")
	devs.delErr = errors.New("delete refused")
	push := &fakePush{reports: map[string]*notification.SendReport{
		"rem-1": {SuccessCount: 1, FailureCount: 1, InvalidTokens: []string{"tok-dead"}},
	}}

	s := newTestScheduler(rems, devs, &fakePets{}, push)
	st := s.RunOnce(context.Background())

	// Deletion errors are swallowed; the schedule still advances.
	assert.Equal(t, Stats{Processed: 1, Sent: 1}, st)
	_, ok := rems.patches[r.Key()]
	assert.True(t, ok)
}
