package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/injoybeauty/salon-api/internal/email"
	"github.com/injoybeauty/salon-api/internal/model"
	"github.com/injoybeauty/salon-api/pkg/logger"
)

type fakeNotificationRepo struct {
	rows map[uuid.UUID]*model.Notification
}

func newFakeNotificationRepo(rows ...*model.Notification) *fakeNotificationRepo {
	r := &fakeNotificationRepo{rows: make(map[uuid.UUID]*model.Notification)}
	for _, row := range rows {
		r.rows[row.ID] = row
	}
	return r
}

func (r *fakeNotificationRepo) Create(ctx context.Context, n *model.Notification) error {
	r.rows[n.ID] = n
	return nil
}

func (r *fakeNotificationRepo) ListDue(ctx context.Context, limit int, now time.Time) ([]*model.Notification, error) {
	var due []*model.Notification
	for _, n := range r.rows {
		if len(due) == limit {
			break
		}
		if n.Status != model.NotificationStatusPending && n.Status != model.NotificationStatusRetrying {
			continue
		}
		if n.NextRetryAt != nil && n.NextRetryAt.After(now) {
			continue
		}
		due = append(due, n)
	}
	return due, nil
}

func (r *fakeNotificationRepo) Update(ctx context.Context, n *model.Notification) error {
	r.rows[n.ID] = n
	return nil
}

type fakeSender struct {
	configured bool
	sendErr    error
	sent       []*email.Message
}

func (s *fakeSender) Send(ctx context.Context, msg *email.Message) error {
	if s.sendErr != nil {
		return s.sendErr
	}
	s.sent = append(s.sent, msg)
	return nil
}

func (s *fakeSender) Configured() bool { return s.configured }

func pendingNotification() *model.Notification {
	return &model.Notification{
		ID:        uuid.New(),
		Recipient: "owner@example.com",
		Subject:   "New Client Form: Dana Reyes",
		TextBody:  "body",
		HTMLBody:  "<p>body</p>",
		Status:    model.NotificationStatusPending,
	}
}

func testNotifier(repo *fakeNotificationRepo, sender email.Sender) *Notifier {
	return NewNotifier(repo, sender, NotifierConfig{
		BatchSize:     10,
		PollInterval:  time.Second,
		RetryAttempts: 3,
		RetryDelay:    time.Minute,
	}, logger.NewLogger(nil))
}

func TestProcessBatch_DeliversAndMarksSent(t *testing.T) {
	n := pendingNotification()
	repo := newFakeNotificationRepo(n)
	sender := &fakeSender{configured: true}

	err := testNotifier(repo, sender).ProcessBatch(context.Background())
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "owner@example.com", sender.sent[0].To)
	assert.Equal(t, model.NotificationStatusSent, repo.rows[n.ID].Status)
	assert.NotNil(t, repo.rows[n.ID].SentAt)
}

func TestProcessBatch_SkipsWhenSenderUnconfigured(t *testing.T) {
	n := pendingNotification()
	repo := newFakeNotificationRepo(n)
	sender := &fakeSender{configured: false}

	err := testNotifier(repo, sender).ProcessBatch(context.Background())
	require.NoError(t, err)

	assert.Empty(t, sender.sent)
	assert.Equal(t, model.NotificationStatusSkipped, repo.rows[n.ID].Status)
}

func TestProcessBatch_SchedulesRetryOnFailure(t *testing.T) {
	n := pendingNotification()
	repo := newFakeNotificationRepo(n)
	sender := &fakeSender{configured: true, sendErr: errors.New("dial tcp: connection refused")}

	err := testNotifier(repo, sender).ProcessBatch(context.Background())
	require.NoError(t, err)

	got := repo.rows[n.ID]
	assert.Equal(t, model.NotificationStatusRetrying, got.Status)
	assert.Equal(t, 1, got.RetryCount)
	require.NotNil(t, got.NextRetryAt)
	assert.True(t, got.NextRetryAt.After(time.Now()))
	require.NotNil(t, got.LastError)
	assert.Contains(t, *got.LastError, "connection refused")
}

func TestProcessBatch_GivesUpAfterAttemptBudget(t *testing.T) {
	n := pendingNotification()
	n.RetryCount = 2
	n.Status = model.NotificationStatusRetrying
	repo := newFakeNotificationRepo(n)
	sender := &fakeSender{configured: true, sendErr: errors.New("550 mailbox unavailable")}

	err := testNotifier(repo, sender).ProcessBatch(context.Background())
	require.NoError(t, err)

	got := repo.rows[n.ID]
	assert.Equal(t, model.NotificationStatusFailed, got.Status)
	assert.Equal(t, 3, got.RetryCount)
	assert.Nil(t, got.NextRetryAt)
}

func TestProcessBatch_LeavesFutureRetriesAlone(t *testing.T) {
	n := pendingNotification()
	n.Status = model.NotificationStatusRetrying
	next := time.Now().Add(time.Hour)
	n.NextRetryAt = &next
	repo := newFakeNotificationRepo(n)
	sender := &fakeSender{configured: true}

	err := testNotifier(repo, sender).ProcessBatch(context.Background())
	require.NoError(t, err)

	assert.Empty(t, sender.sent)
	assert.Equal(t, model.NotificationStatusRetrying, repo.rows[n.ID].Status)
}

func TestNewNotifier_RejectsInvalidConfig(t *testing.T) {
	repo := newFakeNotificationRepo()
	sender := &fakeSender{}
	log := logger.NewLogger(nil)

	assert.Panics(t, func() {
		NewNotifier(repo, sender, NotifierConfig{BatchSize: 0, PollInterval: time.Second, RetryAttempts: 3, RetryDelay: time.Minute}, log)
	})
	assert.Panics(t, func() {
		NewNotifier(repo, sender, NotifierConfig{BatchSize: 10, PollInterval: 0, RetryAttempts: 3, RetryDelay: time.Minute}, log)
	})
}
