package notification

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/injoybeauty/salon-api/internal/model"
)

type fakeNotificationRepo struct {
	created []*model.Notification
}

func (r *fakeNotificationRepo) Create(ctx context.Context, n *model.Notification) error {
	r.created = append(r.created, n)
	return nil
}

func (r *fakeNotificationRepo) ListDue(ctx context.Context, limit int, now time.Time) ([]*model.Notification, error) {
	return nil, nil
}

func (r *fakeNotificationRepo) Update(ctx context.Context, n *model.Notification) error {
	return nil
}

func TestEnqueueContactNotification(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewService(repo, "owner@injoybeauty.com", "InJoy Beauty")

	id, err := svc.EnqueueContactNotification(context.Background(), &model.ContactMessage{
		Name:    "Priya Shah",
		Email:   "priya@example.com",
		Subject: "Wedding updo",
		Message: "Do you take bridal party bookings?",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	require.Len(t, repo.created, 1)
	n := repo.created[0]
	assert.Equal(t, "owner@injoybeauty.com", n.Recipient)
	assert.Equal(t, "priya@example.com", n.ReplyTo)
	assert.Equal(t, "New Contact Message from Priya Shah: Wedding updo", n.Subject)
	assert.Equal(t, model.NotificationStatusPending, n.Status)
	assert.Contains(t, n.TextBody, "Do you take bridal party bookings?")
	assert.Contains(t, n.HTMLBody, "InJoy Beauty")
}

func TestEnqueueIntakeNotification(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewService(repo, "owner@injoybeauty.com", "InJoy Beauty")

	form := &model.IntakeForm{
		ClientName:       "Morgan Lee",
		Email:            "morgan@example.com",
		ClientType:       "child",
		ServiceLocation:  "in-salon",
		SensitiveToNoise: true,
		EnjoysFidgetToys: true,
		UsesWheelchair:   true,
	}

	_, err := svc.EnqueueIntakeNotification(context.Background(), form)
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	n := repo.created[0]
	assert.Equal(t, "New Intake Form: Morgan Lee", n.Subject)
	assert.Equal(t, "morgan@example.com", n.ReplyTo)
	assert.Contains(t, n.TextBody, "Sensitive to loud noise")
	assert.Contains(t, n.TextBody, "Enjoys fidget toys")
	assert.Contains(t, n.TextBody, "Uses wheelchair")
	assert.Contains(t, n.HTMLBody, "Morgan Lee")
}

func TestRenderIntake_EmptyOptionalsUsePlaceholders(t *testing.T) {
	form := &model.IntakeForm{
		ClientName:      "Morgan Lee",
		Email:           "morgan@example.com",
		ClientType:      "adult",
		ServiceLocation: "in-salon",
	}

	_, textBody, htmlBody, err := renderIntake(form, "InJoy Beauty")
	require.NoError(t, err)

	assert.Contains(t, textBody, "Phone: Not provided")
	assert.Contains(t, textBody, "Address: N/A (In-salon)")
	assert.Contains(t, textBody, "None selected")
	assert.Contains(t, htmlBody, "None selected")
}

func TestRenderContact_SubjectOmittedWhenEmpty(t *testing.T) {
	subject, textBody, _, err := renderContact(&model.ContactMessage{
		Name:    "Priya Shah",
		Email:   "priya@example.com",
		Message: "Hello",
	}, "InJoy Beauty")
	require.NoError(t, err)

	assert.Equal(t, "New Contact Message from Priya Shah", subject)
	assert.NotContains(t, textBody, "Subject:")
}

func TestRenderContact_EscapesHTML(t *testing.T) {
	_, _, htmlBody, err := renderContact(&model.ContactMessage{
		Name:    "Priya Shah",
		Email:   "priya@example.com",
		Message: `<script>alert("x")</script>`,
	}, "InJoy Beauty")
	require.NoError(t, err)

	assert.NotContains(t, htmlBody, "<script>")
}
