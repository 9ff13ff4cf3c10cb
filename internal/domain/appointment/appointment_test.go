package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-backend/internal/httperr"
	"github.com/BruksfildServices01/barbershop-backend/internal/models"
)

func TestComplete(t *testing.T) {
	now := time.Now()
	ap := &models.Appointment{
		Status:      string(StatusScheduled),
		ScheduledAt: now.Add(2 * time.Hour),
	}

	require.NoError(t, Complete(ap, 50, now))
	assert.Equal(t, string(StatusCompleted), ap.Status)
	require.NotNil(t, ap.Value)
	assert.Equal(t, 50.0, *ap.Value)
	assert.True(t, ap.ScheduledAt.Equal(now))

	err := Complete(ap, 60, now)
	require.Error(t, err)
	assert.Equal(t, "already_completed", httperr.BusinessCode(err))
}

func TestCompleteRejectsNegativeValue(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusScheduled)}

	err := Complete(ap, -1, time.Now())
	require.Error(t, err)
	assert.Equal(t, "invalid_value", httperr.BusinessCode(err))
	assert.Equal(t, string(StatusScheduled), ap.Status)
}

func TestRescheduleReactivates(t *testing.T) {
	newStart := time.Now().Add(72 * time.Hour)
	ap := &models.Appointment{Status: string(StatusCancelled)}

	require.NoError(t, Reschedule(ap, newStart))
	assert.Equal(t, string(StatusScheduled), ap.Status)
	assert.True(t, ap.ScheduledAt.Equal(newStart))
}

func TestRescheduleCompletedIsFinal(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusCompleted)}

	err := Reschedule(ap, time.Now().Add(time.Hour))
	require.Error(t, err)
	assert.Equal(t, "invalid_state", httperr.BusinessCode(err))
}

func TestMarkPaid(t *testing.T) {
	ap := &models.Appointment{PaymentStatus: PaymentPending}

	require.NoError(t, MarkPaid(ap))
	assert.Equal(t, PaymentPaid, ap.PaymentStatus)

	err := MarkPaid(ap)
	require.Error(t, err)
	assert.Equal(t, "already_paid", httperr.BusinessCode(err))
}

func TestNewWalkIn(t *testing.T) {
	now := time.Now()

	ap, err := NewWalkIn("Carlos", "Cliente da Rua", "Barba", 35, now)
	require.NoError(t, err)
	assert.Nil(t, ap.ClientID)
	assert.Equal(t, "Cliente da Rua", ap.WalkInName)
	assert.Equal(t, string(StatusCompleted), ap.Status)
	assert.Equal(t, PaymentPending, ap.PaymentStatus)
	assert.True(t, ap.ScheduledAt.Equal(now))

	_, err = NewWalkIn("Carlos", "Cliente", "Barba", -10, now)
	require.Error(t, err)
	assert.Equal(t, "invalid_value", httperr.BusinessCode(err))
}

func TestOwnedBy(t *testing.T) {
	clientID := uint(7)
	owned := &models.Appointment{ClientID: &clientID}
	walkIn := &models.Appointment{}

	assert.True(t, OwnedBy(owned, 7))
	assert.False(t, OwnedBy(owned, 8))
	assert.False(t, OwnedBy(walkIn, 7))
}
