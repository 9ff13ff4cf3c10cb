package appointment

import (
	"time"

	"github.com/BruksfildServices01/barbershop-backend/internal/httperr"
	"github.com/BruksfildServices01/barbershop-backend/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Complete marks the service as done. The timestamp is overwritten with the
// completion moment: from here on it means "occurred at".
func Complete(ap *models.Appointment, value float64, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}
	if value < 0 {
		return httperr.ErrBusiness("invalid_value")
	}

	ap.Status = string(StatusCompleted)
	ap.Value = &value
	ap.ScheduledAt = now
	return nil
}

// Reschedule moves the appointment and re-activates it.
func Reschedule(ap *models.Appointment, newStart time.Time) error {
	if err := CanReschedule(Status(ap.Status)); err != nil {
		return err
	}

	ap.ScheduledAt = newStart
	ap.Status = string(StatusScheduled)
	return nil
}

// MarkPaid settles the payment for a completed service.
func MarkPaid(ap *models.Appointment) error {
	if err := CanPay(ap.PaymentStatus); err != nil {
		return err
	}

	ap.PaymentStatus = PaymentPaid
	return nil
}

// NewWalkIn builds an appointment for a client off the street: no owning
// user, already completed, timestamped now.
func NewWalkIn(barber, clientName, service string, value float64, now time.Time) (*models.Appointment, error) {
	if value < 0 {
		return nil, httperr.ErrBusiness("invalid_value")
	}

	return &models.Appointment{
		Barber:        barber,
		WalkInName:    clientName,
		Service:       service,
		Value:         &value,
		ScheduledAt:   now,
		Status:        string(StatusCompleted),
		PaymentStatus: PaymentPending,
	}, nil
}

// OwnedBy reports whether the appointment belongs to the given client.
// Walk-ins belong to nobody.
func OwnedBy(ap *models.Appointment, clientID uint) bool {
	return ap.ClientID != nil && *ap.ClientID == clientID
}
