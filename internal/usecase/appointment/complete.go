package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbershop-backend/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-backend/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-backend/internal/httperr"
	"github.com/BruksfildServices01/barbershop-backend/internal/models"
	"github.com/BruksfildServices01/barbershop-backend/internal/timezone"
)

type CompleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCompleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute closes the service. Only the barber named on the appointment may
// complete it, and only once.
func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	barberID uint,
	barberName string,
	appointmentID uint,
	value float64,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if ap.Barber != barberName {
		return nil, httperr.ErrBusiness("not_owner")
	}

	now := timezone.Now()
	if err := domain.Complete(ap, value, now); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &barberID,
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"value": value},
	})

	return ap, nil
}
