package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbershop-backend/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-backend/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-backend/internal/httperr"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute removes the appointment for good. Only the owning client may do it.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	clientID uint,
	appointmentID uint,
) error {

	ap, err := uc.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return err
	}

	if !domain.OwnedBy(ap, clientID) {
		return httperr.ErrBusiness("not_owner")
	}

	if err := uc.repo.Delete(ctx, ap.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &clientID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return nil
}
