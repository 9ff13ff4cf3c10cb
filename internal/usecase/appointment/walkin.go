package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbershop-backend/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-backend/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-backend/internal/models"
	"github.com/BruksfildServices01/barbershop-backend/internal/timezone"
)

type RegisterWalkIn struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRegisterWalkIn(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RegisterWalkIn {
	return &RegisterWalkIn{
		repo:  repo,
		audit: audit,
	}
}

func (uc *RegisterWalkIn) Execute(
	ctx context.Context,
	barberID uint,
	barberName string,
	clientName string,
	service string,
	value float64,
) (*models.Appointment, error) {

	ap, err := domain.NewWalkIn(barberName, clientName, service, value, timezone.Now())
	if err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &barberID,
		Action:   "walkin_registered",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"value": value},
	})

	return ap, nil
}
