package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barbershop-backend/internal/models"
)

type Repository interface {
	// -------- Appointment (create / state change) --------
	Create(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	Update(
		ctx context.Context,
		ap *models.Appointment,
	) error

	Delete(
		ctx context.Context,
		id uint,
	) error

	// -------- Listings --------
	ListForClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Appointment, error)

	ListBarberAgenda(
		ctx context.Context,
		barber string,
		from time.Time,
	) ([]models.Appointment, error)

	ListScheduledBetween(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListPendingPayments(
		ctx context.Context,
	) ([]models.Appointment, error)

	// -------- Stats --------
	CountCompletedBetween(
		ctx context.Context,
		barber string,
		start time.Time,
		end time.Time,
	) (int64, error)
}
