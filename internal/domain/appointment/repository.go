package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type Repository interface {
	// -------- Create --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Read --------
	GetAppointment(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Appointment, error)

	ListForUser(
		ctx context.Context,
		userID uuid.UUID,
	) ([]models.Appointment, error)

	ListForOwner(
		ctx context.Context,
		ownerID uuid.UUID,
	) ([]models.Appointment, error)

	ListAll(
		ctx context.Context,
	) ([]models.Appointment, error)

	// -------- State change --------
	UpdateStatus(
		ctx context.Context,
		id uuid.UUID,
		status string,
	) (*models.Appointment, error)
}
