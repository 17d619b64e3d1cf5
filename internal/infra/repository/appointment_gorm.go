package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type AppointmentGormRepository struct {
	*Table[models.Appointment]
}

func NewAppointmentGormRepository(db *gorm.DB, n ChangeNotifier) *AppointmentGormRepository {
	return &AppointmentGormRepository{Table: NewTable[models.Appointment](db, "user_appointments", n)}
}

func (r *AppointmentGormRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	return r.Insert(ctx, ap)
}

func (r *AppointmentGormRepository) GetAppointment(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	return r.Get(ctx, id)
}

func (r *AppointmentGormRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Appointment, error) {
	return r.Update(ctx, id, map[string]any{"status": status})
}

func (r *AppointmentGormRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Appointment, error) {
	return r.List(ctx, Query{
		Filters: []Filter{{Column: "user_id", Value: userID}},
		OrderBy: "created_at",
		Desc:    true,
	})
}

func (r *AppointmentGormRepository) ListAll(ctx context.Context) ([]models.Appointment, error) {
	return r.List(ctx, Query{OrderBy: "created_at", Desc: true})
}

func (r *AppointmentGormRepository) ListRecent(ctx context.Context, limit int) ([]models.Appointment, error) {
	return r.List(ctx, Query{OrderBy: "created_at", Desc: true, Limit: limit})
}

// ListForOwner filtra pelo dono da barbearia no servidor, não no cliente.
func (r *AppointmentGormRepository) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Appointment, error) {
	var apps []models.Appointment
	err := r.db.WithContext(ctx).
		Joins("JOIN barbershops ON barbershops.id = user_appointments.barbershop_id").
		Where("barbershops.owner_id = ?", ownerID).
		Order("user_appointments.created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, fmt.Errorf("user_appointments: list for owner: %w", err)
	}
	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
