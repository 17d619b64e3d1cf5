package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type ProfileGormRepository struct {
	*Table[models.Profile]
}

func NewProfileGormRepository(db *gorm.DB, n ChangeNotifier) *ProfileGormRepository {
	return &ProfileGormRepository{Table: NewTable[models.Profile](db, "profiles", n)}
}

func (r *ProfileGormRepository) GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	return r.Get(ctx, id)
}

func (r *ProfileGormRepository) FindByEmail(ctx context.Context, email string) (*models.Profile, error) {
	var p models.Profile
	err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("profiles: find by email: %w", err)
	}
	return &p, nil
}

func (r *ProfileGormRepository) CreateProfile(ctx context.Context, p *models.Profile) error {
	return r.Insert(ctx, p)
}

func (r *ProfileGormRepository) UpdateProfile(ctx context.Context, id uuid.UUID, fields map[string]any) (*models.Profile, error) {
	return r.Update(ctx, id, fields)
}

func (r *ProfileGormRepository) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	return r.List(ctx, Query{OrderBy: "updated_at", Desc: true})
}

func (r *ProfileGormRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Profile, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []models.Profile
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("profiles: list by ids: %w", err)
	}
	return out, nil
}
