package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type ShopGormRepository struct {
	*Table[models.Barbershop]
}

func NewShopGormRepository(db *gorm.DB, n ChangeNotifier) *ShopGormRepository {
	return &ShopGormRepository{Table: NewTable[models.Barbershop](db, "barbershops", n)}
}

// ListByRating é a vitrine pública: todas as lojas, melhor avaliadas primeiro.
func (r *ShopGormRepository) ListByRating(ctx context.Context) ([]models.Barbershop, error) {
	return r.List(ctx, Query{OrderBy: "rating", Desc: true})
}

// ListForConsole devolve todas as lojas, ou só as do dono quando ownerID != nil.
func (r *ShopGormRepository) ListForConsole(ctx context.Context, ownerID *uuid.UUID) ([]models.Barbershop, error) {
	q := Query{OrderBy: "created_at", Desc: true}
	if ownerID != nil {
		q.Filters = []Filter{{Column: "owner_id", Value: *ownerID}}
	}
	return r.List(ctx, q)
}

func (r *ShopGormRepository) CountOwned(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	return r.Count(ctx, []Filter{{Column: "owner_id", Value: ownerID}})
}

func (r *ShopGormRepository) GetShop(ctx context.Context, id uuid.UUID) (*models.Barbershop, error) {
	return r.Get(ctx, id)
}

func (r *ShopGormRepository) CreateShop(ctx context.Context, shop *models.Barbershop) error {
	return r.Insert(ctx, shop)
}

func (r *ShopGormRepository) SaveShop(ctx context.Context, shop *models.Barbershop) error {
	return r.Save(ctx, shop)
}

func (r *ShopGormRepository) DeleteShop(ctx context.Context, id uuid.UUID) error {
	return r.Delete(ctx, id)
}
