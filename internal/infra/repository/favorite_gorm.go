package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

const favoritesTable = "user_favorites"

type FavoriteGormRepository struct {
	db       *gorm.DB
	notifier ChangeNotifier
}

func NewFavoriteGormRepository(db *gorm.DB, n ChangeNotifier) *FavoriteGormRepository {
	return &FavoriteGormRepository{db: db, notifier: n}
}

// Toggle insere ou remove o favorito; devolve o novo estado.
func (r *FavoriteGormRepository) Toggle(ctx context.Context, userID, shopID uuid.UUID) (bool, error) {
	var fav models.Favorite
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND barbershop_id = ?", userID, shopID).
		First(&fav).Error

	switch {
	case err == nil:
		if err := r.db.WithContext(ctx).
			Where("user_id = ? AND barbershop_id = ?", userID, shopID).
			Delete(&models.Favorite{}).Error; err != nil {
			return true, fmt.Errorf("%s: delete: %w", favoritesTable, err)
		}
		r.notify(ctx, EventDelete, &fav)
		return false, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		fav = models.Favorite{UserID: userID, BarbershopID: shopID}
		if err := r.db.WithContext(ctx).Create(&fav).Error; err != nil {
			return false, fmt.Errorf("%s: insert: %w", favoritesTable, err)
		}
		r.notify(ctx, EventInsert, &fav)
		return true, nil

	default:
		return false, fmt.Errorf("%s: lookup: %w", favoritesTable, err)
	}
}

func (r *FavoriteGormRepository) ListShopIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&models.Favorite{}).
		Where("user_id = ?", userID).
		Pluck("barbershop_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("%s: list: %w", favoritesTable, err)
	}
	return ids, nil
}

func (r *FavoriteGormRepository) notify(ctx context.Context, kind string, rec any) {
	if r.notifier != nil {
		r.notifier.Notify(ctx, favoritesTable, kind, rec)
	}
}
