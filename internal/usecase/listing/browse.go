package listing

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain/listing"
	"github.com/BruksfildServices01/barbershop-booking/internal/geo"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

var ErrShopNotFound = httperr.ErrBusiness("barbershop_not_found")

type ShopReader interface {
	ListByRating(ctx context.Context) ([]models.Barbershop, error)
	GetShop(ctx context.Context, id uuid.UUID) (*models.Barbershop, error)
}

type Favorites interface {
	Toggle(ctx context.Context, userID, shopID uuid.UUID) (bool, error)
	ListShopIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

// ======================================================
// BROWSE
// ======================================================

type Browse struct {
	shops ShopReader
	favs  Favorites
}

func NewBrowse(shops ShopReader, favs Favorites) *Browse {
	return &Browse{shops: shops, favs: favs}
}

// Execute busca todas as lojas (rating desc), filtra e marca favoritos do usuário.
func (uc *Browse) Execute(ctx context.Context, q listing.Query, userID *uuid.UUID) ([]listing.ShopView, error) {
	shops, err := uc.shops.ListByRating(ctx)
	if err != nil {
		return nil, err
	}

	views := listing.Filter(shops, q)
	if err := uc.markFavorites(ctx, views, userID); err != nil {
		return nil, err
	}
	return views, nil
}

func (uc *Browse) Detail(ctx context.Context, id uuid.UUID, pos *geo.Point, userID *uuid.UUID) (*listing.ShopView, error) {
	shop, err := uc.shops.GetShop(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrShopNotFound
	}
	if err != nil {
		return nil, err
	}

	views := []listing.ShopView{listing.NewView(*shop, pos)}
	if err := uc.markFavorites(ctx, views, userID); err != nil {
		return nil, err
	}
	return &views[0], nil
}

// Favorites lista as lojas favoritas do usuário, na ordem da vitrine.
func (uc *Browse) Favorites(ctx context.Context, userID uuid.UUID, pos *geo.Point) ([]listing.ShopView, error) {
	all, err := uc.Execute(ctx, listing.Query{Position: pos}, &userID)
	if err != nil {
		return nil, err
	}

	out := make([]listing.ShopView, 0)
	for _, v := range all {
		if v.IsFavorite {
			out = append(out, v)
		}
	}
	return out, nil
}

func (uc *Browse) ToggleFavorite(ctx context.Context, userID, shopID uuid.UUID) (bool, error) {
	if _, err := uc.shops.GetShop(ctx, shopID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, ErrShopNotFound
		}
		return false, err
	}
	return uc.favs.Toggle(ctx, userID, shopID)
}

func (uc *Browse) markFavorites(ctx context.Context, views []listing.ShopView, userID *uuid.UUID) error {
	if userID == nil || len(views) == 0 {
		return nil
	}

	ids, err := uc.favs.ListShopIDs(ctx, *userID)
	if err != nil {
		return err
	}
	fav := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		fav[id] = true
	}
	for i := range views {
		views[i].IsFavorite = fav[views[i].ID]
	}
	return nil
}

// ======================================================
// MAP
// ======================================================

type MapLinks struct {
	EmbedURL      string `json:"embed_url"`
	DirectionsURL string `json:"directions_url"`
	PlaceURL      string `json:"place_url"`
	Distance      string `json:"distance_label"`
}

var ErrNoCoordinates = httperr.ErrBusiness("shop_without_coordinates")

// MapFor centraliza no usuário quando há posição, senão na própria loja.
func (uc *Browse) MapFor(ctx context.Context, id uuid.UUID, pos *geo.Point) (*MapLinks, error) {
	v, err := uc.Detail(ctx, id, pos, nil)
	if err != nil {
		return nil, err
	}
	if v.Latitude == nil || v.Longitude == nil {
		return nil, ErrNoCoordinates
	}

	shopPt := geo.Point{Lat: *v.Latitude, Lng: *v.Longitude}
	center := shopPt
	if pos != nil {
		center = *pos
	}

	return &MapLinks{
		EmbedURL:      geo.EmbedURL(center, shopPt, 0),
		DirectionsURL: geo.DirectionsURL(shopPt),
		PlaceURL:      geo.PlaceURL(shopPt),
		Distance:      v.DistanceLabel,
	}, nil
}
