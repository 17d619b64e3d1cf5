package shop

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

var (
	ErrShopNotFound         = httperr.ErrBusiness("barbershop_not_found")
	ErrServiceNotFound      = httperr.ErrBusiness("service_not_found")
	ErrCoverRequired        = httperr.ErrBusiness("cover_required")
	ErrConfirmationRequired = httperr.ErrBusiness("confirmation_required")
	ErrNameRequired         = httperr.ErrBusiness("name_required")
	ErrInvalidService       = httperr.ErrBusiness("invalid_service")
	ErrInvalidDuration      = httperr.ErrBusiness("invalid_duration")
	ErrInvalidCoordinates   = httperr.ErrBusiness("invalid_coordinates")
)

type ShopStore interface {
	GetShop(ctx context.Context, id uuid.UUID) (*models.Barbershop, error)
	CreateShop(ctx context.Context, shop *models.Barbershop) error
	SaveShop(ctx context.Context, shop *models.Barbershop) error
	DeleteShop(ctx context.Context, id uuid.UUID) error
	CountOwned(ctx context.Context, ownerID uuid.UUID) (int64, error)
	ListForConsole(ctx context.Context, ownerID *uuid.UUID) ([]models.Barbershop, error)
}

type ImageStore interface {
	Upload(ctx context.Context, body io.Reader) (string, error)
	PublicURL(path string) string
}

// Upload é um arquivo vindo do formulário multipart.
type Upload struct {
	Name string
	Body io.Reader
}
