package shop

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/admin"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// ======================================================
// LIST
// ======================================================

type ListConsoleShops struct {
	shops ShopStore
}

func NewListConsoleShops(shops ShopStore) *ListConsoleShops {
	return &ListConsoleShops{shops: shops}
}

// Execute devolve todas as lojas para admins e só as próprias para os demais.
func (uc *ListConsoleShops) Execute(ctx context.Context, actor *models.Profile) ([]models.Barbershop, error) {
	return uc.shops.ListForConsole(ctx, admin.OwnerScope(actor))
}

// ======================================================
// DELETE
// ======================================================

type DeleteShop struct {
	shops ShopStore
	audit *audit.Dispatcher
}

func NewDeleteShop(shops ShopStore, audit *audit.Dispatcher) *DeleteShop {
	return &DeleteShop{shops: shops, audit: audit}
}

func (uc *DeleteShop) Execute(ctx context.Context, actor *models.Profile, id uuid.UUID, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}

	shop, err := getShop(ctx, uc.shops, id)
	if err != nil {
		return err
	}
	if err := admin.CanEditShop(actor, shop); err != nil {
		return err
	}

	if err := uc.shops.DeleteShop(ctx, id); err != nil {
		return err
	}

	dispatchShopEvent(uc.audit, actor, id, "shop_deleted", map[string]any{"name": shop.Name})
	return nil
}

// ======================================================
// SERVICES
// ======================================================

type ManageServices struct {
	shops ShopStore
	audit *audit.Dispatcher
}

func NewManageServices(shops ShopStore, audit *audit.Dispatcher) *ManageServices {
	return &ManageServices{shops: shops, audit: audit}
}

func (uc *ManageServices) Add(ctx context.Context, actor *models.Profile, shopID uuid.UUID, in ServiceInput) (*models.Barbershop, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	shop, err := uc.editable(ctx, actor, shopID)
	if err != nil {
		return nil, err
	}

	svc := in.Build()
	if _, exists := shop.FindService(svc.ID); exists {
		svc.ID = uuid.NewString()
	}
	shop.Services = append(shop.Services, svc)

	if err := uc.shops.SaveShop(ctx, shop); err != nil {
		return nil, err
	}

	dispatchShopEvent(uc.audit, actor, shop.ID, "service_added", map[string]any{"service_id": svc.ID, "name": svc.Name})
	return shop, nil
}

func (uc *ManageServices) Remove(ctx context.Context, actor *models.Profile, shopID uuid.UUID, serviceID string) (*models.Barbershop, error) {
	shop, err := uc.editable(ctx, actor, shopID)
	if err != nil {
		return nil, err
	}

	kept := make([]models.Service, 0, len(shop.Services))
	for _, s := range shop.Services {
		if s.ID != serviceID {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(shop.Services) {
		return nil, ErrServiceNotFound
	}
	shop.Services = kept

	if err := uc.shops.SaveShop(ctx, shop); err != nil {
		return nil, err
	}

	dispatchShopEvent(uc.audit, actor, shop.ID, "service_removed", map[string]any{"service_id": serviceID})
	return shop, nil
}

func (uc *ManageServices) editable(ctx context.Context, actor *models.Profile, shopID uuid.UUID) (*models.Barbershop, error) {
	shop, err := getShop(ctx, uc.shops, shopID)
	if err != nil {
		return nil, err
	}
	if err := admin.CanEditShop(actor, shop); err != nil {
		return nil, err
	}
	return shop, nil
}
