package shop

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/admin"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-booking/internal/logger"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type SaveShopInput struct {
	Actor  *models.Profile
	ShopID *uuid.UUID // nil = criação

	Data    ShopInput
	Cover   *Upload
	Gallery []Upload
}

// ======================================================
// USE CASE
// ======================================================

type SaveShop struct {
	shops  ShopStore
	images ImageStore
	audit  *audit.Dispatcher
	log    *logger.Logger
}

func NewSaveShop(shops ShopStore, images ImageStore, audit *audit.Dispatcher, log *logger.Logger) *SaveShop {
	return &SaveShop{shops: shops, images: images, audit: audit, log: log.With("shop")}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute cria ou atualiza a loja. Toda verificação acontece antes de
// qualquer upload, então uma criação recusada não escreve nada.
func (uc *SaveShop) Execute(ctx context.Context, in SaveShopInput) (*models.Barbershop, error) {

	// --------------------------------------------------
	// 1️⃣ Permissão / cota
	// --------------------------------------------------
	var shop *models.Barbershop
	if in.ShopID == nil {
		if !admin.IsAdmin(in.Actor) {
			owned, err := uc.shops.CountOwned(ctx, in.Actor.ID)
			if err != nil {
				return nil, err
			}
			if err := admin.CheckShopQuota(in.Actor, owned); err != nil {
				return nil, err
			}
		}
		if in.Cover == nil {
			return nil, ErrCoverRequired
		}
		ownerID := in.Actor.ID
		shop = &models.Barbershop{OwnerID: &ownerID, IsOpen: true, Distance: 1}
	} else {
		existing, err := getShop(ctx, uc.shops, *in.ShopID)
		if err != nil {
			return nil, err
		}
		if err := admin.CanEditShop(in.Actor, existing); err != nil {
			return nil, err
		}
		shop = existing
	}

	// --------------------------------------------------
	// 2️⃣ Validação
	// --------------------------------------------------
	if err := in.Data.Validate(); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Imagens
	// --------------------------------------------------
	image := in.Data.Image
	if image == "" {
		image = shop.Image
	}
	if in.Cover != nil {
		url, err := uc.upload(ctx, *in.Cover)
		if err != nil {
			return nil, err
		}
		image = url
	}

	gallery := []string(shop.Gallery)
	if in.Data.Gallery != nil {
		gallery = append([]string(nil), in.Data.Gallery...)
	}
	for _, f := range in.Gallery {
		url, err := uc.upload(ctx, f)
		if err != nil {
			return nil, err
		}
		gallery = append(gallery, url)
	}

	// --------------------------------------------------
	// 4️⃣ Persistência
	// --------------------------------------------------
	in.Data.apply(shop)
	shop.Image = image
	shop.Gallery = gallery

	action := "shop_updated"
	var err error
	if in.ShopID == nil {
		action = "shop_created"
		err = uc.shops.CreateShop(ctx, shop)
	} else {
		err = uc.shops.SaveShop(ctx, shop)
	}
	if err != nil {
		uc.log.Error().Err(err).Str("action", action).Msg("shop write failed")
		return nil, err
	}

	uc.dispatch(in.Actor, shop, action, nil)
	return shop, nil
}

func (uc *SaveShop) upload(ctx context.Context, f Upload) (string, error) {
	path, err := uc.images.Upload(ctx, f.Body)
	if err != nil {
		uc.log.Error().Err(err).Str("file", f.Name).Msg("image upload failed")
		return "", err
	}
	return uc.images.PublicURL(path), nil
}

func (uc *SaveShop) dispatch(actor *models.Profile, shop *models.Barbershop, action string, meta any) {
	dispatchShopEvent(uc.audit, actor, shop.ID, action, meta)
}

// ======================================================
// HELPERS
// ======================================================

func getShop(ctx context.Context, shops ShopStore, id uuid.UUID) (*models.Barbershop, error) {
	shop, err := shops.GetShop(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrShopNotFound
	}
	return shop, err
}

func dispatchShopEvent(d *audit.Dispatcher, actor *models.Profile, shopID uuid.UUID, action string, meta any) {
	userID := actor.ID
	d.Dispatch(audit.Event{
		BarbershopID: &shopID,
		UserID:       &userID,
		Action:       action,
		Entity:       "barbershop",
		EntityID:     shopID.String(),
		Metadata:     meta,
	})
}
