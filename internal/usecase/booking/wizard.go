package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/drafts"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

// ======================================================
// USE CASE
// ======================================================

// Wizard conduz os passos do rascunho. Cada chamada carrega, altera e regrava.
type Wizard struct {
	shops  ShopReader
	drafts DraftStore
	clock  timezone.Clock
}

func NewWizard(shops ShopReader, drafts DraftStore, clock timezone.Clock) *Wizard {
	return &Wizard{shops: shops, drafts: drafts, clock: clock}
}

func (uc *Wizard) Start(ctx context.Context, shopID uuid.UUID) (*View, error) {
	if _, err := loadShop(ctx, uc.shops, shopID); err != nil {
		return nil, err
	}

	w := booking.New(shopID, uc.clock())
	if err := uc.drafts.Save(ctx, w); err != nil {
		return nil, err
	}
	return uc.view(w), nil
}

func (uc *Wizard) Get(ctx context.Context, id uuid.UUID) (*View, error) {
	w, err := loadDraft(ctx, uc.drafts, id)
	if err != nil {
		return nil, err
	}
	return uc.view(w), nil
}

func (uc *Wizard) SelectService(ctx context.Context, id uuid.UUID, serviceID string) (*View, error) {
	return uc.mutateWithShop(ctx, id, func(w *booking.Wizard, shop *models.Barbershop) error {
		return w.SelectService(shop, serviceID)
	})
}

func (uc *Wizard) SelectProfessional(ctx context.Context, id uuid.UUID, professionalID string) (*View, error) {
	return uc.mutateWithShop(ctx, id, func(w *booking.Wizard, shop *models.Barbershop) error {
		return w.SelectProfessional(shop, professionalID)
	})
}

func (uc *Wizard) ShowMonth(ctx context.Context, id uuid.UUID, offset int) (*View, error) {
	return uc.mutate(ctx, id, func(w *booking.Wizard) error {
		return w.ShowMonth(offset, uc.clock())
	})
}

func (uc *Wizard) SelectDate(ctx context.Context, id uuid.UUID, isoDay string) (*View, error) {
	return uc.mutate(ctx, id, func(w *booking.Wizard) error {
		return w.SelectDate(isoDay, uc.clock())
	})
}

func (uc *Wizard) SelectTime(ctx context.Context, id uuid.UUID, slot string) (*View, error) {
	return uc.mutate(ctx, id, func(w *booking.Wizard) error {
		return w.SelectTime(slot)
	})
}

func (uc *Wizard) Next(ctx context.Context, id uuid.UUID) (*View, error) {
	return uc.mutate(ctx, id, func(w *booking.Wizard) error { return w.Next() })
}

// Back a partir do passo 1 aborta e descarta o rascunho.
func (uc *Wizard) Back(ctx context.Context, id uuid.UUID) (*View, error) {
	w, err := loadDraft(ctx, uc.drafts, id)
	if err != nil {
		return nil, err
	}
	if err := w.Back(); err != nil {
		return nil, err
	}

	if w.Step == booking.StepAborted {
		err = uc.drafts.Delete(ctx, id)
	} else {
		err = uc.drafts.Save(ctx, w)
	}
	if err != nil {
		return nil, err
	}
	return uc.view(w), nil
}

// ======================================================
// HELPERS
// ======================================================

// mutate só regrava o rascunho quando fn aceita a transição.
func (uc *Wizard) mutate(ctx context.Context, id uuid.UUID, fn func(*booking.Wizard) error) (*View, error) {
	w, err := loadDraft(ctx, uc.drafts, id)
	if err != nil {
		return nil, err
	}
	if err := fn(w); err != nil {
		return nil, err
	}
	if err := uc.drafts.Save(ctx, w); err != nil {
		return nil, err
	}
	return uc.view(w), nil
}

func (uc *Wizard) mutateWithShop(ctx context.Context, id uuid.UUID, fn func(*booking.Wizard, *models.Barbershop) error) (*View, error) {
	return uc.mutate(ctx, id, func(w *booking.Wizard) error {
		shop, err := loadShop(ctx, uc.shops, w.BarbershopID)
		if err != nil {
			return err
		}
		return fn(w, shop)
	})
}

func (uc *Wizard) view(w *booking.Wizard) *View {
	return newView(w, uc.clock())
}

func newView(w *booking.Wizard, now time.Time) *View {
	v := &View{
		Wizard:     w,
		CanAdvance: w.CanAdvance(),
		CanConfirm: w.CanConfirm(),
	}
	if w.Step == booking.StepSelectingDateTime {
		v.Calendar = w.Calendar(now)
		v.Slots = booking.TimeSlots
	}
	return v
}

func loadDraft(ctx context.Context, store DraftStore, id uuid.UUID) (*booking.Wizard, error) {
	w, err := store.Load(ctx, id)
	if errors.Is(err, drafts.ErrNotFound) {
		return nil, ErrDraftNotFound
	}
	return w, err
}

func loadShop(ctx context.Context, shops ShopReader, id uuid.UUID) (*models.Barbershop, error) {
	shop, err := shops.GetShop(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrShopNotFound
	}
	return shop, err
}
