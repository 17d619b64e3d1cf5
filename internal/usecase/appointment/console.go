package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/admin"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type ShopReader interface {
	GetShop(ctx context.Context, id uuid.UUID) (*models.Barbershop, error)
}

type ProfileReader interface {
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Profile, error)
}

type Customer struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type ConsoleAppointment struct {
	models.Appointment
	Customer *Customer `json:"customer,omitempty"`
}

// ======================================================
// LIST (painel)
// ======================================================

type ListConsole struct {
	repo     domain.Repository
	profiles ProfileReader
}

func NewListConsole(repo domain.Repository, profiles ProfileReader) *ListConsole {
	return &ListConsole{repo: repo, profiles: profiles}
}

// Execute filtra no servidor: admins veem tudo, os demais só as próprias lojas.
func (uc *ListConsole) Execute(ctx context.Context, actor *models.Profile) ([]ConsoleAppointment, error) {
	var (
		apps []models.Appointment
		err  error
	)
	if scope := admin.OwnerScope(actor); scope != nil {
		apps, err = uc.repo.ListForOwner(ctx, *scope)
	} else {
		apps, err = uc.repo.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	customers, err := uc.customers(ctx, apps)
	if err != nil {
		return nil, err
	}

	out := make([]ConsoleAppointment, 0, len(apps))
	for _, ap := range apps {
		out = append(out, ConsoleAppointment{Appointment: ap, Customer: customers[ap.UserID]})
	}
	return out, nil
}

func (uc *ListConsole) customers(ctx context.Context, apps []models.Appointment) (map[uuid.UUID]*Customer, error) {
	seen := map[uuid.UUID]bool{}
	var ids []uuid.UUID
	for _, ap := range apps {
		if !seen[ap.UserID] {
			seen[ap.UserID] = true
			ids = append(ids, ap.UserID)
		}
	}

	profiles, err := uc.profiles.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make(map[uuid.UUID]*Customer, len(profiles))
	for _, p := range profiles {
		out[p.ID] = &Customer{FullName: p.FullName, Email: p.Email, Phone: p.Phone}
	}
	return out, nil
}

// ======================================================
// STATUS (painel)
// ======================================================

type SetStatus struct {
	repo  domain.Repository
	shops ShopReader
	audit *audit.Dispatcher
}

func NewSetStatus(repo domain.Repository, shops ShopReader, audit *audit.Dispatcher) *SetStatus {
	return &SetStatus{repo: repo, shops: shops, audit: audit}
}

// Execute aceita só "confirmed" e "cancelled"/"canceled".
func (uc *SetStatus) Execute(ctx context.Context, actor *models.Profile, appointmentID uuid.UUID, status string) (*models.Appointment, error) {
	target, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	ap, err := getAppointment(ctx, uc.repo, appointmentID)
	if err != nil {
		return nil, err
	}

	if !admin.IsAdmin(actor) {
		shop, err := uc.shops.GetShop(ctx, ap.BarbershopID)
		if err != nil {
			return nil, ErrNotFound
		}
		if err := admin.CanEditShop(actor, shop); err != nil {
			return nil, ErrNotFound
		}
	}

	previous := ap.Status
	if err := domain.SetStatusByShop(normalized(ap), target); err != nil {
		return nil, err
	}

	updated, err := uc.repo.UpdateStatus(ctx, ap.ID, ap.Status)
	if err != nil {
		return nil, err
	}

	shopID := updated.BarbershopID
	actorID := actor.ID
	uc.audit.Dispatch(audit.Event{
		BarbershopID: &shopID,
		UserID:       &actorID,
		Action:       "appointment_status_changed",
		Entity:       "appointment",
		EntityID:     updated.ID.String(),
		Metadata:     map[string]string{"from": previous, "to": updated.Status},
	})
	return updated, nil
}
