package appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

var (
	ErrNotFound   = httperr.ErrBusiness("appointment_not_found")
	ErrInvalidTab = httperr.ErrBusiness("invalid_tab")
)

const (
	TabUpcoming  = "upcoming"
	TabCompleted = "completed"
)

// ======================================================
// LIST (cliente)
// ======================================================

type ListMine struct {
	repo domain.Repository
}

func NewListMine(repo domain.Repository) *ListMine {
	return &ListMine{repo: repo}
}

// Execute: "upcoming" = pending|confirmed, "completed" = completed.
func (uc *ListMine) Execute(ctx context.Context, userID uuid.UUID, tab string) ([]models.Appointment, error) {
	if tab == "" {
		tab = TabUpcoming
	}
	if tab != TabUpcoming && tab != TabCompleted {
		return nil, ErrInvalidTab
	}

	all, err := uc.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]models.Appointment, 0, len(all))
	for _, ap := range all {
		st, err := domain.ParseStatus(ap.Status)
		if err != nil {
			continue
		}
		if (tab == TabUpcoming && domain.IsUpcoming(st)) ||
			(tab == TabCompleted && st == domain.StatusCompleted) {
			out = append(out, ap)
		}
	}
	return out, nil
}

// ======================================================
// CANCEL (cliente)
// ======================================================

type CancelMine struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelMine(repo domain.Repository, audit *audit.Dispatcher) *CancelMine {
	return &CancelMine{repo: repo, audit: audit}
}

func (uc *CancelMine) Execute(ctx context.Context, userID, appointmentID uuid.UUID) (*models.Appointment, error) {
	ap, err := getAppointment(ctx, uc.repo, appointmentID)
	if err != nil {
		return nil, err
	}
	if ap.UserID != userID {
		// não revela agendamentos de outros usuários
		return nil, ErrNotFound
	}

	if err := domain.CancelByUser(normalized(ap)); err != nil {
		return nil, err
	}

	updated, err := uc.repo.UpdateStatus(ctx, ap.ID, ap.Status)
	if err != nil {
		return nil, err
	}

	shopID := updated.BarbershopID
	uc.audit.Dispatch(audit.Event{
		BarbershopID: &shopID,
		UserID:       &userID,
		Action:       "appointment_cancelled",
		Entity:       "appointment",
		EntityID:     updated.ID.String(),
	})
	return updated, nil
}

// ======================================================
// HELPERS
// ======================================================

func getAppointment(ctx context.Context, repo domain.Repository, id uuid.UUID) (*models.Appointment, error) {
	ap, err := repo.GetAppointment(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return ap, nil
}

// normalized converte grafias antigas ("cancelled") para a canônica.
func normalized(ap *models.Appointment) *models.Appointment {
	if st, err := domain.ParseStatus(ap.Status); err == nil {
		ap.Status = string(st)
	}
	return ap
}
