package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

var (
	ErrDraftNotFound = httperr.ErrBusiness("draft_not_found")
	ErrShopNotFound  = httperr.ErrBusiness("barbershop_not_found")
	ErrAuthRequired  = httperr.ErrBusiness("auth_required")
	ErrSlotTaken     = httperr.ErrBusiness("slot_taken")
	ErrBookingFailed = httperr.ErrBusiness("booking_failed")
)

type ShopReader interface {
	GetShop(ctx context.Context, id uuid.UUID) (*models.Barbershop, error)
}

type DraftStore interface {
	Save(ctx context.Context, w *booking.Wizard) error
	Load(ctx context.Context, id uuid.UUID) (*booking.Wizard, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type AppointmentWriter interface {
	CreateAppointment(ctx context.Context, ap *models.Appointment) error
}

// View é o rascunho acompanhado do que o passo atual precisa exibir.
type View struct {
	*booking.Wizard
	Calendar   []booking.CalendarDay `json:"calendar,omitempty"`
	Slots      []string              `json:"slots,omitempty"`
	CanAdvance bool                  `json:"can_advance"`
	CanConfirm bool                  `json:"can_confirm"`
}
