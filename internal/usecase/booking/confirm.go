package booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/logger"
	"github.com/BruksfildServices01/barbershop-booking/internal/metrics"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

// ======================================================
// OUTPUT
// ======================================================

type ConfirmResult struct {
	View        *View               `json:"draft"`
	Appointment *models.Appointment `json:"appointment"`
}

// ======================================================
// USE CASE
// ======================================================

type ConfirmBooking struct {
	shops   ShopReader
	drafts  DraftStore
	appts   AppointmentWriter
	audit   *audit.Dispatcher
	metrics *metrics.Metrics
	log     *logger.Logger
	clock   timezone.Clock
}

func NewConfirmBooking(
	shops ShopReader,
	drafts DraftStore,
	appts AppointmentWriter,
	audit *audit.Dispatcher,
	m *metrics.Metrics,
	log *logger.Logger,
	clock timezone.Clock,
) *ConfirmBooking {
	return &ConfirmBooking{
		shops:   shops,
		drafts:  drafts,
		appts:   appts,
		audit:   audit,
		metrics: m,
		log:     log.With("booking"),
		clock:   clock,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute grava exatamente um agendamento "confirmed". Não há verificação de
// disponibilidade: duas reservas no mesmo horário são aceitas, a menos que o
// índice de bloqueio de horário esteja ativo no banco.
func (uc *ConfirmBooking) Execute(
	ctx context.Context,
	draftID uuid.UUID,
	userID *uuid.UUID,
) (*ConfirmResult, error) {

	// --------------------------------------------------
	// 1️⃣ Sessão
	// --------------------------------------------------
	if userID == nil {
		return nil, ErrAuthRequired
	}

	// --------------------------------------------------
	// 2️⃣ Rascunho + barbearia
	// --------------------------------------------------
	w, err := loadDraft(ctx, uc.drafts, draftID)
	if err != nil {
		return nil, err
	}

	shop, err := loadShop(ctx, uc.shops, w.BarbershopID)
	if err != nil {
		return nil, err
	}

	if err := w.BeginSubmit(); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Inserção
	// --------------------------------------------------
	ap := w.Appointment(*userID, shop)

	if err := uc.appts.CreateAppointment(ctx, &ap); err != nil {
		w.Fail()
		uc.metrics.BookingFailed()
		uc.log.Error().Err(err).
			Str("draft_id", w.ID.String()).
			Str("barbershop_id", shop.ID.String()).
			Msg("appointment insert failed")

		if saveErr := uc.drafts.Save(ctx, w); saveErr != nil {
			uc.log.Error().Err(saveErr).Str("draft_id", w.ID.String()).Msg("draft save after failure")
		}

		if httperr.IsUniqueViolation(err) || httperr.IsExclusionConflict(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: %v", ErrBookingFailed, err)
	}

	// --------------------------------------------------
	// 4️⃣ Sucesso
	// --------------------------------------------------
	w.Succeed(ap.ID)
	uc.metrics.BookingCreated()

	if err := uc.drafts.Save(ctx, w); err != nil {
		// o agendamento já existe; o rascunho é descartável
		uc.log.Warn().Err(err).Str("draft_id", w.ID.String()).Msg("draft save after success")
	}

	shopID := shop.ID
	uc.audit.Dispatch(audit.Event{
		BarbershopID: &shopID,
		UserID:       userID,
		Action:       "appointment_created",
		Entity:       "appointment",
		EntityID:     ap.ID.String(),
		Metadata: map[string]any{
			"service":      ap.ServiceName,
			"professional": ap.ProfessionalName,
			"date":         ap.Date,
			"time":         ap.Time,
		},
	})

	return &ConfirmResult{View: newView(w, uc.clock()), Appointment: &ap}, nil
}
