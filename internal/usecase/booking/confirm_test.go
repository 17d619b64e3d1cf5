package booking_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/logger"
	"github.com/BruksfildServices01/barbershop-booking/internal/metrics"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/usecase/booking"
)

type nopSink struct{}

func (nopSink) Log(context.Context, audit.Event) error { return nil }

type fixture struct {
	shop    *models.Barbershop
	wizard  *booking.Wizard
	confirm *booking.ConfirmBooking
	drafts  *memDrafts
	appts   *memAppointments
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	shop := carlosShop()
	shops := memShops{shop.ID: shop}
	store := newMemDrafts()
	appts := &memAppointments{}

	dispatcher := audit.NewDispatcher(nopSink{}, logger.Nop())
	t.Cleanup(dispatcher.Close)

	return &fixture{
		shop:    shop,
		wizard:  booking.NewWizard(shops, store, clock),
		confirm: booking.NewConfirmBooking(shops, store, appts, dispatcher, metrics.New(), logger.Nop(), clock),
		drafts:  store,
		appts:   appts,
	}
}

// ready leva um rascunho até data/hora escolhidas.
func (f *fixture) ready(t *testing.T, professional, date, slot string) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	v, err := f.wizard.Start(ctx, f.shop.ID)
	require.NoError(t, err)
	id := v.ID

	_, err = f.wizard.SelectService(ctx, id, "s1")
	require.NoError(t, err)
	_, err = f.wizard.Next(ctx, id)
	require.NoError(t, err)
	_, err = f.wizard.SelectProfessional(ctx, id, professional)
	require.NoError(t, err)
	_, err = f.wizard.Next(ctx, id)
	require.NoError(t, err)
	_, err = f.wizard.SelectDate(ctx, id, date)
	require.NoError(t, err)
	v, err = f.wizard.SelectTime(ctx, id, slot)
	require.NoError(t, err)
	require.True(t, v.CanConfirm)

	return id
}

func TestConfirm_RequiresSession(t *testing.T) {
	f := newFixture(t)
	id := f.ready(t, "p1", "2025-10-24", "14:30")

	_, err := f.confirm.Execute(context.Background(), id, nil)

	assert.True(t, httperr.IsBusiness(err, "auth_required"))
	assert.Empty(t, f.appts.items)

	w, err := f.drafts.Load(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.StepSelectingDateTime, w.Step)
}

func TestConfirm_CreatesConfirmedAppointment(t *testing.T) {
	f := newFixture(t)
	id := f.ready(t, domain.AnyProfessional, "2025-10-24", "09:00")
	user := uuid.New()

	res, err := f.confirm.Execute(context.Background(), id, &user)
	require.NoError(t, err)

	require.Len(t, f.appts.items, 1)
	ap := f.appts.items[0]
	assert.Equal(t, "confirmed", ap.Status)
	assert.Equal(t, user, ap.UserID)
	assert.Equal(t, "any", ap.ProfessionalID)
	assert.Equal(t, "Próximo Livre", ap.ProfessionalName)
	assert.Equal(t, "24/10/2025", ap.Date)

	assert.Equal(t, domain.StepSuccess, res.View.Step)
	require.NotNil(t, res.View.AppointmentID)
	assert.Equal(t, ap.ID, *res.View.AppointmentID)

	_, err = f.confirm.Execute(context.Background(), id, &user)
	assert.True(t, httperr.IsBusiness(err, "booking_finished"))
	assert.Len(t, f.appts.items, 1)
}

func TestConfirm_IncompleteDraft(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := uuid.New()

	v, err := f.wizard.Start(ctx, f.shop.ID)
	require.NoError(t, err)

	_, err = f.confirm.Execute(ctx, v.ID, &user)

	assert.True(t, httperr.IsBusiness(err, "booking_incomplete"))
	assert.Empty(t, f.appts.items)
}

func TestConfirm_StorageFailureReturnsToDateTime(t *testing.T) {
	f := newFixture(t)
	f.appts.err = errDB
	id := f.ready(t, "p1", "2025-10-24", "14:30")
	user := uuid.New()

	_, err := f.confirm.Execute(context.Background(), id, &user)

	assert.True(t, httperr.IsBusiness(err, "booking_failed"))
	assert.ErrorContains(t, err, "connection reset")

	w, err := f.drafts.Load(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.StepSelectingDateTime, w.Step)
	assert.True(t, w.CanConfirm())

	// o usuário pode tentar de novo
	f.appts.err = nil
	_, err = f.confirm.Execute(context.Background(), id, &user)
	assert.NoError(t, err)
}

func TestConfirm_SlotLockViolation(t *testing.T) {
	f := newFixture(t)
	f.appts.err = &pgconn.PgError{Code: "23505"}
	id := f.ready(t, "p1", "2025-10-24", "14:30")
	user := uuid.New()

	_, err := f.confirm.Execute(context.Background(), id, &user)

	assert.True(t, httperr.IsBusiness(err, "slot_taken"))
}

// Sem bloqueio de horário, duas pessoas reservam Carlos no mesmo horário.
func TestConfirm_ConcurrentSameSlotBothSucceed(t *testing.T) {
	f := newFixture(t)
	first := f.ready(t, "p1", "2025-10-24", "14:30")
	second := f.ready(t, "p1", "2025-10-24", "14:30")

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, id := range []uuid.UUID{first, second} {
		wg.Add(1)
		go func(i int, id uuid.UUID) {
			defer wg.Done()
			user := uuid.New()
			_, errs[i] = f.confirm.Execute(context.Background(), id, &user)
		}(i, id)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	require.Len(t, f.appts.items, 2)
	for _, ap := range f.appts.items {
		assert.Equal(t, "Carlos", ap.ProfessionalName)
		assert.Equal(t, "24/10/2025", ap.Date)
		assert.Equal(t, "14:30", ap.Time)
		assert.Equal(t, "confirmed", ap.Status)
	}
}

func TestConfirm_UnknownDraft(t *testing.T) {
	f := newFixture(t)
	user := uuid.New()

	_, err := f.confirm.Execute(context.Background(), uuid.New(), &user)

	assert.ErrorIs(t, err, booking.ErrDraftNotFound)
}
