package booking_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/usecase/booking"
)

func TestWizard_StartUnknownShop(t *testing.T) {
	f := newFixture(t)

	_, err := f.wizard.Start(context.Background(), uuid.New())

	assert.ErrorIs(t, err, booking.ErrShopNotFound)
}

func TestWizard_BlockedNextKeepsDraft(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	v, err := f.wizard.Start(ctx, f.shop.ID)
	require.NoError(t, err)
	assert.False(t, v.CanAdvance)
	assert.Empty(t, v.Calendar)

	_, err = f.wizard.Next(ctx, v.ID)
	assert.True(t, httperr.IsBusiness(err, "step_blocked"))

	got, err := f.wizard.Get(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StepSelectingService, got.Step)
}

func TestWizard_DateTimeViewCarriesCalendarAndSlots(t *testing.T) {
	f := newFixture(t)
	id := f.ready(t, "p1", "2025-10-24", "14:30")

	v, err := f.wizard.Get(context.Background(), id)
	require.NoError(t, err)

	assert.Len(t, v.Slots, 10)
	assert.Len(t, v.Calendar, 31)
	assert.True(t, v.Calendar[0].Disabled)
	assert.True(t, v.Calendar[23].Selected)
	assert.True(t, v.CanConfirm)
}

func TestWizard_BackAborts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	v, err := f.wizard.Start(ctx, f.shop.ID)
	require.NoError(t, err)

	v, err = f.wizard.Back(ctx, v.ID)
	require.NoError(t, err)

	assert.Equal(t, domain.StepAborted, v.Step)

	_, err = f.wizard.Get(ctx, v.ID)
	assert.ErrorIs(t, err, booking.ErrDraftNotFound)
}

func TestWizard_ShowMonth(t *testing.T) {
	f := newFixture(t)
	id := f.ready(t, "p1", "2025-10-24", "14:30")

	v, err := f.wizard.ShowMonth(context.Background(), id, 1)
	require.NoError(t, err)

	assert.Len(t, v.Calendar, 30)
	for _, d := range v.Calendar {
		assert.False(t, d.Disabled)
		assert.False(t, d.Selected)
	}
}

func TestWizard_UnknownDraft(t *testing.T) {
	f := newFixture(t)

	_, err := f.wizard.Get(context.Background(), uuid.New())

	assert.ErrorIs(t, err, booking.ErrDraftNotFound)
}
