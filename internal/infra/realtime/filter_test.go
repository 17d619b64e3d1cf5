package realtime_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-booking/internal/infra/realtime"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

func TestParseFilter(t *testing.T) {
	f, err := realtime.ParseFilter("user_id=eq.42")
	require.NoError(t, err)
	assert.Equal(t, "user_id", f.Column)
	assert.Equal(t, "42", f.Value)
	assert.Equal(t, "user_id=eq.42", f.String())

	none, err := realtime.ParseFilter("")
	require.NoError(t, err)
	assert.Nil(t, none)

	for _, bad := range []string{"user_id", "user_id=42", "=eq.1", "user_id=gt.1", "user_id=eq."} {
		_, err := realtime.ParseFilter(bad)
		assert.ErrorIs(t, err, realtime.ErrInvalidFilter, bad)
	}
}

func TestNewEvent_FilterMatchesRecord(t *testing.T) {
	userID := uuid.New()
	ap := models.Appointment{ID: uuid.New(), UserID: userID, Status: "confirmed"}

	ev, err := realtime.NewEvent(realtime.TableAppointments, "INSERT", &ap)
	require.NoError(t, err)

	mine := &realtime.Filter{Column: "user_id", Value: userID.String()}
	theirs := &realtime.Filter{Column: "user_id", Value: uuid.NewString()}

	assert.True(t, realtime.Wants(ev, "INSERT", mine))
	assert.True(t, realtime.Wants(ev, "", nil))
	assert.False(t, realtime.Wants(ev, "UPDATE", mine))
	assert.False(t, realtime.Wants(ev, "INSERT", theirs))
	assert.False(t, realtime.Wants(ev, "", &realtime.Filter{Column: "missing", Value: "x"}))
}

func TestNewEvent_NumbersCompareAsText(t *testing.T) {
	ev, err := realtime.NewEvent(realtime.TableProfiles, "UPDATE", map[string]any{"max_shops": 2})
	require.NoError(t, err)

	assert.True(t, (&realtime.Filter{Column: "max_shops", Value: "2"}).Match(ev))
}

func TestAuthorize(t *testing.T) {
	self := uuid.New()
	user := realtime.Subscriber{UserID: &self}
	adminSub := realtime.Subscriber{UserID: &self, IsAdmin: true}
	anon := realtime.Subscriber{}

	own := &realtime.Filter{Column: "user_id", Value: self.String()}
	other := &realtime.Filter{Column: "user_id", Value: uuid.NewString()}
	ownProfile := &realtime.Filter{Column: "id", Value: self.String()}

	assert.NoError(t, realtime.Authorize(realtime.TableShops, nil, anon))
	assert.NoError(t, realtime.Authorize(realtime.TableAppointments, own, user))
	assert.NoError(t, realtime.Authorize(realtime.TableProfiles, ownProfile, user))
	assert.NoError(t, realtime.Authorize(realtime.TableAppointments, nil, adminSub))

	assert.ErrorIs(t, realtime.Authorize(realtime.TableAppointments, nil, user), realtime.ErrForbidden)
	assert.ErrorIs(t, realtime.Authorize(realtime.TableAppointments, other, user), realtime.ErrForbidden)
	assert.ErrorIs(t, realtime.Authorize(realtime.TableProfiles, own, user), realtime.ErrForbidden)
	assert.ErrorIs(t, realtime.Authorize(realtime.TableAppointments, own, anon), realtime.ErrForbidden)
	assert.ErrorIs(t, realtime.Authorize("audit_logs", nil, adminSub), realtime.ErrUnknownTable)
}

func TestAuthorize_ShopOwnerFollowsOwnShops(t *testing.T) {
	self := uuid.New()
	shopID := uuid.New()
	owner := realtime.Subscriber{UserID: &self, OwnedShops: []uuid.UUID{shopID}}
	customer := realtime.Subscriber{UserID: &self}

	ownShop := &realtime.Filter{Column: realtime.ShopColumn, Value: shopID.String()}
	otherShop := &realtime.Filter{Column: realtime.ShopColumn, Value: uuid.NewString()}

	assert.NoError(t, realtime.Authorize(realtime.TableAppointments, ownShop, owner))
	assert.ErrorIs(t, realtime.Authorize(realtime.TableAppointments, otherShop, owner), realtime.ErrForbidden)
	assert.ErrorIs(t, realtime.Authorize(realtime.TableAppointments, ownShop, customer), realtime.ErrForbidden)
	assert.ErrorIs(t, realtime.Authorize(realtime.TableFavorites, ownShop, owner), realtime.ErrForbidden)
	assert.ErrorIs(t, realtime.Authorize(realtime.TableAppointments, nil, owner), realtime.ErrForbidden)
}
