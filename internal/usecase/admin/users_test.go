package admin_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	policy "github.com/BruksfildServices01/barbershop-booking/internal/domain/admin"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-booking/internal/logger"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/usecase/admin"
)

type memProfiles map[uuid.UUID]*models.Profile

func (m memProfiles) GetProfile(_ context.Context, id uuid.UUID) (*models.Profile, error) {
	p, ok := m[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m memProfiles) ListProfiles(context.Context) ([]models.Profile, error) {
	var out []models.Profile
	for _, p := range m {
		out = append(out, *p)
	}
	return out, nil
}

func (m memProfiles) UpdateProfile(_ context.Context, id uuid.UUID, fields map[string]any) (*models.Profile, error) {
	p, ok := m[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if v, ok := fields["role"].(string); ok {
		p.Role = v
	}
	if v, ok := fields["max_shops"].(int); ok {
		p.MaxShops = v
	}
	cp := *p
	return &cp, nil
}

type nopSink struct{}

func (nopSink) Log(context.Context, audit.Event) error { return nil }

func setup(t *testing.T, profiles ...*models.Profile) (*admin.Users, memProfiles) {
	m := memProfiles{}
	for _, p := range profiles {
		m[p.ID] = p
	}
	d := audit.NewDispatcher(nopSink{}, logger.Nop())
	t.Cleanup(d.Close)
	return admin.NewUsers(m, d), m
}

func profile(role string) *models.Profile {
	return &models.Profile{ID: uuid.New(), Role: role}
}

func TestList_DeniedForOwners(t *testing.T) {
	uc, _ := setup(t)
	_, err := uc.List(context.Background(), profile(models.RoleShopOwner))
	assert.ErrorIs(t, err, policy.ErrUsersDenied)
}

func TestSetRole(t *testing.T) {
	adm := profile(models.RoleAdmin)
	customer := profile(models.RoleCustomer)
	other := profile(models.RoleAdmin)
	uc, m := setup(t, adm, customer, other)

	updated, err := uc.SetRole(context.Background(), adm, customer.ID, models.RoleShopOwner)
	require.NoError(t, err)
	assert.Equal(t, models.RoleShopOwner, updated.Role)

	_, err = uc.SetRole(context.Background(), adm, customer.ID, models.RoleAdmin)
	assert.ErrorIs(t, err, policy.ErrRoleNotAllowed)
	assert.Equal(t, models.RoleShopOwner, m[customer.ID].Role)

	// outro admin também pode ser rebaixado
	updated, err = uc.SetRole(context.Background(), adm, other.ID, models.RoleCustomer)
	require.NoError(t, err)
	assert.Equal(t, models.RoleCustomer, updated.Role)

	_, err = uc.SetRole(context.Background(), adm, uuid.New(), models.RoleCustomer)
	assert.ErrorIs(t, err, admin.ErrUserNotFound)
}

func TestSetRole_AdminPromotesToSuperAdmin(t *testing.T) {
	adm := profile(models.RoleAdmin)
	customer := profile(models.RoleCustomer)
	uc, _ := setup(t, adm, customer)

	updated, err := uc.SetRole(context.Background(), adm, customer.ID, models.RoleSuperAdmin)
	require.NoError(t, err)
	assert.Equal(t, models.RoleSuperAdmin, updated.Role)
}

func TestSetMaxShops(t *testing.T) {
	adm := profile(models.RoleAdmin)
	customer := profile(models.RoleCustomer)
	uc, _ := setup(t, adm, customer)

	updated, err := uc.SetMaxShops(context.Background(), adm, customer.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, updated.MaxShops)

	_, err = uc.SetMaxShops(context.Background(), adm, customer.ID, -1)
	assert.ErrorIs(t, err, policy.ErrInvalidQuota)
}

func TestSetMaxShops_OnAnotherAdmin(t *testing.T) {
	adm := profile(models.RoleAdmin)
	other := profile(models.RoleAdmin)
	uc, _ := setup(t, adm, other)

	updated, err := uc.SetMaxShops(context.Background(), adm, other.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.MaxShops)
}
