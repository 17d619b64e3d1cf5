package shop_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-booking/internal/logger"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/usecase/shop"
)

// ======================================================
// FAKES
// ======================================================

type memShops struct {
	items  map[uuid.UUID]*models.Barbershop
	writes int
}

func newMemShops(shops ...*models.Barbershop) *memShops {
	m := &memShops{items: map[uuid.UUID]*models.Barbershop{}}
	for _, s := range shops {
		m.items[s.ID] = s
	}
	return m
}

func (m *memShops) GetShop(_ context.Context, id uuid.UUID) (*models.Barbershop, error) {
	s, ok := m.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *memShops) CreateShop(_ context.Context, s *models.Barbershop) error {
	m.writes++
	s.ID = uuid.New()
	m.items[s.ID] = s
	return nil
}

func (m *memShops) SaveShop(_ context.Context, s *models.Barbershop) error {
	m.writes++
	m.items[s.ID] = s
	return nil
}

func (m *memShops) DeleteShop(_ context.Context, id uuid.UUID) error {
	m.writes++
	delete(m.items, id)
	return nil
}

func (m *memShops) CountOwned(_ context.Context, owner uuid.UUID) (int64, error) {
	var n int64
	for _, s := range m.items {
		if s.OwnerID != nil && *s.OwnerID == owner {
			n++
		}
	}
	return n, nil
}

func (m *memShops) ListForConsole(_ context.Context, owner *uuid.UUID) ([]models.Barbershop, error) {
	var out []models.Barbershop
	for _, s := range m.items {
		if owner == nil || (s.OwnerID != nil && *s.OwnerID == *owner) {
			out = append(out, *s)
		}
	}
	return out, nil
}

type memImages struct {
	uploads int
}

func (m *memImages) Upload(_ context.Context, body io.Reader) (string, error) {
	_, _ = io.ReadAll(body)
	m.uploads++
	return uuid.NewString() + ".webp", nil
}

func (m *memImages) PublicURL(path string) string {
	return "https://cdn.test/barbershop-images/" + path
}

type nopSink struct{}

func (nopSink) Log(context.Context, audit.Event) error { return nil }

func dispatcher(t *testing.T) *audit.Dispatcher {
	t.Helper()
	d := audit.NewDispatcher(nopSink{}, logger.Nop())
	t.Cleanup(d.Close)
	return d
}

func file(name string) shop.Upload {
	return shop.Upload{Name: name, Body: strings.NewReader("img")}
}

func owned(owner *models.Profile, name string) *models.Barbershop {
	id := owner.ID
	return &models.Barbershop{ID: uuid.New(), Name: name, OwnerID: &id}
}

func payload(name string) shop.ShopInput {
	return shop.ShopInput{
		Name: name,
		Services: []shop.ServiceInput{
			{Name: "Corte", Price: decimal.RequireFromString("350.50"), Duration: 30},
		},
	}
}

// ======================================================
// SAVE
// ======================================================

func TestSaveShop_QuotaReachedWritesNothing(t *testing.T) {
	owner := &models.Profile{ID: uuid.New(), Role: models.RoleShopOwner, MaxShops: 2}
	shops := newMemShops(owned(owner, "A"), owned(owner, "B"))
	images := &memImages{}
	uc := shop.NewSaveShop(shops, images, dispatcher(t), logger.Nop())

	_, err := uc.Execute(context.Background(), shop.SaveShopInput{
		Actor:   owner,
		Data:    payload("C"),
		Cover:   ptrUpload(file("cover.jpg")),
		Gallery: []shop.Upload{file("g1.jpg")},
	})

	assert.True(t, httperr.IsBusiness(err, "shop_quota_reached"))
	assert.Zero(t, images.uploads)
	assert.Zero(t, shops.writes)
	assert.Len(t, shops.items, 2)
}

func TestSaveShop_AdminIgnoresQuota(t *testing.T) {
	adm := &models.Profile{ID: uuid.New(), Role: models.RoleAdmin}
	shops := newMemShops(owned(adm, "A"), owned(adm, "B"))
	uc := shop.NewSaveShop(shops, &memImages{}, dispatcher(t), logger.Nop())

	created, err := uc.Execute(context.Background(), shop.SaveShopInput{
		Actor: adm,
		Data:  payload("C"),
		Cover: ptrUpload(file("cover.jpg")),
	})

	require.NoError(t, err)
	assert.Len(t, shops.items, 3)
	require.NotNil(t, created.OwnerID)
	assert.Equal(t, adm.ID, *created.OwnerID)
}

func TestSaveShop_CreateRequiresCover(t *testing.T) {
	owner := &models.Profile{ID: uuid.New(), Role: models.RoleShopOwner, MaxShops: 1}
	shops := newMemShops()
	uc := shop.NewSaveShop(shops, &memImages{}, dispatcher(t), logger.Nop())

	_, err := uc.Execute(context.Background(), shop.SaveShopInput{Actor: owner, Data: payload("Nova")})

	assert.ErrorIs(t, err, shop.ErrCoverRequired)
	assert.Zero(t, shops.writes)
}

func TestSaveShop_CreateBuildsServicesAndImages(t *testing.T) {
	owner := &models.Profile{ID: uuid.New(), Role: models.RoleCustomer, MaxShops: 1}
	images := &memImages{}
	uc := shop.NewSaveShop(newMemShops(), images, dispatcher(t), logger.Nop())

	created, err := uc.Execute(context.Background(), shop.SaveShopInput{
		Actor:   owner,
		Data:    payload("Barbearia Nova"),
		Cover:   ptrUpload(file("cover.png")),
		Gallery: []shop.Upload{file("a.png"), file("b.png")},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, images.uploads)
	assert.True(t, strings.HasPrefix(created.Image, "https://cdn.test/barbershop-images/"))
	assert.Len(t, created.Gallery, 2)

	require.Len(t, created.Services, 1)
	svc := created.Services[0]
	assert.NotEmpty(t, svc.ID)
	assert.Equal(t, "content_cut", svc.Icon)
	assert.Equal(t, "350.5", svc.Price.String())
	assert.True(t, created.IsOpen)
}

func TestSaveShop_EditAppendsGallery(t *testing.T) {
	owner := &models.Profile{ID: uuid.New(), Role: models.RoleShopOwner}
	existing := owned(owner, "Zé")
	existing.Image = "https://cdn.test/old.webp"
	existing.Gallery = []string{"https://cdn.test/g0.webp"}
	shops := newMemShops(existing)
	uc := shop.NewSaveShop(shops, &memImages{}, dispatcher(t), logger.Nop())

	in := payload("Zé Renovado")
	updated, err := uc.Execute(context.Background(), shop.SaveShopInput{
		Actor:   owner,
		ShopID:  &existing.ID,
		Data:    in,
		Gallery: []shop.Upload{file("g1.png")},
	})
	require.NoError(t, err)

	assert.Equal(t, "Zé Renovado", updated.Name)
	assert.Equal(t, "https://cdn.test/old.webp", updated.Image)
	require.Len(t, updated.Gallery, 2)
	assert.Equal(t, "https://cdn.test/g0.webp", updated.Gallery[0])
	assert.Equal(t, owner.ID, *updated.OwnerID)
}

func TestSaveShop_EditForeignShopForbidden(t *testing.T) {
	owner := &models.Profile{ID: uuid.New(), Role: models.RoleShopOwner}
	intruder := &models.Profile{ID: uuid.New(), Role: models.RoleShopOwner, MaxShops: 3}
	existing := owned(owner, "Zé")
	shops := newMemShops(existing)
	uc := shop.NewSaveShop(shops, &memImages{}, dispatcher(t), logger.Nop())

	_, err := uc.Execute(context.Background(), shop.SaveShopInput{Actor: intruder, ShopID: &existing.ID, Data: payload("X")})

	assert.True(t, httperr.IsBusiness(err, "shop_forbidden"))
	assert.Zero(t, shops.writes)
}

func TestSaveShop_Validation(t *testing.T) {
	adm := &models.Profile{ID: uuid.New(), Role: models.RoleSuperAdmin}
	uc := shop.NewSaveShop(newMemShops(), &memImages{}, dispatcher(t), logger.Nop())
	lat := -25.9

	cases := map[string]struct {
		in   shop.ShopInput
		code string
	}{
		"empty name":   {shop.ShopInput{Name: "  "}, "name_required"},
		"half coords":  {shop.ShopInput{Name: "A", Latitude: &lat}, "invalid_coordinates"},
		"bad duration": {shop.ShopInput{Name: "A", Services: []shop.ServiceInput{{Name: "Corte", Price: decimal.NewFromInt(10), Duration: 20}}}, "invalid_duration"},
		"no price":     {shop.ShopInput{Name: "A", Services: []shop.ServiceInput{{Name: "Corte", Duration: 30}}}, "invalid_service"},
	}

	for name, tc := range cases {
		_, err := uc.Execute(context.Background(), shop.SaveShopInput{Actor: adm, Data: tc.in, Cover: ptrUpload(file("c.png"))})
		assert.True(t, httperr.IsBusiness(err, tc.code), name)
	}
}

// ======================================================
// DELETE / LIST / SERVICES
// ======================================================

func TestDeleteShop_RequiresConfirmation(t *testing.T) {
	owner := &models.Profile{ID: uuid.New(), Role: models.RoleShopOwner}
	existing := owned(owner, "Zé")
	shops := newMemShops(existing)
	uc := shop.NewDeleteShop(shops, dispatcher(t))

	err := uc.Execute(context.Background(), owner, existing.ID, false)
	assert.ErrorIs(t, err, shop.ErrConfirmationRequired)
	assert.Len(t, shops.items, 1)

	require.NoError(t, uc.Execute(context.Background(), owner, existing.ID, true))
	assert.Empty(t, shops.items)
}

func TestListConsoleShops_Scoped(t *testing.T) {
	owner := &models.Profile{ID: uuid.New(), Role: models.RoleShopOwner}
	other := &models.Profile{ID: uuid.New(), Role: models.RoleShopOwner}
	adm := &models.Profile{ID: uuid.New(), Role: models.RoleAdmin}
	shops := newMemShops(owned(owner, "Mine"), owned(other, "Theirs"))
	uc := shop.NewListConsoleShops(shops)

	mine, err := uc.Execute(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Mine", mine[0].Name)

	all, err := uc.Execute(context.Background(), adm)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestManageServices(t *testing.T) {
	owner := &models.Profile{ID: uuid.New(), Role: models.RoleShopOwner}
	existing := owned(owner, "Zé")
	shops := newMemShops(existing)
	uc := shop.NewManageServices(shops, dispatcher(t))
	ctx := context.Background()

	updated, err := uc.Add(ctx, owner, existing.ID, shop.ServiceInput{
		Name: "Barba", Price: decimal.NewFromInt(200), Duration: 15, Icon: "face",
	})
	require.NoError(t, err)
	require.Len(t, updated.Services, 1)
	svcID := updated.Services[0].ID

	_, err = uc.Remove(ctx, owner, existing.ID, "nope")
	assert.ErrorIs(t, err, shop.ErrServiceNotFound)

	updated, err = uc.Remove(ctx, owner, existing.ID, svcID)
	require.NoError(t, err)
	assert.Empty(t, updated.Services)
}

func ptrUpload(u shop.Upload) *shop.Upload { return &u }
