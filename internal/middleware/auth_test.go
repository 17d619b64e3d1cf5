package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-booking/internal/auth"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type profileMap map[uuid.UUID]*models.Profile

func (m profileMap) GetProfile(_ context.Context, id uuid.UUID) (*models.Profile, error) {
	if p, ok := m[id]; ok {
		return p, nil
	}
	return nil, repository.ErrNotFound
}

func setup(t *testing.T, profiles profileMap, mws ...gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	handlers := append(mws, func(c *gin.Context) {
		if s, ok := middleware.SessionFrom(c); ok {
			c.String(http.StatusOK, s.Profile.FullName)
			return
		}
		c.String(http.StatusOK, "anon")
	})
	r.GET("/x", handlers...)
	return r
}

func do(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	tokens := auth.NewTokens("secret")
	ana := &models.Profile{ID: uuid.New(), FullName: "Ana", Role: models.RoleCustomer}
	profiles := profileMap{ana.ID: ana}
	r := setup(t, profiles, middleware.AuthMiddleware(tokens, profiles))

	token, err := tokens.Issue(ana)
	require.NoError(t, err)

	w := do(r, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Ana", w.Body.String())

	assert.Equal(t, http.StatusUnauthorized, do(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, "garbage").Code)

	ghost, err := tokens.Issue(&models.Profile{ID: uuid.New()})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, do(r, ghost).Code)
}

func TestAuthMiddleware_QueryToken(t *testing.T) {
	tokens := auth.NewTokens("secret")
	ana := &models.Profile{ID: uuid.New(), FullName: "Ana"}
	profiles := profileMap{ana.ID: ana}
	r := setup(t, profiles, middleware.AuthMiddleware(tokens, profiles))

	token, err := tokens.Issue(ana)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x?access_token="+token, nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOptionalAuth(t *testing.T) {
	tokens := auth.NewTokens("secret")
	ana := &models.Profile{ID: uuid.New(), FullName: "Ana"}
	profiles := profileMap{ana.ID: ana}
	r := setup(t, profiles, middleware.OptionalAuth(tokens, profiles))

	anon := do(r, "")
	assert.Equal(t, http.StatusOK, anon.Code)
	assert.Equal(t, "anon", anon.Body.String())

	token, err := tokens.Issue(ana)
	require.NoError(t, err)
	assert.Equal(t, "Ana", do(r, token).Body.String())

	assert.Equal(t, http.StatusUnauthorized, do(r, "garbage").Code)
}

func TestRequireConsole(t *testing.T) {
	tokens := auth.NewTokens("secret")
	customer := &models.Profile{ID: uuid.New(), FullName: "Cliente", Role: models.RoleCustomer}
	owner := &models.Profile{ID: uuid.New(), FullName: "Dono", Role: models.RoleShopOwner}
	quota := &models.Profile{ID: uuid.New(), FullName: "Cota", Role: models.RoleCustomer, MaxShops: 1}
	profiles := profileMap{customer.ID: customer, owner.ID: owner, quota.ID: quota}

	r := setup(t, profiles, middleware.AuthMiddleware(tokens, profiles), middleware.RequireConsole())

	for _, tc := range []struct {
		p    *models.Profile
		want int
	}{
		{customer, http.StatusForbidden},
		{owner, http.StatusOK},
		{quota, http.StatusOK},
	} {
		token, err := tokens.Issue(tc.p)
		require.NoError(t, err)
		assert.Equal(t, tc.want, do(r, token).Code, tc.p.FullName)
	}
}

func TestRequireUserManager(t *testing.T) {
	tokens := auth.NewTokens("secret")
	owner := &models.Profile{ID: uuid.New(), Role: models.RoleShopOwner}
	adm := &models.Profile{ID: uuid.New(), Role: models.RoleAdmin}
	profiles := profileMap{owner.ID: owner, adm.ID: adm}

	r := setup(t, profiles, middleware.AuthMiddleware(tokens, profiles), middleware.RequireUserManager())

	ownerToken, _ := tokens.Issue(owner)
	adminToken, _ := tokens.Issue(adm)

	assert.Equal(t, http.StatusForbidden, do(r, ownerToken).Code)
	assert.Equal(t, http.StatusOK, do(r, adminToken).Code)
}
