package profile_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-booking/internal/auth"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/usecase/profile"
)

type memProfiles struct {
	items map[uuid.UUID]*models.Profile
}

func newMemProfiles() *memProfiles {
	return &memProfiles{items: map[uuid.UUID]*models.Profile{}}
}

func (m *memProfiles) GetProfile(_ context.Context, id uuid.UUID) (*models.Profile, error) {
	p, ok := m.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memProfiles) FindByEmail(_ context.Context, email string) (*models.Profile, error) {
	for _, p := range m.items {
		if p.Email == strings.ToLower(strings.TrimSpace(email)) {
			cp := *p
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memProfiles) CreateProfile(_ context.Context, p *models.Profile) error {
	for _, existing := range m.items {
		if existing.Email == p.Email {
			return &pgconn.PgError{Code: "23505"}
		}
	}
	p.ID = uuid.New()
	cp := *p
	m.items[p.ID] = &cp
	return nil
}

func (m *memProfiles) UpdateProfile(_ context.Context, id uuid.UUID, fields map[string]any) (*models.Profile, error) {
	p, ok := m.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "full_name":
			p.FullName = v.(string)
		case "phone":
			p.Phone = v.(string)
		case "avatar_url":
			p.AvatarURL = v.(string)
		}
	}
	cp := *p
	return &cp, nil
}

type fakeImages struct{ err error }

func (f fakeImages) Upload(context.Context, io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "1700000000000-x.webp", nil
}

func (fakeImages) PublicURL(path string) string { return "https://cdn.test/" + path }

func TestSignupAndLogin(t *testing.T) {
	store := newMemProfiles()
	tokens := auth.NewTokens("secret")
	uc := profile.NewAccounts(store, tokens, false)

	sess, err := uc.Signup(context.Background(), profile.SignupInput{
		FullName: " Ana Silva ", Email: "Ana@Example.com", Password: "segredo1",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", sess.Profile.Email)
	assert.Equal(t, models.RoleCustomer, sess.Profile.Role)
	assert.Equal(t, "Ana Silva", sess.Profile.FullName)

	id, err := tokens.Parse(sess.Token)
	require.NoError(t, err)
	assert.Equal(t, sess.Profile.ID, id)

	_, err = uc.Signup(context.Background(), profile.SignupInput{Email: "ana@example.com", Password: "segredo1"})
	assert.ErrorIs(t, err, profile.ErrEmailTaken)

	login, err := uc.Login(context.Background(), "ANA@example.com", "segredo1")
	require.NoError(t, err)
	assert.Equal(t, sess.Profile.ID, login.Profile.ID)

	_, err = uc.Login(context.Background(), "ana@example.com", "errada")
	assert.ErrorIs(t, err, profile.ErrInvalidCredentials)

	_, err = uc.Login(context.Background(), "ninguem@example.com", "segredo1")
	assert.ErrorIs(t, err, profile.ErrInvalidCredentials)
}

func TestSignup_Validation(t *testing.T) {
	uc := profile.NewAccounts(newMemProfiles(), auth.NewTokens("secret"), false)

	_, err := uc.Signup(context.Background(), profile.SignupInput{Email: "nao-e-email", Password: "segredo1"})
	assert.ErrorIs(t, err, profile.ErrInvalidEmail)

	_, err = uc.Signup(context.Background(), profile.SignupInput{Email: "a@b.co", Password: "123"})
	assert.ErrorIs(t, err, profile.ErrWeakPassword)
}

func TestMe_UpdateKeepsMissingFields(t *testing.T) {
	store := newMemProfiles()
	p := &models.Profile{Email: "a@b.co", FullName: "Ana", Phone: "84000"}
	require.NoError(t, store.CreateProfile(context.Background(), p))

	name := "Ana Maria"
	got, err := profile.NewMe(store, fakeImages{}).Update(context.Background(), p.ID, profile.UpdateInput{FullName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", got.FullName)
	assert.Equal(t, "84000", got.Phone)
}

func TestMe_UploadAvatar(t *testing.T) {
	store := newMemProfiles()
	p := &models.Profile{Email: "a@b.co"}
	require.NoError(t, store.CreateProfile(context.Background(), p))

	got, err := profile.NewMe(store, fakeImages{}).UploadAvatar(context.Background(), p.ID, strings.NewReader("img"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/1700000000000-x.webp", got.AvatarURL)

	boom := errors.New("bucket down")
	_, err = profile.NewMe(store, fakeImages{err: boom}).UploadAvatar(context.Background(), p.ID, strings.NewReader("img"))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "https://cdn.test/1700000000000-x.webp", store.items[p.ID].AvatarURL)
}

func TestMe_GetMissing(t *testing.T) {
	_, err := profile.NewMe(newMemProfiles(), fakeImages{}).Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, profile.ErrProfileNotFound)
}
