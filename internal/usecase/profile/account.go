package profile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barbershop-booking/internal/auth"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/validators"
)

const minPasswordLength = 6

var (
	ErrInvalidEmail       = httperr.ErrBusiness("invalid_email")
	ErrInvalidEmailDomain = httperr.ErrBusiness("invalid_email_domain")
	ErrWeakPassword       = httperr.ErrBusiness("weak_password")
	ErrEmailTaken         = httperr.ErrBusiness("email_taken")
	ErrInvalidCredentials = httperr.ErrBusiness("invalid_credentials")
	ErrProfileNotFound    = httperr.ErrBusiness("profile_not_found")
)

type Store interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	FindByEmail(ctx context.Context, email string) (*models.Profile, error)
	CreateProfile(ctx context.Context, p *models.Profile) error
	UpdateProfile(ctx context.Context, id uuid.UUID, fields map[string]any) (*models.Profile, error)
}

type TokenIssuer interface {
	Issue(p *models.Profile) (string, error)
}

type ImageStore interface {
	Upload(ctx context.Context, body io.Reader) (string, error)
	PublicURL(path string) string
}

// Session é a resposta de signup e login.
type Session struct {
	Token   string          `json:"token"`
	Profile *models.Profile `json:"profile"`
}

// ======================================================
// SIGNUP / LOGIN
// ======================================================

type SignupInput struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Accounts struct {
	profiles     Store
	tokens       TokenIssuer
	verifyDomain bool
	domainCheck  func(context.Context, string) bool
}

func NewAccounts(profiles Store, tokens TokenIssuer, verifyDomain bool) *Accounts {
	return &Accounts{
		profiles:     profiles,
		tokens:       tokens,
		verifyDomain: verifyDomain,
		domainCheck:  validators.IsEmailDomainValid,
	}
}

func (uc *Accounts) Signup(ctx context.Context, in SignupInput) (*Session, error) {
	email := validators.NormalizeEmail(in.Email)

	// 1️⃣ validações
	if !validators.IsEmailFormatValid(email) {
		return nil, ErrInvalidEmail
	}
	if uc.verifyDomain && !uc.domainCheck(ctx, email) {
		return nil, ErrInvalidEmailDomain
	}
	if len(in.Password) < minPasswordLength {
		return nil, ErrWeakPassword
	}

	// 2️⃣ hash
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	// 3️⃣ perfil sempre nasce customer
	p := &models.Profile{
		FullName:     strings.TrimSpace(in.FullName),
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleCustomer,
	}
	if err := uc.profiles.CreateProfile(ctx, p); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create profile: %w", err)
	}

	return uc.session(p)
}

func (uc *Accounts) Login(ctx context.Context, email, password string) (*Session, error) {
	p, err := uc.profiles.FindByEmail(ctx, validators.NormalizeEmail(email))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find profile: %w", err)
	}

	if !auth.CheckPassword(p.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return uc.session(p)
}

func (uc *Accounts) session(p *models.Profile) (*Session, error) {
	token, err := uc.tokens.Issue(p)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &Session{Token: token, Profile: p}, nil
}
