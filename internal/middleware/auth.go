package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/barbershop-booking/internal/auth"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/admin"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

const ContextSession = "session"

// Session é resolvida uma vez por requisição e lida pelos handlers.
type Session struct {
	Profile *models.Profile
}

func (s *Session) UserID() uuid.UUID { return s.Profile.ID }

type ProfileLoader interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error)
}

var errNoCredentials = errors.New("no credentials")

// SessionFrom devolve a sessão da requisição, se houver.
func SessionFrom(c *gin.Context) (*Session, bool) {
	v, ok := c.Get(ContextSession)
	if !ok {
		return nil, false
	}
	s, ok := v.(*Session)
	return s, ok && s != nil
}

// AuthMiddleware exige um Bearer token válido de um perfil existente.
func AuthMiddleware(tokens *auth.Tokens, profiles ProfileLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := resolve(c, tokens, profiles)
		if err != nil {
			abortUnauthorized(c, err)
			return
		}
		c.Set(ContextSession, s)
		c.Next()
	}
}

// OptionalAuth segue anônimo sem credenciais, mas rejeita token inválido.
func OptionalAuth(tokens *auth.Tokens, profiles ProfileLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := resolve(c, tokens, profiles)
		switch {
		case errors.Is(err, errNoCredentials):
		case err != nil:
			abortUnauthorized(c, err)
			return
		default:
			c.Set(ContextSession, s)
		}
		c.Next()
	}
}

// RequireConsole libera o painel administrativo.
func RequireConsole() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := SessionFrom(c)
		if !ok || !admin.CanAccessConsole(s.Profile) {
			httperr.Forbidden(c, "console_denied", "Acesso restrito ao painel administrativo.")
			c.Abort()
			return
		}
		c.Next()
	}
}

func RequireUserManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := SessionFrom(c)
		if !ok || !admin.CanManageUsers(s.Profile) {
			httperr.Forbidden(c, "users_denied", "Apenas administradores podem gerenciar usuários.")
			c.Abort()
			return
		}
		c.Next()
	}
}

func resolve(c *gin.Context, tokens *auth.Tokens, profiles ProfileLoader) (*Session, error) {
	raw, err := bearer(c)
	if err != nil {
		return nil, err
	}

	id, err := tokens.Parse(raw)
	if err != nil {
		return nil, err
	}

	p, err := profiles.GetProfile(c.Request.Context(), id)
	if err != nil {
		return nil, err
	}
	return &Session{Profile: p}, nil
}

// bearer lê o header Authorization; EventSource não envia headers,
// então o stream realtime aceita ?access_token=.
func bearer(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		if t := c.Query("access_token"); t != "" {
			return t, nil
		}
		return "", errNoCredentials
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid_authorization_header")
	}
	return parts[1], nil
}

func abortUnauthorized(c *gin.Context, err error) {
	code := "invalid_token"
	if errors.Is(err, errNoCredentials) {
		code = "missing_authorization_header"
	}
	httperr.Unauthorized(c, code, "Sessão inválida ou expirada.")
	c.Abort()
}
