package profile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barbershop-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type UpdateInput struct {
	FullName *string `json:"full_name"`
	Phone    *string `json:"phone"`
}

type Me struct {
	profiles Store
	images   ImageStore
}

func NewMe(profiles Store, images ImageStore) *Me {
	return &Me{profiles: profiles, images: images}
}

func (uc *Me) Get(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	p, err := uc.profiles.GetProfile(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrProfileNotFound
	}
	return p, err
}

// Update altera só nome e telefone; campos ausentes ficam como estão.
func (uc *Me) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (*models.Profile, error) {
	fields := map[string]any{}
	if in.FullName != nil {
		fields["full_name"] = strings.TrimSpace(*in.FullName)
	}
	if in.Phone != nil {
		fields["phone"] = strings.TrimSpace(*in.Phone)
	}
	if len(fields) == 0 {
		return uc.Get(ctx, id)
	}

	p, err := uc.profiles.UpdateProfile(ctx, id, fields)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrProfileNotFound
	}
	return p, err
}

// UploadAvatar envia a imagem ao bucket antes de gravar a URL no perfil.
func (uc *Me) UploadAvatar(ctx context.Context, id uuid.UUID, body io.Reader) (*models.Profile, error) {
	path, err := uc.images.Upload(ctx, body)
	if err != nil {
		return nil, fmt.Errorf("upload avatar: %w", err)
	}

	p, err := uc.profiles.UpdateProfile(ctx, id, map[string]any{"avatar_url": uc.images.PublicURL(path)})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrProfileNotFound
	}
	return p, err
}
