package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	policy "github.com/BruksfildServices01/barbershop-booking/internal/domain/admin"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

var ErrUserNotFound = httperr.ErrBusiness("user_not_found")

type ProfileStore interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	ListProfiles(ctx context.Context) ([]models.Profile, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, fields map[string]any) (*models.Profile, error)
}

// ======================================================
// USERS
// ======================================================

type Users struct {
	profiles ProfileStore
	audit    *audit.Dispatcher
}

func NewUsers(profiles ProfileStore, audit *audit.Dispatcher) *Users {
	return &Users{profiles: profiles, audit: audit}
}

func (uc *Users) List(ctx context.Context, actor *models.Profile) ([]models.Profile, error) {
	if !policy.CanManageUsers(actor) {
		return nil, policy.ErrUsersDenied
	}
	return uc.profiles.ListProfiles(ctx)
}

func (uc *Users) SetRole(ctx context.Context, actor *models.Profile, userID uuid.UUID, role string) (*models.Profile, error) {
	// 1️⃣ quem pode gerenciar usuários
	if !policy.CanManageUsers(actor) {
		return nil, policy.ErrUsersDenied
	}

	// 2️⃣ alvo
	target, err := uc.target(ctx, userID)
	if err != nil {
		return nil, err
	}

	// 3️⃣ papel permitido para este ator
	if err := policy.CanAssignRole(actor, role); err != nil {
		return nil, err
	}

	updated, err := uc.profiles.UpdateProfile(ctx, userID, map[string]any{"role": role})
	if err != nil {
		return nil, err
	}

	uc.dispatch(actor, updated, "user_role_changed", map[string]string{"from": target.Role, "to": role})
	return updated, nil
}

func (uc *Users) SetMaxShops(ctx context.Context, actor *models.Profile, userID uuid.UUID, max int) (*models.Profile, error) {
	if !policy.CanManageUsers(actor) {
		return nil, policy.ErrUsersDenied
	}
	if err := policy.ValidateMaxShops(max); err != nil {
		return nil, err
	}

	target, err := uc.target(ctx, userID)
	if err != nil {
		return nil, err
	}

	updated, err := uc.profiles.UpdateProfile(ctx, userID, map[string]any{"max_shops": max})
	if err != nil {
		return nil, err
	}

	uc.dispatch(actor, updated, "user_quota_changed", map[string]int{"from": target.MaxShops, "to": max})
	return updated, nil
}

func (uc *Users) target(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	p, err := uc.profiles.GetProfile(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

func (uc *Users) dispatch(actor, target *models.Profile, action string, meta any) {
	actorID := actor.ID
	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   action,
		Entity:   "profile",
		EntityID: target.ID.String(),
		Metadata: meta,
	})
}
