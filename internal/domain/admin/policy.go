package admin

import (
	"github.com/google/uuid"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

var (
	ErrConsoleDenied  = httperr.ErrBusiness("console_denied")
	ErrUsersDenied    = httperr.ErrBusiness("users_denied")
	ErrShopForbidden  = httperr.ErrBusiness("shop_forbidden")
	ErrQuotaReached   = httperr.ErrBusiness("shop_quota_reached")
	ErrRoleNotAllowed = httperr.ErrBusiness("role_not_allowed")
	ErrInvalidQuota   = httperr.ErrBusiness("invalid_max_shops")
)

// ===============================
// Console
// ===============================

func IsAdmin(p *models.Profile) bool {
	return p != nil && (p.Role == models.RoleAdmin || p.Role == models.RoleSuperAdmin)
}

// CanAccessConsole: admins, donos de loja ou qualquer perfil com cota de lojas.
func CanAccessConsole(p *models.Profile) bool {
	if p == nil {
		return false
	}
	return IsAdmin(p) || p.Role == models.RoleShopOwner || p.MaxShops > 0
}

func CanManageUsers(p *models.Profile) bool {
	return IsAdmin(p)
}

// SeesAllShops: não-admins veem só as lojas em que são donos.
func SeesAllShops(p *models.Profile) bool {
	return IsAdmin(p)
}

// OwnerScope devolve nil para quem vê tudo, ou o id do dono para filtrar.
func OwnerScope(p *models.Profile) *uuid.UUID {
	if SeesAllShops(p) {
		return nil
	}
	id := p.ID
	return &id
}

// ===============================
// Shops
// ===============================

// CheckShopQuota vale só para criação; admins não têm limite.
func CheckShopQuota(p *models.Profile, owned int64) error {
	if IsAdmin(p) {
		return nil
	}
	if owned >= int64(p.MaxShops) {
		return ErrQuotaReached
	}
	return nil
}

func CanEditShop(p *models.Profile, shop *models.Barbershop) error {
	if IsAdmin(p) {
		return nil
	}
	if shop.OwnerID == nil || *shop.OwnerID != p.ID {
		return ErrShopForbidden
	}
	return nil
}

// ===============================
// Users
// ===============================

// assignableRoles vale igual para admin e super_admin.
var assignableRoles = []string{models.RoleShopOwner, models.RoleSuperAdmin, models.RoleCustomer}

func AssignableRoles(p *models.Profile) []string {
	if !CanManageUsers(p) {
		return nil
	}
	return assignableRoles
}

func CanAssignRole(p *models.Profile, role string) error {
	if !CanManageUsers(p) {
		return ErrUsersDenied
	}
	for _, r := range AssignableRoles(p) {
		if r == role {
			return nil
		}
	}
	return ErrRoleNotAllowed
}

func ValidateMaxShops(n int) error {
	if n < 0 {
		return ErrInvalidQuota
	}
	return nil
}
