package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleCustomer   = "customer"
	RoleShopOwner  = "shop_owner"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

type Profile struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FullName     string    `gorm:"size:100" json:"full_name"`
	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone        string    `gorm:"size:20" json:"phone"`
	AvatarURL    string    `gorm:"size:500" json:"avatar_url"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`

	Role string `gorm:"size:20;default:'customer'" json:"role"`
	// Cota de lojas; admins ignoram.
	MaxShops int `gorm:"default:0" json:"max_shops"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Profile) TableName() string { return "profiles" }
