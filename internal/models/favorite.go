package models

import (
	"time"

	"github.com/google/uuid"
)

type Favorite struct {
	UserID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	BarbershopID uuid.UUID `gorm:"type:uuid;primaryKey" json:"barbershop_id"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Favorite) TableName() string { return "user_favorites" }
