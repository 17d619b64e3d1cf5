package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type Barbershop struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Address      string    `gorm:"size:255" json:"address"`
	Neighborhood string    `gorm:"size:100" json:"neighborhood"`
	Description  string    `gorm:"type:text" json:"description"`

	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	// Distância declarada (km), usada quando não há coordenadas.
	// Sem default no gorm: zero e false são valores válidos no insert.
	Distance float64 `gorm:"not null" json:"distance"`

	Rating      float64 `gorm:"default:0" json:"rating"`
	IsOpen      bool    `gorm:"not null" json:"is_open"`
	ClosingTime string  `gorm:"size:10" json:"closing_time"`
	IsPremium   bool    `gorm:"default:false" json:"is_premium"`

	Image   string         `gorm:"size:500" json:"image"`
	Gallery pq.StringArray `gorm:"type:text[]" json:"gallery"`

	Services      []Service      `gorm:"type:jsonb;serializer:json" json:"services"`
	Professionals []Professional `gorm:"type:jsonb;serializer:json" json:"professionals"`

	OwnerID *uuid.UUID `gorm:"type:uuid;index" json:"owner_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Barbershop) TableName() string { return "barbershops" }

// Service é embutido na barbearia; o id só é único dentro da lista dela.
type Service struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Duration    int             `json:"duration"`
	Icon        string          `json:"icon"`
}

type Professional struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
	Photo  string  `json:"photo"`
}

func (b *Barbershop) FindService(id string) (*Service, bool) {
	for i := range b.Services {
		if b.Services[i].ID == id {
			return &b.Services[i], true
		}
	}
	return nil, false
}

func (b *Barbershop) FindProfessional(id string) (*Professional, bool) {
	for i := range b.Professionals {
		if b.Professionals[i].ID == id {
			return &b.Professionals[i], true
		}
	}
	return nil, false
}
