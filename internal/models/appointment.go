package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Appointment guarda nomes desnormalizados: é um retrato do momento da reserva.
type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`

	BarbershopID   uuid.UUID `gorm:"type:uuid;index;not null" json:"barbershop_id"`
	BarbershopName string    `gorm:"size:100" json:"barbershop_name"`

	ServiceName string          `gorm:"size:100" json:"service_name"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2)" json:"price"`

	ProfessionalID   string `gorm:"size:64" json:"professional_id"`
	ProfessionalName string `gorm:"size:100" json:"professional_name"`

	Date string `gorm:"size:10" json:"date"`
	Time string `gorm:"size:5" json:"time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
}

func (Appointment) TableName() string { return "user_appointments" }
