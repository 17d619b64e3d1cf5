package shop

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

const defaultServiceIcon = "content_cut"

// Durações oferecidas no formulário, em minutos.
var AllowedDurations = []int{15, 30, 45, 60, 90}

type ServiceInput struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Duration    int             `json:"duration"`
	Icon        string          `json:"icon"`
}

// ShopInput é o campo "payload" do formulário de loja.
type ShopInput struct {
	Name          string                `json:"name"`
	Address       string                `json:"address"`
	Neighborhood  string                `json:"neighborhood"`
	Description   string                `json:"description"`
	ClosingTime   string                `json:"closing_time"`
	IsPremium     bool                  `json:"is_premium"`
	IsOpen        *bool                 `json:"is_open"`
	Distance      *float64              `json:"distance"`
	Latitude      *float64              `json:"latitude"`
	Longitude     *float64              `json:"longitude"`
	Image         string                `json:"image"`
	Gallery       []string              `json:"gallery"`
	Services      []ServiceInput        `json:"services"`
	Professionals []models.Professional `json:"professionals"`
}

func (in ServiceInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" || !in.Price.IsPositive() {
		return ErrInvalidService
	}
	for _, d := range AllowedDurations {
		if in.Duration == d {
			return nil
		}
	}
	return ErrInvalidDuration
}

// Build gera id quando ausente; o id só precisa ser único dentro da loja.
func (in ServiceInput) Build() models.Service {
	id := strings.TrimSpace(in.ID)
	if id == "" {
		id = uuid.NewString()
	}
	icon := in.Icon
	if icon == "" {
		icon = defaultServiceIcon
	}
	return models.Service{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price.Round(2),
		Duration:    in.Duration,
		Icon:        icon,
	}
}

func (in ShopInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrNameRequired
	}
	if (in.Latitude == nil) != (in.Longitude == nil) {
		return ErrInvalidCoordinates
	}
	if in.Latitude != nil && (*in.Latitude < -90 || *in.Latitude > 90 || *in.Longitude < -180 || *in.Longitude > 180) {
		return ErrInvalidCoordinates
	}
	for _, s := range in.Services {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// apply copia os campos editáveis; imagem, galeria e dono ficam com quem chama.
func (in ShopInput) apply(shop *models.Barbershop) {
	shop.Name = strings.TrimSpace(in.Name)
	shop.Address = strings.TrimSpace(in.Address)
	shop.Neighborhood = strings.TrimSpace(in.Neighborhood)
	shop.Description = in.Description
	shop.ClosingTime = in.ClosingTime
	shop.IsPremium = in.IsPremium
	shop.Latitude = in.Latitude
	shop.Longitude = in.Longitude

	if in.IsOpen != nil {
		shop.IsOpen = *in.IsOpen
	}
	if in.Distance != nil {
		shop.Distance = *in.Distance
	}

	shop.Services = make([]models.Service, 0, len(in.Services))
	for _, s := range in.Services {
		shop.Services = append(shop.Services, s.Build())
	}

	shop.Professionals = make([]models.Professional, 0, len(in.Professionals))
	for _, p := range in.Professionals {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		shop.Professionals = append(shop.Professionals, p)
	}
}
