package booking_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/drafts"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

var now = time.Date(2025, time.October, 20, 9, 0, 0, 0, time.UTC)

func clock() time.Time { return now }

type memShops map[uuid.UUID]*models.Barbershop

func (m memShops) GetShop(_ context.Context, id uuid.UUID) (*models.Barbershop, error) {
	if s, ok := m[id]; ok {
		return s, nil
	}
	return nil, repository.ErrNotFound
}

// memDrafts serializa como o Redis faria, para não compartilhar ponteiros.
type memDrafts struct {
	mu    sync.Mutex
	items map[uuid.UUID]domain.Wizard
}

func newMemDrafts() *memDrafts {
	return &memDrafts{items: map[uuid.UUID]domain.Wizard{}}
}

func (m *memDrafts) Save(_ context.Context, w *domain.Wizard) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[w.ID] = *w
	return nil
}

func (m *memDrafts) Load(_ context.Context, id uuid.UUID) (*domain.Wizard, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.items[id]
	if !ok {
		return nil, drafts.ErrNotFound
	}
	return &w, nil
}

func (m *memDrafts) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, id)
	return nil
}

type memAppointments struct {
	mu    sync.Mutex
	items []models.Appointment
	err   error
}

func (m *memAppointments) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	ap.ID = uuid.New()
	m.items = append(m.items, *ap)
	return nil
}

var errDB = errors.New("connection reset")

func carlosShop() *models.Barbershop {
	return &models.Barbershop{
		ID:   uuid.New(),
		Name: "Barbearia do Zé",
		Services: []models.Service{
			{ID: "s1", Name: "Corte Clássico", Price: decimal.NewFromInt(350), Duration: 30},
		},
		Professionals: []models.Professional{{ID: "p1", Name: "Carlos"}},
	}
}
