package stats

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/BruksfildServices01/barbershop-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-booking/internal/logger"
	"github.com/BruksfildServices01/barbershop-booking/internal/metrics"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

const RecentLimit = 5

type Counter interface {
	Count(ctx context.Context, filters []repository.Filter) (int64, error)
}

type AppointmentSource interface {
	Counter
	ListRecent(ctx context.Context, limit int) ([]models.Appointment, error)
}

type Snapshot struct {
	Profiles     int64                `json:"total_users"`
	Shops        int64                `json:"total_barbershops"`
	Appointments int64                `json:"total_appointments"`
	Recent       []models.Appointment `json:"recent_appointments"`
	RefreshedAt  time.Time            `json:"refreshed_at"`
}

// Service mantém os totais do painel num snapshot trocado atomicamente.
type Service struct {
	profiles     Counter
	shops        Counter
	appointments AppointmentSource

	metrics *metrics.Metrics
	log     *logger.Logger
	now     func() time.Time

	current atomic.Pointer[Snapshot]
	cron    *cron.Cron
}

func New(profiles, shops Counter, appointments AppointmentSource, m *metrics.Metrics, log *logger.Logger) *Service {
	return &Service{
		profiles:     profiles,
		shops:        shops,
		appointments: appointments,
		metrics:      m,
		log:          log.With("stats"),
		now:          time.Now,
	}
}

// Refresh recalcula tudo; em erro o snapshot anterior continua valendo.
func (s *Service) Refresh(ctx context.Context) (*Snapshot, error) {
	profiles, err := s.profiles.Count(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("stats: count profiles: %w", err)
	}
	shops, err := s.shops.Count(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("stats: count shops: %w", err)
	}
	appointments, err := s.appointments.Count(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("stats: count appointments: %w", err)
	}
	recent, err := s.appointments.ListRecent(ctx, RecentLimit)
	if err != nil {
		return nil, fmt.Errorf("stats: recent appointments: %w", err)
	}

	snap := &Snapshot{
		Profiles:     profiles,
		Shops:        shops,
		Appointments: appointments,
		Recent:       recent,
		RefreshedAt:  s.now(),
	}
	s.current.Store(snap)
	s.metrics.SetTotals(profiles, shops, appointments)
	return snap, nil
}

// Current devolve o último snapshot, calculando na hora se ainda não houver.
func (s *Service) Current(ctx context.Context) (*Snapshot, error) {
	if snap := s.current.Load(); snap != nil {
		return snap, nil
	}
	return s.Refresh(ctx)
}

// Start agenda o refresh com a expressão cron (ex.: "@every 5m").
func (s *Service) Start(spec string) error {
	c := cron.New()
	if _, err := c.AddFunc(spec, s.run); err != nil {
		return fmt.Errorf("stats: invalid schedule %q: %w", spec, err)
	}

	s.run()
	c.Start()
	s.cron = c

	s.log.Info().Str("schedule", spec).Msg("stats scheduler started")
	return nil
}

func (s *Service) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
}

func (s *Service) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := s.Refresh(ctx); err != nil {
		s.log.Error().Err(err).Msg("stats refresh failed")
	}
}
