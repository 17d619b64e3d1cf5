package audit

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barbershop-booking/internal/logger"
)

type Event struct {
	BarbershopID *uuid.UUID
	UserID       *uuid.UUID
	Action       string
	Entity       string
	EntityID     string
	Metadata     any
}

type Sink interface {
	Log(ctx context.Context, ev Event) error
}

// Dispatcher grava auditoria fora do caminho da requisição.
type Dispatcher struct {
	sink  Sink
	log   *logger.Logger
	queue chan Event

	once sync.Once
	done chan struct{}
}

func NewDispatcher(sink Sink, log *logger.Logger) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		log:   log.With("audit"),
		queue: make(chan Event, 100),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		if err := d.sink.Log(context.Background(), ev); err != nil {
			d.log.Error().Err(err).Str("action", ev.Action).Msg("audit write failed")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// fila cheia: descarta, auditoria nunca quebra a API
		d.log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}

// Close drena a fila e espera o worker terminar.
func (d *Dispatcher) Close() {
	d.once.Do(func() { close(d.queue) })
	<-d.done
}
