package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/barbershop-booking/internal/logger"
)

const channelPrefix = "realtime:"

// Event é só um sinal de mudança; o cliente relê a tabela.
type Event struct {
	Table  string         `json:"table"`
	Type   string         `json:"type"`
	Record map[string]any `json:"record"`
	At     time.Time      `json:"at"`
}

type Hub struct {
	rdb *redis.Client
	log *logger.Logger
}

func NewHub(rdb *redis.Client, log *logger.Logger) *Hub {
	return &Hub{rdb: rdb, log: log.With("realtime")}
}

func channel(table string) string { return channelPrefix + table }

func NewEvent(table, kind string, record any) (Event, error) {
	ev := Event{Table: table, Type: kind, At: time.Now().UTC()}

	b, err := json.Marshal(record)
	if err != nil {
		return ev, fmt.Errorf("realtime: encode record: %w", err)
	}
	if err := json.Unmarshal(b, &ev.Record); err != nil {
		return ev, fmt.Errorf("realtime: record is not an object: %w", err)
	}
	return ev, nil
}

// Notify satisfaz repository.ChangeNotifier. Falha de publicação não afeta a escrita.
func (h *Hub) Notify(ctx context.Context, table, kind string, record any) {
	ev, err := NewEvent(table, kind, record)
	if err == nil {
		err = h.Publish(ctx, ev)
	}
	if err != nil {
		h.log.Warn().Err(err).Str("table", table).Str("type", kind).Msg("change event not published")
	}
}

func (h *Hub) Publish(ctx context.Context, ev Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return h.rdb.Publish(ctx, channel(ev.Table), payload).Err()
}

// Subscribe entrega eventos da tabela até ctx terminar. Sem reconexão:
// se o Redis cair o canal é fechado.
func (h *Hub) Subscribe(ctx context.Context, table, kind string, f *Filter) (<-chan Event, error) {
	sub := h.rdb.Subscribe(ctx, channel(table))
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("realtime: subscribe %s: %w", table, err)
	}

	out := make(chan Event)
	go func() {
		defer close(out)
		defer sub.Close()

		msgs := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var ev Event
				if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
					h.log.Warn().Err(err).Str("table", table).Msg("malformed change event")
					continue
				}
				if !Wants(ev, kind, f) {
					continue
				}
				select {
				case out <- ev:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

// Wants aplica o filtro de tipo ("" = todos) e de coluna.
func Wants(ev Event, kind string, f *Filter) bool {
	if kind != "" && kind != ev.Type {
		return false
	}
	return f.Match(ev)
}
