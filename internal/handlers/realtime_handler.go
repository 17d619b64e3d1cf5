package handlers

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain/admin"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/realtime"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-booking/internal/logger"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

const heartbeatInterval = 25 * time.Second

// ShopLookup confere a posse da loja pedida no filtro.
type ShopLookup interface {
	GetShop(ctx context.Context, id uuid.UUID) (*models.Barbershop, error)
}

type RealtimeHandler struct {
	hub   *realtime.Hub
	shops ShopLookup
	log   *logger.Logger
}

func NewRealtimeHandler(hub *realtime.Hub, shops ShopLookup, log *logger.Logger) *RealtimeHandler {
	return &RealtimeHandler{hub: hub, shops: shops, log: log}
}

// Stream: GET /api/realtime/:table?event=INSERT&filter=user_id=eq.<id>
// Cada evento é só um aviso para o cliente recarregar a tabela.
func (h *RealtimeHandler) Stream(c *gin.Context) {
	table := c.Param("table")

	var filter *realtime.Filter
	if raw := c.Query("filter"); raw != "" {
		f, err := realtime.ParseFilter(raw)
		if err != nil {
			respondError(c, h.log, err)
			return
		}
		filter = f
	}

	var p *models.Profile
	if s, ok := middleware.SessionFrom(c); ok {
		p = s.Profile
	}
	sub := h.subscriber(c.Request.Context(), p, table, filter)

	if err := realtime.Authorize(table, filter, sub); err != nil {
		respondError(c, h.log, err)
		return
	}

	events, err := h.hub.Subscribe(c.Request.Context(), table, c.Query("event"), filter)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")

	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	c.SSEvent("ready", gin.H{"table": table})
	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent("change", ev)
			return true
		case <-ticker.C:
			c.SSEvent("ping", time.Now().UTC().Unix())
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// subscriber monta o assinante; a loja do filtro só entra em OwnedShops
// quando o perfil tem painel e pode editá-la.
func (h *RealtimeHandler) subscriber(ctx context.Context, p *models.Profile, table string, f *realtime.Filter) realtime.Subscriber {
	sub := realtime.Subscriber{}
	if p == nil {
		return sub
	}

	id := p.ID
	sub.UserID = &id
	sub.IsAdmin = admin.IsAdmin(p)

	if sub.IsAdmin || table != realtime.TableAppointments || f == nil || f.Column != realtime.ShopColumn {
		return sub
	}
	if !admin.CanAccessConsole(p) {
		return sub
	}

	shopID, err := uuid.Parse(f.Value)
	if err != nil {
		return sub
	}
	shop, err := h.shops.GetShop(ctx, shopID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			h.log.Warn().Err(err).Str("shop_id", f.Value).Msg("realtime shop lookup failed")
		}
		return sub
	}
	if admin.CanEditShop(p, shop) == nil {
		sub.OwnedShops = []uuid.UUID{shop.ID}
	}
	return sub
}
