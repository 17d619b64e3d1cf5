package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-booking/internal/logger"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	store *audit.Store
	log   *logger.Logger
}

func NewAuditLogsHandler(store *audit.Store, log *logger.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{store: store, log: log}
}

// List: GET /api/admin/audit-logs?barbershop_id=&action=&entity=&from=&to=&page=&limit=
func (h *AuditLogsHandler) List(c *gin.Context) {
	q := audit.ListQuery{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
	}

	q.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	q.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))

	// --------------------------------------------------
	// Filtros opcionais
	// --------------------------------------------------

	if raw := c.Query("barbershop_id"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			q.BarbershopID = &id
		}
	}
	if from, err := time.Parse("2006-01-02", c.Query("from")); err == nil {
		q.From = &from
	}
	if to, err := time.Parse("2006-01-02", c.Query("to")); err == nil {
		q.To = &to
	}

	q.Normalize()
	logs, total, err := h.store.List(c.Request.Context(), q)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.Page(c, logs, q.Page, q.Limit, total)
}
