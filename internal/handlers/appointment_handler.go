package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-booking/internal/logger"
	"github.com/BruksfildServices01/barbershop-booking/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	list      *appointment.ListConsole
	setStatus *appointment.SetStatus
	log       *logger.Logger
}

func NewAppointmentHandler(list *appointment.ListConsole, setStatus *appointment.SetStatus, log *logger.Logger) *AppointmentHandler {
	return &AppointmentHandler{list: list, setStatus: setStatus, log: log}
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// List devolve os agendamentos visíveis no painel, já com o cliente.
func (h *AppointmentHandler) List(c *gin.Context) {
	items, err := h.list.Execute(c.Request.Context(), actor(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.List(c, items)
}

func (h *AppointmentHandler) SetStatus(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	ap, err := h.setStatus.Execute(c.Request.Context(), actor(c), id, req.Status)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, ap)
}
