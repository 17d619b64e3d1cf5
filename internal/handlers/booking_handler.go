package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-booking/internal/logger"
	"github.com/BruksfildServices01/barbershop-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	wizard  *booking.Wizard
	confirm *booking.ConfirmBooking
	log     *logger.Logger
}

func NewBookingHandler(wizard *booking.Wizard, confirm *booking.ConfirmBooking, log *logger.Logger) *BookingHandler {
	return &BookingHandler{wizard: wizard, confirm: confirm, log: log}
}

// ======================================================
// REQUESTS
// ======================================================

type StartBookingRequest struct {
	BarbershopID uuid.UUID `json:"barbershop_id" binding:"required"`
}

type SelectServiceRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
}

type SelectProfessionalRequest struct {
	ProfessionalID string `json:"professional_id" binding:"required"`
}

type ShowMonthRequest struct {
	Offset int `json:"offset"`
}

type SelectDateRequest struct {
	Date string `json:"date" binding:"required"`
}

type SelectTimeRequest struct {
	Time string `json:"time" binding:"required"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *BookingHandler) Start(c *gin.Context) {
	var req StartBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	view, err := h.wizard.Start(c.Request.Context(), req.BarbershopID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.Created(c, view)
}

func (h *BookingHandler) Get(c *gin.Context) {
	h.run(c, h.wizard.Get)
}

func (h *BookingHandler) SelectService(c *gin.Context) {
	var req SelectServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}
	h.withID(c, func(id uuid.UUID) (*booking.View, error) {
		return h.wizard.SelectService(c.Request.Context(), id, req.ServiceID)
	})
}

func (h *BookingHandler) SelectProfessional(c *gin.Context) {
	var req SelectProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}
	h.withID(c, func(id uuid.UUID) (*booking.View, error) {
		return h.wizard.SelectProfessional(c.Request.Context(), id, req.ProfessionalID)
	})
}

func (h *BookingHandler) ShowMonth(c *gin.Context) {
	var req ShowMonthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}
	h.withID(c, func(id uuid.UUID) (*booking.View, error) {
		return h.wizard.ShowMonth(c.Request.Context(), id, req.Offset)
	})
}

func (h *BookingHandler) SelectDate(c *gin.Context) {
	var req SelectDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}
	h.withID(c, func(id uuid.UUID) (*booking.View, error) {
		return h.wizard.SelectDate(c.Request.Context(), id, req.Date)
	})
}

func (h *BookingHandler) SelectTime(c *gin.Context) {
	var req SelectTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}
	h.withID(c, func(id uuid.UUID) (*booking.View, error) {
		return h.wizard.SelectTime(c.Request.Context(), id, req.Time)
	})
}

func (h *BookingHandler) Next(c *gin.Context) {
	h.run(c, h.wizard.Next)
}

func (h *BookingHandler) Back(c *gin.Context) {
	h.run(c, h.wizard.Back)
}

// Confirm é o único passo que exige sessão.
func (h *BookingHandler) Confirm(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	res, err := h.confirm.Execute(c.Request.Context(), id, optionalUserID(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.Created(c, res)
}

// ======================================================
// HELPERS
// ======================================================

func (h *BookingHandler) run(c *gin.Context, fn func(ctx context.Context, id uuid.UUID) (*booking.View, error)) {
	h.withID(c, func(id uuid.UUID) (*booking.View, error) {
		return fn(c.Request.Context(), id)
	})
}

func (h *BookingHandler) withID(c *gin.Context, fn func(id uuid.UUID) (*booking.View, error)) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	view, err := fn(id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, view)
}
