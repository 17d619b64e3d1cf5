package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-booking/internal/logger"
	"github.com/BruksfildServices01/barbershop-booking/internal/usecase/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/usecase/listing"
	"github.com/BruksfildServices01/barbershop-booking/internal/usecase/profile"
)

// ======================================================
// HANDLER
// ======================================================

type MeHandler struct {
	me            *profile.Me
	appointments  *appointment.ListMine
	cancel        *appointment.CancelMine
	notifications *appointment.ListNotifications
	browse        *listing.Browse
	log           *logger.Logger
}

func NewMeHandler(
	me *profile.Me,
	appointments *appointment.ListMine,
	cancel *appointment.CancelMine,
	notifications *appointment.ListNotifications,
	browse *listing.Browse,
	log *logger.Logger,
) *MeHandler {
	return &MeHandler{
		me:            me,
		appointments:  appointments,
		cancel:        cancel,
		notifications: notifications,
		browse:        browse,
		log:           log,
	}
}

// ======================================================
// PROFILE
// ======================================================

func (h *MeHandler) GetMe(c *gin.Context) {
	httpresp.OK(c, actor(c))
}

func (h *MeHandler) UpdateMe(c *gin.Context) {
	var req profile.UpdateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	p, err := h.me.Update(c.Request.Context(), actor(c).ID, req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, p)
}

func (h *MeHandler) UploadAvatar(c *gin.Context) {
	fh, err := c.FormFile("avatar")
	if err != nil {
		httperr.BadRequest(c, "avatar_required", "Envie uma imagem.")
		return
	}
	f, err := fh.Open()
	if err != nil {
		invalidRequest(c)
		return
	}
	defer f.Close()

	p, err := h.me.UploadAvatar(c.Request.Context(), actor(c).ID, f)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, p)
}

// ======================================================
// APPOINTMENTS
// ======================================================

func (h *MeHandler) ListAppointments(c *gin.Context) {
	items, err := h.appointments.Execute(c.Request.Context(), actor(c).ID, c.Query("tab"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.List(c, items)
}

func (h *MeHandler) CancelAppointment(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), actor(c).ID, id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *MeHandler) Notifications(c *gin.Context) {
	items, err := h.notifications.Execute(c.Request.Context(), actor(c).ID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.List(c, items)
}

// ======================================================
// FAVORITES
// ======================================================

func (h *MeHandler) Favorites(c *gin.Context) {
	items, err := h.browse.Favorites(c.Request.Context(), actor(c).ID, position(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.List(c, items)
}
