package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-booking/internal/logger"
	"github.com/BruksfildServices01/barbershop-booking/internal/stats"
	"github.com/BruksfildServices01/barbershop-booking/internal/usecase/admin"
)

type AdminUserHandler struct {
	users *admin.Users
	stats *stats.Service
	log   *logger.Logger
}

func NewAdminUserHandler(users *admin.Users, stats *stats.Service, log *logger.Logger) *AdminUserHandler {
	return &AdminUserHandler{users: users, stats: stats, log: log}
}

type SetRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type SetMaxShopsRequest struct {
	MaxShops *int `json:"max_shops" binding:"required"`
}

func (h *AdminUserHandler) List(c *gin.Context) {
	items, err := h.users.List(c.Request.Context(), actor(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.List(c, items)
}

func (h *AdminUserHandler) SetRole(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	p, err := h.users.SetRole(c.Request.Context(), actor(c), id, req.Role)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, p)
}

func (h *AdminUserHandler) SetMaxShops(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req SetMaxShopsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	p, err := h.users.SetMaxShops(c.Request.Context(), actor(c), id, *req.MaxShops)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, p)
}

// Stats serve o snapshot mantido pelo cron.
func (h *AdminUserHandler) Stats(c *gin.Context) {
	snap, err := h.stats.Current(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, snap)
}
