package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/listing"
	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-booking/internal/logger"
	"github.com/BruksfildServices01/barbershop-booking/internal/usecase/listing"
)

type BarbershopHandler struct {
	browse *listing.Browse
	log    *logger.Logger
}

func NewBarbershopHandler(browse *listing.Browse, log *logger.Logger) *BarbershopHandler {
	return &BarbershopHandler{browse: browse, log: log}
}

// List: GET /api/shops?q=&category=&lat=&lng=
func (h *BarbershopHandler) List(c *gin.Context) {
	items, err := h.browse.Execute(c.Request.Context(), domain.Query{
		Search:   c.Query("q"),
		Category: c.Query("category"),
		Position: position(c),
	}, optionalUserID(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.List(c, items)
}

func (h *BarbershopHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	view, err := h.browse.Detail(c.Request.Context(), id, position(c), optionalUserID(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, view)
}

func (h *BarbershopHandler) Map(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	links, err := h.browse.MapFor(c.Request.Context(), id, position(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, links)
}

func (h *BarbershopHandler) ToggleFavorite(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	fav, err := h.browse.ToggleFavorite(c.Request.Context(), actor(c).ID, id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"barbershop_id": id, "is_favorite": fav})
}
