package handlers

import (
	"encoding/json"
	"mime/multipart"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-booking/internal/logger"
	"github.com/BruksfildServices01/barbershop-booking/internal/usecase/shop"
)

const maxUploadMemory = 32 << 20

// ======================================================
// HANDLER
// ======================================================

type AdminShopHandler struct {
	list     *shop.ListConsoleShops
	save     *shop.SaveShop
	remove   *shop.DeleteShop
	services *shop.ManageServices
	log      *logger.Logger
}

func NewAdminShopHandler(
	list *shop.ListConsoleShops,
	save *shop.SaveShop,
	remove *shop.DeleteShop,
	services *shop.ManageServices,
	log *logger.Logger,
) *AdminShopHandler {
	return &AdminShopHandler{list: list, save: save, remove: remove, services: services, log: log}
}

// ======================================================
// SHOPS
// ======================================================

func (h *AdminShopHandler) List(c *gin.Context) {
	items, err := h.list.Execute(c.Request.Context(), actor(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.List(c, items)
}

// Create e Update recebem multipart: "payload" (JSON), "cover" e "gallery[]".
func (h *AdminShopHandler) Create(c *gin.Context) {
	h.saveShop(c, nil)
}

func (h *AdminShopHandler) Update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	h.saveShop(c, &id)
}

func (h *AdminShopHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	confirmed := c.Query("confirm") == "true"
	if err := h.remove.Execute(c.Request.Context(), actor(c), id, confirmed); err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.NoContent(c)
}

// ======================================================
// SERVICES
// ======================================================

func (h *AdminShopHandler) AddService(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req shop.ServiceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	updated, err := h.services.Add(c.Request.Context(), actor(c), id, req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.Created(c, updated)
}

func (h *AdminShopHandler) RemoveService(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	updated, err := h.services.Remove(c.Request.Context(), actor(c), id, c.Param("serviceId"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, updated)
}

// ======================================================
// HELPERS
// ======================================================

func (h *AdminShopHandler) saveShop(c *gin.Context, id *uuid.UUID) {
	if err := c.Request.ParseMultipartForm(maxUploadMemory); err != nil {
		invalidRequest(c)
		return
	}

	var data shop.ShopInput
	if err := json.Unmarshal([]byte(c.PostForm("payload")), &data); err != nil {
		invalidRequest(c)
		return
	}

	in := shop.SaveShopInput{Actor: actor(c), ShopID: id, Data: data}

	var opened []multipart.File
	defer func() {
		for _, f := range opened {
			f.Close()
		}
	}()

	open := func(fh *multipart.FileHeader) (shop.Upload, error) {
		f, err := fh.Open()
		if err != nil {
			return shop.Upload{}, err
		}
		opened = append(opened, f)
		return shop.Upload{Name: fh.Filename, Body: f}, nil
	}

	if fh, err := c.FormFile("cover"); err == nil {
		up, err := open(fh)
		if err != nil {
			invalidRequest(c)
			return
		}
		in.Cover = &up
	}

	for _, fh := range c.Request.MultipartForm.File["gallery[]"] {
		up, err := open(fh)
		if err != nil {
			invalidRequest(c)
			return
		}
		in.Gallery = append(in.Gallery, up)
	}

	saved, err := h.save.Execute(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	if id == nil {
		httpresp.Created(c, saved)
		return
	}
	httpresp.OK(c, saved)
}
