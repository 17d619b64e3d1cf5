package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/barbershop-booking/internal/geo"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// uuidParam lê um parâmetro de rota; responde 400 e devolve false se inválido.
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return uuid.Nil, false
	}
	return id, true
}

// position lê ?lat=&lng=; ausente ou inválido = sem posição.
func position(c *gin.Context) *geo.Point {
	lat, err1 := strconv.ParseFloat(c.Query("lat"), 64)
	lng, err2 := strconv.ParseFloat(c.Query("lng"), 64)
	if err1 != nil || err2 != nil {
		return nil
	}
	return &geo.Point{Lat: lat, Lng: lng}
}

func optionalUserID(c *gin.Context) *uuid.UUID {
	s, ok := middleware.SessionFrom(c)
	if !ok {
		return nil
	}
	id := s.UserID()
	return &id
}

// actor só é chamado atrás de AuthMiddleware.
func actor(c *gin.Context) *models.Profile {
	s, _ := middleware.SessionFrom(c)
	return s.Profile
}
