package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/ai"
)

type AssistantHandler struct {
	assistant *ai.Assistant
}

func NewAssistantHandler(assistant *ai.Assistant) *AssistantHandler {
	return &AssistantHandler{assistant: assistant}
}

// Advice: GET /api/advice?service=Corte
func (h *AssistantHandler) Advice(c *gin.Context) {
	service := c.Query("service")
	if service == "" {
		httperr.BadRequest(c, "service_required", "Informe o serviço.")
		return
	}

	httpresp.OK(c, gin.H{
		"service": service,
		"advice":  h.assistant.StyleAdvice(c.Request.Context(), service),
	})
}

// Reverse: GET /api/geo/reverse?lat=&lng=
// Sem coordenadas devolve a localização padrão.
func (h *AssistantHandler) Reverse(c *gin.Context) {
	lat, err1 := strconv.ParseFloat(c.Query("lat"), 64)
	lng, err2 := strconv.ParseFloat(c.Query("lng"), 64)
	if err1 != nil || err2 != nil {
		httpresp.OK(c, h.assistant.DefaultPlace())
		return
	}

	httpresp.OK(c, h.assistant.Locate(c.Request.Context(), lat, lng))
}
