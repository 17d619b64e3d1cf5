package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/geo"
	"github.com/BruksfildServices01/barbershop-booking/internal/logger"
)

const (
	callTimeout = 10 * time.Second

	adviceNoKey    = "Configure sua API Key do Gemini para receber dicas personalizadas!"
	adviceFallback = "Sempre use produtos de qualidade para manter seu visual impecável!"

	advicePrompt = "O cliente está interessado no serviço: %s. Dê 3 dicas rápidas e profissionais " +
		"sobre esse estilo de corte ou cuidado. Responda de forma curta e amigável em português."

	placePrompt = `Com base nas coordenadas GPS: Latitude %f, Longitude %f, identifique o endereço em Moçambique.

Retorne APENAS no formato: 'Bairro, Cidade, Província'

Províncias válidas em Moçambique: Maputo (Cidade ou Província), Gaza, Inhambane, Sofala, Manica, Tete, Zambézia, Nampula, Niassa, Cabo Delgado.

Exemplo: 'Polana Cimento, Maputo, Cidade de Maputo'`
)

type TextGenerator interface {
	Configured() bool
	Generate(ctx context.Context, prompt string) (string, error)
}

type ReverseGeocoder interface {
	Reverse(ctx context.Context, lat, lng float64) (string, error)
}

type Place struct {
	Address string `json:"address"`
	URL     string `json:"url"`
	Source  string `json:"source"` // gemini | geocoder | coordinates | default
}

// Assistant nunca devolve erro: cada falha cai para o próximo recurso.
type Assistant struct {
	gen             TextGenerator
	geocoder        ReverseGeocoder
	defaultLocation string
	log             *logger.Logger
}

func NewAssistant(gen TextGenerator, geocoder ReverseGeocoder, defaultLocation string, log *logger.Logger) *Assistant {
	return &Assistant{
		gen:             gen,
		geocoder:        geocoder,
		defaultLocation: defaultLocation,
		log:             log.With("ai"),
	}
}

func (a *Assistant) StyleAdvice(ctx context.Context, serviceName string) string {
	if !a.gen.Configured() {
		return adviceNoKey
	}

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	text, err := a.gen.Generate(ctx, fmt.Sprintf(advicePrompt, serviceName))
	if err != nil {
		a.log.Warn().Err(err).Str("service", serviceName).Msg("style advice failed")
		return adviceFallback
	}
	return text
}

// Locate tenta Gemini, depois o geocodificador, depois as coordenadas cruas.
func (a *Assistant) Locate(ctx context.Context, lat, lng float64) Place {
	url := geo.PlaceURL(geo.Point{Lat: lat, Lng: lng})

	if a.gen.Configured() {
		gctx, cancel := context.WithTimeout(ctx, callTimeout)
		text, err := a.gen.Generate(gctx, fmt.Sprintf(placePrompt, lat, lng))
		cancel()
		if err == nil {
			return Place{Address: text, URL: url, Source: "gemini"}
		}
		a.log.Warn().Err(err).Msg("gemini place lookup failed, trying geocoder")
	}

	if a.geocoder != nil {
		gctx, cancel := context.WithTimeout(ctx, callTimeout)
		addr, err := a.geocoder.Reverse(gctx, lat, lng)
		cancel()
		if err == nil {
			return Place{Address: addr, URL: url, Source: "geocoder"}
		}
		a.log.Warn().Err(err).Msg("reverse geocoding failed")
	}

	return Place{
		Address: fmt.Sprintf("Lat: %.4f, Lng: %.4f", lat, lng),
		URL:     url,
		Source:  "coordinates",
	}
}

// DefaultPlace é usado quando o cliente não tem posição.
func (a *Assistant) DefaultPlace() Place {
	return Place{Address: a.defaultLocation, Source: "default"}
}
