package geo

import (
	"fmt"
	"net/url"
)

type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

const defaultZoom = 0.01

// EmbedURL monta o iframe do OpenStreetMap centrado em center com marcador em marker.
func EmbedURL(center, marker Point, zoom float64) string {
	if zoom <= 0 {
		zoom = defaultZoom
	}

	q := url.Values{}
	q.Set("bbox", fmt.Sprintf("%f,%f,%f,%f",
		center.Lng-zoom, center.Lat-zoom, center.Lng+zoom, center.Lat+zoom))
	q.Set("layer", "mapnik")
	q.Set("marker", fmt.Sprintf("%f,%f", marker.Lat, marker.Lng))

	return "https://www.openstreetmap.org/export/embed.html?" + q.Encode()
}

// DirectionsURL abre o Google Maps com rota até o destino.
func DirectionsURL(dest Point) string {
	q := url.Values{}
	q.Set("api", "1")
	q.Set("destination", fmt.Sprintf("%f,%f", dest.Lat, dest.Lng))
	q.Set("travelmode", "driving")

	return "https://www.google.com/maps/dir/?" + q.Encode()
}

// PlaceURL é o link simples usado junto do nome do local.
func PlaceURL(p Point) string {
	return fmt.Sprintf("https://www.google.com/maps?q=%f,%f", p.Lat, p.Lng)
}
