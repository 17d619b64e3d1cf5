package geo

import (
	"fmt"
	"math"
)

const earthRadiusKm = 6371.0

// Haversine devolve a distância em km entre dois pontos (graus).
// Entradas inválidas propagam NaN.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// FormatDistance: abaixo de 1 km em metros, senão km com duas casas.
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%d m", int(math.Round(km*1000)))
	}
	return fmt.Sprintf("%.2f km", km)
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
