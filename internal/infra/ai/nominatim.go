package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const userAgent = "barbershop-booking/1.0"

// Nominatim faz geocodificação reversa no OpenStreetMap.
type Nominatim struct {
	baseURL    string
	httpClient *http.Client
}

func NewNominatim(baseURL string) *Nominatim {
	return &Nominatim{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type nominatimAddress struct {
	Suburb        string `json:"suburb"`
	Neighbourhood string `json:"neighbourhood"`
	City          string `json:"city"`
	Town          string `json:"town"`
	Village       string `json:"village"`
	State         string `json:"state"`
}

type nominatimResponse struct {
	DisplayName string           `json:"display_name"`
	Address     nominatimAddress `json:"address"`
}

// Reverse devolve "Bairro, Cidade, Província" (o que houver).
func (n *Nominatim) Reverse(ctx context.Context, lat, lng float64) (string, error) {
	q := url.Values{}
	q.Set("format", "json")
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))
	q.Set("accept-language", "pt")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+"/reverse?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("geocoder: build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("geocoder: call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("geocoder: HTTP %d", resp.StatusCode)
	}

	var out nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("geocoder: decode: %w", err)
	}
	return formatAddress(out), nil
}

func formatAddress(r nominatimResponse) string {
	a := r.Address
	var parts []string
	if s := firstNonEmpty(a.Suburb, a.Neighbourhood); s != "" {
		parts = append(parts, s)
	}
	if s := firstNonEmpty(a.City, a.Town, a.Village); s != "" {
		parts = append(parts, s)
	}
	if a.State != "" {
		parts = append(parts, a.State)
	}
	if len(parts) > 0 {
		return strings.Join(parts, ", ")
	}

	if r.DisplayName != "" {
		dn := strings.Split(r.DisplayName, ",")
		if len(dn) > 3 {
			dn = dn[:3]
		}
		return strings.Join(dn, ",")
	}
	return "Localização Identificada"
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
