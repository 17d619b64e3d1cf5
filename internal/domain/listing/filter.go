package listing

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/BruksfildServices01/barbershop-booking/internal/geo"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

const (
	CategoryAll     = "todos"
	CategoryPremium = "premium"
)

// Aliases aceitos na query para cada categoria.
var categoryAliases = map[string]string{
	"todos":      CategoryAll,
	"all":        CategoryAll,
	"":           CategoryAll,
	"premium":    CategoryPremium,
	"cabelo":     "cabelo",
	"hair":       "cabelo",
	"barba":      "barba",
	"beard":      "barba",
	"tratamento": "tratamento",
	"treatment":  "tratamento",
}

var categoryKeywords = map[string][]string{
	"cabelo":     {"corte", "cabelo", "cut", "hair"},
	"barba":      {"barba", "beard"},
	"tratamento": {"tratamento", "hidratacao", "spa", "treatment"},
}

type Query struct {
	Search   string
	Category string
	Position *geo.Point
}

type ShopView struct {
	models.Barbershop
	ResolvedDistance float64 `json:"real_distance"`
	DistanceLabel    string  `json:"distance_label"`
	IsFavorite       bool    `json:"is_favorite"`
}

// Filter resolve a distância, filtra por nome e categoria e ordena pela distância.
// Não altera o slice de entrada.
func Filter(shops []models.Barbershop, q Query) []ShopView {
	search := fold(q.Search)
	category := NormalizeCategory(q.Category)

	out := make([]ShopView, 0, len(shops))
	for _, shop := range shops {
		if !strings.Contains(fold(shop.Name), search) {
			continue
		}
		if !matchesCategory(&shop, category) {
			continue
		}

		out = append(out, NewView(shop, q.Position))
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ResolvedDistance < out[j].ResolvedDistance
	})

	return out
}

func NewView(shop models.Barbershop, pos *geo.Point) ShopView {
	d := ResolveDistance(&shop, pos)
	return ShopView{
		Barbershop:       shop,
		ResolvedDistance: d,
		DistanceLabel:    geo.FormatDistance(d),
	}
}

// ResolveDistance usa haversine quando há coordenadas da loja e do usuário.
func ResolveDistance(shop *models.Barbershop, pos *geo.Point) float64 {
	if pos != nil && shop.Latitude != nil && shop.Longitude != nil {
		return geo.Haversine(pos.Lat, pos.Lng, *shop.Latitude, *shop.Longitude)
	}
	return shop.Distance
}

// NormalizeCategory devolve o id canônico; categorias desconhecidas passam como estão.
func NormalizeCategory(c string) string {
	key := fold(strings.TrimSpace(c))
	if canon, ok := categoryAliases[key]; ok {
		return canon
	}
	return key
}

func matchesCategory(shop *models.Barbershop, category string) bool {
	switch category {
	case CategoryAll:
		return true
	case CategoryPremium:
		return shop.IsPremium
	}

	keywords := categoryKeywords[category]
	for _, s := range shop.Services {
		name, desc := fold(s.Name), fold(s.Description)
		for _, k := range keywords {
			if strings.Contains(name, k) || strings.Contains(desc, k) {
				return true
			}
		}
	}
	return false
}

// fold: minúsculas e sem acentos ("Hidratação" -> "hidratacao").
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}
