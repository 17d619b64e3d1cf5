package realtime

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
)

var (
	ErrInvalidFilter = httperr.ErrBusiness("invalid_filter")
	ErrUnknownTable  = httperr.ErrBusiness("unknown_table")
	ErrForbidden     = httperr.ErrBusiness("realtime_forbidden")
)

// Tabelas que aceitam assinatura.
const (
	TableShops        = "barbershops"
	TableProfiles     = "profiles"
	TableAppointments = "user_appointments"
	TableFavorites    = "user_favorites"
)

// ShopColumn é a coluna de loja em user_appointments.
const ShopColumn = "barbershop_id"

// Filter é o predicado "coluna=eq.valor" de uma assinatura.
type Filter struct {
	Column string
	Value  string
}

// ParseFilter aceita "" (sem filtro) ou "coluna=eq.valor".
func ParseFilter(s string) (*Filter, error) {
	if s == "" {
		return nil, nil
	}
	col, rest, ok := strings.Cut(s, "=")
	if !ok || col == "" {
		return nil, ErrInvalidFilter
	}
	val, ok := strings.CutPrefix(rest, "eq.")
	if !ok || val == "" {
		return nil, ErrInvalidFilter
	}
	return &Filter{Column: col, Value: val}, nil
}

func (f *Filter) String() string {
	if f == nil {
		return ""
	}
	return f.Column + "=eq." + f.Value
}

func (f *Filter) Match(ev Event) bool {
	if f == nil {
		return true
	}
	v, ok := ev.Record[f.Column]
	if !ok || v == nil {
		return false
	}
	return fmt.Sprint(v) == f.Value
}

// Subscriber identifica quem assina; UserID nil é visitante anônimo.
// OwnedShops traz as lojas já conferidas como do assinante.
type Subscriber struct {
	UserID     *uuid.UUID
	IsAdmin    bool
	OwnedShops []uuid.UUID
}

func (s Subscriber) ownsShop(id string) bool {
	for _, shop := range s.OwnedShops {
		if shop.String() == id {
			return true
		}
	}
	return false
}

// Authorize aplica as regras de leitura por tabela.
func Authorize(table string, f *Filter, sub Subscriber) error {
	selfOnly := ""
	switch table {
	case TableShops:
		return nil
	case TableAppointments, TableFavorites:
		selfOnly = "user_id"
	case TableProfiles:
		selfOnly = "id"
	default:
		return ErrUnknownTable
	}

	if sub.IsAdmin {
		return nil
	}
	if sub.UserID == nil || f == nil {
		return ErrForbidden
	}
	// painel do dono: reservas das próprias lojas
	if table == TableAppointments && f.Column == ShopColumn && sub.ownsShop(f.Value) {
		return nil
	}
	if f.Column != selfOnly || f.Value != sub.UserID.String() {
		return ErrForbidden
	}
	return nil
}
