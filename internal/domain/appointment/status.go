package appointment

import (
	"strings"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

// ParseStatus aceita "cancelled" como sinônimo de "canceled".
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return StatusPending, nil
	case "confirmed":
		return StatusConfirmed, nil
	case "completed":
		return StatusCompleted, nil
	case "canceled", "cancelled":
		return StatusCanceled, nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}

// ===============================
// Validations
// ===============================

// InitialStatus: o fluxo de reserva não tem caminho "pending".
func InitialStatus() Status {
	return StatusConfirmed
}

// CanSetByShop: o painel só expõe confirmar ou cancelar; "completed" nunca.
func CanSetByShop(current, target Status) error {
	if target != StatusConfirmed && target != StatusCanceled {
		return httperr.ErrBusiness("status_not_allowed")
	}
	if current == StatusCanceled || current == StatusCompleted {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancelByUser define se o cliente pode cancelar a própria reserva.
func CanCancelByUser(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func IsUpcoming(s Status) bool {
	return s == StatusPending || s == StatusConfirmed
}
