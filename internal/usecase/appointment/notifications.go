package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
)

const notificationLimit = 20

type Notification struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Icon      string    `json:"icon"`
	Tone      string    `json:"tone"` // success | danger | warning
	CreatedAt time.Time `json:"created_at"`
	Type      string    `json:"type"`
}

type ListNotifications struct {
	repo domain.Repository
}

func NewListNotifications(repo domain.Repository) *ListNotifications {
	return &ListNotifications{repo: repo}
}

// Execute deriva avisos dos 20 agendamentos mais recentes do usuário.
func (uc *ListNotifications) Execute(ctx context.Context, userID uuid.UUID) ([]Notification, error) {
	apps, err := uc.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(apps) > notificationLimit {
		apps = apps[:notificationLimit]
	}

	out := make([]Notification, 0, len(apps))
	for _, ap := range apps {
		st, _ := domain.ParseStatus(ap.Status)

		n := Notification{ID: ap.ID, CreatedAt: ap.CreatedAt, Type: "appointment"}
		var state string
		switch st {
		case domain.StatusConfirmed:
			n.Title, n.Icon, n.Tone, state = "Reserva Confirmada!", "check_circle", "success", "confirmado"
		case domain.StatusCanceled:
			n.Title, n.Icon, n.Tone, state = "Reserva Cancelada", "cancel", "danger", "cancelado"
		case domain.StatusCompleted:
			n.Title, n.Icon, n.Tone, state = "Serviço Concluído", "task_alt", "success", "concluído"
		default:
			n.Title, n.Icon, n.Tone, state = "Nova Reserva Pendente", "schedule", "warning", "em processamento"
		}
		n.Message = fmt.Sprintf("O seu serviço de %s na %s está %s.", ap.ServiceName, ap.BarbershopName, state)

		out = append(out, n)
	}
	return out, nil
}
