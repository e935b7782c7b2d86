package repository

import (
	"context"

	"github.com/surveilmap/camera_triage_system/internal/backend"
	"github.com/surveilmap/camera_triage_system/internal/models"
	"github.com/surveilmap/camera_triage_system/internal/service"
)

// TicketRepository - тонкий проброс тикетов к бэкенду без кэширования:
// после каждого подтвержденного перехода список перечитывается целиком
type TicketRepository struct {
	client *backend.Client
}

func NewTicketRepository(client *backend.Client) service.TicketRepository {
	return &TicketRepository{client: client}
}

// ListTickets возвращает полный список тикетов
func (r *TicketRepository) ListTickets(ctx context.Context) ([]models.Ticket, error) {
	return r.client.ListTickets(ctx)
}

// UpdateStatus выполняет серверный переход статуса
func (r *TicketRepository) UpdateStatus(ctx context.Context, id int64, status models.TicketStatus) (*models.Ticket, error) {
	return r.client.UpdateTicketStatus(ctx, id, status)
}
