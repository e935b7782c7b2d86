package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/surveilmap/camera_triage_system/internal/models"
	"github.com/surveilmap/camera_triage_system/internal/webhook"
)

// TicketRepository определяет контракт доступа к тикетам бэкенда.
// Кэша нет: источник истины по статусам - сервер, локальный список
// перезагружается целиком после каждого подтвержденного перехода.
type TicketRepository interface {
	ListTickets(ctx context.Context) ([]models.Ticket, error)
	UpdateStatus(ctx context.Context, id int64, status models.TicketStatus) (*models.Ticket, error)
}

// CameraRepository определяет контракт получения деталей камеры
type CameraRepository interface {
	GetCamera(ctx context.Context, id int64) (*models.Camera, error)
}

// TicketService определяет контракт хранилища тикетов и контроллера триажа.
// Машина состояний тикета: Pending -> Accepted | Rejected, оба терминальные.
type TicketService interface {
	Refresh(ctx context.Context) error
	Pending() []models.Ticket
	OpenTicket(ctx context.Context, ticketID int64) (*models.TicketDialog, error)
	DismissDialog()
	Dialog() *models.TicketDialog
	SetStatus(ctx context.Context, ticketID int64, status models.TicketStatus) error
}

type ticketService struct {
	repo      TicketRepository
	cameras   CameraRepository
	selection SelectionService
	notifier  NotificationService
	publisher webhook.Publisher
	logger    *logrus.Logger

	mu      sync.Mutex
	tickets []models.Ticket
	dialog  *models.TicketDialog

	// Поколение запроса открытия диалога: ответ, пришедший после закрытия
	// или нового открытия, диалог не поднимает
	openGen uint64
}

func NewTicketService(repo TicketRepository, cameras CameraRepository, selection SelectionService, notifier NotificationService, publisher webhook.Publisher, logger *logrus.Logger) TicketService {
	return &ticketService{
		repo:      repo,
		cameras:   cameras,
		selection: selection,
		notifier:  notifier,
		publisher: publisher,
		logger:    logger,
		tickets:   make([]models.Ticket, 0),
	}
}

// Refresh перезагружает список тикетов с бэкенда целиком
func (s *ticketService) Refresh(ctx context.Context) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "ticket",
		"method":  "Refresh",
	})

	tickets, err := s.repo.ListTickets(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to fetch tickets from backend")
		return fmt.Errorf("service: could not refresh tickets: %w", err)
	}

	s.mu.Lock()
	s.tickets = tickets
	s.mu.Unlock()

	log.WithField("count", len(tickets)).Info("Ticket list refreshed")
	return nil
}

// Pending возвращает тикеты в статусе Pending - единственное представление,
// доступное для действий оператора
func (s *ticketService) Pending() []models.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := make([]models.Ticket, 0)
	for _, t := range s.tickets {
		if t.Status == models.TicketPending {
			pending = append(pending, t)
		}
	}
	return pending
}

// OpenTicket загружает детали камеры тикета и открывает диалог.
// Отказ оставляет диалог закрытым: частичного состояния UI не бывает.
func (s *ticketService) OpenTicket(ctx context.Context, ticketID int64) (*models.TicketDialog, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "ticket",
		"method":    "OpenTicket",
		"ticket_id": ticketID,
	})

	s.mu.Lock()
	ticket, ok := s.findLocked(ticketID)
	if !ok {
		s.mu.Unlock()
		log.Warn("Ticket not found in store")
		return nil, fmt.Errorf("ticket %d: %w", ticketID, models.ErrNotFound)
	}
	s.openGen++
	gen := s.openGen
	cameraID := ticket.CameraID
	s.mu.Unlock()

	camera, err := s.cameras.GetCamera(ctx, cameraID)
	if err != nil {
		log.WithError(err).Warn("Failed to fetch camera for ticket, dialog stays closed")
		return nil, fmt.Errorf("service: could not open ticket %d: %w", ticketID, err)
	}

	dialog := &models.TicketDialog{
		TicketID: ticketID,
		Camera:   *camera,
	}

	s.mu.Lock()
	if gen != s.openGen {
		// Диалог успели закрыть или открыть заново: данные камеры уже в
		// кэше, но поднимать закрытый диалог не нужно
		s.mu.Unlock()
		log.Debug("Open ticket response is no longer relevant")
		return dialog, nil
	}
	s.dialog = dialog
	s.mu.Unlock()

	if err := s.selection.Select(models.Selection{Kind: models.SelectionTicket, TicketID: ticketID}); err != nil {
		log.WithError(err).Warn("Failed to select ticket overlay")
	}

	log.Info("Ticket dialog opened")
	return dialog, nil
}

// DismissDialog закрывает диалог без перехода статуса
func (s *ticketService) DismissDialog() {
	s.mu.Lock()
	s.openGen++
	s.dialog = nil
	s.mu.Unlock()

	if s.selection.Snapshot().Kind == models.SelectionTicket {
		s.selection.Clear()
	}
}

// Dialog возвращает открытый диалог или nil. Если оверлей тикета был
// вытеснен выбором другой цели или другого тикета, диалог считается закрытым.
func (s *ticketService) Dialog() *models.TicketDialog {
	sel := s.selection.Snapshot()
	if sel.Kind != models.SelectionTicket {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dialog == nil || s.dialog.TicketID != sel.TicketID {
		return nil
	}
	d := *s.dialog
	return &d
}

// SetStatus выполняет подтверждаемый сервером переход статуса тикета.
// Успех закрывает диалог, перезагружает список (авторитетный refresh вместо
// локального патча) и эмитит уведомление. Отказ оставляет диалог открытым и
// статус нетронутым, чтобы оператор мог повторить.
func (s *ticketService) SetStatus(ctx context.Context, ticketID int64, status models.TicketStatus) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "ticket",
		"method":    "SetStatus",
		"ticket_id": ticketID,
		"status":    status,
	})

	if status != models.TicketAccepted && status != models.TicketRejected {
		return fmt.Errorf("status %q: %w", status, models.ErrInvalidTransition)
	}

	s.mu.Lock()
	ticket, ok := s.findLocked(ticketID)
	s.mu.Unlock()
	if !ok {
		log.Warn("Ticket not found in store")
		return fmt.Errorf("ticket %d: %w", ticketID, models.ErrNotFound)
	}
	if ticket.Status.Terminal() {
		log.Warn("Ticket is already resolved")
		return fmt.Errorf("ticket %d is %s: %w", ticketID, ticket.Status, models.ErrInvalidTransition)
	}

	updated, err := s.repo.UpdateStatus(ctx, ticketID, status)
	if err != nil {
		log.WithError(err).Error("Status update failed, dialog stays open")
		return fmt.Errorf("service: could not update ticket %d: %w", ticketID, err)
	}

	// Переход подтвержден сервером: только теперь трогаем локальное состояние
	s.mu.Lock()
	s.openGen++
	s.dialog = nil
	s.mu.Unlock()
	if s.selection.Snapshot().Kind == models.SelectionTicket {
		s.selection.Clear()
	}

	if err := s.Refresh(ctx); err != nil {
		// Переход уже состоялся; устаревший список доживет до следующего
		// refresh-а
		log.WithError(err).Warn("Ticket list refresh after status update failed")
	}

	event := webhook.TriageEvent{
		TicketID:  updated.ID,
		CameraID:  updated.CameraID,
		Status:    updated.Status,
		Timestamp: time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Error("Failed to publish triage event")
	}

	if status == models.TicketAccepted {
		s.notifier.Emit("Ticket Accepted", "The ticket has been accepted.")
	} else {
		s.notifier.Emit("Ticket Rejected", "The ticket has been rejected.")
	}

	log.Info("Ticket status transition confirmed")
	return nil
}

// findLocked ищет тикет в локальном списке. Вызывается только под мьютексом.
func (s *ticketService) findLocked(ticketID int64) (models.Ticket, bool) {
	for _, t := range s.tickets {
		if t.ID == ticketID {
			return t, true
		}
	}
	return models.Ticket{}, false
}
