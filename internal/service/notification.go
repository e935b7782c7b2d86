package service

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/surveilmap/camera_triage_system/internal/models"
)

// NotificationService определяет контракт эмиттера транзиентных уведомлений.
// Активно максимум одно уведомление: повторный Emit до истечения таймера
// заменяет текущее и перезапускает таймер, очереди уведомлений нет.
type NotificationService interface {
	Emit(title, description string)
	Current() *models.Notification
}

type notificationService struct {
	mu     sync.Mutex
	logger *logrus.Logger
	ttl    time.Duration

	active *models.Notification
	timer  *time.Timer
	gen    uint64
}

func NewNotificationService(logger *logrus.Logger, ttl time.Duration) NotificationService {
	return &notificationService{
		logger: logger,
		ttl:    ttl,
	}
}

// Emit заменяет активное уведомление и планирует его автоскрытие
func (s *notificationService) Emit(title, description string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Отменяем таймер предыдущего уведомления, если он ещё не сработал
	if s.timer != nil {
		s.timer.Stop()
	}

	s.gen++
	gen := s.gen
	s.active = &models.Notification{
		Title:       title,
		Description: description,
		EmittedAt:   time.Now(),
	}

	s.logger.WithFields(logrus.Fields{
		"service": "notification",
		"title":   title,
	}).Debug("Notification emitted")

	s.timer = time.AfterFunc(s.ttl, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		// Сбрасываем только если за время ожидания не появилось новое уведомление
		if s.gen == gen {
			s.active = nil
			s.timer = nil
		}
	})
}

// Current возвращает копию активного уведомления или nil, если его нет
func (s *notificationService) Current() *models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return nil
	}
	n := *s.active
	return &n
}
