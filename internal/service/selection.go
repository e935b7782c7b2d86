package service

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/surveilmap/camera_triage_system/internal/models"
)

// CameraSource - доступ менеджера выбора к текущему состоянию поиска.
// Реализуется контроллером поиска.
type CameraSource interface {
	Origin() models.Origin
	CameraAt(index int) (models.Camera, bool)
}

// SelectionService определяет контракт менеджера выбора маркеров.
// Инвариант: в любой момент открыт максимум один оверлей; выбор новой цели
// атомарно закрывает предыдущую.
type SelectionService interface {
	Select(sel models.Selection) error
	Clear()
	Snapshot() models.Selection
	Overlay() models.Overlay
}

type selectionService struct {
	mu      sync.Mutex
	logger  *logrus.Logger
	cameras CameraSource

	current models.Selection
}

func NewSelectionService(cameras CameraSource, logger *logrus.Logger) SelectionService {
	return &selectionService{
		logger:  logger,
		cameras: cameras,
		current: models.NoSelection(),
	}
}

// Select открывает оверлей цели, закрывая предыдущий
func (s *selectionService) Select(sel models.Selection) error {
	switch sel.Kind {
	case models.SelectionNone, models.SelectionDevice, models.SelectionDroppedPin, models.SelectionTicket:
	case models.SelectionCamera:
		if _, ok := s.cameras.CameraAt(sel.CameraIndex); !ok {
			return fmt.Errorf("camera index %d out of range: %w", sel.CameraIndex, models.ErrNotFound)
		}
	default:
		return fmt.Errorf("unknown selection kind %q", sel.Kind)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = sel

	s.logger.WithFields(logrus.Fields{
		"service": "selection",
		"kind":    sel.Kind,
	}).Debug("Selection changed")
	return nil
}

// Clear закрывает открытый оверлей
func (s *selectionService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = models.NoSelection()
}

// Snapshot возвращает текущий выбор. Выбор камеры, индекс которой перестал
// существовать после замены списка, сбрасывается в none.
func (s *selectionService) Snapshot() models.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentLocked()
}

// Overlay возвращает содержимое открытого оверлея
func (s *selectionService) Overlay() models.Overlay {
	s.mu.Lock()
	defer s.mu.Unlock()

	sel := s.currentLocked()
	overlay := models.Overlay{Selection: sel}

	switch sel.Kind {
	case models.SelectionCamera:
		if camera, ok := s.cameras.CameraAt(sel.CameraIndex); ok {
			overlay.Camera = &camera
		}
	case models.SelectionDevice, models.SelectionDroppedPin:
		origin := s.cameras.Origin()
		overlay.Latitude = &origin.Latitude
		overlay.Longitude = &origin.Longitude
	}
	return overlay
}

// currentLocked проверяет валидность выбора камеры против текущего списка.
// Вызывается только под мьютексом.
func (s *selectionService) currentLocked() models.Selection {
	if s.current.Kind == models.SelectionCamera {
		if _, ok := s.cameras.CameraAt(s.current.CameraIndex); !ok {
			s.current = models.NoSelection()
		}
	}
	return s.current
}
