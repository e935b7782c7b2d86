package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/surveilmap/camera_triage_system/internal/config"
	"github.com/surveilmap/camera_triage_system/internal/geo"
	"github.com/surveilmap/camera_triage_system/internal/models"
)

// ProximityClient определяет контракт клиента proximity-запросов.
// Запрос идемпотентен и не имеет побочных эффектов.
type ProximityClient interface {
	NearbyCameras(ctx context.Context, query models.ProximityQuery) ([]models.Camera, error)
}

// SearchService определяет контракт контроллера origin-а поиска.
// Контроллер владеет единственной авторитетной парой (Origin, Radius):
// каждое её изменение выпускает ровно один новый proximity-запрос, а
// результат применяется только если пара к моменту ответа не изменилась.
type SearchService interface {
	RequestDeviceLocation(ctx context.Context) (models.Origin, error)
	DropPin(ctx context.Context, latitude, longitude float64) models.Origin
	SetRadius(ctx context.Context, meters int) error
	SetFilters(ctx context.Context, statusFilter, ownershipFilter string) error
	StartTracking(ctx context.Context) error
	StopTracking()
	Snapshot() models.SearchSnapshot

	CameraSource
}

type searchService struct {
	proximity ProximityClient
	provider  geo.Provider
	logger    *logrus.Logger
	cfg       *config.Config

	mu       sync.Mutex
	origin   models.Origin
	radius   int
	statusF  string
	ownerF   string
	cameras  []models.Camera
	querying bool
	queryErr string
	locErr   string

	// Поколение авторитетной пары (Origin, Radius, фильтры). Каждый
	// исходящий запрос несет поколение на момент отправки; ответ с другим
	// поколением отбрасывается молча.
	gen uint64

	tracking  bool
	stopWatch func()
}

func NewSearchService(proximity ProximityClient, provider geo.Provider, logger *logrus.Logger, cfg *config.Config) SearchService {
	return &searchService{
		proximity: proximity,
		provider:  provider,
		logger:    logger,
		cfg:       cfg,
		origin: models.Origin{
			Latitude:   cfg.DefaultLatitude,
			Longitude:  cfg.DefaultLongitude,
			Provenance: models.OriginDefaultFallback,
		},
		radius:  cfg.DefaultRadiusMeters,
		cameras: make([]models.Camera, 0),
	}
}

// RequestDeviceLocation запрашивает одноразовый высокоточный fix устройства.
// Успех делает авторитетным origin с provenance=device (сброшенный pin при
// этом вытесняется). Отказ не фатален: origin откатывается на точку по
// умолчанию, ошибка отдается inline, карта продолжает работать.
func (s *searchService) RequestDeviceLocation(ctx context.Context) (models.Origin, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "search",
		"method":  "RequestDeviceLocation",
	})
	log.Info("Requesting one-shot device location fix")

	fixCtx, cancel := context.WithTimeout(ctx, s.cfg.LocationTimeout)
	defer cancel()

	pos, err := s.provider.CurrentLocation(fixCtx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		log.WithError(err).Warn("Device location unavailable, falling back to default origin")
		s.origin = models.Origin{
			Latitude:   s.cfg.DefaultLatitude,
			Longitude:  s.cfg.DefaultLongitude,
			Provenance: models.OriginDefaultFallback,
		}
		s.locErr = locationErrorMessage(err)
		s.refreshLocked()
		return s.origin, err
	}

	s.origin = models.Origin{
		Latitude:   pos.Latitude,
		Longitude:  pos.Longitude,
		Provenance: models.OriginDevice,
	}
	s.locErr = ""
	s.refreshLocked()

	log.WithFields(logrus.Fields{
		"latitude":  pos.Latitude,
		"longitude": pos.Longitude,
	}).Info("Device location fix acquired")
	return s.origin, nil
}

// DropPin делает авторитетным origin точку клика по карте.
// Pin вытесняет device fix до следующего явного запроса локации; активное
// непрерывное отслеживание при этом останавливается.
func (s *searchService) DropPin(ctx context.Context, latitude, longitude float64) models.Origin {
	s.stopTrackingInternal()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.origin = models.Origin{
		Latitude:   latitude,
		Longitude:  longitude,
		Provenance: models.OriginDroppedPin,
	}
	s.refreshLocked()

	s.logger.WithFields(logrus.Fields{
		"service":   "search",
		"method":    "DropPin",
		"latitude":  latitude,
		"longitude": longitude,
	}).Info("Pin dropped, origin replaced")
	return s.origin
}

// SetRadius заменяет радиус поиска и перезапрашивает камеры от текущего
// авторитетного origin-а (device fix или pin - что актуально)
func (s *searchService) SetRadius(ctx context.Context, meters int) error {
	if !models.ValidRadius(meters) {
		return fmt.Errorf("radius %d: %w", meters, models.ErrInvalidRadius)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.radius = meters
	s.refreshLocked()

	s.logger.WithFields(logrus.Fields{
		"service":       "search",
		"method":        "SetRadius",
		"radius_meters": meters,
	}).Info("Search radius changed")
	return nil
}

// SetFilters заменяет фильтры статуса/владельца и перезапрашивает камеры
func (s *searchService) SetFilters(ctx context.Context, statusFilter, ownershipFilter string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.statusF = statusFilter
	s.ownerF = ownershipFilter
	s.refreshLocked()

	s.logger.WithFields(logrus.Fields{
		"service":          "search",
		"method":           "SetFilters",
		"status_filter":    statusFilter,
		"ownership_filter": ownershipFilter,
	}).Info("Search filters changed")
	return nil
}

// StartTracking включает непрерывное отслеживание позиции устройства.
// Каждое обновление заменяет origin и выпускает новый запрос. Подписка
// обязана быть снята StopTracking-ом (или сбросом pin-а), иначе фоновое
// наблюдение утечет.
func (s *searchService) StartTracking(ctx context.Context) error {
	s.mu.Lock()
	if s.tracking {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	log := s.logger.WithFields(logrus.Fields{
		"service": "search",
		"method":  "StartTracking",
	})

	updates, stop, err := s.provider.Watch(context.Background())
	if err != nil {
		log.WithError(err).Warn("Continuous tracking unavailable")
		s.mu.Lock()
		s.locErr = locationErrorMessage(err)
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	if s.tracking {
		// Параллельный вызов успел подписаться, пока мьютекс был отпущен:
		// проигравшую подписку снимаем сразу, иначе её поток утечет
		s.mu.Unlock()
		stop()
		return nil
	}
	s.tracking = true
	s.stopWatch = stop
	s.mu.Unlock()
	log.Info("Continuous device tracking started")

	go func() {
		for pos := range updates {
			s.mu.Lock()
			if !s.tracking {
				s.mu.Unlock()
				return
			}
			s.origin = models.Origin{
				Latitude:   pos.Latitude,
				Longitude:  pos.Longitude,
				Provenance: models.OriginDevice,
			}
			s.locErr = ""
			s.refreshLocked()
			s.mu.Unlock()
		}
	}()
	return nil
}

// StopTracking снимает подписку непрерывного отслеживания
func (s *searchService) StopTracking() {
	s.stopTrackingInternal()
}

func (s *searchService) stopTrackingInternal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.tracking {
		return
	}
	s.tracking = false
	if s.stopWatch != nil {
		s.stopWatch()
		s.stopWatch = nil
	}
	s.logger.WithField("service", "search").Info("Continuous device tracking stopped")
}

// Snapshot возвращает атомарный снимок состояния поиска
func (s *searchService) Snapshot() models.SearchSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	cameras := make([]models.Camera, len(s.cameras))
	copy(cameras, s.cameras)

	return models.SearchSnapshot{
		Origin:          s.origin,
		RadiusMeters:    s.radius,
		StatusFilter:    s.statusF,
		OwnershipFilter: s.ownerF,
		Cameras:         cameras,
		Querying:        s.querying,
		QueryError:      s.queryErr,
		LocationError:   s.locErr,
		Tracking:        s.tracking,
	}
}

// Origin возвращает текущий авторитетный origin
func (s *searchService) Origin() models.Origin {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.origin
}

// CameraAt возвращает камеру по индексу в текущем списке
func (s *searchService) CameraAt(index int) (models.Camera, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.cameras) {
		return models.Camera{}, false
	}
	return s.cameras[index], true
}

// refreshLocked выпускает ровно один новый proximity-запрос для текущей
// пары (Origin, Radius) и помечает его текущим поколением. Вызывается
// только под мьютексом.
func (s *searchService) refreshLocked() {
	s.gen++
	gen := s.gen
	query := models.ProximityQuery{
		Latitude:        s.origin.Latitude,
		Longitude:       s.origin.Longitude,
		RadiusMeters:    s.radius,
		StatusFilter:    s.statusF,
		OwnershipFilter: s.ownerF,
	}
	s.querying = true

	go s.runQuery(gen, query)
}

// runQuery выполняет proximity-запрос и применяет результат, только если
// авторитетная пара не изменилась с момента отправки. Новый запрос не
// отменяет транспорт предыдущего: корректность обеспечивает отбрасывание
// устаревших ответов, а не отмена.
func (s *searchService) runQuery(gen uint64, query models.ProximityQuery) {
	queryID := uuid.New()
	log := s.logger.WithFields(logrus.Fields{
		"service":       "search",
		"query_id":      queryID,
		"latitude":      query.Latitude,
		"longitude":     query.Longitude,
		"radius_meters": query.RadiusMeters,
	})
	log.Debug("Issuing proximity query")

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.QueryTimeout)
	defer cancel()

	cameras, err := s.proximity.NearbyCameras(ctx, query)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		// Пара (Origin, Radius) успела смениться: ответ устарел
		log.Debug("Discarding stale proximity query result")
		return
	}

	s.querying = false
	if err != nil {
		// Не фатально: оставляем последний удачный список и inline-ошибку,
		// автоматических повторов нет
		log.WithError(err).Error("Proximity query failed")
		s.queryErr = "camera search failed, showing last known results"
		return
	}

	s.cameras = cameras
	s.queryErr = ""
	log.WithField("count", len(cameras)).Info("Proximity query applied")
}

// locationErrorMessage переводит причину отказа геолокации в inline-текст
func locationErrorMessage(err error) string {
	switch {
	case errors.Is(err, geo.ErrPermissionDenied):
		return "location permission denied, using default origin"
	case errors.Is(err, geo.ErrTimeout):
		return "location request timed out, using default origin"
	case errors.Is(err, geo.ErrUnsupported):
		return "geolocation is not supported, using default origin"
	default:
		return "location unavailable, using default origin"
	}
}
