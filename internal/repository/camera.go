package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/surveilmap/camera_triage_system/internal/backend"
	"github.com/surveilmap/camera_triage_system/internal/models"
	"github.com/surveilmap/camera_triage_system/internal/service"
)

// CameraRepository - доступ к камерам бэкенда с read-through кэшем деталей
// в Redis. Proximity-запросы не кэшируются: их результат обязан отражать
// текущую пару (Origin, Radius).
type CameraRepository struct {
	client      *backend.Client
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewCameraRepository(client *backend.Client, redisClient *redis.Client, cacheTTL time.Duration) *CameraRepository {
	return &CameraRepository{
		client:      client,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// компилятор проверяет соответствие контрактам сервиса
var (
	_ service.CameraRepository = (*CameraRepository)(nil)
	_ service.ProximityClient  = (*CameraRepository)(nil)
)

// NearbyCameras выполняет proximity-запрос камер через бэкенд
func (r *CameraRepository) NearbyCameras(ctx context.Context, query models.ProximityQuery) ([]models.Camera, error) {
	return r.client.NearbyCameras(ctx, backend.NearbyRequest{
		Latitude:        query.Latitude,
		Longitude:       query.Longitude,
		RadiusMeters:    query.RadiusMeters,
		StatusFilter:    query.StatusFilter,
		OwnershipFilter: query.OwnershipFilter,
	})
}

// GetCamera возвращает детали камеры, сперва пробуя кэш
func (r *CameraRepository) GetCamera(ctx context.Context, id int64) (*models.Camera, error) {
	camera, err := r.getCameraFromCache(ctx, id)
	if err == nil && camera != nil {
		return camera, nil
	}

	camera, err = r.client.GetCamera(ctx, id)
	if err != nil {
		return nil, err
	}

	// Промах кэша не фатален, ошибку записи тоже глотаем: бэкенд остается
	// источником истины
	_ = r.setCameraCache(ctx, camera)
	return camera, nil
}

// getCameraFromCache пытается получить камеру из Redis
func (r *CameraRepository) getCameraFromCache(ctx context.Context, id int64) (*models.Camera, error) {
	key := fmt.Sprintf("camera:%d", id)
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get camera from cache: %w", err)
	}

	camera := &models.Camera{}
	if err := json.Unmarshal(val, camera); err != nil {
		return nil, fmt.Errorf("failed to unmarshal camera from cache: %w", err)
	}
	return camera, nil
}

// setCameraCache сохраняет камеру в Redis с TTL
func (r *CameraRepository) setCameraCache(ctx context.Context, camera *models.Camera) error {
	key := fmt.Sprintf("camera:%d", camera.ID)
	val, err := json.Marshal(camera)
	if err != nil {
		return fmt.Errorf("failed to marshal camera for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set camera in cache: %w", err)
	}
	return nil
}
