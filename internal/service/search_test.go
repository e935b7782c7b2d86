package service

import (
	"bytes"
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/surveilmap/camera_triage_system/internal/config"
	"github.com/surveilmap/camera_triage_system/internal/geo"
	geo_mocks "github.com/surveilmap/camera_triage_system/internal/geo/mocks"
	"github.com/surveilmap/camera_triage_system/internal/models"
	"github.com/surveilmap/camera_triage_system/internal/service/mocks"
	"go.uber.org/mock/gomock"
)

// newTestSearchService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestSearchService(t *testing.T) (*searchService, *mocks.MockProximityClient, *geo_mocks.MockProvider) {
	ctrl := gomock.NewController(t)
	proximityMock := mocks.NewMockProximityClient(ctrl)
	providerMock := geo_mocks.NewMockProvider(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		QueryTimeout:        time.Second,
		LocationTimeout:     time.Second,
		DefaultLatitude:     53.54,
		DefaultLongitude:    10.0,
		DefaultRadiusMeters: 1000,
	}

	service := NewSearchService(proximityMock, providerMock, logger, cfg)
	return service.(*searchService), proximityMock, providerMock
}

func TestRequestDeviceLocation_Success(t *testing.T) {
	// Подготовка
	service, proximityMock, providerMock := newTestSearchService(t)
	ctx := context.Background()
	fix := geo.Position{Latitude: 55.75, Longitude: 37.61}
	expectedCameras := []models.Camera{{ID: 1, Location: "Красная площадь"}}
	queryDone := make(chan struct{})

	// Ожидания
	providerMock.EXPECT().
		CurrentLocation(gomock.Any()).
		Return(fix, nil).
		Times(1)

	proximityMock.EXPECT().
		NearbyCameras(gomock.Any(), models.ProximityQuery{
			Latitude:     fix.Latitude,
			Longitude:    fix.Longitude,
			RadiusMeters: 1000,
		}).
		DoAndReturn(func(ctx context.Context, q models.ProximityQuery) ([]models.Camera, error) {
			defer close(queryDone)
			return expectedCameras, nil
		}).Times(1)

	// Действие
	origin, err := service.RequestDeviceLocation(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.OriginDevice, origin.Provenance)
	assert.Equal(t, fix.Latitude, origin.Latitude)
	assert.Equal(t, fix.Longitude, origin.Longitude)

	<-queryDone
	require.Eventually(t, func() bool {
		snap := service.Snapshot()
		return !snap.Querying && len(snap.Cameras) == 1
	}, time.Second, 5*time.Millisecond)

	snap := service.Snapshot()
	assert.Equal(t, expectedCameras, snap.Cameras)
	assert.Empty(t, snap.LocationError)
}

func TestRequestDeviceLocation_FallbackToDefault(t *testing.T) {
	// Подготовка
	service, proximityMock, providerMock := newTestSearchService(t)
	ctx := context.Background()
	queryDone := make(chan struct{})

	// Ожидания
	// 1. Устройство отказывает в доступе к геолокации
	providerMock.EXPECT().
		CurrentLocation(gomock.Any()).
		Return(geo.Position{}, geo.ErrPermissionDenied).
		Times(1)

	// 2. Запрос всё равно выпускается - от точки по умолчанию
	proximityMock.EXPECT().
		NearbyCameras(gomock.Any(), models.ProximityQuery{
			Latitude:     53.54,
			Longitude:    10.0,
			RadiusMeters: 1000,
		}).
		DoAndReturn(func(ctx context.Context, q models.ProximityQuery) ([]models.Camera, error) {
			defer close(queryDone)
			return []models.Camera{}, nil
		}).Times(1)

	// Действие
	origin, err := service.RequestDeviceLocation(ctx)

	// Проверки
	require.Error(t, err)
	assert.Equal(t, models.OriginDefaultFallback, origin.Provenance)
	assert.Equal(t, 53.54, origin.Latitude)
	assert.Equal(t, 10.0, origin.Longitude)

	<-queryDone
	snap := service.Snapshot()
	assert.Equal(t, "location permission denied, using default origin", snap.LocationError)
}

func TestDropPin_SupersedesDeviceFix(t *testing.T) {
	// Подготовка
	service, proximityMock, providerMock := newTestSearchService(t)
	ctx := context.Background()
	fix := geo.Position{Latitude: 55.75, Longitude: 37.61}
	queriesDone := make(chan struct{}, 2)

	// Ожидания
	providerMock.EXPECT().CurrentLocation(gomock.Any()).Return(fix, nil).Times(1)
	proximityMock.EXPECT().
		NearbyCameras(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, q models.ProximityQuery) ([]models.Camera, error) {
			queriesDone <- struct{}{}
			return []models.Camera{}, nil
		}).Times(2)

	// Действие
	_, err := service.RequestDeviceLocation(ctx)
	require.NoError(t, err)
	origin := service.DropPin(ctx, 48.85, 2.35)

	// Проверки
	assert.Equal(t, models.OriginDroppedPin, origin.Provenance)
	assert.Equal(t, 48.85, origin.Latitude)
	assert.Equal(t, 2.35, origin.Longitude)

	<-queriesDone
	<-queriesDone
	require.Eventually(t, func() bool {
		return !service.Snapshot().Querying
	}, time.Second, 5*time.Millisecond)
}

func TestSetRadius_Invalid(t *testing.T) {
	// Подготовка
	service, _, _ := newTestSearchService(t)
	ctx := context.Background()

	// Действие
	err := service.SetRadius(ctx, 750)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidRadius)
}

func TestSetRadius_StaleResultDiscarded(t *testing.T) {
	// Подготовка
	service, proximityMock, _ := newTestSearchService(t)
	ctx := context.Background()
	staleCameras := []models.Camera{{ID: 1, Location: "Устаревший список"}}
	freshCameras := []models.Camera{{ID: 2, Location: "Актуальный список"}}

	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})
	secondDone := make(chan struct{})

	// Ожидания
	// 1. Медленный запрос первого радиуса: зависает до releaseFirst
	proximityMock.EXPECT().
		NearbyCameras(gomock.Any(), models.ProximityQuery{
			Latitude: 48.85, Longitude: 2.35, RadiusMeters: 1000,
		}).
		DoAndReturn(func(ctx context.Context, q models.ProximityQuery) ([]models.Camera, error) {
			close(firstStarted)
			<-releaseFirst
			return staleCameras, nil
		}).Times(1)

	// 2. Быстрый запрос нового радиуса завершается первым
	proximityMock.EXPECT().
		NearbyCameras(gomock.Any(), models.ProximityQuery{
			Latitude: 48.85, Longitude: 2.35, RadiusMeters: 2000,
		}).
		DoAndReturn(func(ctx context.Context, q models.ProximityQuery) ([]models.Camera, error) {
			defer close(secondDone)
			return freshCameras, nil
		}).Times(1)

	// Действие
	service.DropPin(ctx, 48.85, 2.35)
	<-firstStarted
	require.NoError(t, service.SetRadius(ctx, 2000))

	<-secondDone
	require.Eventually(t, func() bool {
		snap := service.Snapshot()
		return !snap.Querying && len(snap.Cameras) == 1 && snap.Cameras[0].ID == 2
	}, time.Second, 5*time.Millisecond)

	// Отпускаем устаревший запрос: его результат обязан быть отброшен
	close(releaseFirst)
	time.Sleep(50 * time.Millisecond)

	// Проверки
	snap := service.Snapshot()
	assert.Equal(t, freshCameras, snap.Cameras)
	assert.Equal(t, 2000, snap.RadiusMeters)
}

func TestQueryFailure_KeepsLastKnownResults(t *testing.T) {
	// Подготовка
	service, proximityMock, _ := newTestSearchService(t)
	ctx := context.Background()
	goodCameras := []models.Camera{{ID: 7, Location: "Вокзал"}}
	firstDone := make(chan struct{})
	secondDone := make(chan struct{})

	// Ожидания
	// 1. Первый запрос успешен
	proximityMock.EXPECT().
		NearbyCameras(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, q models.ProximityQuery) ([]models.Camera, error) {
			defer close(firstDone)
			return goodCameras, nil
		}).Times(1)

	service.DropPin(ctx, 48.85, 2.35)
	<-firstDone
	require.Eventually(t, func() bool {
		return len(service.Snapshot().Cameras) == 1
	}, time.Second, 5*time.Millisecond)

	// 2. Второй запрос падает
	proximityMock.EXPECT().
		NearbyCameras(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, q models.ProximityQuery) ([]models.Camera, error) {
			defer close(secondDone)
			return nil, models.ErrNetwork
		}).Times(1)

	// Действие
	require.NoError(t, service.SetFilters(ctx, models.CameraWorking, ""))
	<-secondDone

	// Проверки
	require.Eventually(t, func() bool {
		return !service.Snapshot().Querying
	}, time.Second, 5*time.Millisecond)
	snap := service.Snapshot()
	assert.Equal(t, goodCameras, snap.Cameras)
	assert.Equal(t, "camera search failed, showing last known results", snap.QueryError)
}

func TestStartTracking_UpdatesOrigin(t *testing.T) {
	// Подготовка
	service, proximityMock, providerMock := newTestSearchService(t)
	ctx := context.Background()
	updates := make(chan geo.Position)
	stopped := make(chan struct{})
	queryDone := make(chan struct{})

	// Ожидания
	providerMock.EXPECT().
		Watch(gomock.Any()).
		Return((<-chan geo.Position)(updates), func() { close(stopped) }, nil).
		Times(1)

	proximityMock.EXPECT().
		NearbyCameras(gomock.Any(), models.ProximityQuery{
			Latitude: 59.93, Longitude: 30.31, RadiusMeters: 1000,
		}).
		DoAndReturn(func(ctx context.Context, q models.ProximityQuery) ([]models.Camera, error) {
			defer close(queryDone)
			return []models.Camera{}, nil
		}).Times(1)

	// Действие
	require.NoError(t, service.StartTracking(ctx))
	updates <- geo.Position{Latitude: 59.93, Longitude: 30.31}
	<-queryDone

	// Проверки
	require.Eventually(t, func() bool {
		o := service.Origin()
		return o.Provenance == models.OriginDevice && o.Latitude == 59.93
	}, time.Second, 5*time.Millisecond)
	assert.True(t, service.Snapshot().Tracking)

	// Остановка снимает подписку
	service.StopTracking()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("watch subscription was not torn down")
	}
	assert.False(t, service.Snapshot().Tracking)
	close(updates)
}

func TestStartTracking_ConcurrentStartsTearDownLosingWatch(t *testing.T) {
	// Подготовка
	service, _, providerMock := newTestSearchService(t)
	ctx := context.Background()
	updatesFirst := make(chan geo.Position)
	updatesSecond := make(chan geo.Position)
	firstEntered := make(chan struct{})
	releaseFirst := make(chan struct{})
	var stops atomic.Int32

	// Ожидания
	// 1. Первая подписка зависает в провайдере, пока вторая не выиграет гонку
	providerMock.EXPECT().
		Watch(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (<-chan geo.Position, func(), error) {
			close(firstEntered)
			<-releaseFirst
			return (<-chan geo.Position)(updatesFirst), func() { stops.Add(1) }, nil
		}).Times(1)
	// 2. Вторая подписка возвращается сразу
	providerMock.EXPECT().
		Watch(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (<-chan geo.Position, func(), error) {
			return (<-chan geo.Position)(updatesSecond), func() { stops.Add(1) }, nil
		}).Times(1)

	// Действие
	firstDone := make(chan struct{})
	go func() {
		defer close(firstDone)
		_ = service.StartTracking(ctx)
	}()
	<-firstEntered
	require.NoError(t, service.StartTracking(ctx))
	close(releaseFirst)
	<-firstDone

	// Проверки
	// Проигравшая подписка снята сразу, отслеживание при этом активно
	assert.Equal(t, int32(1), stops.Load())
	assert.True(t, service.Snapshot().Tracking)

	// Остановка снимает оставшуюся подписку: утекших watch-ей нет
	service.StopTracking()
	assert.Equal(t, int32(2), stops.Load())
	assert.False(t, service.Snapshot().Tracking)
	close(updatesFirst)
	close(updatesSecond)
}

func TestDropPin_StopsTracking(t *testing.T) {
	// Подготовка
	service, proximityMock, providerMock := newTestSearchService(t)
	ctx := context.Background()
	updates := make(chan geo.Position)
	stopped := make(chan struct{})
	queryDone := make(chan struct{})

	// Ожидания
	providerMock.EXPECT().
		Watch(gomock.Any()).
		Return((<-chan geo.Position)(updates), func() { close(stopped) }, nil).
		Times(1)
	proximityMock.EXPECT().
		NearbyCameras(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, q models.ProximityQuery) ([]models.Camera, error) {
			defer close(queryDone)
			return []models.Camera{}, nil
		}).Times(1)

	// Действие
	require.NoError(t, service.StartTracking(ctx))
	service.DropPin(ctx, 48.85, 2.35)
	<-queryDone

	// Проверки
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("dropping a pin must stop continuous tracking")
	}
	snap := service.Snapshot()
	assert.False(t, snap.Tracking)
	assert.Equal(t, models.OriginDroppedPin, snap.Origin.Provenance)
	close(updates)
}
