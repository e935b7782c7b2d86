package service

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/surveilmap/camera_triage_system/internal/models"
	"github.com/surveilmap/camera_triage_system/internal/service/mocks"
	"go.uber.org/mock/gomock"
)

// newTestSelectionService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestSelectionService(t *testing.T) (*selectionService, *mocks.MockCameraSource) {
	ctrl := gomock.NewController(t)
	camerasMock := mocks.NewMockCameraSource(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewSelectionService(camerasMock, logger)
	return service.(*selectionService), camerasMock
}

func TestSelect_SingleOverlayInvariant(t *testing.T) {
	// Подготовка
	service, camerasMock := newTestSelectionService(t)
	camera := models.Camera{ID: 3, Location: "Перекресток"}

	// Ожидания
	camerasMock.EXPECT().CameraAt(0).Return(camera, true).AnyTimes()

	// Действие
	require.NoError(t, service.Select(models.Selection{Kind: models.SelectionCamera, CameraIndex: 0}))
	require.NoError(t, service.Select(models.Selection{Kind: models.SelectionTicket, TicketID: 42}))

	// Проверки
	// Выбор тикета вытеснил оверлей камеры целиком
	sel := service.Snapshot()
	assert.Equal(t, models.SelectionTicket, sel.Kind)
	assert.Equal(t, int64(42), sel.TicketID)
}

func TestSelect_CameraOutOfRange(t *testing.T) {
	// Подготовка
	service, camerasMock := newTestSelectionService(t)

	// Ожидания
	camerasMock.EXPECT().CameraAt(9).Return(models.Camera{}, false).Times(1)

	// Действие
	err := service.Select(models.Selection{Kind: models.SelectionCamera, CameraIndex: 9})

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Equal(t, models.SelectionNone, service.Snapshot().Kind)
}

func TestSnapshot_StaleCameraSelectionResets(t *testing.T) {
	// Подготовка
	service, camerasMock := newTestSelectionService(t)
	camera := models.Camera{ID: 3, Location: "Перекресток"}

	// Ожидания
	// 1. Индекс валиден на момент выбора
	camerasMock.EXPECT().CameraAt(2).Return(camera, true).Times(1)
	// 2. Список сменился, индекс больше не существует
	camerasMock.EXPECT().CameraAt(2).Return(models.Camera{}, false).Times(1)

	// Действие
	require.NoError(t, service.Select(models.Selection{Kind: models.SelectionCamera, CameraIndex: 2}))
	sel := service.Snapshot()

	// Проверки
	assert.Equal(t, models.SelectionNone, sel.Kind)
}

func TestOverlay_Camera(t *testing.T) {
	// Подготовка
	service, camerasMock := newTestSelectionService(t)
	camera := models.Camera{ID: 3, Location: "Перекресток", Latitude: 55.75, Longitude: 37.61}

	// Ожидания
	camerasMock.EXPECT().CameraAt(0).Return(camera, true).AnyTimes()

	// Действие
	require.NoError(t, service.Select(models.Selection{Kind: models.SelectionCamera, CameraIndex: 0}))
	overlay := service.Overlay()

	// Проверки
	assert.Equal(t, models.SelectionCamera, overlay.Selection.Kind)
	require.NotNil(t, overlay.Camera)
	assert.Equal(t, camera, *overlay.Camera)
}

func TestOverlay_DroppedPin(t *testing.T) {
	// Подготовка
	service, camerasMock := newTestSelectionService(t)
	origin := models.Origin{Latitude: 48.85, Longitude: 2.35, Provenance: models.OriginDroppedPin}

	// Ожидания
	camerasMock.EXPECT().Origin().Return(origin).Times(1)

	// Действие
	require.NoError(t, service.Select(models.Selection{Kind: models.SelectionDroppedPin}))
	overlay := service.Overlay()

	// Проверки
	assert.Equal(t, models.SelectionDroppedPin, overlay.Selection.Kind)
	assert.Nil(t, overlay.Camera)
	require.NotNil(t, overlay.Latitude)
	require.NotNil(t, overlay.Longitude)
	assert.Equal(t, origin.Latitude, *overlay.Latitude)
	assert.Equal(t, origin.Longitude, *overlay.Longitude)
}

func TestClear_ClosesOverlay(t *testing.T) {
	// Подготовка
	service, _ := newTestSelectionService(t)
	require.NoError(t, service.Select(models.Selection{Kind: models.SelectionTicket, TicketID: 7}))

	// Действие
	service.Clear()

	// Проверки
	assert.Equal(t, models.SelectionNone, service.Snapshot().Kind)
	assert.Nil(t, service.Overlay().Camera)
}
