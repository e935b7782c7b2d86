package geo

import (
	"context"
	"errors"
)

// Position - одно обновление местоположения устройства
type Position struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Различимые причины отказа источника геолокации
var (
	ErrPermissionDenied = errors.New("geolocation permission denied")
	ErrTimeout          = errors.New("geolocation timed out")
	ErrUnsupported      = errors.New("geolocation unsupported")
)

// Provider - источник геолокации устройства. Выдает либо одноразовый fix,
// либо непрерывный поток обновлений позиции.
type Provider interface {
	// CurrentLocation возвращает одноразовый высокоточный fix.
	// Кэшированные координаты не принимаются.
	CurrentLocation(ctx context.Context) (Position, error)

	// Watch запускает непрерывную доставку позиций. Возвращенная функция
	// останавливает подписку; вызвать её обязан тот, кто подписался, иначе
	// фоновое наблюдение переживет своего потребителя.
	Watch(ctx context.Context) (<-chan Position, func(), error)
}
