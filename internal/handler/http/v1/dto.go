package v1

import (
	"time"

	"github.com/surveilmap/camera_triage_system/internal/models"
)

// DropPinRequest DTO для сброса pin-а на карте
// @Description DTO для сброса pin-а на карте
type DropPinRequest struct {
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
}

// SetRadiusRequest DTO для смены радиуса поиска
// @Description DTO для смены радиуса поиска
type SetRadiusRequest struct {
	RadiusMeters int `json:"radius_meters" validate:"required,oneof=500 1000 2000 5000"`
}

// SetFiltersRequest DTO для смены фильтров proximity-запроса.
// Пустое значение означает "без фильтра".
// @Description DTO для смены фильтров proximity-запроса
type SetFiltersRequest struct {
	StatusFilter    string `json:"status_filter" validate:"omitempty,oneof='working' 'not working'"`
	OwnershipFilter string `json:"ownership_filter" validate:"omitempty,oneof=Private Govt"`
}

// SelectRequest DTO для выбора маркера
// @Description DTO для выбора маркера
type SelectRequest struct {
	Kind        string `json:"kind" validate:"required,oneof=none device dropped-pin camera ticket"`
	CameraIndex *int   `json:"camera_index,omitempty" validate:"omitempty,gte=0"`
	TicketID    *int64 `json:"ticket_id,omitempty" validate:"omitempty,gt=0"`
}

// SetTicketStatusRequest DTO для перехода статуса тикета
// @Description DTO для перехода статуса тикета
type SetTicketStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Accepted Rejected"`
}

// OriginResponse DTO авторитетной точки поиска
// @Description DTO авторитетной точки поиска
type OriginResponse struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Provenance string  `json:"provenance"`
}

// CameraResponse DTO записи камеры
// @Description DTO записи камеры
type CameraResponse struct {
	ID               int64   `json:"id"`
	Location         string  `json:"location"`
	PrivateGovt      string  `json:"private_govt"`
	OwnerName        string  `json:"owner_name"`
	ContactNo        string  `json:"contact_no"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	Coverage         string  `json:"coverage"`
	Backup           string  `json:"backup"`
	ConnectedNetwork string  `json:"connected_network"`
	Status           string  `json:"status"`
}

// SearchSnapshotResponse DTO снимка состояния поиска
// @Description DTO снимка состояния поиска
type SearchSnapshotResponse struct {
	Origin          OriginResponse    `json:"origin"`
	RadiusMeters    int               `json:"radius_meters"`
	StatusFilter    string            `json:"status_filter,omitempty"`
	OwnershipFilter string            `json:"ownership_filter,omitempty"`
	Cameras         []*CameraResponse `json:"cameras"`
	Querying        bool              `json:"querying"`
	QueryError      string            `json:"query_error,omitempty"`
	LocationError   string            `json:"location_error,omitempty"`
	Tracking        bool              `json:"tracking"`
}

// SelectionResponse DTO текущего выбора
// @Description DTO текущего выбора
type SelectionResponse struct {
	Kind        string `json:"kind"`
	CameraIndex int    `json:"camera_index,omitempty"`
	TicketID    int64  `json:"ticket_id,omitempty"`
}

// OverlayResponse DTO содержимого открытого оверлея
// @Description DTO содержимого открытого оверлея
type OverlayResponse struct {
	Selection SelectionResponse `json:"selection"`
	Camera    *CameraResponse   `json:"camera,omitempty"`
	Latitude  *float64          `json:"latitude,omitempty"`
	Longitude *float64          `json:"longitude,omitempty"`
}

// TicketResponse DTO тикета
// @Description DTO тикета
type TicketResponse struct {
	ID          int64     `json:"id"`
	CameraID    int64     `json:"camera_id"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Status      string    `json:"status"`
	ReportedBy  string    `json:"reported_by"`
	ReportedAt  time.Time `json:"reported_at"`
}

// TicketDialogResponse DTO открытого диалога деталей
// @Description DTO открытого диалога деталей
type TicketDialogResponse struct {
	TicketID int64          `json:"ticket_id"`
	Camera   CameraResponse `json:"camera"`
}

// NotificationResponse DTO активного уведомления
// @Description DTO активного уведомления
type NotificationResponse struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EmittedAt   time.Time `json:"emitted_at"`
}

// MapConfigResponse DTO конфигурации картографического провайдера.
// Ключ - непрозрачная строка, ядро её не интерпретирует.
// @Description DTO конфигурации картографического провайдера
type MapConfigResponse struct {
	MapsAPIKey string `json:"maps_api_key"`
}

// DTOToSelection преобразует запрос выбора в доменный tagged union
func DTOToSelection(dto SelectRequest) models.Selection {
	sel := models.Selection{Kind: models.SelectionKind(dto.Kind)}
	if dto.CameraIndex != nil {
		sel.CameraIndex = *dto.CameraIndex
	}
	if dto.TicketID != nil {
		sel.TicketID = *dto.TicketID
	}
	return sel
}
