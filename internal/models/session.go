package models

// OriginProvenance — источник авторитетной точки поиска
type OriginProvenance string

const (
	OriginDevice          OriginProvenance = "device"
	OriginDroppedPin      OriginProvenance = "dropped-pin"
	OriginDefaultFallback OriginProvenance = "default-fallback"
)

// Origin — авторитетная географическая точка, от которой выполняются
// proximity-запросы. Заменяется целиком, никогда не мутируется на месте.
type Origin struct {
	Latitude   float64          `json:"latitude"`
	Longitude  float64          `json:"longitude"`
	Provenance OriginProvenance `json:"provenance"`
}

// Допустимые значения радиуса поиска в метрах
var AllowedRadii = []int{500, 1000, 2000, 5000}

// ValidRadius проверяет, входит ли значение в фиксированный набор радиусов
func ValidRadius(meters int) bool {
	for _, r := range AllowedRadii {
		if r == meters {
			return true
		}
	}
	return false
}

// SelectionKind — вид выбранного маркера
type SelectionKind string

const (
	SelectionNone       SelectionKind = "none"
	SelectionDevice     SelectionKind = "device"
	SelectionDroppedPin SelectionKind = "dropped-pin"
	SelectionCamera     SelectionKind = "camera"
	SelectionTicket     SelectionKind = "ticket"
)

// Selection — явный tagged union вместо смешанного sentinel/index/id значения.
// В системе одновременно открыт максимум один оверлей.
type Selection struct {
	Kind        SelectionKind `json:"kind"`
	CameraIndex int           `json:"camera_index,omitempty"`
	TicketID    int64         `json:"ticket_id,omitempty"`
}

// NoSelection — значение "ничего не выбрано"
func NoSelection() Selection {
	return Selection{Kind: SelectionNone}
}

// ProximityQuery — параметры одного proximity-запроса камер.
// Пустые фильтры означают "без фильтра".
type ProximityQuery struct {
	Latitude        float64
	Longitude       float64
	RadiusMeters    int
	StatusFilter    string
	OwnershipFilter string
}

// SearchSnapshot — атомарный снимок состояния поиска для рендера
type SearchSnapshot struct {
	Origin          Origin
	RadiusMeters    int
	StatusFilter    string
	OwnershipFilter string
	Cameras         []Camera
	Querying        bool
	QueryError      string
	LocationError   string
	Tracking        bool
}

// Overlay — содержимое открытого оверлея. Для камеры берется уже полученная
// запись, без дополнительного сетевого вызова; для device/dropped-pin —
// координата текущего origin.
type Overlay struct {
	Selection Selection `json:"selection"`
	Camera    *Camera   `json:"camera,omitempty"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
}
