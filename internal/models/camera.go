package models

// OwnershipClass — класс владельца камеры
const (
	OwnershipPrivate = "Private"
	OwnershipGovt    = "Govt"
)

// Статусы работоспособности камеры
const (
	CameraWorking    = "working"
	CameraNotWorking = "not working"
)

// Camera — read-only проекция записи камеры из бэкенда.
// Список целиком заменяется при каждом успешном запросе, записи не патчатся.
type Camera struct {
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
