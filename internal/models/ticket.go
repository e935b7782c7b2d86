package models

import (
	"time"
)

// TicketStatus — статус тикета в жизненном цикле триажа
type TicketStatus string

const (
	TicketPending  TicketStatus = "Pending"
	TicketAccepted TicketStatus = "Accepted"
	TicketRejected TicketStatus = "Rejected"
)

// Terminal сообщает, допускает ли статус дальнейшие переходы.
// Accepted и Rejected — терминальные состояния.
func (s TicketStatus) Terminal() bool {
	return s == TicketAccepted || s == TicketRejected
}

// TicketDialog — открытый диалог деталей: атрибуты камеры плюс
// идентификатор тикета
type TicketDialog struct {
	TicketID int64  `json:"ticket_id"`
	Camera   Camera `json:"camera"`
}

// Ticket представляет пользовательскую заявку о неисправности камеры.
// Статус — единственное поле, которое клиент меняет, и только через
// подтверждённый сервером запрос.
type Ticket struct {
	ID          int64        `json:"id"`
	CameraID    int64        `json:"camera_id"`
	Description string       `json:"description"`
	Location    string       `json:"location"`
	Status      TicketStatus `json:"status"`
	ReportedBy  string       `json:"reported_by"`
	ReportedAt  time.Time    `json:"reported_at"`
}
