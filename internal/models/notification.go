package models

import (
	"time"
)

// Notification — транзиентное уведомление оператору после действия триажа.
// Активно максимум одно; автоматически скрывается по таймеру.
type Notification struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EmittedAt   time.Time `json:"emitted_at"`
}
