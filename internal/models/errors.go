package models

import (
	"errors"
)

// Виды ошибок ядра. Устаревшие (stale) результаты запросов ошибкой не
// считаются — они молча отбрасываются контроллером поиска.
var (
	// ErrNotFound — камера или тикет отсутствуют на бэкенде
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork — транспортная ошибка запроса/обновления
	ErrNetwork = errors.New("network error")

	// ErrInvalidRadius — радиус вне фиксированного набора значений
	ErrInvalidRadius = errors.New("invalid search radius")

	// ErrInvalidTransition — недопустимый переход статуса тикета
	ErrInvalidTransition = errors.New("invalid ticket status transition")
)
