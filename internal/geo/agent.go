package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// AgentProvider - реализация Provider поверх HTTP-агента устройства.
// Агент отдает текущие координаты по GET; высокая точность и запрет кэша
// запрашиваются параметрами.
type AgentProvider struct {
	agentURL     string
	httpClient   *http.Client
	pollInterval time.Duration
}

// NewAgentProvider создает провайдер геолокации поверх агента устройства
func NewAgentProvider(agentURL string, timeout, pollInterval time.Duration) *AgentProvider {
	return &AgentProvider{
		agentURL: agentURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		pollInterval: pollInterval,
	}
}

// CurrentLocation запрашивает одноразовый fix у агента устройства
func (p *AgentProvider) CurrentLocation(ctx context.Context) (Position, error) {
	if p.agentURL == "" {
		return Position{}, ErrUnsupported
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.agentURL+"?high_accuracy=1&max_age=0", nil)
	if err != nil {
		return Position{}, fmt.Errorf("failed to create location request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Position{}, ErrTimeout
		}
		var urlTimeout interface{ Timeout() bool }
		if errors.As(err, &urlTimeout) && urlTimeout.Timeout() {
			return Position{}, ErrTimeout
		}
		return Position{}, fmt.Errorf("location request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusForbidden, http.StatusUnauthorized:
		return Position{}, ErrPermissionDenied
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return Position{}, ErrTimeout
	default:
		return Position{}, fmt.Errorf("location agent returned status %d: %w", resp.StatusCode, ErrUnsupported)
	}

	var pos Position
	if err := json.NewDecoder(resp.Body).Decode(&pos); err != nil {
		return Position{}, fmt.Errorf("failed to decode location response: %w", err)
	}
	return pos, nil
}

// Watch опрашивает агента с фиксированным интервалом и доставляет каждую
// полученную позицию. Ошибки отдельных опросов пропускаются: поток
// доставляет только успешные обновления.
func (p *AgentProvider) Watch(ctx context.Context) (<-chan Position, func(), error) {
	if p.agentURL == "" {
		return nil, nil, ErrUnsupported
	}

	watchCtx, cancel := context.WithCancel(ctx)
	updates := make(chan Position)

	go func() {
		defer close(updates)
		ticker := time.NewTicker(p.pollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-watchCtx.Done():
				return
			case <-ticker.C:
				pos, err := p.CurrentLocation(watchCtx)
				if err != nil {
					continue
				}
				select {
				case updates <- pos:
				case <-watchCtx.Done():
					return
				}
			}
		}
	}()

	return updates, cancel, nil
}
