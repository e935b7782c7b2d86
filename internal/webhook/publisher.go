package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/surveilmap/camera_triage_system/internal/models"
)

const (
	triageQueueKey = "triage_events"
)

// TriageEvent - событие разрешения тикета для внешних систем
type TriageEvent struct {
	TicketID  int64               `json:"ticket_id"`
	CameraID  int64               `json:"camera_id"`
	Status    models.TicketStatus `json:"status"`
	Timestamp time.Time           `json:"timestamp"`
}

// Publisher - интерфейс для публикации событий триажа
type Publisher interface {
	Publish(ctx context.Context, event TriageEvent) error
}

// RedisPublisher - реализация Publisher, использующая очередь Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие триажа в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event TriageEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal triage event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, triageQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish triage event to Redis: %w", err)
	}
	return nil
}
