package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/surveilmap/camera_triage_system/internal/models"
)

// NearbyRequest - тело запроса proximity-поиска камер.
// Пустые фильтры означают "без фильтра".
type NearbyRequest struct {
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	RadiusMeters    int     `json:"radius_meters"`
	StatusFilter    string  `json:"status_filter,omitempty"`
	OwnershipFilter string  `json:"ownership_filter,omitempty"`
}

// Client - HTTP-клиент бэкенда камер и тикетов. Бэкенд для ядра — внешний
// коллаборатор: клиент не интерпретирует его данные сверх описанного контракта.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient создает клиент бэкенда с таймаутом на запрос
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// NearbyCameras выполняет proximity-запрос: все камеры в радиусе от точки.
// Запрос идемпотентен и не имеет побочных эффектов.
func (c *Client) NearbyCameras(ctx context.Context, req NearbyRequest) ([]models.Camera, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal nearby request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/nearby_cameras", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create nearby request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("nearby cameras request failed: %w: %v", models.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nearby cameras request returned status %d: %w", resp.StatusCode, models.ErrNetwork)
	}

	cameras := make([]models.Camera, 0)
	if err := json.NewDecoder(resp.Body).Decode(&cameras); err != nil {
		return nil, fmt.Errorf("failed to decode nearby cameras response: %w: %v", models.ErrNetwork, err)
	}
	return cameras, nil
}

// ListTickets возвращает полный список тикетов с бэкенда
func (c *Client) ListTickets(ctx context.Context) ([]models.Ticket, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/tickets", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create tickets request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("tickets request failed: %w: %v", models.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tickets request returned status %d: %w", resp.StatusCode, models.ErrNetwork)
	}

	tickets := make([]models.Ticket, 0)
	if err := json.NewDecoder(resp.Body).Decode(&tickets); err != nil {
		return nil, fmt.Errorf("failed to decode tickets response: %w: %v", models.ErrNetwork, err)
	}
	return tickets, nil
}

// GetCamera возвращает одну камеру по идентификатору.
// Отсутствующий идентификатор мапится в models.ErrNotFound.
func (c *Client) GetCamera(ctx context.Context, id int64) (*models.Camera, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/cameras/%d", c.baseURL, id), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create camera request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("camera request failed: %w: %v", models.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("camera %d: %w", id, models.ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("camera request returned status %d: %w", resp.StatusCode, models.ErrNetwork)
	}

	camera := &models.Camera{}
	if err := json.NewDecoder(resp.Body).Decode(camera); err != nil {
		return nil, fmt.Errorf("failed to decode camera response: %w: %v", models.ErrNetwork, err)
	}
	return camera, nil
}

// UpdateTicketStatus выполняет серверный переход статуса тикета.
// Повторный идентичный переход на бэкенде идемпотентен.
func (c *Client) UpdateTicketStatus(ctx context.Context, id int64, status models.TicketStatus) (*models.Ticket, error) {
	body, err := json.Marshal(map[string]int64{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ticket status request: %w", err)
	}

	url := fmt.Sprintf("%s/tickets/%d?status=%s", c.baseURL, id, status)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create ticket status request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("ticket status update failed: %w: %v", models.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("ticket %d: %w", id, models.ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ticket status update returned status %d: %w", resp.StatusCode, models.ErrNetwork)
	}

	ticket := &models.Ticket{}
	if err := json.NewDecoder(resp.Body).Decode(ticket); err != nil {
		return nil, fmt.Errorf("failed to decode ticket status response: %w: %v", models.ErrNetwork, err)
	}
	return ticket, nil
}

// CreateCamera - pass-through создания камеры. Полезная нагрузка непрозрачна
// для ядра и передается коллаборатору как есть.
func (c *Client) CreateCamera(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/cameras", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create camera create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("camera create failed: %w: %v", models.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("camera create returned status %d: %w", resp.StatusCode, models.ErrNetwork)
	}

	created, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read camera create response: %w: %v", models.ErrNetwork, err)
	}
	return created, nil
}

// UploadCameraData - pass-through массового импорта камер из файла таблицы
func (c *Client) UploadCameraData(ctx context.Context, filename string, file io.Reader) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("failed to create multipart form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("failed to copy upload payload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart form: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload_camera_data", &buf)
	if err != nil {
		return fmt.Errorf("failed to create upload request: %w", err)
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("camera data upload failed: %w: %v", models.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("camera data upload returned status %d: %w", resp.StatusCode, models.ErrNetwork)
	}
	return nil
}
