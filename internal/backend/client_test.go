package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/surveilmap/camera_triage_system/internal/models"
)

func TestNearbyCameras_Success(t *testing.T) {
	// Подготовка
	expectedCameras := []models.Camera{
		{ID: 1, Location: "Вокзал", Status: models.CameraWorking},
		{ID: 2, Location: "Парковка", Status: models.CameraNotWorking},
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/nearby_cameras", r.URL.Path)

		var req NearbyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 55.75, req.Latitude)
		assert.Equal(t, 2000, req.RadiusMeters)

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(expectedCameras))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)

	// Действие
	cameras, err := client.NearbyCameras(context.Background(), NearbyRequest{
		Latitude:     55.75,
		Longitude:    37.61,
		RadiusMeters: 2000,
	})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedCameras, cameras)
}

func TestNearbyCameras_ServerError(t *testing.T) {
	// Подготовка
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)

	// Действие
	cameras, err := client.NearbyCameras(context.Background(), NearbyRequest{})

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNetwork)
	assert.Nil(t, cameras)
}

func TestGetCamera_Success(t *testing.T) {
	// Подготовка
	expected := models.Camera{ID: 7, Location: "Склад", OwnerName: "ООО Периметр"}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/cameras/7", r.URL.Path)
		require.NoError(t, json.NewEncoder(w).Encode(expected))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)

	// Действие
	camera, err := client.GetCamera(context.Background(), 7)

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, camera)
	assert.Equal(t, expected, *camera)
}

func TestGetCamera_NotFound(t *testing.T) {
	// Подготовка
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)

	// Действие
	camera, err := client.GetCamera(context.Background(), 99)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Nil(t, camera)
}

func TestListTickets_Success(t *testing.T) {
	// Подготовка
	expected := []models.Ticket{
		{ID: 1, CameraID: 7, Status: models.TicketPending},
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tickets", r.URL.Path)
		require.NoError(t, json.NewEncoder(w).Encode(expected))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)

	// Действие
	tickets, err := client.ListTickets(context.Background())

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, tickets)
}

func TestUpdateTicketStatus_Success(t *testing.T) {
	// Подготовка
	updated := models.Ticket{ID: 5, CameraID: 7, Status: models.TicketAccepted}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/tickets/5", r.URL.Path)
		assert.Equal(t, "Accepted", r.URL.Query().Get("status"))

		var body map[string]int64
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, int64(5), body["id"])

		require.NoError(t, json.NewEncoder(w).Encode(updated))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)

	// Действие
	ticket, err := client.UpdateTicketStatus(context.Background(), 5, models.TicketAccepted)

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, ticket)
	assert.Equal(t, updated, *ticket)
}

func TestUpdateTicketStatus_NotFound(t *testing.T) {
	// Подготовка
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)

	// Действие
	ticket, err := client.UpdateTicketStatus(context.Background(), 99, models.TicketRejected)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Nil(t, ticket)
}

func TestCreateCamera_PassThrough(t *testing.T) {
	// Подготовка
	payload := json.RawMessage(`{"location":"Вокзал","latitude":55.75}`)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/cameras", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, string(payload), string(body))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":42}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)

	// Действие
	created, err := client.CreateCamera(context.Background(), payload)

	// Проверки
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":42}`, string(created))
}

func TestUploadCameraData_Success(t *testing.T) {
	// Подготовка
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/upload_camera_data", r.URL.Path)

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "cameras.csv", header.Filename)

		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "id,location\n1,Вокзал\n", string(content))

		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)

	// Действие
	err := client.UploadCameraData(context.Background(), "cameras.csv", strings.NewReader("id,location\n1,Вокзал\n"))

	// Проверки
	require.NoError(t, err)
}

func TestClient_NetworkFailure(t *testing.T) {
	// Подготовка
	// Сервер закрыт сразу: любое обращение падает на транспорте
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, time.Second)

	// Действие
	_, err := client.ListTickets(context.Background())

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNetwork)
}
