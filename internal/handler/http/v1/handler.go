package v1

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/surveilmap/camera_triage_system/internal/config"
	"github.com/surveilmap/camera_triage_system/internal/models"
	"github.com/surveilmap/camera_triage_system/internal/service"
)

// CameraAdmin - pass-through интерфейс создания/импорта камер.
// Эти операции принадлежат внешнему коллаборатору, ядро их не интерпретирует.
type CameraAdmin interface {
	CreateCamera(ctx context.Context, payload json.RawMessage) (json.RawMessage, error)
	UploadCameraData(ctx context.Context, filename string, file io.Reader) error
}

type Handler struct {
	searchService    service.SearchService
	selectionService service.SelectionService
	ticketService    service.TicketService
	notifier         service.NotificationService
	cameraAdmin      CameraAdmin
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(searchService service.SearchService, selectionService service.SelectionService, ticketService service.TicketService, notifier service.NotificationService, cameraAdmin CameraAdmin, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		searchService:    searchService,
		selectionService: selectionService,
		ticketService:    ticketService,
		notifier:         notifier,
		cameraAdmin:      cameraAdmin,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// respondError мапит виды доменных ошибок в HTTP-статусы
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
	case errors.Is(err, models.ErrInvalidRadius):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid search radius"})
	case errors.Is(err, models.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": "invalid ticket status transition"})
	case errors.Is(err, models.ErrNetwork):
		c.JSON(http.StatusBadGateway, gin.H{"error": "backend unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Request a one-shot device location fix
// @Description Acquire a high-accuracy device fix and make it the authoritative search origin. On failure the origin falls back to the default coordinate; the error is reported inline and the map keeps working. Requires API key.
// @Tags Session
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} SearchSnapshotResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /session/location [post]
func (h *Handler) requestDeviceLocation(c *gin.Context) {
	log := h.logger.WithField("method", "requestDeviceLocation")

	if _, err := h.searchService.RequestDeviceLocation(c.Request.Context()); err != nil {
		// Не фатально: состояние уже откатилось на точку по умолчанию
		log.WithError(err).Warn("Device location unavailable")
	}

	c.JSON(http.StatusOK, SnapshotToResponse(h.searchService.Snapshot()))
}

// @Summary Drop a pin as the search origin
// @Description Replace the authoritative origin with the clicked coordinate. The pin supersedes the device fix until location is re-requested. Requires API key.
// @Tags Session
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param pin body DropPinRequest true "Pin coordinate"
// @Success 200 {object} SearchSnapshotResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /session/pin [post]
func (h *Handler) dropPin(c *gin.Context) {
	var input DropPinRequest
	log := h.logger.WithField("method", "dropPin")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.searchService.DropPin(c.Request.Context(), input.Latitude, input.Longitude)
	c.JSON(http.StatusOK, SnapshotToResponse(h.searchService.Snapshot()))
}

// @Summary Change the search radius
// @Description Replace the search radius and re-query cameras from the current authoritative origin. Requires API key.
// @Tags Session
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param radius body SetRadiusRequest true "Radius in meters (500/1000/2000/5000)"
// @Success 200 {object} SearchSnapshotResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /session/radius [put]
func (h *Handler) setRadius(c *gin.Context) {
	var input SetRadiusRequest
	log := h.logger.WithField("method", "setRadius")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.searchService.SetRadius(c.Request.Context(), input.RadiusMeters); err != nil {
		log.WithError(err).Warn("Failed to set radius")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SnapshotToResponse(h.searchService.Snapshot()))
}

// @Summary Change the proximity query filters
// @Description Replace the status/ownership filters and re-query cameras. Empty filters mean no filter. Requires API key.
// @Tags Session
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param filters body SetFiltersRequest true "Query filters"
// @Success 200 {object} SearchSnapshotResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /session/filters [put]
func (h *Handler) setFilters(c *gin.Context) {
	var input SetFiltersRequest
	log := h.logger.WithField("method", "setFilters")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.searchService.SetFilters(c.Request.Context(), input.StatusFilter, input.OwnershipFilter); err != nil {
		log.WithError(err).Error("Failed to set filters")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SnapshotToResponse(h.searchService.Snapshot()))
}

// @Summary Start continuous device tracking
// @Description Subscribe to continuous device position updates; each update replaces the origin and re-queries cameras. Requires API key.
// @Tags Session
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} SearchSnapshotResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /session/tracking [post]
func (h *Handler) startTracking(c *gin.Context) {
	log := h.logger.WithField("method", "startTracking")

	if err := h.searchService.StartTracking(c.Request.Context()); err != nil {
		// Причина отказа отдается inline в снимке
		log.WithError(err).Warn("Continuous tracking unavailable")
	}
	c.JSON(http.StatusOK, SnapshotToResponse(h.searchService.Snapshot()))
}

// @Summary Stop continuous device tracking
// @Description Tear down the continuous position subscription. Requires API key.
// @Tags Session
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /session/tracking [delete]
func (h *Handler) stopTracking(c *gin.Context) {
	h.searchService.StopTracking()
	c.Status(http.StatusNoContent)
}

// @Summary Get the current search snapshot
// @Description Get the authoritative origin, radius, filters and the camera list of the most recently applied proximity query. Requires API key.
// @Tags Session
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} SearchSnapshotResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /session/search [get]
func (h *Handler) searchSnapshot(c *gin.Context) {
	c.JSON(http.StatusOK, SnapshotToResponse(h.searchService.Snapshot()))
}

// @Summary Select a marker
// @Description Open the overlay of the selected target, atomically closing any other overlay. At most one overlay is open system-wide. Requires API key.
// @Tags Selection
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param selection body SelectRequest true "Selection target"
// @Success 200 {object} OverlayResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Camera index out of range"
// @Router /session/selection [put]
func (h *Handler) selectMarker(c *gin.Context) {
	var input SelectRequest
	log := h.logger.WithField("method", "selectMarker")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.selectionService.Select(DTOToSelection(input)); err != nil {
		log.WithError(err).Warn("Failed to select marker")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, OverlayToResponse(h.selectionService.Overlay()))
}

// @Summary Close the open overlay
// @Description Clear the current selection. Requires API key.
// @Tags Selection
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /session/selection [delete]
func (h *Handler) clearSelection(c *gin.Context) {
	h.selectionService.Clear()
	c.Status(http.StatusNoContent)
}

// @Summary Get the open overlay
// @Description Get the content of the currently open overlay, if any. Requires API key.
// @Tags Selection
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} OverlayResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /session/selection [get]
func (h *Handler) overlay(c *gin.Context) {
	c.JSON(http.StatusOK, OverlayToResponse(h.selectionService.Overlay()))
}

// @Summary List pending tickets
// @Description Refresh the ticket list from the backend and return the Pending-only view. Requires API key.
// @Tags Tickets
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} TicketResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Backend unavailable"
// @Router /tickets [get]
func (h *Handler) listPendingTickets(c *gin.Context) {
	log := h.logger.WithField("method", "listPendingTickets")

	if err := h.ticketService.Refresh(c.Request.Context()); err != nil {
		log.WithError(err).Error("Failed to refresh tickets")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToTicketResponses(h.ticketService.Pending()))
}

// @Summary Open the ticket detail dialog
// @Description Fetch the full camera record of the ticket's camera and open the detail dialog. On failure the dialog stays closed. Requires API key.
// @Tags Tickets
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Ticket ID"
// @Success 200 {object} TicketDialogResponse
// @Failure 400 {object} map[string]string "Invalid ticket ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Ticket or camera not found"
// @Failure 502 {object} map[string]string "Backend unavailable"
// @Router /tickets/{id}/dialog [post]
func (h *Handler) openTicket(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ticket ID"})
		return
	}
	log := h.logger.WithField("method", "openTicket").WithField("id", id)

	dialog, err := h.ticketService.OpenTicket(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to open ticket dialog")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, DialogToResponse(dialog))
}

// @Summary Get the open ticket dialog
// @Description Get the currently open ticket detail dialog, if any. Requires API key.
// @Tags Tickets
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} TicketDialogResponse
// @Success 204 "No open dialog"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /tickets/dialog [get]
func (h *Handler) ticketDialog(c *gin.Context) {
	dialog := h.ticketService.Dialog()
	if dialog == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, DialogToResponse(dialog))
}

// @Summary Dismiss the ticket dialog
// @Description Close the detail dialog without a status transition. Requires API key.
// @Tags Tickets
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /tickets/dialog [delete]
func (h *Handler) dismissDialog(c *gin.Context) {
	h.ticketService.DismissDialog()
	c.Status(http.StatusNoContent)
}

// @Summary Resolve a pending ticket
// @Description Transition a Pending ticket to Accepted or Rejected. The transition is server-confirmed: on success the dialog closes, the list is refetched and a notification is emitted; on failure the dialog stays open and the status is unchanged. Requires API key.
// @Tags Tickets
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Ticket ID"
// @Param status body SetTicketStatusRequest true "Target status"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid ticket ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Ticket not found"
// @Failure 409 {object} map[string]string "Ticket already resolved"
// @Failure 502 {object} map[string]string "Backend unavailable"
// @Router /tickets/{id}/status [put]
func (h *Handler) setTicketStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ticket ID"})
		return
	}
	log := h.logger.WithField("method", "setTicketStatus").WithField("id", id)

	var input SetTicketStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.ticketService.SetStatus(c.Request.Context(), id, models.TicketStatus(input.Status)); err != nil {
		log.WithError(err).Error("Failed to update ticket status")
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Get the active notification
// @Description Get the active transient notification, if it has not auto-dismissed yet. Requires API key.
// @Tags Notifications
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} NotificationResponse
// @Success 204 "No active notification"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /notifications/current [get]
func (h *Handler) currentNotification(c *gin.Context) {
	n := h.notifier.Current()
	if n == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, NotificationToResponse(n))
}

// @Summary Create a camera (pass-through)
// @Description Forward a camera creation payload to the backend collaborator as-is. Requires API key.
// @Tags Cameras
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} object
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Backend unavailable"
// @Router /cameras [post]
func (h *Handler) createCamera(c *gin.Context) {
	log := h.logger.WithField("method", "createCamera")

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil || len(payload) == 0 || !json.Valid(payload) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.cameraAdmin.CreateCamera(c.Request.Context(), payload)
	if err != nil {
		log.WithError(err).Error("Failed to create camera on backend")
		respondError(c, err)
		return
	}
	c.Data(http.StatusCreated, "application/json", created)
}

// @Summary Bulk camera import (pass-through)
// @Description Forward a spreadsheet file to the backend collaborator. Requires API key.
// @Tags Cameras
// @Accept mpfd
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "Spreadsheet file"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Missing file"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Backend unavailable"
// @Router /cameras/upload [post]
func (h *Handler) uploadCameraData(c *gin.Context) {
	log := h.logger.WithField("method", "uploadCameraData")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.WithError(err).Error("Failed to open uploaded file")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	defer file.Close()

	if err := h.cameraAdmin.UploadCameraData(c.Request.Context(), fileHeader.Filename, file); err != nil {
		log.WithError(err).Error("Failed to upload camera data to backend")
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Get map provider configuration
// @Description Get the opaque map provider API key for the UI. Requires API key.
// @Tags System
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} MapConfigResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /config/map [get]
func (h *Handler) mapConfig(c *gin.Context) {
	c.JSON(http.StatusOK, MapConfigResponse{MapsAPIKey: h.cfg.MapsAPIKey})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
