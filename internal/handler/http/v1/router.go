package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты состояния поиска (origin, радиус, фильтры, отслеживание)
	session := api.Group("/session")
	{
		session.POST("/location", h.requestDeviceLocation)
		session.POST("/pin", h.dropPin)
		session.PUT("/radius", h.setRadius)
		session.PUT("/filters", h.setFilters)
		session.POST("/tracking", h.startTracking)
		session.DELETE("/tracking", h.stopTracking)
		session.GET("/search", h.searchSnapshot)

		// Маршруты выбора маркера (один открытый оверлей)
		session.PUT("/selection", h.selectMarker)
		session.DELETE("/selection", h.clearSelection)
		session.GET("/selection", h.overlay)
	}

	// Маршруты триажа тикетов
	tickets := api.Group("/tickets")
	{
		tickets.GET("", h.listPendingTickets)
		tickets.GET("/dialog", h.ticketDialog)
		tickets.DELETE("/dialog", h.dismissDialog)
		tickets.POST("/:id/dialog", h.openTicket)
		tickets.PUT("/:id/status", h.setTicketStatus)
	}

	// Маршрут активного уведомления
	api.GET("/notifications/current", h.currentNotification)

	// Pass-through маршруты коллаборатора
	cameras := api.Group("/cameras")
	{
		cameras.POST("", h.createCamera)
		cameras.POST("/upload", h.uploadCameraData)
	}

	// Конфигурация карт для UI
	api.GET("/config/map", h.mapConfig)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
