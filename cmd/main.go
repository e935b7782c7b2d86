package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/surveilmap/camera_triage_system/internal/backend"
	"github.com/surveilmap/camera_triage_system/internal/config"
	"github.com/surveilmap/camera_triage_system/internal/geo"
	v1 "github.com/surveilmap/camera_triage_system/internal/handler/http/v1"
	"github.com/surveilmap/camera_triage_system/internal/repository"
	"github.com/surveilmap/camera_triage_system/internal/service"
	"github.com/surveilmap/camera_triage_system/internal/webhook"
	"github.com/surveilmap/camera_triage_system/pkg/logger"
	redisclient "github.com/surveilmap/camera_triage_system/pkg/redis"

	_ "github.com/surveilmap/camera_triage_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title SurveilMap Camera Triage API
// @version 1.0
// @description Proximity search and ticket triage gateway for the SurveilMap operator console.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Клиент бэкенда камер и тикетов
	backendClient := backend.NewClient(cfg.BackendBaseURL, cfg.QueryTimeout)

	// Источник геолокации устройства
	locationProvider := geo.NewAgentProvider(cfg.DeviceAgentURL, cfg.LocationTimeout, cfg.TrackingInterval)

	// Инициализация издателя и воркера событий триажа
	triagePublisher := webhook.NewRedisPublisher(redisClient)
	triageWorker := webhook.NewWorker(redisClient, log, cfg)
	triageWorker.Start(ctx)

	// Инициализация репозиториев
	cameraRepo := repository.NewCameraRepository(backendClient, redisClient, cfg.CameraCacheTTL)
	ticketRepo := repository.NewTicketRepository(backendClient)

	// Инициализация сервисов
	searchService := service.NewSearchService(cameraRepo, locationProvider, log, cfg)
	selectionService := service.NewSelectionService(searchService, log)
	notifier := service.NewNotificationService(log, cfg.NotificationTTL)
	ticketService := service.NewTicketService(ticketRepo, cameraRepo, selectionService, notifier, triagePublisher, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(searchService, selectionService, ticketService, notifier, backendClient, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	if len(cfg.APIKeys) > 0 {
		api.Use(v1.APIKeyAuthMiddleware(cfg, log))
	}
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	// Снимаем непрерывное отслеживание, чтобы не утек фоновый watch
	searchService.StopTracking()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
