package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"

	closePickerHandler "github.com/bedylmz/toolshare-fe/internal/api/handlers/close_picker"
	confirmReservationHandler "github.com/bedylmz/toolshare-fe/internal/api/handlers/confirm_reservation"
	createToolHandler "github.com/bedylmz/toolshare-fe/internal/api/handlers/create_tool"
	getCalendarHandler "github.com/bedylmz/toolshare-fe/internal/api/handlers/get_calendar"
	getStatisticsHandler "github.com/bedylmz/toolshare-fe/internal/api/handlers/get_statistics"
	getToolHandler "github.com/bedylmz/toolshare-fe/internal/api/handlers/get_tool"
	getUserProfileHandler "github.com/bedylmz/toolshare-fe/internal/api/handlers/get_user_profile"
	getUserReservationsHandler "github.com/bedylmz/toolshare-fe/internal/api/handlers/get_user_reservations"
	listToolsHandler "github.com/bedylmz/toolshare-fe/internal/api/handlers/list_tools"
	navigateMonthHandler "github.com/bedylmz/toolshare-fe/internal/api/handlers/navigate_month"
	openPickerHandler "github.com/bedylmz/toolshare-fe/internal/api/handlers/open_picker"
	selectDayHandler "github.com/bedylmz/toolshare-fe/internal/api/handlers/select_day"
	"github.com/bedylmz/toolshare-fe/internal/api/middleware"
	"github.com/bedylmz/toolshare-fe/internal/config"
	"github.com/bedylmz/toolshare-fe/internal/infra/sessions"
	toolServiceClient "github.com/bedylmz/toolshare-fe/internal/integrations/toolservice"
	pickerService "github.com/bedylmz/toolshare-fe/internal/service/picker"
	profileService "github.com/bedylmz/toolshare-fe/internal/service/profile"
	statisticsService "github.com/bedylmz/toolshare-fe/internal/service/statistics"
	toolsService "github.com/bedylmz/toolshare-fe/internal/service/tools"
	confirmReservationUC "github.com/bedylmz/toolshare-fe/internal/usecase/confirm_reservation"
	getCalendarUC "github.com/bedylmz/toolshare-fe/internal/usecase/get_calendar"
	navigateMonthUC "github.com/bedylmz/toolshare-fe/internal/usecase/navigate_month"
	openPickerUC "github.com/bedylmz/toolshare-fe/internal/usecase/open_picker"
	selectDayUC "github.com/bedylmz/toolshare-fe/internal/usecase/select_day"
	"github.com/bedylmz/toolshare-fe/pkg/logger"
	"github.com/bedylmz/toolshare-fe/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting ToolShare-FE...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем клиент marketplace API
	var upstreamRecorder toolServiceClient.MetricsRecorder
	if metricsCollector != nil {
		upstreamRecorder = metricsCollector
	}
	toolClient := toolServiceClient.NewClient(
		cfg.ToolService.URL,
		time.Duration(cfg.ToolService.Timeout)*time.Second,
		log,
		upstreamRecorder,
	)
	log.Info("Integration client initialized (ToolService=%s timeout=%ds)",
		cfg.ToolService.URL, cfg.ToolService.Timeout)

	// Хранилище сессий выбора дат, состояние живет в памяти до TTL
	sessionStore := sessions.NewStore()
	sessionTTL := time.Duration(cfg.Picker.SessionTTLMinutes) * time.Minute

	// Инициализируем сервисы
	toolsSvc := toolsService.NewService(toolClient, log)
	profileSvc := profileService.NewService(toolClient, log)
	statisticsSvc := statisticsService.NewService(toolClient, log)

	var lifecycleMetrics pickerService.MetricsRecorder
	if metricsCollector != nil {
		lifecycleMetrics = metricsCollector
	}
	pickerSvc := pickerService.NewService(sessionStore, sessionTTL, log, lifecycleMetrics)

	// Инициализируем use cases
	openPickerUseCase := openPickerUC.NewUseCase(toolClient, sessionStore, cfg.Picker.HorizonDays, log)
	getCalendarUseCase := getCalendarUC.NewUseCase(sessionStore, log)
	navigateMonthUseCase := navigateMonthUC.NewUseCase(sessionStore, log)
	selectDayUseCase := selectDayUC.NewUseCase(sessionStore, log)
	confirmReservationUseCase := confirmReservationUC.NewUseCase(toolClient, sessionStore, log)

	// Инициализируем handlers
	listTools := listToolsHandler.NewHandler(toolsSvc, log)
	getTool := getToolHandler.NewHandler(toolsSvc, log)
	createTool := createToolHandler.NewHandler(toolsSvc, log)
	getUserProfile := getUserProfileHandler.NewHandler(profileSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(profileSvc, log)
	getStatistics := getStatisticsHandler.NewHandler(statisticsSvc, log)
	openPicker := openPickerHandler.NewHandler(openPickerUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	navigateMonth := navigateMonthHandler.NewHandler(navigateMonthUseCase, log)
	selectDay := selectDayHandler.NewHandler(selectDayUseCase, log)
	confirmReservation := confirmReservationHandler.NewHandler(confirmReservationUseCase, log)
	closePicker := closePickerHandler.NewHandler(pickerSvc, log)

	// Планировщик уборки истекших сессий
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.Picker.CleanupSchedule, pickerSvc.SweepExpired); err != nil {
		log.Fatal("Failed to schedule session cleanup: %v", err)
	}
	scheduler.Start()
	log.Info("Session cleanup scheduled (%s, ttl=%dm)", cfg.Picker.CleanupSchedule, cfg.Picker.SessionTTLMinutes)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Ограничение частоты запросов (если включено)
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		r.Use(limiter.Middleware)
		log.Info("Rate limiting enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог инструментов с поиском и фильтром категории
	api.HandleFunc("/tools", listTools.Handle).Methods(http.MethodGet)

	// Один инструмент каталога
	api.HandleFunc("/tools/{toolId}", getTool.Handle).Methods(http.MethodGet)

	// Статистика сообщества
	api.HandleFunc("/statistics", getStatistics.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Каталог ---
	// Публикация инструмента
	protected.HandleFunc("/tools", createTool.Handle).Methods(http.MethodPost)

	// --- Профиль ---
	// Профиль пользователя с его инструментами и историей
	protected.HandleFunc("/users/{userId}/profile", getUserProfile.Handle).Methods(http.MethodGet)

	// История резерваций пользователя
	protected.HandleFunc("/users/{userId}/reservations", getUserReservations.Handle).Methods(http.MethodGet)

	// --- Выбор дат резервации ---
	// Открытие сессии выбора дат для инструмента
	protected.HandleFunc("/tools/{toolId}/picker", openPicker.Handle).Methods(http.MethodPost)

	// Месячная сетка календаря
	protected.HandleFunc("/picker/{sessionId}/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// Навигация по месяцам
	protected.HandleFunc("/picker/{sessionId}/month", navigateMonth.Handle).Methods(http.MethodPost)

	// Клик по дню календаря
	protected.HandleFunc("/picker/{sessionId}/days", selectDay.Handle).Methods(http.MethodPost)

	// Подтверждение выбранного диапазона
	protected.HandleFunc("/picker/{sessionId}/confirm", confirmReservation.Handle).Methods(http.MethodPost)

	// Закрытие сессии без резервации
	protected.HandleFunc("/picker/{sessionId}", closePicker.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем планировщик уборки сессий
	scheduler.Stop()
	log.Info("Session cleanup scheduler stopped")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
