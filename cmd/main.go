package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelAppointmentHandler "github.com/agendasis/AgendaSIS-BookingService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/agendasis/AgendaSIS-BookingService/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/agendasis/AgendaSIS-BookingService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/agendasis/AgendaSIS-BookingService/internal/api/handlers/get_available_slots"
	getBarberAppointmentsHandler "github.com/agendasis/AgendaSIS-BookingService/internal/api/handlers/get_barber_appointments"
	getCalendarHandler "github.com/agendasis/AgendaSIS-BookingService/internal/api/handlers/get_calendar"
	getLoyaltyPointsHandler "github.com/agendasis/AgendaSIS-BookingService/internal/api/handlers/get_loyalty_points"
	getUserAppointmentsHandler "github.com/agendasis/AgendaSIS-BookingService/internal/api/handlers/get_user_appointments"
	redeemLoyaltyPointsHandler "github.com/agendasis/AgendaSIS-BookingService/internal/api/handlers/redeem_loyalty_points"
	updateAppointmentStatusHandler "github.com/agendasis/AgendaSIS-BookingService/internal/api/handlers/update_appointment_status"
	updateCalendarHandler "github.com/agendasis/AgendaSIS-BookingService/internal/api/handlers/update_calendar"
	"github.com/agendasis/AgendaSIS-BookingService/internal/api/middleware"
	"github.com/agendasis/AgendaSIS-BookingService/internal/config"
	appointmentRepo "github.com/agendasis/AgendaSIS-BookingService/internal/infra/storage/appointment"
	calendarRepo "github.com/agendasis/AgendaSIS-BookingService/internal/infra/storage/calendar"
	loyaltyRepo "github.com/agendasis/AgendaSIS-BookingService/internal/infra/storage/loyalty"
	catalogRepo "github.com/agendasis/AgendaSIS-BookingService/internal/infra/storage/servicecatalog"
	notifyServiceClient "github.com/agendasis/AgendaSIS-BookingService/internal/integrations/notifyservice"
	appointmentsService "github.com/agendasis/AgendaSIS-BookingService/internal/service/appointments"
	calendarService "github.com/agendasis/AgendaSIS-BookingService/internal/service/calendar"
	loyaltyService "github.com/agendasis/AgendaSIS-BookingService/internal/service/loyalty"
	createAppointmentUC "github.com/agendasis/AgendaSIS-BookingService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/agendasis/AgendaSIS-BookingService/internal/usecase/get_available_slots"
	updateAppointmentStatusUC "github.com/agendasis/AgendaSIS-BookingService/internal/usecase/update_appointment_status"
	"github.com/agendasis/AgendaSIS-BookingService/pkg/dbmetrics"
	"github.com/agendasis/AgendaSIS-BookingService/pkg/logger"
	"github.com/agendasis/AgendaSIS-BookingService/pkg/metrics"
	"github.com/agendasis/AgendaSIS-BookingService/pkg/simpletxmanager"
	"github.com/agendasis/AgendaSIS-BookingService/pkg/txmanager"
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

	log.Info("Starting AgendaSIS-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Клиент сервиса уведомлений
	notifyClient := notifyServiceClient.NewClient(
		cfg.NotifyService.URL,
		time.Duration(cfg.NotifyService.Timeout)*time.Second,
		log,
	)
	log.Info("Notify service client initialized (url=%s, timeout=%ds)",
		cfg.NotifyService.URL, cfg.NotifyService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		calendarRepository    *calendarRepo.Repository
		catalogRepository     *catalogRepo.Repository
		loyaltyRepository     *loyaltyRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		calendarRepository = calendarRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		loyaltyRepository = loyaltyRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		calendarRepository = calendarRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		loyaltyRepository = loyaltyRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, notifyClient, log)
	calendarSvc := calendarService.NewService(calendarRepository, log)
	loyaltySvc := loyaltyService.NewService(loyaltyRepository, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		catalogRepository,
		calendarRepository,
		notifyClient,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		catalogRepository,
		calendarRepository,
		log,
	)

	updateAppointmentStatusUseCase := updateAppointmentStatusUC.NewUseCase(
		appointmentRepository,
		loyaltyRepository,
		notifyClient,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(updateAppointmentStatusUseCase, log)
	getUserAppointments := getUserAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getBarberAppointments := getBarberAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getCalendar := getCalendarHandler.NewHandler(calendarSvc, log)
	updateCalendar := updateCalendarHandler.NewHandler(calendarSvc, log)
	getLoyaltyPoints := getLoyaltyPointsHandler.NewHandler(loyaltySvc, log)
	redeemLoyaltyPoints := redeemLoyaltyPointsHandler.NewHandler(loyaltySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Сетка доступных слотов барбера
	api.HandleFunc("/establishments/{establishmentId}/barbers/{barberId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Календарь заведения (часы работы, выходные, политика записи)
	api.HandleFunc("/establishments/{establishmentId}/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Auth.TokenSecret))

	// --- Записи ---
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{id}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{id}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// История записей пользователя
	protected.HandleFunc("/users/{userId}/appointments", getUserAppointments.Handle).Methods(http.MethodGet)

	// Расписание барбера (для персонала)
	protected.HandleFunc("/barbers/{barberId}/appointments", getBarberAppointments.Handle).Methods(http.MethodGet)

	// --- Календарь заведения (для владельца) ---
	protected.HandleFunc("/establishments/{establishmentId}/calendar", updateCalendar.Handle).Methods(http.MethodPut)

	// --- Программа лояльности ---
	protected.HandleFunc("/users/{userId}/loyalty", getLoyaltyPoints.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}/loyalty/redeem", redeemLoyaltyPoints.Handle).Methods(http.MethodPost)

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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
