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

	checkSlotConflictHandler "github.com/peycheff-com/mariia-hub-booking/internal/api/handlers/check_slot_conflict"
	createBookingHandler "github.com/peycheff-com/mariia-hub-booking/internal/api/handlers/create_booking"
	createSlotHandler "github.com/peycheff-com/mariia-hub-booking/internal/api/handlers/create_slot"
	deleteSlotHandler "github.com/peycheff-com/mariia-hub-booking/internal/api/handlers/delete_slot"
	getAdminBookingsHandler "github.com/peycheff-com/mariia-hub-booking/internal/api/handlers/get_admin_bookings"
	getBookingHandler "github.com/peycheff-com/mariia-hub-booking/internal/api/handlers/get_booking"
	getCalendarHandler "github.com/peycheff-com/mariia-hub-booking/internal/api/handlers/get_calendar"
	getScheduleHandler "github.com/peycheff-com/mariia-hub-booking/internal/api/handlers/get_schedule"
	getSlotsHandler "github.com/peycheff-com/mariia-hub-booking/internal/api/handlers/get_slots"
	updateBookingStatusHandler "github.com/peycheff-com/mariia-hub-booking/internal/api/handlers/update_booking_status"
	updateSlotHandler "github.com/peycheff-com/mariia-hub-booking/internal/api/handlers/update_slot"
	"github.com/peycheff-com/mariia-hub-booking/internal/api/middleware"
	"github.com/peycheff-com/mariia-hub-booking/internal/config"
	bookingRepo "github.com/peycheff-com/mariia-hub-booking/internal/infra/storage/booking"
	slotRepo "github.com/peycheff-com/mariia-hub-booking/internal/infra/storage/slot"
	bookingsService "github.com/peycheff-com/mariia-hub-booking/internal/service/bookings"
	slotsService "github.com/peycheff-com/mariia-hub-booking/internal/service/slots"
	checkSlotConflictUC "github.com/peycheff-com/mariia-hub-booking/internal/usecase/check_slot_conflict"
	createSlotUC "github.com/peycheff-com/mariia-hub-booking/internal/usecase/create_slot"
	updateSlotUC "github.com/peycheff-com/mariia-hub-booking/internal/usecase/update_slot"
	"github.com/peycheff-com/mariia-hub-booking/pkg/dbmetrics"
	"github.com/peycheff-com/mariia-hub-booking/pkg/logger"
	"github.com/peycheff-com/mariia-hub-booking/pkg/metrics"
	"github.com/peycheff-com/mariia-hub-booking/pkg/simpletxmanager"
	"github.com/peycheff-com/mariia-hub-booking/pkg/txmanager"
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

	log.Info("Starting mariia-hub-booking...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		slotRepository    *slotRepo.Repository
		bookingRepository *bookingRepo.Repository
	)

	// Интерфейс transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		slotRepository = slotRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		slotRepository = slotRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	slotSvc := slotsService.NewService(slotRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	createSlotUseCase := createSlotUC.NewUseCase(slotRepository, txMgr, log)
	updateSlotUseCase := updateSlotUC.NewUseCase(slotRepository, txMgr, log)
	checkSlotConflictUseCase := checkSlotConflictUC.NewUseCase(slotRepository, log)

	// Инициализируем handlers
	createSlot := createSlotHandler.NewHandler(createSlotUseCase, log)
	updateSlot := updateSlotHandler.NewHandler(updateSlotUseCase, log)
	deleteSlot := deleteSlotHandler.NewHandler(slotSvc, log)
	checkSlotConflict := checkSlotConflictHandler.NewHandler(checkSlotConflictUseCase, log)
	getSlots := getSlotsHandler.NewHandler(slotSvc, log)
	getSchedule := getScheduleHandler.NewHandler(slotSvc, log)
	createBooking := createBookingHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getAdminBookings := getAdminBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getCalendar := getCalendarHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Rate limiting на публичных маршрутах (если включен)
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		api.Use(limiter.Middleware)
		log.Info("Rate limiting enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Слоты на день недели
	api.HandleFunc("/slots", getSlots.Handle).Methods(http.MethodGet)

	// Недельное расписание
	api.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Admin-ID header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth)

	// --- Управление слотами ---
	// Создание слота
	admin.HandleFunc("/slots", createSlot.Handle).Methods(http.MethodPost)

	// Проверка кандидата на пересечение
	admin.HandleFunc("/slots/check", checkSlotConflict.Handle).Methods(http.MethodPost)

	// Редактирование слота
	admin.HandleFunc("/slots/{slotId}", updateSlot.Handle).Methods(http.MethodPut)

	// Удаление слота
	admin.HandleFunc("/slots/{slotId}", deleteSlot.Handle).Methods(http.MethodDelete)

	// --- Управление бронированиями ---
	// Список бронирований с фильтрами
	admin.HandleFunc("/bookings", getAdminBookings.Handle).Methods(http.MethodGet)

	// Обновление статуса бронирования
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Календарный свод по дням
	admin.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)

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
