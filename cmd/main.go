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

	blockSlotHandler "github.com/coachpoint/CP-BookingService/internal/api/handlers/block_slot"
	bulkBlockHandler "github.com/coachpoint/CP-BookingService/internal/api/handlers/bulk_block"
	cancelBookingHandler "github.com/coachpoint/CP-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/coachpoint/CP-BookingService/internal/api/handlers/create_booking"
	createRuleHandler "github.com/coachpoint/CP-BookingService/internal/api/handlers/create_rule"
	getAvailableSlotsHandler "github.com/coachpoint/CP-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/coachpoint/CP-BookingService/internal/api/handlers/get_booking"
	getServiceBookingsHandler "github.com/coachpoint/CP-BookingService/internal/api/handlers/get_service_bookings"
	paymentCallbackHandler "github.com/coachpoint/CP-BookingService/internal/api/handlers/payment_callback"
	updateBookingHandler "github.com/coachpoint/CP-BookingService/internal/api/handlers/update_booking"
	updateRuleHandler "github.com/coachpoint/CP-BookingService/internal/api/handlers/update_rule"
	"github.com/coachpoint/CP-BookingService/internal/api/middleware"
	"github.com/coachpoint/CP-BookingService/internal/config"
	"github.com/coachpoint/CP-BookingService/internal/infra/migrator"
	adminBlockRepo "github.com/coachpoint/CP-BookingService/internal/infra/storage/adminblock"
	availabilityRepo "github.com/coachpoint/CP-BookingService/internal/infra/storage/availability"
	bookingRepo "github.com/coachpoint/CP-BookingService/internal/infra/storage/booking"
	catalogServiceClient "github.com/coachpoint/CP-BookingService/internal/integrations/catalogservice"
	"github.com/coachpoint/CP-BookingService/internal/pricing"
	bookingsService "github.com/coachpoint/CP-BookingService/internal/service/bookings"
	blockSlotsUC "github.com/coachpoint/CP-BookingService/internal/usecase/block_slots"
	createBookingUC "github.com/coachpoint/CP-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/coachpoint/CP-BookingService/internal/usecase/get_available_slots"
	manageRulesUC "github.com/coachpoint/CP-BookingService/internal/usecase/manage_rules"
	updateBookingUC "github.com/coachpoint/CP-BookingService/internal/usecase/update_booking"
	"github.com/coachpoint/CP-BookingService/pkg/dbmetrics"
	"github.com/coachpoint/CP-BookingService/pkg/logger"
	"github.com/coachpoint/CP-BookingService/pkg/metrics"
	"github.com/coachpoint/CP-BookingService/pkg/simpletxmanager"
	"github.com/coachpoint/CP-BookingService/pkg/txmanager"
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

	log.Info("Starting CP-BookingService...")
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

	// Применяем миграции (если включено)
	if cfg.Database.Migrate {
		mg, err := migrator.New(db, cfg.Database.MigrationsPath, log)
		if err != nil {
			log.Fatal("Failed to init migrator: %v", err)
		}
		if err := mg.Run(context.Background()); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	// Инициализируем клиента каталога услуг
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	log.Info("Catalog client initialized (url=%s, timeout=%ds)",
		cfg.CatalogService.URL, cfg.CatalogService.Timeout)

	// Параметры транзакций и стоимости
	txOpts := []txmanager.Option{
		txmanager.WithTimeout(time.Duration(cfg.Booking.TxTimeoutSeconds) * time.Second),
		txmanager.WithRetryBackoff(time.Duration(cfg.Booking.LockRetryBackoffMs) * time.Millisecond),
	}
	pricingParams := pricing.Params{
		TravelRatePerKm:     cfg.Pricing.TravelRatePerKm,
		MaxTravelDistanceKm: cfg.Pricing.MaxTravelDistanceKm,
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository      *bookingRepo.Repository
		availabilityRepository *availabilityRepo.Repository
		adminBlockRepository   *adminBlockRepo.Repository
	)

	// Интерфейс transaction manager для usecases
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		adminBlockRepository = adminBlockRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB, txOpts...)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		availabilityRepository = availabilityRepo.NewRepository(db)
		adminBlockRepository = adminBlockRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db, txOpts...)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		availabilityRepository,
		adminBlockRepository,
		catalogClient,
		cfg.Booking.HorizonDays,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		availabilityRepository,
		adminBlockRepository,
		catalogClient,
		txMgr,
		cfg.Booking.HorizonDays,
		pricingParams,
		log,
	)

	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		txMgr,
		pricingParams,
		log,
	)

	blockSlotsUseCase := blockSlotsUC.NewUseCase(
		adminBlockRepository,
		availabilityRepository,
		log,
	)

	manageRulesUseCase := manageRulesUC.NewUseCase(
		availabilityRepository,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, metricsCollector, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	paymentCallback := paymentCallbackHandler.NewHandler(updateBookingUseCase, log)
	blockSlot := blockSlotHandler.NewHandler(blockSlotsUseCase, metricsCollector, log)
	bulkBlock := bulkBlockHandler.NewHandler(blockSlotsUseCase, metricsCollector, log)
	getServiceBookings := getServiceBookingsHandler.NewHandler(bookingSvc, log)
	createRule := createRuleHandler.NewHandler(manageRulesUseCase, log)
	updateRule := updateRuleHandler.NewHandler(manageRulesUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
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

	// Расписание доступных слотов на горизонт бронирования
	api.HandleFunc("/availability", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Callback от платёжного провайдера
	api.HandleFunc("/bookings/{bookingId}/payment-callback", paymentCallback.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-ID header)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.Auth)

	// --- Бронирования ---
	// Получение бронирования по ID
	admin.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Внесение дистанции выезда и смена статуса
	admin.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPatch)

	// Отмена бронирования
	admin.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Бронирования услуги с фильтрацией
	admin.HandleFunc("/services/{serviceId}/bookings", getServiceBookings.Handle).Methods(http.MethodGet)

	// --- Управление слотами ---
	// Блокировка / разблокировка одного слота
	admin.HandleFunc("/availability/{slotId}/block", blockSlot.Handle).Methods(http.MethodPatch)

	// Блокировка / разблокировка всех слотов дня
	admin.HandleFunc("/availability/bulk-block", bulkBlock.Handle).Methods(http.MethodPost)

	// --- Правила доступности ---
	// Создание правила доступности
	admin.HandleFunc("/availability/rules", createRule.Handle).Methods(http.MethodPost)

	// Включение / выключение правила
	admin.HandleFunc("/availability/rules/{ruleId}", updateRule.Handle).Methods(http.MethodPatch)

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
