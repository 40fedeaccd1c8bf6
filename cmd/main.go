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

	createBookingHandler "github.com/m04kA/EXP-BookingService/internal/api/handlers/create_booking"
	getBookingHandler "github.com/m04kA/EXP-BookingService/internal/api/handlers/get_booking"
	getExperienceHandler "github.com/m04kA/EXP-BookingService/internal/api/handlers/get_experience"
	listExperiencesHandler "github.com/m04kA/EXP-BookingService/internal/api/handlers/list_experiences"
	validatePromoHandler "github.com/m04kA/EXP-BookingService/internal/api/handlers/validate_promo"
	"github.com/m04kA/EXP-BookingService/internal/api/middleware"
	"github.com/m04kA/EXP-BookingService/internal/config"
	bookingRepo "github.com/m04kA/EXP-BookingService/internal/infra/storage/booking"
	experienceRepo "github.com/m04kA/EXP-BookingService/internal/infra/storage/experience"
	promoRepo "github.com/m04kA/EXP-BookingService/internal/infra/storage/promo"
	slotRepo "github.com/m04kA/EXP-BookingService/internal/infra/storage/slot"
	bookingsService "github.com/m04kA/EXP-BookingService/internal/service/bookings"
	experiencesService "github.com/m04kA/EXP-BookingService/internal/service/experiences"
	createBookingUC "github.com/m04kA/EXP-BookingService/internal/usecase/create_booking"
	validatePromoUC "github.com/m04kA/EXP-BookingService/internal/usecase/validate_promo"
	"github.com/m04kA/EXP-BookingService/pkg/dbmetrics"
	"github.com/m04kA/EXP-BookingService/pkg/logger"
	"github.com/m04kA/EXP-BookingService/pkg/metrics"
	"github.com/m04kA/EXP-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/EXP-BookingService/pkg/txmanager"
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

	log.Info("Starting EXP-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	lockTimeout := time.Duration(cfg.Database.LockTimeoutMS) * time.Millisecond

	// Интерфейс для transaction manager (используется в usecase создания бронирования)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		slotRepository       *slotRepo.Repository
		experienceRepository *experienceRepo.Repository
		promoRepository      *promoRepo.Repository
		bookingRepository    *bookingRepo.Repository
		txMgr                TxManager
		bookingMetrics       createBookingUC.Metrics = createBookingUC.NopMetrics{}
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		slotRepository = slotRepo.NewRepository(wrappedDB)
		experienceRepository = experienceRepo.NewRepository(wrappedDB)
		promoRepository = promoRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB, lockTimeout)
		bookingMetrics = metricsCollector
	} else {
		slotRepository = slotRepo.NewRepository(db)
		experienceRepository = experienceRepo.NewRepository(db)
		promoRepository = promoRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db, lockTimeout)
	}

	// Инициализируем сервисы
	experiencesSvc := experiencesService.NewService(experienceRepository, slotRepository, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		slotRepository,
		experienceRepository,
		promoRepository,
		bookingRepository,
		txMgr,
		bookingMetrics,
		log,
	)

	validatePromoUseCase := validatePromoUC.NewUseCase(promoRepository, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	validatePromo := validatePromoHandler.NewHandler(validatePromoUseCase, log)
	listExperiences := listExperiencesHandler.NewHandler(experiencesSvc, log)
	getExperience := getExperienceHandler.NewHandler(experiencesSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Каталог впечатлений
	api.HandleFunc("/experiences", listExperiences.Handle).Methods(http.MethodGet)
	api.HandleFunc("/experiences/{experienceId}", getExperience.Handle).Methods(http.MethodGet)

	// Бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{referenceId}", getBooking.Handle).Methods(http.MethodGet)

	// Проверка промокода (информационный endpoint для UI)
	api.HandleFunc("/promo/validate", validatePromo.Handle).Methods(http.MethodPost)

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
