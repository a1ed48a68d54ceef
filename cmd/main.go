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

	addScheduleBlockHandler "github.com/m04kA/SMC-ConsultationService/internal/api/handlers/add_schedule_block"
	cancelBookingHandler "github.com/m04kA/SMC-ConsultationService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-ConsultationService/internal/api/handlers/create_booking"
	createProfileHandler "github.com/m04kA/SMC-ConsultationService/internal/api/handlers/create_profile"
	deleteScheduleBlockHandler "github.com/m04kA/SMC-ConsultationService/internal/api/handlers/delete_schedule_block"
	getAvailableSlotsHandler "github.com/m04kA/SMC-ConsultationService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-ConsultationService/internal/api/handlers/get_booking"
	getMyScheduleHandler "github.com/m04kA/SMC-ConsultationService/internal/api/handlers/get_my_schedule"
	getProfessorHandler "github.com/m04kA/SMC-ConsultationService/internal/api/handlers/get_professor"
	getProfessorBookingsHandler "github.com/m04kA/SMC-ConsultationService/internal/api/handlers/get_professor_bookings"
	getProfileHandler "github.com/m04kA/SMC-ConsultationService/internal/api/handlers/get_profile"
	getStudentBookingsHandler "github.com/m04kA/SMC-ConsultationService/internal/api/handlers/get_student_bookings"
	getTimeGridHandler "github.com/m04kA/SMC-ConsultationService/internal/api/handlers/get_time_grid"
	listProfessorsHandler "github.com/m04kA/SMC-ConsultationService/internal/api/handlers/list_professors"
	reviewBookingHandler "github.com/m04kA/SMC-ConsultationService/internal/api/handlers/review_booking"
	updateProfileHandler "github.com/m04kA/SMC-ConsultationService/internal/api/handlers/update_profile"
	updateScheduleBlockHandler "github.com/m04kA/SMC-ConsultationService/internal/api/handlers/update_schedule_block"
	"github.com/m04kA/SMC-ConsultationService/internal/api/middleware"
	"github.com/m04kA/SMC-ConsultationService/internal/config"
	"github.com/m04kA/SMC-ConsultationService/internal/infra/cache"
	bookingRepo "github.com/m04kA/SMC-ConsultationService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ConsultationService/internal/infra/storage/migrations"
	profileRepo "github.com/m04kA/SMC-ConsultationService/internal/infra/storage/profile"
	scheduleRepo "github.com/m04kA/SMC-ConsultationService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-ConsultationService/internal/integrations/mailer"
	notificationClient "github.com/m04kA/SMC-ConsultationService/internal/integrations/notificationservice"
	bookingsService "github.com/m04kA/SMC-ConsultationService/internal/service/bookings"
	profilesService "github.com/m04kA/SMC-ConsultationService/internal/service/profiles"
	schedulesService "github.com/m04kA/SMC-ConsultationService/internal/service/schedules"
	createBookingUC "github.com/m04kA/SMC-ConsultationService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-ConsultationService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-ConsultationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ConsultationService/pkg/logger"
	"github.com/m04kA/SMC-ConsultationService/pkg/metrics"
	"github.com/m04kA/SMC-ConsultationService/pkg/readretry"
	"github.com/m04kA/SMC-ConsultationService/pkg/txmanager"
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

	log.Info("Starting SMC-ConsultationService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены). nil-коллектор молча игнорирует вызовы.
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

	// Применяем миграции
	if cfg.Database.MigrateOnStart {
		migrator, err := migrations.NewMigrator(db, log)
		if err != nil {
			log.Fatal("Failed to initialize migrator: %v", err)
		}
		if err := migrator.Up(context.Background()); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	// Обёртка над БД замеряет запросы; без метрик работает как прокси
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	profileRepository := profileRepo.NewRepository(wrappedDB)
	scheduleRepository := scheduleRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)

	// Кэш видимого расписания
	var scheduleCache schedulesService.ScheduleCache = cache.Nop{}
	if cfg.Cache.Enabled {
		redisCache, err := cache.NewScheduleCache(context.Background(), cache.Config{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
			TTL:      time.Duration(cfg.Cache.TTLSeconds) * time.Second,
		})
		if err != nil {
			// Без кэша сервис продолжает работать напрямую с БД
			log.Warn("Schedule cache disabled: %v", err)
		} else {
			defer redisCache.Close()
			scheduleCache = redisCache
			log.Info("Schedule cache connected (addr=%s, ttl=%ds)", cfg.Cache.Addr, cfg.Cache.TTLSeconds)
		}
	}

	// Сетка времени и часовой пояс уже проверены при загрузке конфигурации
	grid, err := cfg.BuildGrid()
	if err != nil {
		log.Fatal("Invalid time grid: %v", err)
	}
	location, err := cfg.Location()
	if err != nil {
		log.Fatal("Invalid timezone: %v", err)
	}
	log.Info("Time grid %s-%s every %d minutes, timezone %s",
		cfg.Grid.Start, cfg.Grid.End, cfg.Grid.IntervalMinutes, location)

	readPolicy := readretry.Policy{
		MaxRetries: cfg.Database.ReadRetries,
		BaseDelay:  time.Duration(cfg.Database.ReadRetryBaseMS) * time.Millisecond,
	}

	// Уведомления о новых запросах
	var notifier createBookingUC.Notifier
	notifyTimeout := time.Duration(cfg.Notification.Timeout) * time.Second
	switch cfg.Notification.Mode {
	case config.NotificationHTTP:
		notifier = notificationClient.NewClient(cfg.Notification.URL, cfg.Notification.APIKey, notifyTimeout, log)
		log.Info("Notifications via HTTP (url=%s, timeout=%ds)", cfg.Notification.URL, cfg.Notification.Timeout)
	case config.NotificationSMTP:
		notifier = mailer.New(mailer.Config{
			Host:     cfg.Notification.SMTP.Host,
			Port:     cfg.Notification.SMTP.Port,
			Username: cfg.Notification.SMTP.Username,
			Password: cfg.Notification.SMTP.Password,
			From:     cfg.Notification.SMTP.From,
			AppURL:   cfg.Notification.SMTP.AppURL,
		}, bookingRepository, log)
		log.Info("Notifications via SMTP (host=%s:%d)", cfg.Notification.SMTP.Host, cfg.Notification.SMTP.Port)
	default:
		log.Info("Notifications disabled")
	}

	// Инициализируем сервисы
	profileSvc := profilesService.NewService(profileRepository, txMgr, readPolicy, log)
	scheduleSvc := schedulesService.NewService(
		scheduleRepository,
		profileRepository,
		scheduleCache,
		grid,
		readPolicy,
		log,
	)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		profileRepository,
		metricsCollector,
		readPolicy,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		profileRepository,
		notifier,
		txMgr,
		metricsCollector,
		grid,
		createBookingUC.Config{
			HorizonWeekdays: cfg.Booking.HorizonWeekdays,
			Location:        location,
			NotifyTimeout:   notifyTimeout,
		},
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		profileRepository,
		scheduleSvc,
		grid,
		getAvailableSlotsUC.Config{
			HorizonWeekdays: cfg.Booking.HorizonWeekdays,
			Location:        location,
		},
		log,
	)

	// Инициализируем handlers
	getTimeGrid := getTimeGridHandler.NewHandler(scheduleSvc, log)
	listProfessors := listProfessorsHandler.NewHandler(profileSvc, log)
	getProfessor := getProfessorHandler.NewHandler(profileSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)

	createProfile := createProfileHandler.NewHandler(profileSvc, log)
	getProfile := getProfileHandler.NewHandler(profileSvc, log)
	updateProfile := updateProfileHandler.NewHandler(profileSvc, log)

	getMySchedule := getMyScheduleHandler.NewHandler(scheduleSvc, log)
	addScheduleBlock := addScheduleBlockHandler.NewHandler(scheduleSvc, log)
	updateScheduleBlock := updateScheduleBlockHandler.NewHandler(scheduleSvc, log)
	deleteScheduleBlock := deleteScheduleBlockHandler.NewHandler(scheduleSvc, log)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	reviewBooking := reviewBookingHandler.NewHandler(bookingSvc, log)
	getStudentBookings := getStudentBookingsHandler.NewHandler(bookingSvc, log)
	getProfessorBookings := getProfessorBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Сетка времени учебного заведения
	api.HandleFunc("/time-grid", getTimeGrid.Handle).Methods(http.MethodGet)

	// Каталог преподавателей
	api.HandleFunc("/professors", listProfessors.Handle).Methods(http.MethodGet)
	api.HandleFunc("/professors/{professorId}", getProfessor.Handle).Methods(http.MethodGet)

	// Расписание преподавателя и свободные слоты
	api.HandleFunc("/professors/{professorId}/schedule", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	if cfg.Auth.AllowHeader {
		log.Warn("X-User-ID header authentication is enabled, do not use in production")
	}

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(middleware.AuthConfig{
		JWTSecret:   cfg.Auth.JWTSecret,
		AllowHeader: cfg.Auth.AllowHeader,
	}, log))

	// --- Профили ---
	protected.HandleFunc("/profiles", createProfile.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/profiles/me", getProfile.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/profiles/me", updateProfile.Handle).Methods(http.MethodPatch)

	// --- Расписание преподавателя ---
	protected.HandleFunc("/schedule", getMySchedule.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/schedule", addScheduleBlock.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/schedule/{blockId}", updateScheduleBlock.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/schedule/{blockId}", deleteScheduleBlock.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/confirm", reviewBooking.HandleConfirm).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/decline", reviewBooking.HandleDecline).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История студента и запросы преподавателя
	protected.HandleFunc("/students/me/bookings", getStudentBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/professors/me/bookings", getProfessorBookings.Handle).Methods(http.MethodGet)

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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Дожидаемся отправки уведомлений, запущенных до остановки
	createBookingUseCase.Wait()

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	log.Info("Server stopped gracefully")
}
