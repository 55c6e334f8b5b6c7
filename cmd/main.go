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
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	blockDateHandler "github.com/santilopez19/TurneroPremium/internal/api/handlers/block_date"
	blockTimeSlotHandler "github.com/santilopez19/TurneroPremium/internal/api/handlers/block_time_slot"
	cancelAppointmentHandler "github.com/santilopez19/TurneroPremium/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/santilopez19/TurneroPremium/internal/api/handlers/create_appointment"
	exportAppointmentsHandler "github.com/santilopez19/TurneroPremium/internal/api/handlers/export_appointments"
	getAdminAvailabilityHandler "github.com/santilopez19/TurneroPremium/internal/api/handlers/get_admin_availability"
	getAppointmentByTokenHandler "github.com/santilopez19/TurneroPremium/internal/api/handlers/get_appointment_by_token"
	getAvailabilityHandler "github.com/santilopez19/TurneroPremium/internal/api/handlers/get_availability"
	getBusinessConfigHandler "github.com/santilopez19/TurneroPremium/internal/api/handlers/get_business_config"
	"github.com/santilopez19/TurneroPremium/internal/api/handlers/health"
	listAppointmentsHandler "github.com/santilopez19/TurneroPremium/internal/api/handlers/list_appointments"
	listBlocksHandler "github.com/santilopez19/TurneroPremium/internal/api/handlers/list_blocks"
	loginHandler "github.com/santilopez19/TurneroPremium/internal/api/handlers/login"
	markReadyHandler "github.com/santilopez19/TurneroPremium/internal/api/handlers/mark_ready"
	runArchiveHandler "github.com/santilopez19/TurneroPremium/internal/api/handlers/run_archive"
	runRemindersHandler "github.com/santilopez19/TurneroPremium/internal/api/handlers/run_reminders"
	unblockDateHandler "github.com/santilopez19/TurneroPremium/internal/api/handlers/unblock_date"
	unblockTimeSlotHandler "github.com/santilopez19/TurneroPremium/internal/api/handlers/unblock_time_slot"
	updateBusinessConfigHandler "github.com/santilopez19/TurneroPremium/internal/api/handlers/update_business_config"
	"github.com/santilopez19/TurneroPremium/internal/api/middleware"
	"github.com/santilopez19/TurneroPremium/internal/config"
	"github.com/santilopez19/TurneroPremium/internal/domain"
	"github.com/santilopez19/TurneroPremium/internal/infra/redislock"
	adminUserRepo "github.com/santilopez19/TurneroPremium/internal/infra/storage/adminuser"
	appointmentRepo "github.com/santilopez19/TurneroPremium/internal/infra/storage/appointment"
	blockingRepo "github.com/santilopez19/TurneroPremium/internal/infra/storage/blocking"
	businessConfigRepo "github.com/santilopez19/TurneroPremium/internal/infra/storage/businessconfig"
	"github.com/santilopez19/TurneroPremium/internal/infra/storage/migrations"
	"github.com/santilopez19/TurneroPremium/internal/integrations/events"
	"github.com/santilopez19/TurneroPremium/internal/integrations/whatsapp"
	"github.com/santilopez19/TurneroPremium/internal/scheduler"
	appointmentsService "github.com/santilopez19/TurneroPremium/internal/service/appointments"
	authService "github.com/santilopez19/TurneroPremium/internal/service/auth"
	blockingService "github.com/santilopez19/TurneroPremium/internal/service/blocking"
	businessConfigService "github.com/santilopez19/TurneroPremium/internal/service/businessconfig"
	archiveAppointmentsUC "github.com/santilopez19/TurneroPremium/internal/usecase/archive_appointments"
	createAppointmentUC "github.com/santilopez19/TurneroPremium/internal/usecase/create_appointment"
	getAdminAvailabilityUC "github.com/santilopez19/TurneroPremium/internal/usecase/get_admin_availability"
	getAvailabilityUC "github.com/santilopez19/TurneroPremium/internal/usecase/get_availability"
	sendRemindersUC "github.com/santilopez19/TurneroPremium/internal/usecase/send_reminders"
	"github.com/santilopez19/TurneroPremium/pkg/authtoken"
	"github.com/santilopez19/TurneroPremium/pkg/clock"
	"github.com/santilopez19/TurneroPremium/pkg/dbmetrics"
	"github.com/santilopez19/TurneroPremium/pkg/logger"
	"github.com/santilopez19/TurneroPremium/pkg/metrics"
	"github.com/santilopez19/TurneroPremium/pkg/simpletxmanager"
	"github.com/santilopez19/TurneroPremium/pkg/tracing"
	"github.com/santilopez19/TurneroPremium/pkg/txmanager"
	"github.com/santilopez19/TurneroPremium/pkg/types"
)

// Попыток сериализуемой транзакции записи до ответа 409
const bookingTxAttempts = 3

type eventPublisher interface {
	Publish(ctx context.Context, event domain.AppointmentEvent) error
	Close() error
}

type schedulerLocker interface {
	TryLock(ctx context.Context, name string, ttl time.Duration) (func(), bool, error)
}

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.toml"
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting TurneroPremium...")
	log.Info("Configuration loaded from %s", configPath)

	loc, err := cfg.Business.Location()
	if err != nil {
		log.Fatal("Invalid business timezone %q: %v", cfg.Business.Timezone, err)
	}
	clk := clock.New(loc)

	// Трассировка
	shutdownTracing, err := tracing.Setup(context.Background(), tracing.Config{
		Enabled:      cfg.Tracing.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OTLPEndpoint: cfg.Tracing.OTLPEndpoint,
		SampleRatio:  cfg.Tracing.SampleRatio,
	})
	if err != nil {
		log.Fatal("Failed to set up tracing: %v", err)
	}

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

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if cfg.Database.AutoMigrate {
		if err := migrations.Apply(context.Background(), db, log); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	// Репозитории и менеджер транзакций (с метриками или без)
	var (
		executor  dbmetrics.DBExecutor
		txManager *txmanager.Manager
	)
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		executor = wrappedDB
		txManager = txmanager.NewTransactionManager(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		executor = db
		txManager = simpletxmanager.NewTransactionManager(db)
	}
	txManager = txManager.WithMaxAttempts(bookingTxAttempts)

	appointmentRepository := appointmentRepo.NewRepository(executor)
	blockRepository := blockingRepo.NewRepository(executor)
	configRepository := businessConfigRepo.NewRepository(executor)
	adminRepository := adminUserRepo.NewRepository(executor)

	// Интеграции
	notifier := whatsapp.NewClient(whatsapp.Config{
		AccountSID:     cfg.WhatsApp.AccountSID,
		AuthToken:      cfg.WhatsApp.AuthToken,
		From:           cfg.WhatsApp.From,
		BaseURL:        cfg.WhatsApp.BaseURL,
		Timeout:        time.Duration(cfg.WhatsApp.Timeout) * time.Second,
		RatePerSecond:  cfg.WhatsApp.RatePerSecond,
		DefaultCountry: cfg.WhatsApp.DefaultCountry,
	}, log)

	var publisher eventPublisher = events.NoopPublisher{}
	if cfg.Kafka.Enabled {
		publisher = events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, log)
		log.Info("Kafka publisher enabled (brokers=%s, topic=%s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}

	// Redis: распределенная блокировка планировщика и лимитер записи
	var (
		rdb     *redis.Client
		locker  schedulerLocker = redislock.NewLocalLocker()
		limiter middleware.Limiter
	)
	window := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
	if cfg.Redis.Enabled {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Warn("Redis ping failed, continuing (addr=%s): %v", cfg.Redis.Addr, err)
		}
		locker = redislock.NewLocker(rdb, "turnero:lock")
		limiter = middleware.NewRedisLimiter(rdb, cfg.RateLimit.Requests, window, "turnero:rl")
		log.Info("Redis enabled (addr=%s)", cfg.Redis.Addr)
	} else {
		limiter = middleware.NewLocalLimiter(cfg.RateLimit.Requests, window)
	}

	templates := domain.MessageTemplates{
		BusinessName: cfg.Business.Name,
		PublicURL:    cfg.Business.PublicURL,
		Location:     loc,
	}

	// Сервисы
	configSvc := businessConfigService.NewService(configRepository, clk, log)
	blockSvc := blockingService.NewService(blockRepository, clk, log)
	appointmentSvc := appointmentsService.NewService(appointmentRepository, txManager, notifier, publisher, clk, templates, log)

	issuer, err := authtoken.NewIssuer(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)
	if err != nil {
		log.Fatal("Failed to create token issuer: %v", err)
	}
	authSvc := authService.NewService(adminRepository, issuer, authService.Credentials{
		Email:    cfg.Auth.AdminEmail,
		Password: cfg.Auth.AdminPassword,
	}, log)
	if err := authSvc.EnsureAdmin(context.Background(), authService.Credentials{
		Email:    cfg.Auth.BootstrapEmail,
		Password: cfg.Auth.BootstrapPassword,
	}); err != nil {
		log.Error("Failed to bootstrap admin user: %v", err)
	}

	// Use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		appointmentRepository,
		blockRepository,
		configSvc,
		clk,
		cfg.Business.MinNoticeMinutes,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		getAvailabilityUseCase,
		txManager,
		publisher,
		metricsCollector,
		clk,
		log,
	)
	getAdminAvailabilityUseCase := getAdminAvailabilityUC.NewUseCase(
		appointmentRepository,
		blockRepository,
		configSvc,
		txManager,
		clk,
		log,
	)
	sendRemindersUseCase := sendRemindersUC.NewUseCase(
		appointmentRepository,
		notifier,
		metricsCollector,
		clk,
		templates,
		log,
	)
	archiveUseCase := archiveAppointmentsUC.NewUseCase(appointmentRepository, metricsCollector, clk, log)

	// Фоновые задачи
	var jobs *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		archiveAt, err := types.NewTimeStringFromString(cfg.Scheduler.ArchiveAt)
		if err != nil {
			log.Fatal("Invalid scheduler.archive_at %q: %v", cfg.Scheduler.ArchiveAt, err)
		}
		jobs = scheduler.New(scheduler.Config{
			ReminderInterval: time.Duration(cfg.Scheduler.ReminderIntervalMinute) * time.Minute,
			ArchiveAt:        archiveAt,
			RunTimeout:       time.Duration(cfg.Scheduler.RunTimeout) * time.Second,
			LockTTL:          time.Duration(cfg.Scheduler.LockTTL) * time.Second,
		}, sendRemindersUseCase, archiveUseCase, locker, clk, log)
		jobs.Start()
		log.Info("Scheduler started (reminders every %d min, archive at %s)",
			cfg.Scheduler.ReminderIntervalMinute, archiveAt)
	}

	// Handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointmentByToken := getAppointmentByTokenHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	login := loginHandler.NewHandler(authSvc, log)
	runReminders := runRemindersHandler.NewHandler(sendRemindersUseCase, log)
	runArchive := runArchiveHandler.NewHandler(archiveUseCase, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentSvc, log)
	exportAppointments := exportAppointmentsHandler.NewHandler(appointmentSvc, log)
	markReady := markReadyHandler.NewHandler(appointmentSvc, log)
	getBusinessConfig := getBusinessConfigHandler.NewHandler(configSvc, log)
	updateBusinessConfig := updateBusinessConfigHandler.NewHandler(configSvc, log)
	listBlocks := listBlocksHandler.NewHandler(blockSvc, log)
	blockDate := blockDateHandler.NewHandler(blockSvc, log)
	unblockDate := unblockDateHandler.NewHandler(blockSvc, log)
	blockTimeSlot := blockTimeSlotHandler.NewHandler(blockSvc, log)
	unblockTimeSlot := unblockTimeSlotHandler.NewHandler(blockSvc, log)
	getAdminAvailability := getAdminAvailabilityHandler.NewHandler(getAdminAvailabilityUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	var createHandler http.Handler = http.HandlerFunc(createAppointment.Handle)
	if cfg.RateLimit.Enabled {
		createHandler = middleware.RateLimit(limiter, cfg.RateLimit.FailOpen, log)(createHandler)
		log.Info("Rate limit on booking: %d requests per %s", cfg.RateLimit.Requests, window)
	}
	api.Handle("/appointments", createHandler).Methods(http.MethodPost)

	api.HandleFunc("/appointments/cancel/{token}", getAppointmentByToken.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/cancel/{token}", cancelAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// Внешний cron с общим секретом
	api.Handle("/run-reminders",
		middleware.WebhookKey(cfg.Reminders.WebhookKey, log)(http.HandlerFunc(runReminders.Handle)),
	).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (Authorization: Bearer <token>)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth(authSvc, log))

	// --- Записи ---
	admin.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/export", exportAppointments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{id}/ready", markReady.Handle).Methods(http.MethodPost)

	// --- Расписание ---
	admin.HandleFunc("/business-config", getBusinessConfig.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/business-config", updateBusinessConfig.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/availability", getAdminAvailability.Handle).Methods(http.MethodGet)

	// --- Блокировки ---
	admin.HandleFunc("/blocks", listBlocks.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/blocked-dates", blockDate.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/blocked-dates/{date}", unblockDate.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/blocked-time-slots", blockTimeSlot.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/blocked-time-slots/{date}/{time}", unblockTimeSlot.Handle).Methods(http.MethodDelete)

	// --- Ручной запуск фоновых задач ---
	admin.HandleFunc("/run-reminders", runReminders.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/run-archive", runArchive.Handle).Methods(http.MethodPost)

	// CORS оборачивает весь роутер, иначе preflight OPTIONS не находит маршрут
	var handler http.Handler = middleware.CORS(cfg.CORS.AllowedOrigins)(r)
	if cfg.Tracing.Enabled {
		handler = otelhttp.NewHandler(handler, cfg.Metrics.ServiceName)
	}

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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

	if jobs != nil {
		jobs.Stop()
		log.Info("Scheduler stopped")
	}

	if err := publisher.Close(); err != nil {
		log.Error("Failed to close event publisher: %v", err)
	}

	if rdb != nil {
		if err := rdb.Close(); err != nil {
			log.Error("Failed to close redis client: %v", err)
		}
	}

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("Failed to flush traces: %v", err)
	}

	log.Info("Server stopped gracefully")
}
