package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/hibiken/asynq"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	acceptTermsHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/accept_terms"
	cancelBookingHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/check_availability"
	createBookingHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/create_booking"
	createRoomHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/create_room"
	createRoomBlockHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/create_room_block"
	createUserHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/create_user"
	deleteAvatarHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/delete_avatar"
	deleteRoomHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/delete_room"
	deleteRoomBlockHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/delete_room_block"
	extendBookingHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/extend_booking"
	getAnalyticsHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/get_analytics"
	getBookingHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/get_booking"
	getMyBookingsHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/get_my_bookings"
	getProfileHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/get_profile"
	getRoomHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/get_room"
	getSettingsHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/get_settings"
	getTimelineHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/get_timeline"
	listRoomBlocksHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/list_room_blocks"
	listRoomsHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/list_rooms"
	listUsersHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/list_users"
	sendBookingEmailHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/send_booking_email"
	subscribeBookingsHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/subscribe_bookings"
	updateProfileHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/update_profile"
	updateRoomHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/update_room"
	updateSettingsHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/update_settings"
	updateUserAccessHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/update_user_access"
	uploadAvatarHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/upload_avatar"
	uploadRoomImageHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/upload_room_image"
	"github.com/m04kA/SMC-RoomBooking/internal/api/middleware"
	"github.com/m04kA/SMC-RoomBooking/internal/config"
	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/infra/blob"
	"github.com/m04kA/SMC-RoomBooking/internal/infra/notify"
	"github.com/m04kA/SMC-RoomBooking/internal/infra/queue"
	bookingRepo "github.com/m04kA/SMC-RoomBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-RoomBooking/internal/infra/storage/migrations"
	permissionRepo "github.com/m04kA/SMC-RoomBooking/internal/infra/storage/permission"
	profileRepo "github.com/m04kA/SMC-RoomBooking/internal/infra/storage/profile"
	roomRepo "github.com/m04kA/SMC-RoomBooking/internal/infra/storage/room"
	roomBlockRepo "github.com/m04kA/SMC-RoomBooking/internal/infra/storage/roomblock"
	settingsRepo "github.com/m04kA/SMC-RoomBooking/internal/infra/storage/settings"
	"github.com/m04kA/SMC-RoomBooking/internal/integrations/authadmin"
	"github.com/m04kA/SMC-RoomBooking/internal/integrations/email"
	accessService "github.com/m04kA/SMC-RoomBooking/internal/service/access"
	analyticsService "github.com/m04kA/SMC-RoomBooking/internal/service/analytics"
	"github.com/m04kA/SMC-RoomBooking/internal/service/availability"
	blocksService "github.com/m04kA/SMC-RoomBooking/internal/service/blocks"
	bookingsService "github.com/m04kA/SMC-RoomBooking/internal/service/bookings"
	profilesService "github.com/m04kA/SMC-RoomBooking/internal/service/profiles"
	"github.com/m04kA/SMC-RoomBooking/internal/service/realtime"
	roomsService "github.com/m04kA/SMC-RoomBooking/internal/service/rooms"
	settingsService "github.com/m04kA/SMC-RoomBooking/internal/service/settings"
	"github.com/m04kA/SMC-RoomBooking/internal/service/timeline"
	checkAvailabilityUC "github.com/m04kA/SMC-RoomBooking/internal/usecase/check_availability"
	createBookingUC "github.com/m04kA/SMC-RoomBooking/internal/usecase/create_booking"
	createUserUC "github.com/m04kA/SMC-RoomBooking/internal/usecase/create_user"
	extendBookingUC "github.com/m04kA/SMC-RoomBooking/internal/usecase/extend_booking"
	getTimelineUC "github.com/m04kA/SMC-RoomBooking/internal/usecase/get_timeline"
	sendBookingEmailUC "github.com/m04kA/SMC-RoomBooking/internal/usecase/send_booking_email"
	"github.com/m04kA/SMC-RoomBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-RoomBooking/pkg/logger"
	"github.com/m04kA/SMC-RoomBooking/pkg/metrics"
	"github.com/m04kA/SMC-RoomBooking/pkg/telemetry"
	"github.com/m04kA/SMC-RoomBooking/pkg/txmanager"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	flag.Parse()
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		*configPath = v
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	logLevel := cfg.Logs.Level
	if cfg.Server.Development {
		logLevel = "debug"
	}
	log, err := logger.New(cfg.Logs.File, logLevel)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-RoomBooking...")
	log.Info("Configuration loaded from %s", *configPath)

	loc, err := cfg.Timeline.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.Timeline.Timezone, err)
	}

	// Трассировка (пустой endpoint отключает)
	shutdownTracing := telemetry.Setup(cfg.Metrics.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.Insecure, log)

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

	if cfg.Database.AutoMigrate {
		version, err := migrations.Up(db)
		if err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Database schema at version %d", version)
	}

	// Без метрик обёртка просто проксирует запросы
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	roomRepository := roomRepo.NewRepository(wrappedDB)
	roomBlockRepository := roomBlockRepo.NewRepository(wrappedDB)
	profileRepository := profileRepo.NewRepository(wrappedDB)
	permissionRepository := permissionRepo.NewRepository(wrappedDB)
	settingsRepository := settingsRepo.NewRepository(wrappedDB)

	// Инициализируем интеграционных клиентов
	authClient := authadmin.NewClient(
		cfg.AuthAdmin.URL,
		cfg.AuthAdmin.ServiceKey,
		time.Duration(cfg.AuthAdmin.Timeout)*time.Second,
		log,
	)
	emailClient := email.NewClient(
		cfg.Email.APIURL,
		cfg.Email.APIKey,
		time.Duration(cfg.Email.Timeout)*time.Second,
	)
	if !cfg.Email.Enabled() {
		log.Warn("Email provider is not configured, confirmations will be skipped")
	}

	objectStorage := blob.NewStorage(blob.NewS3Client(cfg.Storage), cfg.Storage.PublicURL, cfg.Storage.MaxUploadMB)

	// Инициализируем сервисы
	settingsSvc := settingsService.NewService(settingsRepository, txMgr, log)
	availabilityValidator := availability.NewValidator(bookingRepository, roomBlockRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, &bookingsService.RealTimeProvider{}, log)
	roomSvc := roomsService.NewService(roomRepository, objectStorage, cfg.Storage.RoomsBucket, log)
	blockSvc := blocksService.NewService(roomBlockRepository, roomRepository, availabilityValidator, txMgr, log)
	profileSvc := profilesService.NewService(
		profileRepository,
		permissionRepository,
		objectStorage,
		cfg.Storage.AvatarsBucket,
		txMgr,
		log,
	)
	accessSvc := accessService.NewService(profileRepository, permissionRepository)

	// Инициализируем use cases
	getTimelineUseCase, err := getTimelineUC.NewUseCase(
		roomSvc,
		bookingSvc,
		blockSvc,
		timeline.Config{
			DayStart:    cfg.Timeline.DayStart,
			DayEnd:      cfg.Timeline.DayEnd,
			SlotMinutes: cfg.Timeline.SlotMinutes,
		},
		loc,
		log,
	)
	if err != nil {
		log.Fatal("Failed to build timeline grid: %v", err)
	}
	slots := getTimelineUseCase.Slots()
	log.Info("Timeline grid: %d slots from %s to %s", len(slots), cfg.Timeline.DayStart, cfg.Timeline.DayEnd)

	dayLength := time.Duration(len(slots)*cfg.Timeline.SlotMinutes) * time.Minute
	analyticsSvc := analyticsService.NewService(bookingRepository, roomRepository, dayLength, &analyticsService.RealTimeProvider{}, log)

	sendBookingEmailUseCase := sendBookingEmailUC.NewUseCase(
		emailClient,
		bookingRepository,
		metricsCollector,
		cfg.Email.From,
		loc,
		log,
	)

	// Подтверждения уходят через очередь, без Redis отправляются фоновой горутиной
	var (
		notifier    createBookingUC.ConfirmationNotifier
		queueClient *asynq.Client
		queueServer *asynq.Server
	)
	if cfg.Queue.Enabled {
		queueClient = asynq.NewClient(queue.RedisOpt(cfg.Queue))
		notifier = queue.NewClient(queueClient, cfg.Queue.MaxRetry)

		queueServer = queue.NewServer(cfg.Queue, log)
		if err := queueServer.Start(queue.NewServeMux(sendBookingEmailUseCase, log)); err != nil {
			log.Fatal("Failed to start queue worker: %v", err)
		}
		log.Info("Email queue enabled (redis=%s, concurrency=%d)", cfg.Queue.RedisAddr, cfg.Queue.Concurrency)
	} else {
		notifier = sendBookingEmailUC.NewInlineNotifier(
			sendBookingEmailUseCase,
			time.Duration(cfg.Email.Timeout)*time.Second,
			log,
		)
		log.Info("Email queue disabled, confirmations are sent inline")
	}

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		roomRepository,
		settingsSvc,
		availabilityValidator,
		notifier,
		txMgr,
		metricsCollector,
		loc,
		log,
	)
	extendBookingUseCase := extendBookingUC.NewUseCase(
		bookingRepository,
		settingsSvc,
		availabilityValidator,
		txMgr,
		metricsCollector,
		loc,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(availabilityValidator, slots, loc, log)
	createUserUseCase := createUserUC.NewUseCase(profileRepository, authClient, log)

	// Realtime: LISTEN/NOTIFY -> hub -> websocket подписчики
	ctx, cancelBackground := context.WithCancel(context.Background())
	defer cancelBackground()

	hub := realtime.NewHub(realtime.NewDayLoader(bookingSvc, blockSvc), loc, metricsCollector, log)
	go hub.Run(ctx)

	listener := notify.NewListener(
		cfg.Database.DSN(),
		time.Duration(cfg.Realtime.MinReconnectInterval)*time.Second,
		time.Duration(cfg.Realtime.MaxReconnectInterval)*time.Second,
		log,
	)
	go func() {
		if err := listener.Run(ctx, hub.Publish); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("Realtime listener stopped: %v", err)
		}
	}()

	// Инициализируем handlers
	maxUpload := objectStorage.MaxBytes()

	listRooms := listRoomsHandler.NewHandler(roomSvc, log)
	getRoom := getRoomHandler.NewHandler(roomSvc, log)
	createRoom := createRoomHandler.NewHandler(roomSvc, log)
	updateRoom := updateRoomHandler.NewHandler(roomSvc, log)
	deleteRoom := deleteRoomHandler.NewHandler(roomSvc, log)
	uploadRoomImage := uploadRoomImageHandler.NewHandler(roomSvc, maxUpload, log)

	listRoomBlocks := listRoomBlocksHandler.NewHandler(blockSvc, loc, log)
	createRoomBlock := createRoomBlockHandler.NewHandler(blockSvc, log)
	deleteRoomBlock := deleteRoomBlockHandler.NewHandler(blockSvc, log)

	getTimeline := getTimelineHandler.NewHandler(getTimelineUseCase, loc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, loc, log)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getMyBookings := getMyBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	extendBooking := extendBookingHandler.NewHandler(extendBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	subscribeBookings := subscribeBookingsHandler.NewHandler(
		func(conn *websocket.Conn, sub *realtime.Subscriber) {
			realtime.Serve(hub, conn, sub, log)
		},
		cfg.Server.AllowedOrigins,
		loc,
		log,
	)

	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)

	getProfile := getProfileHandler.NewHandler(profileSvc, log)
	updateProfile := updateProfileHandler.NewHandler(profileSvc, log)
	acceptTerms := acceptTermsHandler.NewHandler(profileSvc, log)
	uploadAvatar := uploadAvatarHandler.NewHandler(profileSvc, maxUpload, log)
	deleteAvatar := deleteAvatarHandler.NewHandler(profileSvc, log)

	listUsers := listUsersHandler.NewHandler(profileSvc, log)
	updateUserAccess := updateUserAccessHandler.NewHandler(profileSvc, log)
	getAnalytics := getAnalyticsHandler.NewHandler(analyticsSvc, log)

	createUser := createUserHandler.NewHandler(createUserUseCase, log)
	sendBookingEmail := sendBookingEmailHandler.NewHandler(sendBookingEmailUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recover(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			handlers.RespondError(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// FUNCTIONS (только bearer токен, роль проверяется внутри)
	// ============================================================

	functions := api.PathPrefix("/functions").Subrouter()
	functions.Use(middleware.Auth(middleware.NewTokenVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer)))

	functions.HandleFunc("/create-user", createUser.Handle).Methods(http.MethodPost)
	functions.HandleFunc("/send-booking-email", sendBookingEmail.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (bearer токен + роль и права из профиля)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(middleware.NewTokenVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer)))
	protected.Use(middleware.LoadAccess(accessSvc, log))

	// requires оборачивает handler проверкой права
	requires := func(p domain.Permission, h http.HandlerFunc) http.Handler {
		return middleware.RequirePermission(p)(h)
	}

	// --- Комнаты ---
	protected.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)
	protected.Handle("/rooms", requires(domain.PermManageRooms, createRoom.Handle)).Methods(http.MethodPost)
	protected.HandleFunc("/rooms/{roomId}", getRoom.Handle).Methods(http.MethodGet)
	protected.Handle("/rooms/{roomId}", requires(domain.PermManageRooms, updateRoom.Handle)).Methods(http.MethodPut)
	protected.Handle("/rooms/{roomId}", requires(domain.PermManageRooms, deleteRoom.Handle)).Methods(http.MethodDelete)
	protected.Handle("/rooms/{roomId}/image", requires(domain.PermManageRooms, uploadRoomImage.Handle)).Methods(http.MethodPost)

	// --- Блокировки на обслуживание ---
	protected.HandleFunc("/rooms/{roomId}/blocks", listRoomBlocks.Handle).Methods(http.MethodGet)
	protected.Handle("/rooms/{roomId}/blocks",
		requires(domain.PermBlockRoomMaintenance, createRoomBlock.Handle)).Methods(http.MethodPost)
	protected.Handle("/blocks/{blockId}",
		requires(domain.PermBlockRoomMaintenance, deleteRoomBlock.Handle)).Methods(http.MethodDelete)

	// --- Расписание ---
	protected.HandleFunc("/timeline", getTimeline.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	// Статические пути регистрируются раньше /bookings/{bookingId}
	protected.Handle("/bookings", requires(domain.PermBookRoom, createBooking.Handle)).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/my", getMyBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/subscribe", subscribeBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.Handle("/bookings/{bookingId}/extend",
		requires(domain.PermBookRoom, extendBooking.Handle)).Methods(http.MethodPatch)
	// Своё или чужое бронирование решает сервис
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPost)

	// --- Настройки ---
	protected.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	protected.Handle("/settings", requires(domain.PermManageSettings, updateSettings.Handle)).Methods(http.MethodPut)

	// --- Профиль ---
	protected.HandleFunc("/profile", getProfile.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/profile", updateProfile.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/profile/terms", acceptTerms.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/profile/avatar", uploadAvatar.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/profile/avatar", deleteAvatar.Handle).Methods(http.MethodDelete)

	// --- Администрирование ---
	protected.Handle("/users", requires(domain.PermManageUsers, listUsers.Handle)).Methods(http.MethodGet)
	protected.Handle("/users/{userId}/access",
		requires(domain.PermManageUsers, updateUserAccess.Handle)).Methods(http.MethodPut)
	protected.Handle("/analytics", requires(domain.PermViewAnalytics, getAnalytics.Handle)).Methods(http.MethodGet)

	// CORS и трассировка поверх роутера
	var rootHandler http.Handler = gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(cfg.Server.AllowedOrigins),
		gorillaHandlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		}),
		gorillaHandlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
	)(r)
	if cfg.Tracing.Endpoint != "" {
		rootHandler = otelhttp.NewHandler(rootHandler, cfg.Metrics.ServiceName)
	}

	// Создаем HTTP сервер
	// WriteTimeout не действует на websocket после hijack
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      rootHandler,
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

	// Останавливаем realtime и очередь
	cancelBackground()
	if queueServer != nil {
		queueServer.Shutdown()
	}
	if queueClient != nil {
		if err := queueClient.Close(); err != nil {
			log.Warn("Failed to close queue client: %v", err)
		}
	}

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Warn("Tracing shutdown error: %v", err)
	}

	log.Info("Server stopped gracefully")
}
