package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctorsportal/config"
	"doctorsportal/cron"
	"doctorsportal/database"
	"doctorsportal/database/repository"
	catalogRepo "doctorsportal/database/repository/catalog"
	"doctorsportal/handlers"
	"doctorsportal/middleware"
	"doctorsportal/routes"
	"doctorsportal/services/availability"
	"doctorsportal/services/booking"
	"doctorsportal/services/catalog"
	"doctorsportal/services/doctor"
	"doctorsportal/services/payment"
	"doctorsportal/services/tasks"
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	if err := cfg.Validate(); err != nil {
		if config.IsProduction() {
			logger.Fatal("main: invalid configuration", zap.Error(err))
		}
		logger.Warn("main: invalid configuration, /jwt and protected routes will fail", zap.Error(err))
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := database.InitDB(); err != nil {
		logger.Fatal("main: failed to connect to MongoDB", zap.Error(err))
	}
	repos := repository.NewMongoRepositories(database.Database(), cfg.StoreTimeout)

	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), 30*time.Second)
	if err := repos.EnsureIndexes(indexCtx, cfg.EnforceSlotUniqueness); err != nil {
		// Existing duplicate data blocks unique indexes; serve anyway and surface it.
		logger.Warn("main: failed to ensure indexes", zap.Error(err))
	}
	cancelIndexes()

	// The cache is optional: without Redis the catalog is read from MongoDB directly.
	var catalogStore catalogRepo.CatalogRepository = repos.Catalog
	if err := utils.InitCache(); err != nil {
		logger.Warn("main: Redis cache unavailable, continuing without it", zap.Error(err))
	} else {
		catalogStore = catalogRepo.NewCachedCatalogRepo(repos.Catalog, utils.CacheClient, cfg.CatalogCacheTTL, logger)
	}

	redisOpts := asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisQueueDB,
	}
	taskClient := asynq.NewClient(redisOpts)
	defer taskClient.Close()
	worker := cron.InitReminderWorker(redisOpts, repos.Bookings, logger)

	// services.
	tokens := utils.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	userService := user.NewUserService(repos.Users, tokens, logger)
	userService.Cache = utils.CacheClient
	availabilityService := availability.NewAvailabilityService(catalogStore, repos.Bookings, logger)
	catalogService := catalog.NewCatalogService(catalogStore, logger)
	reminders := tasks.NewAsynqReminderScheduler(taskClient, cfg.PaymentReminderDelay, logger)
	bookingService := booking.NewBookingService(repos.Bookings, reminders, logger, cfg.EnforceSlotUniqueness)
	doctorService := doctor.NewDoctorService(repos.Doctors, logger)
	paymentService := payment.NewPaymentService(
		payment.NewStripeGateway(cfg.StripeKey),
		repos.Payments,
		repos.Bookings,
		cfg.PaymentCurrency,
		logger,
	)

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	monitor := utils.NewHealthMonitor(utils.CacheClient, database.MongoClient)
	monitor.Start(monitorCtx, utils.HealthCheckInterval)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Availability: handlers.NewAvailabilityHandler(availabilityService, catalogService, cfg.DateLayout),
		Booking:      handlers.NewBookingHandler(bookingService, cfg.DateLayout),
		User:         handlers.NewUserHandler(userService),
		Doctor:       handlers.NewDoctorHandler(doctorService),
		Payment:      handlers.NewPaymentHandler(paymentService),
		Health:       handlers.NewHealthHandler(monitor),
		RequireAuth:  middleware.JWTAuthMiddleware(userService, logger),
		RequireAdmin: middleware.AdminMiddleware(userService, utils.CacheClient, logger),
	}

	router := gin.New()
	router.Use(utils.ErrorHandler(logger))
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin, logger))
	routes.RegisterRoutes(router, handlerBundle)

	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.AppPort,
		Handler: router,
	}

	logger.Info("main: starting server", zap.String("addr", srv.Addr))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("main: server failed to start", zap.Error(err))
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	worker.Shutdown()
	if err := database.Disconnect(ctx); err != nil {
		logger.Warn("main: MongoDB disconnect failed", zap.Error(err))
	}

	logger.Info("main: server stopped gracefully")
}
