package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/injoybeauty/salon-api/config"
	"github.com/injoybeauty/salon-api/internal/email"
	"github.com/injoybeauty/salon-api/internal/handler"
	bookinghandler "github.com/injoybeauty/salon-api/internal/handler/booking"
	cataloghandler "github.com/injoybeauty/salon-api/internal/handler/catalog"
	contacthandler "github.com/injoybeauty/salon-api/internal/handler/contact"
	galleryhandler "github.com/injoybeauty/salon-api/internal/handler/gallery"
	intakehandler "github.com/injoybeauty/salon-api/internal/handler/intake"
	"github.com/injoybeauty/salon-api/internal/middleware"
	"github.com/injoybeauty/salon-api/internal/repository/postgres"
	"github.com/injoybeauty/salon-api/internal/router"
	"github.com/injoybeauty/salon-api/internal/service/availability"
	"github.com/injoybeauty/salon-api/internal/service/booking"
	"github.com/injoybeauty/salon-api/internal/service/catalog"
	"github.com/injoybeauty/salon-api/internal/service/contact"
	"github.com/injoybeauty/salon-api/internal/service/gallery"
	"github.com/injoybeauty/salon-api/internal/service/intake"
	"github.com/injoybeauty/salon-api/internal/service/notification"
	"github.com/injoybeauty/salon-api/internal/worker"
	"github.com/injoybeauty/salon-api/pkg/logger"
	"github.com/injoybeauty/salon-api/pkg/validator"
)

func main() {
	log := logger.NewLogger(nil)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err, "Failed to load config")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal(err, "Failed to connect to database")
	}
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := postgres.Migrate(ctx, db); err != nil {
		log.Fatal(err, "Failed to run migrations")
	}
	if err := postgres.Seed(ctx, db); err != nil {
		log.Fatal(err, "Failed to seed catalog")
	}

	if err := validator.RegisterCustomValidations(); err != nil {
		log.Fatal(err, "Failed to register validations")
	}

	serviceRepo := postgres.NewServiceRepository(db)
	bookingRepo := postgres.NewBookingRepository(db)
	contactRepo := postgres.NewContactRepository(db)
	galleryRepo := postgres.NewGalleryRepository(db)
	intakeRepo := postgres.NewIntakeRepository(db)
	notificationRepo := postgres.NewNotificationRepository(db)

	open, err := cfg.Booking.OpenMinutes()
	if err != nil {
		log.Fatal(err, "Invalid booking window")
	}
	close, err := cfg.Booking.CloseMinutes()
	if err != nil {
		log.Fatal(err, "Invalid booking window")
	}

	catalogService := catalog.NewService(serviceRepo)
	availabilityService := availability.NewService(
		bookingRepo,
		catalogService,
		availability.Window{Open: open, Close: close},
		cfg.Booking.SlotMinutes,
	)
	bookingService := booking.NewService(bookingRepo, serviceRepo, time.Now)
	notificationService := notification.NewService(notificationRepo, cfg.SMTP.NotifyTo, cfg.Business.Name)
	contactService := contact.NewService(contactRepo, notificationService)
	intakeService := intake.NewService(intakeRepo, notificationService)
	galleryService := gallery.NewService(galleryRepo)

	sender := email.NewSMTPSender(cfg.SMTP)
	notifier := worker.NewNotifier(notificationRepo, sender, worker.NotifierConfig{
		BatchSize:     cfg.Notifier.BatchSize,
		PollInterval:  cfg.Notifier.PollInterval,
		RetryAttempts: cfg.Notifier.RetryAttempts,
		RetryDelay:    cfg.Notifier.RetryDelay,
	}, log)
	go notifier.Start(ctx)

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.Security.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.Security.AllowedOrigins
	}

	r := router.NewRouter(
		handler.NewHandler(db, cfg.Business.Name),
		router.RouterConfig{
			RateLimitEnabled: cfg.RateLimit.Enabled,
			RateLimitRPS:     cfg.RateLimit.RequestsPerSecond,
			RateLimitBurst:   cfg.RateLimit.Burst,
			CORSConfig:       corsConfig,
			MetricsPrefix:    "salon_api",
			FrontendDir:      cfg.Server.FrontendDir,
			StaticMaxAge:     86400,
		},
		bookinghandler.NewHandler(bookingService, availabilityService),
		cataloghandler.NewHandler(catalogService),
		contacthandler.NewHandler(contactService),
		galleryhandler.NewHandler(galleryService),
		intakehandler.NewHandler(intakeService),
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("Starting server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err, "Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err, "Server forced to shutdown")
	}

	log.Info("Server exited")
}
