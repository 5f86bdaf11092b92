// cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/barbercloud/barber-backend/internal/app"
	"github.com/barbercloud/barber-backend/internal/config"
	"github.com/barbercloud/barber-backend/internal/controller"
	"github.com/barbercloud/barber-backend/internal/db"
	"github.com/barbercloud/barber-backend/internal/httpx"
	"github.com/barbercloud/barber-backend/internal/repository"
	"github.com/barbercloud/barber-backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	logger.Info("✅ Connected to database")

	if err := db.Migrate(database); err != nil {
		logger.Fatal("failed to apply migrations", zap.Error(err))
	}
	if err := db.Seed(database, logger); err != nil {
		logger.Fatal("failed to seed database", zap.Error(err))
	}

	barberRepo := &repository.BarberRepository{DB: database}
	serviceRepo := &repository.ServiceRepository{DB: database}
	bookingRepo := &repository.BookingRepository{DB: database}
	smsRepo := &repository.SMSRepository{DB: database}

	bookingService := &service.BookingService{
		BookingRepo: bookingRepo,
		SMSRepo:     smsRepo,
		Logger:      logger,
	}
	availabilityService := &service.AvailabilityService{
		BookingRepo: bookingRepo,
	}
	smsService := &service.SMSService{
		SMSRepo: smsRepo,
		Logger:  logger,
	}

	catalogController := &controller.CatalogController{
		BarberRepo:  barberRepo,
		ServiceRepo: serviceRepo,
	}
	bookingController := &controller.BookingController{
		BookingService:      bookingService,
		AvailabilityService: availabilityService,
		Validator:           validator.New(),
	}
	smsGateController := &controller.SMSGateController{
		SMSService: smsService,
	}
	healthController := &controller.HealthController{
		StartedAt: time.Now(),
	}

	r := chi.NewRouter()
	r.Use(httpx.RequestID)
	r.Use(httpx.AccessLog(logger))

	r.Get("/api/test", healthController.Test)
	r.Get("/api/barbieri", catalogController.ListBarbers)
	r.Get("/api/servizi", catalogController.ListServices)
	r.Get("/api/disponibilita/{barbiereId}/{data}", bookingController.GetAvailability)
	r.Post("/api/prenotazioni", bookingController.CreateBooking)
	r.Get("/api/prenotazioni/{data}", bookingController.ListByDate)
	r.Delete("/api/prenotazioni/{id}", bookingController.CancelBooking)

	// SMSGate polling protocol
	r.Get("/api/smsgate/pending", smsGateController.Pending)
	r.Post("/api/smsgate/sent", smsGateController.ReportSent)
	r.Post("/api/smsgate/error", smsGateController.ReportError)
	r.Get("/api/sms/stats", smsGateController.Stats)

	r.Get("/api/admin/prenotazioni", bookingController.AdminList)
	r.Get("/api/admin/sms", smsGateController.AdminList)
	r.Get("/health", healthController.Health)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("🚀 Server running", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	if err := database.Close(); err != nil {
		logger.Error("close database", zap.Error(err))
	}
	logger.Info("database closed")
}
