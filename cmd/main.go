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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/inkmatch/booking-service/internal/api/handlers/create_booking"
	getArtistBookingsHandler "github.com/inkmatch/booking-service/internal/api/handlers/get_artist_bookings"
	getAvailabilityHandler "github.com/inkmatch/booking-service/internal/api/handlers/get_availability"
	getAvailableSlotsHandler "github.com/inkmatch/booking-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/inkmatch/booking-service/internal/api/handlers/get_booking"
	getClientBookingsHandler "github.com/inkmatch/booking-service/internal/api/handlers/get_client_bookings"
	getDepositPolicyHandler "github.com/inkmatch/booking-service/internal/api/handlers/get_deposit_policy"
	transitionBookingHandler "github.com/inkmatch/booking-service/internal/api/handlers/transition_booking"
	updateAvailabilityHandler "github.com/inkmatch/booking-service/internal/api/handlers/update_availability"
	updateDepositPolicyHandler "github.com/inkmatch/booking-service/internal/api/handlers/update_deposit_policy"
	"github.com/inkmatch/booking-service/internal/api/middleware"
	"github.com/inkmatch/booking-service/internal/config"
	availabilityRepo "github.com/inkmatch/booking-service/internal/infra/storage/availability"
	bookingRepo "github.com/inkmatch/booking-service/internal/infra/storage/booking"
	policyRepo "github.com/inkmatch/booking-service/internal/infra/storage/policy"
	paymentClient "github.com/inkmatch/booking-service/internal/integrations/paymentservice"
	availabilityService "github.com/inkmatch/booking-service/internal/service/availability"
	bookingsService "github.com/inkmatch/booking-service/internal/service/bookings"
	policyService "github.com/inkmatch/booking-service/internal/service/policy"
	createBookingUC "github.com/inkmatch/booking-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/inkmatch/booking-service/internal/usecase/get_available_slots"
	noShowSweepUC "github.com/inkmatch/booking-service/internal/usecase/noshow_sweep"
	transitionBookingUC "github.com/inkmatch/booking-service/internal/usecase/transition_booking"
	"github.com/inkmatch/booking-service/pkg/dbmetrics"
	"github.com/inkmatch/booking-service/pkg/logger"
	"github.com/inkmatch/booking-service/pkg/metrics"
	"github.com/inkmatch/booking-service/pkg/simpletxmanager"
	"github.com/inkmatch/booking-service/pkg/txmanager"
)

func main() {
	// A missing .env is fine in production; the file only exists in dev.
	_ = godotenv.Load()

	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting booking-service...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

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

	payments := paymentClient.NewClient(
		cfg.PaymentService.URL,
		time.Duration(cfg.PaymentService.Timeout)*time.Second,
		log,
	)
	log.Info("Payment client initialized (PaymentService=%s timeout=%ds)",
		cfg.PaymentService.URL, cfg.PaymentService.Timeout)

	// Transaction manager surface shared by the use cases.
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	var (
		bookingRepository      *bookingRepo.Repository
		availabilityRepository *availabilityRepo.Repository
		policyRepository       *policyRepo.Repository
		txMgr                  TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		policyRepository = policyRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		availabilityRepository = availabilityRepo.NewRepository(db)
		policyRepository = policyRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	bookingSvc := bookingsService.NewService(bookingRepository, log)
	availabilitySvc := availabilityService.NewService(availabilityRepository, log)
	policySvc := policyService.NewService(policyRepository, log)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		availabilityRepository,
		policyRepository,
		payments,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		availabilityRepository,
		policyRepository,
		bookingRepository,
		log,
	)
	transitionBookingUseCase := transitionBookingUC.NewUseCase(
		bookingRepository,
		payments,
		txMgr,
		log,
	)
	noShowSweepUseCase := noShowSweepUC.NewUseCase(
		bookingRepository,
		txMgr,
		time.Duration(cfg.NoShowSweep.GraceMinutes)*time.Minute,
		log,
	)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	transitionBooking := transitionBookingHandler.NewHandler(transitionBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getClientBookings := getClientBookingsHandler.NewHandler(bookingSvc, log)
	getArtistBookings := getArtistBookingsHandler.NewHandler(bookingSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	updateAvailability := updateAvailabilityHandler.NewHandler(availabilitySvc, log)
	getDepositPolicy := getDepositPolicyHandler.NewHandler(policySvc, log)
	updateDepositPolicy := updateDepositPolicyHandler.NewHandler(policySvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes: clients browse an artist's hours, deposit terms and
	// open slots before authenticating.
	api.HandleFunc("/artists/{artistId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/artists/{artistId}/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/artists/{artistId}/deposit-policy", getDepositPolicy.Handle).Methods(http.MethodGet)

	// Protected routes require the gateway identity headers.
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/transition", transitionBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/clients/{clientId}/bookings", getClientBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/artists/{artistId}/bookings", getArtistBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/artists/{artistId}/availability", updateAvailability.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/artists/{artistId}/deposit-policy", updateDepositPolicy.Handle).Methods(http.MethodPut)

	// Periodic no-show sweeper.
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()

	if cfg.NoShowSweep.Enabled {
		interval := time.Duration(cfg.NoShowSweep.IntervalMinutes) * time.Minute
		go func() {
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					if _, err := noShowSweepUseCase.Execute(sweepCtx); err != nil {
						log.Error("No-show sweep run failed: %v", err)
					}
				case <-sweepCtx.Done():
					return
				}
			}
		}()
		log.Info("No-show sweeper started (interval=%dm, grace=%dm)",
			cfg.NoShowSweep.IntervalMinutes, cfg.NoShowSweep.GraceMinutes)
	}

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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

	stopSweep()

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
