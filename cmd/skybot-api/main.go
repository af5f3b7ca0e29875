// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"skybot/internal/config"
	httptransport "skybot/internal/http"
	"skybot/internal/infra"
	"skybot/internal/modules/booking"
	"skybot/internal/modules/dialogue"
	"skybot/internal/modules/flights"
	"skybot/internal/modules/history"
	"skybot/internal/modules/notification"
	"skybot/internal/modules/payment"
	"skybot/internal/observability"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger := observability.Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatalf("db init: %v", err)
	}
	defer dbPool.Close()
	if err := infra.Migrate(ctx, dbPool); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	defer redisClient.Close()

	flightCache := flights.NewCache(redisClient, cfg.Cache.SearchTTL)
	flightSvc := flights.NewService(flightCache, nil)

	engine := dialogue.NewService(flightSvc, flightSvc)

	notificationStore := notification.NewStore(dbPool)
	notificationSvc := notification.NewService(notificationStore, logger)

	bookingStore := booking.NewStore(dbPool)
	bookingSvc := booking.NewService(bookingStore, notificationSvc, logger)

	paymentSvc := payment.NewService()
	historyStore := history.NewStore(redisClient)

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Engine:        engine,
		Flights:       flightSvc,
		Bookings:      bookingSvc,
		Payments:      paymentSvc,
		Notifications: notificationSvc,
		History:       historyStore,
		DB:            dbPool,
		Redis:         redisClient,
		CORSOrigins:   cfg.HTTP.CORSOrigins,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("server listening", "addr", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
