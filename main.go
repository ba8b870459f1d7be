package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Eursukkul/buggy-fleet/config"
	"github.com/Eursukkul/buggy-fleet/internal/allocation"
	"github.com/Eursukkul/buggy-fleet/internal/consumer"
	"github.com/Eursukkul/buggy-fleet/internal/repository"
	"github.com/Eursukkul/buggy-fleet/internal/scheduler"
	"github.com/Eursukkul/buggy-fleet/internal/service"
	"github.com/Eursukkul/buggy-fleet/pkg/database"
	"github.com/Eursukkul/buggy-fleet/pkg/log"
	"github.com/Eursukkul/buggy-fleet/pkg/rabbitmq"
	"github.com/Eursukkul/buggy-fleet/pkg/storage"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := config.Load()

	logOpts := log.NewOptions()
	logOpts.Name = "fleet-service"
	logOpts.Level = cfg.LogLevel
	logOpts.Format = cfg.LogFormat
	log.Init(logOpts)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Error(err, "fleet service stopped")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	db, err := database.NewPostgresDB(cfg.DSN())
	if err != nil {
		return err
	}

	// Repositories
	reservationRepo := repository.NewReservationRepository(db)
	fleetRepo := repository.NewFleetRepository(db)

	// Services
	fleetSvc := service.NewFleetService(fleetRepo, allocation.Fleet{TwoSeat: cfg.TwoSeatStock, OneSeat: cfg.OneSeatStock})
	planSvc := service.NewPlanService(reservationRepo, fleetSvc)
	reservationSvc := service.NewReservationService(reservationRepo)
	authSvc := service.NewAuthService(service.AuthConfig{
		Password:     cfg.AuthPassword,
		PasswordHash: cfg.AuthPasswordHash,
		Secret:       cfg.JWTSecret,
		TTL:          cfg.JWTTTL,
	})
	if cfg.AuthPassword == "" && cfg.AuthPasswordHash == "" {
		log.Warn("no AUTH_PASSWORD or AUTH_PASSWORD_HASH set, login is disabled")
	}

	g, gctx := errgroup.WithContext(ctx)

	// RabbitMQ: reservation sync in, plan alerts out
	var publisher scheduler.Publisher
	if cfg.RabbitURL != "" {
		pub, err := rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			return err
		}
		defer pub.Close()
		publisher = pub

		mqConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL)
		if err != nil {
			return err
		}
		defer mqConsumer.Close()

		msgs, err := mqConsumer.Consume()
		if err != nil {
			return err
		}
		rc := consumer.NewReservationConsumer(reservationSvc, log.Std())
		g.Go(func() error { return rc.Run(gctx, msgs) })
	} else {
		log.Info("RABBITMQ_URL not set, messaging disabled")
	}

	var archive storage.Provider
	if cfg.S3Endpoint != "" {
		p, err := storage.NewMinIOProvider(&storage.S3Options{
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKey,
			SecretAccessKey: cfg.S3SecretKey,
			BucketName:      cfg.S3Bucket,
			UseSSL:          cfg.S3UseSSL,
		})
		if err != nil {
			return err
		}
		if err := p.CheckBucket(ctx); err != nil {
			return err
		}
		archive = p
	}

	refresher := scheduler.NewRefresher(planSvc, publisher, archive, cfg.RefreshInterval, log.Std())
	g.Go(func() error { return refresher.Run(gctx) })

	e := newServer(services{
		auth:         authSvc,
		plans:        planSvc,
		fleet:        fleetSvc,
		reservations: reservationSvc,
	})

	g.Go(func() error {
		log.Info("fleet service starting", "port", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
