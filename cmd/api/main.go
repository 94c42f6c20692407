package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/carelane/clinic-api/pkg/hash"
	"github.com/carelane/clinic-api/pkg/logger"
	"github.com/carelane/clinic-api/pkg/session"

	"github.com/carelane/clinic-api/internal/config"
	"github.com/carelane/clinic-api/internal/handler"
	authHandler "github.com/carelane/clinic-api/internal/handler/auth"
	pageHandler "github.com/carelane/clinic-api/internal/handler/page"
	patientHandler "github.com/carelane/clinic-api/internal/handler/patient"
	"github.com/carelane/clinic-api/internal/middleware"
	"github.com/carelane/clinic-api/internal/repository/postgres"
	"github.com/carelane/clinic-api/internal/router"
	authService "github.com/carelane/clinic-api/internal/service/auth"
	patientService "github.com/carelane/clinic-api/internal/service/patient"
)

func main() {
	logger.Setup(nil)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := postgres.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to create schema")
	}

	// Repositories
	doctorRepo := postgres.NewDoctorRepository(db)
	patientRepo := postgres.NewPatientRepository(db)

	// Shared helpers
	hasher := hash.NewSHA256Hasher()
	sessions := session.NewManager(cfg.Session.Secret, cfg.Session.TTL)

	// Services
	authSvc := authService.NewService(doctorRepo, hasher, sessions)
	patientSvc := patientService.NewService(patientRepo, doctorRepo, cfg.Cache.DashboardTTL)

	// Middleware
	gate := middleware.NewSessionGate(sessions)

	// Handlers
	healthH := handler.NewHandler(db)
	authH := authHandler.NewHandler(authSvc, sessions)
	patientH := patientHandler.NewHandler(patientSvc)
	pageH := pageHandler.NewHandler(patientSvc)

	r := router.NewRouter(cfg, gate, authH, patientH, pageH, healthH)
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
