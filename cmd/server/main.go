package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/amberly/schoolbook-backend/internal/config"
	"github.com/amberly/schoolbook-backend/internal/database"
	"github.com/amberly/schoolbook-backend/internal/handler"
	"github.com/amberly/schoolbook-backend/internal/logger"
	"github.com/amberly/schoolbook-backend/internal/repository"
	"github.com/amberly/schoolbook-backend/internal/router"
	"github.com/amberly/schoolbook-backend/internal/service"
	"github.com/amberly/schoolbook-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("db", cfg.DatabasePath).
		Msg("Starting Schoolbook Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Open SQLite Store ─────────────────────────────────────────────
	db, err := database.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open SQLite store")
	}
	defer db.Close()

	if err := database.InitSchema(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize schema")
	}

	// ─── Initialize Repositories ───────────────────────────────────────
	tableRepo := repository.NewTableRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	// ─── Initialize Services ──────────────────────────────────────────
	recordService := service.NewRecordService(tableRepo, log)
	attendanceService := service.NewAttendanceService(tableRepo, log)
	dashboardService := service.NewDashboardService(dashboardRepo)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Module:     handler.NewModuleHandler(),
		Record:     handler.NewRecordHandler(recordService),
		Attendance: handler.NewAttendanceHandler(attendanceService),
		Dashboard:  handler.NewDashboardHandler(dashboardService),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
