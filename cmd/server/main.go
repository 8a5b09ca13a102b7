// Package main provides a local HTTP server for development and testing.
// It serves the same handlers as the Lambda functions, backed by SQLite
// unless DB_DRIVER selects PostgreSQL.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"things-service/internal/config"
	"things-service/internal/handlers"
	"things-service/internal/services/database"
	"things-service/internal/services/records"
	"things-service/internal/utils"
)

func main() {
	// Initialize logger first
	if err := utils.InitLogger(os.Getenv("LOG_LEVEL")); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer utils.Sync()
	logger := utils.GetLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", utils.Error(err))
	}
	if os.Getenv("DB_DRIVER") == "" {
		cfg.DBDriver = config.DriverSQLite
	}

	// Initialize database
	db, err := database.Open(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", utils.String("driver", cfg.DBDriver), utils.Error(err))
	}
	defer db.Close()

	service := records.NewService(db)
	if err := service.Prepare(ctx); err != nil {
		logger.Warn("Failed to prepare things table", utils.Error(err))
	}

	things := handlers.NewThingsHandlerWithService(service)
	health := handlers.NewHealthHandlerWithDB(db, "local")

	// Setup routes
	mux := http.NewServeMux()
	mux.Handle("/insert", handlers.HTTPHandler(things.HandleInsert))
	mux.Handle("/things", handlers.HTTPHandler(things.HandleList))
	mux.Handle("/health", handlers.HTTPHandler(handlers.ProxyFunc(health.Handle).Raw()))

	// Setup CORS
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	addr := fmt.Sprintf("0.0.0.0:%s", cfg.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           c.Handler(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("Things service listening",
		utils.String("addr", addr),
		utils.String("driver", cfg.DBDriver))

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("Server failed", utils.Error(err))
	}
	logger.Info("Server stopped")
}
