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

	"github.com/gin-gonic/gin"

	"hrms-lite/internal/config"
	"hrms-lite/internal/db"
	"hrms-lite/internal/demo"
	"hrms-lite/internal/httpapi"
	"hrms-lite/internal/memstore"
	"hrms-lite/internal/service"
)

func openStore(cfg config.Config, logger *log.Logger) (service.Store, error) {
	if !cfg.UseDatabase() {
		logger.Printf("DATABASE_URL not set, keeping records in memory")
		return memstore.New(), nil
	}

	database, err := db.Connect(cfg, logger)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(database); err != nil {
		return nil, err
	}
	return db.NewStore(database), nil
}

func main() {
	// -- Logger --
	logger := log.New(os.Stdout, "", log.LstdFlags)

	// -- Configs preload --
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("config error: %v", err)
	}

	if cfg.Mode == config.ModeRelease {
		gin.SetMode(gin.ReleaseMode)
	}

	// -- Store --
	store, err := openStore(cfg, logger)
	if err != nil {
		logger.Fatalf("database connection error: %v", err)
	}

	hrService := service.NewHRService(store)

	if cfg.SeedDemo {
		if err := demo.Seed(context.Background(), hrService, time.Now()); err != nil {
			logger.Fatalf("seed demo data: %v", err)
		}
		logger.Printf("demo roster loaded")
	}

	// -- Router --
	handler := httpapi.NewHandler(hrService, logger)
	router := httpapi.NewRouter(handler, httpapi.RouterOptions{
		CORSOrigins: cfg.CORSOrigins,
		AccessLog:   logger.Writer(),
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// -- Startup --
	go func() {
		logger.Printf("starting server, listening to port %s...", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	// -- Shutdown --
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Printf("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Fatalf("shutdown failed: %v", err)
	}
}
