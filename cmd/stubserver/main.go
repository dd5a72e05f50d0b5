package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/holidaysri/holidaysri-client/config"
	"github.com/holidaysri/holidaysri-client/internal/stub"
	"github.com/holidaysri/holidaysri-client/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.AppEnv,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Holidaysri stub backend",
		zap.String("port", cfg.Stub.Port),
		zap.String("environment", cfg.AppEnv),
	)

	gin.SetMode(cfg.Stub.GinMode)
	router := stub.NewRouter(stub.Options{
		JWTSecret:      cfg.Stub.JWTSecret,
		JWTIssuer:      cfg.Stub.JWTIssuer,
		AllowedOrigins: cfg.Stub.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Stub.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		logger.Info("Stub backend listening", zap.String("port", cfg.Stub.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Stub backend failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down stub backend...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Stub backend forced to shutdown", zap.Error(err))
	}

	logger.Info("Stub backend exited")
}
