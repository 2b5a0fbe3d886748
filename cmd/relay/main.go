package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/AweFilko/PIB-SQL-injection/config"
	"github.com/AweFilko/PIB-SQL-injection/internal/app"
	"github.com/AweFilko/PIB-SQL-injection/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-relay", cfg.Env)
	gin.SetMode(cfg.GinMode)

	cleanup := app.InitRelay(cfg, logger)
	defer cleanup()

	srv := &http.Server{
		Addr:    ":" + cfg.RelayPort,
		Handler: app.BuildRelay(),
	}

	go func() {
		logger.Infof("relay listening on :%s, forwarding to %s", cfg.RelayPort, cfg.UpstreamURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down relay...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("forced shutdown: %v", err)
	}
	logger.Info("relay stopped")
}
