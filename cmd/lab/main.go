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
	"github.com/AweFilko/PIB-SQL-injection/pkg/validation"
)

// lab runs the application server and the filtering relay in one
// process, the way the rig is used on a workstation.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	ctx := context.Background()
	cleanupBackend, err := app.InitBackend(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("backend init: %v", err)
	}
	defer cleanupBackend()
	cleanupRelay := app.InitRelay(cfg, logger)
	defer cleanupRelay()

	backend := &http.Server{Addr: ":" + cfg.BackendPort, Handler: app.BuildBackend()}
	relay := &http.Server{Addr: ":" + cfg.RelayPort, Handler: app.BuildRelay()}

	go func() {
		logger.Infof("backend listening on :%s", cfg.BackendPort)
		if err := backend.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("backend listen: %v", err)
		}
	}()
	go func() {
		logger.Infof("relay listening on :%s, forwarding to %s", cfg.RelayPort, cfg.UpstreamURL)
		if err := relay.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("relay listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := relay.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("relay forced shutdown: %v", err)
	}
	if err := backend.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("backend forced shutdown: %v", err)
	}
	logger.Info("stopped")
}
