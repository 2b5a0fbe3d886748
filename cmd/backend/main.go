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

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-backend", cfg.Env)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	ctx := context.Background()
	cleanup, err := app.InitBackend(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("backend init: %v", err)
	}
	defer cleanup()

	srv := &http.Server{
		Addr:    ":" + cfg.BackendPort,
		Handler: app.BuildBackend(),
	}

	go func() {
		logger.Infof("backend listening on :%s", cfg.BackendPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down backend...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("forced shutdown: %v", err)
	}
	logger.Info("backend stopped")
}
