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
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"companynews/internal/config"
	"companynews/internal/handlers"
	"companynews/internal/localhttp"
	"companynews/internal/logger"
)

func main() {
	// A missing .env is fine; the real environment still applies.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zl, err := logger.Development(cfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zl.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	h, err := handlers.BuildNewsHandler(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("build news handler", zap.Error(err))
	}

	gin.SetMode(gin.ReleaseMode)
	router := localhttp.NewRouter(zl,
		localhttp.Route{Path: "/api/news", Handler: h.Handle},
		localhttp.Route{Path: "/health", Handler: handlers.Health},
	)

	srv := &http.Server{
		Addr:              cfg.LocalAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zl.Info("local server listening", zap.String("addr", cfg.LocalAddr), zap.Stringer("handler", h))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("listen", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("shutdown", zap.Error(err))
	}
}
