package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"companynews/internal/config"
	"companynews/internal/handlers"
	"companynews/internal/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zl.Sync()

	h, err := handlers.BuildNewsHandler(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("build news handler", zap.Error(err))
	}

	lambda.Start(h.Handle)
}
