package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Apurer/go-gin-backoffice/internal/app/api"
	"github.com/Apurer/go-gin-backoffice/internal/app/worker"
)

func main() {
	_ = godotenv.Load()

	cfg, err := api.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := worker.Run(ctx, cfg); err != nil {
		log.Fatalf("order worker failed: %v", err)
	}
}
