package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Apurer/go-gin-backoffice/internal/app/api"
)

func main() {
	_ = godotenv.Load()

	cfg, err := api.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := api.Run(ctx, cfg); err != nil {
		log.Fatalf("back-office API failed: %v", err)
	}
}
