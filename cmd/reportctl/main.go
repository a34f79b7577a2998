package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Apurer/go-gin-backoffice/internal/app/api"
	"github.com/Apurer/go-gin-backoffice/internal/app/reportctl"
	reportports "github.com/Apurer/go-gin-backoffice/internal/domains/reporting/ports"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := reportctl.NewApp(os.Stdout, buildService)
	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

func buildService(ctx context.Context, opts reportctl.Options) (reportports.Service, func(), error) {
	cfg, err := api.LoadConfigWith(func(c *api.Config) {
		if opts.Source != "" {
			c.ReportingSource = opts.Source
		}
		if opts.BackendURL != "" {
			c.BackendAPIURL = opts.BackendURL
		}
		if opts.Token != "" {
			c.BackendAPIToken = opts.Token
		}
	})
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	infra := api.OpenInfrastructure(ctx, cfg, logger)
	service, err := infra.ReportingService(ctx, cfg, infra.OrderRepository(), nil)
	if err != nil {
		infra.Close()
		return nil, nil, err
	}
	return service, infra.Close, nil
}
