package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dtroode/quizzme-server/database"
	"github.com/dtroode/quizzme-server/internal/config"
	"github.com/dtroode/quizzme-server/internal/generator/openai"
	"github.com/dtroode/quizzme-server/internal/logger"
	"github.com/dtroode/quizzme-server/internal/model"
	"github.com/dtroode/quizzme-server/internal/repository"
	"github.com/dtroode/quizzme-server/internal/token"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel)

	d := &deps{
		logger: log,
		openStore: func(ctx context.Context) (model.DocumentStore, func(), error) {
			return repository.Open(ctx, cfg, log)
		},
		generator: func() model.Generator { return openai.New(cfg.OpenAI, log) },
		tokens:    token.NewJWT(cfg.Identity.Secret),
		migrate: func(ctx context.Context) error {
			if cfg.DocumentStore.Driver != config.DriverPostgres {
				return fmt.Errorf("migrations apply to the postgres driver, configured driver is %q", cfg.DocumentStore.Driver)
			}
			return database.Migrate(ctx, cfg.Database.DSN)
		},
	}

	if err := newRootCmd(d).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
