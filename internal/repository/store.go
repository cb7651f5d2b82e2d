// Package repository selects the document store backing decks.
package repository

import (
	"context"
	"fmt"

	"github.com/dtroode/quizzme-server/internal/config"
	"github.com/dtroode/quizzme-server/internal/logger"
	"github.com/dtroode/quizzme-server/internal/model"
	"github.com/dtroode/quizzme-server/internal/repository/badger"
	"github.com/dtroode/quizzme-server/internal/repository/postgres"
)

// Open connects the store named by cfg.DocumentStore.Driver. The returned
// func releases it.
func Open(ctx context.Context, cfg *config.Config, logger *logger.Logger) (model.DocumentStore, func(), error) {
	switch cfg.DocumentStore.Driver {
	case config.DriverBadger:
		return openBadger(badger.Config{
			Path:       cfg.DocumentStore.BadgerPath,
			SyncWrites: true,
			Logger:     logger,
		}, logger)
	case config.DriverPostgres:
		db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewDocumentRepository(db), func() {
			if err := db.Close(); err != nil {
				logger.Error("failed to close postgres", "error", err)
			}
		}, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.DocumentStore.Driver)
	}
}

// OpenInMemory opens a throwaway badger store.
func OpenInMemory(logger *logger.Logger) (model.DocumentStore, func(), error) {
	return openBadger(badger.Config{InMemory: true}, logger)
}

func openBadger(cfg badger.Config, logger *logger.Logger) (model.DocumentStore, func(), error) {
	db, err := badger.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	repo, err := badger.NewDocumentRepository(db)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return repo, func() {
		if err := repo.Close(); err != nil {
			logger.Error("failed to release card sequence", "error", err)
		}
		if err := db.Close(); err != nil {
			logger.Error("failed to close badger", "error", err)
		}
	}, nil
}
