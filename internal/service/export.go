package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/quizzme-server/internal/logger"
	"github.com/dtroode/quizzme-server/internal/model"
)

const (
	objectStorageName = "object storage"
	exportPrefix      = "exports/"
	exportContentType = "application/json"
)

// DeckReader reads a deck's cards.
type DeckReader interface {
	GetDeckCards(ctx context.Context, owner, name string) ([]model.Card, error)
}

// DeckExport is the document written to object storage.
type DeckExport struct {
	Owner      string       `json:"owner"`
	Name       string       `json:"name"`
	ExportedAt time.Time    `json:"exported_at"`
	Cards      []model.Card `json:"cards"`
}

// Export copies decks to object storage as JSON documents.
type Export struct {
	decks   DeckReader
	storage model.Storage
	logger  *logger.Logger
	now     func() time.Time
}

func NewExport(decks DeckReader, storage model.Storage, logger *logger.Logger) *Export {
	return &Export{
		decks:   decks,
		storage: storage,
		logger:  logger,
		now:     time.Now,
	}
}

// ExportDeck uploads the deck and returns its object key.
func (s *Export) ExportDeck(ctx context.Context, owner, name string) (string, error) {
	if name == "" {
		return "", model.NewErrValidation("deck name is required")
	}

	cards, err := s.decks.GetDeckCards(ctx, owner, name)
	if err != nil {
		return "", err
	}
	if len(cards) == 0 {
		return "", model.NewErrValidation(fmt.Sprintf("flashcard collection %q has no cards to export", name))
	}

	doc, err := json.Marshal(DeckExport{
		Owner:      owner,
		Name:       name,
		ExportedAt: s.now().UTC(),
		Cards:      cards,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode export: %w", err)
	}

	key := ownerExportPrefix(owner) + uuid.NewString() + ".json"
	if err := s.storage.Upload(ctx, key, bytes.NewReader(doc), int64(len(doc)), exportContentType); err != nil {
		s.logger.Error("Export service: failed to upload export",
			"owner", owner,
			"name", name,
			"error", err.Error())
		return "", model.NewErrCollaboratorUnavailable(objectStorageName, err)
	}

	s.logger.Info("Export service: deck exported",
		"owner", owner,
		"name", name,
		"key", key,
		"cards", len(cards))

	return key, nil
}

// OpenExport streams an export back. Keys of other owners are not found.
func (s *Export) OpenExport(ctx context.Context, owner, key string) (io.ReadCloser, error) {
	if !strings.HasPrefix(key, ownerExportPrefix(owner)) || strings.Contains(key, "..") {
		return nil, model.NewErrNotFound("export not found")
	}

	exists, err := s.storage.Exists(ctx, key)
	if err != nil {
		return nil, model.NewErrCollaboratorUnavailable(objectStorageName, err)
	}
	if !exists {
		return nil, model.NewErrNotFound("export not found")
	}

	rc, err := s.storage.Download(ctx, key)
	if errors.Is(err, model.ErrNotFound) {
		return nil, model.NewErrNotFound("export not found")
	}
	if err != nil {
		s.logger.Error("Export service: failed to download export",
			"owner", owner,
			"key", key,
			"error", err.Error())
		return nil, model.NewErrCollaboratorUnavailable(objectStorageName, err)
	}

	return rc, nil
}

func ownerExportPrefix(owner string) string {
	return exportPrefix + url.PathEscape(owner) + "/"
}
