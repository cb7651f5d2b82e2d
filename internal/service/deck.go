package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/dtroode/quizzme-server/internal/logger"
	"github.com/dtroode/quizzme-server/internal/model"
	"github.com/dtroode/quizzme-server/internal/observability"
)

const documentStoreName = "document store"

var (
	tracer   = otel.Tracer("github.com/dtroode/quizzme-server/internal/service")
	validate = validator.New(validator.WithRequiredStructEnabled())
)

// Deck owns the deck-name index and card collections of every owner.
//
// SaveDeck checks the index and commits in two steps, so two concurrent saves
// of the same new name can both pass the check. Both then succeed: the index
// keeps one entry for the name and the cards of both saves end up under it.
type Deck struct {
	store  model.DocumentStore
	logger *logger.Logger
}

func NewDeck(store model.DocumentStore, logger *logger.Logger) *Deck {
	return &Deck{
		store:  store,
		logger: logger,
	}
}

// ListDecks returns the owner's deck summaries in stored order. The first
// call for an owner creates an empty record unless a save got there first.
func (s *Deck) ListDecks(ctx context.Context, owner string) ([]model.DeckSummary, error) {
	ctx, span := tracer.Start(ctx, "Deck.ListDecks", trace.WithAttributes(attribute.String("deck.owner", owner)))
	defer span.End()

	if owner == "" {
		return nil, model.NewErrValidation("owner is required")
	}

	record, ok, err := s.store.GetUserRecord(ctx, owner)
	if err != nil {
		return nil, s.storeFailure(span, "list_decks", "failed to get user record", owner, err)
	}

	if !ok {
		created, err := s.store.CreateUserRecord(ctx, model.UserRecord{Owner: owner, Decks: []model.DeckSummary{}})
		if err != nil {
			return nil, s.storeFailure(span, "list_decks", "failed to create user record", owner, err)
		}
		if created {
			s.logger.Info("Deck service: created empty user record", "owner", owner)
			return []model.DeckSummary{}, nil
		}

		record, _, err = s.store.GetUserRecord(ctx, owner)
		if err != nil {
			return nil, s.storeFailure(span, "list_decks", "failed to get user record", owner, err)
		}
	}

	decks := model.NormalizeDecks(record.Decks)
	span.SetAttributes(attribute.Int("deck.count", len(decks)))

	return decks, nil
}

// SaveDeck stores a new named deck with its cards in one batch.
func (s *Deck) SaveDeck(ctx context.Context, params model.SaveDeckParams) error {
	ctx, span := tracer.Start(ctx, "Deck.SaveDeck", trace.WithAttributes(
		attribute.String("deck.owner", params.Owner),
		attribute.String("deck.name", params.Name),
		attribute.Int("deck.cards", len(params.Cards)),
	))
	defer span.End()

	if err := validate.Struct(params); err != nil {
		s.logger.Debug("Deck service: rejected deck", "owner", params.Owner, "error", err.Error())
		if params.Owner == "" {
			return model.NewErrValidation("owner is required")
		}
		return model.NewErrValidation("please enter a name for your flashcard collection")
	}

	record, ok, err := s.store.GetUserRecord(ctx, params.Owner)
	if err != nil {
		return s.storeFailure(span, "save_deck", "failed to get user record", params.Owner, err)
	}
	if !ok {
		record = model.UserRecord{Owner: params.Owner}
	}

	decks := model.NormalizeDecks(record.Decks)
	record.Decks = decks
	if record.HasDeck(params.Name) {
		s.logger.Info("Deck service: duplicate deck name",
			"owner", params.Owner,
			"name", params.Name)
		return model.NewErrDuplicateDeckName(params.Name)
	}

	updated := model.UserRecord{
		Owner: params.Owner,
		Decks: append(decks, model.DeckSummary{Name: params.Name}),
	}
	batch := model.Batch{
		UserRecord: &updated,
		Cards:      make([]model.CardWrite, 0, len(params.Cards)),
	}
	for _, card := range params.Cards {
		batch.Cards = append(batch.Cards, model.CardWrite{
			Owner: params.Owner,
			Deck:  params.Name,
			Card:  model.Card{Front: card.Front, Back: card.Back},
		})
	}

	if err := s.store.Commit(ctx, batch); err != nil {
		return s.storeFailure(span, "save_deck", "failed to commit deck", params.Owner, err)
	}

	observability.DecksSaved.Inc()
	observability.CardsSaved.Add(float64(len(batch.Cards)))
	s.logger.Info("Deck service: deck saved",
		"owner", params.Owner,
		"name", params.Name,
		"cards", len(batch.Cards))

	return nil
}

// GetDeckCards returns the deck's cards in insertion order. An unknown deck
// has no cards.
func (s *Deck) GetDeckCards(ctx context.Context, owner, name string) ([]model.Card, error) {
	ctx, span := tracer.Start(ctx, "Deck.GetDeckCards", trace.WithAttributes(
		attribute.String("deck.owner", owner),
		attribute.String("deck.name", name),
	))
	defer span.End()

	if owner == "" {
		return nil, model.NewErrValidation("owner is required")
	}

	cards, err := s.store.ListCards(ctx, owner, name)
	if err != nil {
		return nil, s.storeFailure(span, "get_deck_cards", "failed to list cards", owner, err)
	}
	if cards == nil {
		cards = []model.Card{}
	}
	span.SetAttributes(attribute.Int("deck.cards", len(cards)))

	return cards, nil
}

// Ping reports whether the document store is reachable.
func (s *Deck) Ping(ctx context.Context) error {
	if err := s.store.Ping(ctx); err != nil {
		return model.NewErrCollaboratorUnavailable(documentStoreName, err)
	}
	return nil
}

func (s *Deck) storeFailure(span trace.Span, operation, msg, owner string, err error) error {
	observability.DeckStoreErrors.WithLabelValues(operation).Inc()
	span.RecordError(err)
	span.SetStatus(codes.Error, msg)
	s.logger.Error("Deck service: "+msg,
		"owner", owner,
		"error", err.Error())
	return model.NewErrCollaboratorUnavailable(documentStoreName, fmt.Errorf("%s: %w", msg, err))
}
