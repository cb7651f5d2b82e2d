package model

import (
	"context"
	"encoding/json"
	"fmt"
)

// DocumentStore is the document database behind the deck store. It exposes
// point reads and writes of the per-owner record, reads of a deck's card
// sub-collection and all-or-nothing batched writes.
type DocumentStore interface {
	// GetUserRecord reads the owner's record. The boolean reports whether
	// the record exists.
	GetUserRecord(ctx context.Context, owner string) (UserRecord, bool, error)
	// CreateUserRecord writes record only if the owner has none yet. The
	// boolean reports whether it was written.
	CreateUserRecord(ctx context.Context, record UserRecord) (bool, error)
	// ListCards returns the cards stored under (owner, deck) in insertion
	// order. A missing sub-collection yields an empty slice.
	ListCards(ctx context.Context, owner, deck string) ([]Card, error)
	// Commit applies every write in the batch or none of them. Card IDs are
	// assigned by the store.
	Commit(ctx context.Context, batch Batch) error
	Ping(ctx context.Context) error
}

// DeckSummary is one entry of the owner's deck-name index.
type DeckSummary struct {
	Name string `json:"name"`
}

// UserRecord is the per-owner document holding the deck-name index.
type UserRecord struct {
	Owner string        `json:"owner"`
	Decks []DeckSummary `json:"flashcards"`
}

// HasDeck reports whether name is already in the index. Names compare
// case-sensitively.
func (r UserRecord) HasDeck(name string) bool {
	for _, d := range r.Decks {
		if d.Name == name {
			return true
		}
	}
	return false
}

// NormalizeDecks drops entries without a name and never returns nil.
func NormalizeDecks(decks []DeckSummary) []DeckSummary {
	out := make([]DeckSummary, 0, len(decks))
	for _, d := range decks {
		if d.Name == "" {
			continue
		}
		out = append(out, d)
	}
	return out
}

// DecodeDeckIndex decodes a stored deck-name index. A null or empty
// document is an empty index.
func DecodeDeckIndex(raw []byte) ([]DeckSummary, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return []DeckSummary{}, nil
	}
	var decks []DeckSummary
	if err := json.Unmarshal(raw, &decks); err != nil {
		return nil, fmt.Errorf("failed to decode deck index: %w", err)
	}
	return NormalizeDecks(decks), nil
}

// Card is one question/answer pair.
type Card struct {
	ID    string `json:"id,omitempty" yaml:"-"`
	Front string `json:"front" yaml:"front"`
	Back  string `json:"back" yaml:"back"`
}

// Deck is a named, ordered collection of cards owned by one user.
type Deck struct {
	Owner string `json:"owner"`
	Name  string `json:"name"`
	Cards []Card `json:"cards"`
}

// CardWrite places a card into the (Owner, Deck) sub-collection.
type CardWrite struct {
	Owner string
	Deck  string
	Card  Card
}

// Batch groups mutations that become visible together.
type Batch struct {
	// UserRecord, when set, replaces the owner's record.
	UserRecord *UserRecord
	Cards      []CardWrite
}

// Empty reports whether the batch carries no writes.
func (b Batch) Empty() bool {
	return b.UserRecord == nil && len(b.Cards) == 0
}

// SaveDeckParams contains parameters to save a deck.
type SaveDeckParams struct {
	Owner string `validate:"required"`
	Name  string `validate:"required"`
	Cards []Card
}
