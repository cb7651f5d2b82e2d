package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/quizzme-server/internal/model"
)

var _ model.DocumentStore = (*DocumentRepository)(nil)

// DocumentRepository stores user records and deck cards in postgres.
type DocumentRepository struct {
	db *Connection
}

func NewDocumentRepository(db *Connection) *DocumentRepository {
	return &DocumentRepository{
		db: db,
	}
}

const upsertUserRecordQuery = `
	INSERT INTO user_records (owner_id, decks, created_at, updated_at)
	VALUES ($1, $2, NOW(), NOW())
	ON CONFLICT (owner_id) DO UPDATE SET decks = EXCLUDED.decks, updated_at = NOW()`

const createUserRecordQuery = `
	INSERT INTO user_records (owner_id, decks, created_at, updated_at)
	VALUES ($1, $2, NOW(), NOW())
	ON CONFLICT (owner_id) DO NOTHING`

const insertCardQuery = `
	INSERT INTO deck_cards (id, owner_id, deck_name, front, back)
	VALUES ($1, $2, $3, $4, $5)`

// Commit writes the batch inside one transaction.
func (r *DocumentRepository) Commit(ctx context.Context, b model.Batch) error {
	if b.Empty() {
		return nil
	}

	batch := &pgx.Batch{}
	if b.UserRecord != nil {
		decks, err := encodeDecks(b.UserRecord.Decks)
		if err != nil {
			return err
		}
		batch.Queue(upsertUserRecordQuery, b.UserRecord.Owner, decks)
	}
	for _, w := range b.Cards {
		batch.Queue(insertCardQuery, uuid.New(), w.Owner, w.Deck, w.Card.Front, w.Card.Back)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	results := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return fmt.Errorf("failed to execute batch statement %d: %w", i, err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to close batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit batch: %w", err)
	}

	return nil
}

func (r *DocumentRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func encodeDecks(decks []model.DeckSummary) ([]byte, error) {
	if decks == nil {
		decks = []model.DeckSummary{}
	}
	raw, err := json.Marshal(decks)
	if err != nil {
		return nil, fmt.Errorf("failed to encode deck index: %w", err)
	}
	return raw, nil
}
