package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/quizzme-server/internal/model"
)

func (r *DocumentRepository) GetUserRecord(ctx context.Context, owner string) (model.UserRecord, bool, error) {
	query := `SELECT decks FROM user_records WHERE owner_id = $1`

	var raw []byte
	err := r.db.QueryRow(ctx, query, owner).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.UserRecord{}, false, nil
		}
		return model.UserRecord{}, false, fmt.Errorf("failed to get user record: %w", err)
	}

	decks, err := model.DecodeDeckIndex(raw)
	if err != nil {
		return model.UserRecord{}, false, err
	}

	return model.UserRecord{Owner: owner, Decks: decks}, true, nil
}

func (r *DocumentRepository) CreateUserRecord(ctx context.Context, record model.UserRecord) (bool, error) {
	decks, err := encodeDecks(record.Decks)
	if err != nil {
		return false, err
	}

	tag, err := r.db.Exec(ctx, createUserRecordQuery, record.Owner, decks)
	if err != nil {
		return false, fmt.Errorf("failed to create user record: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}
