package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/quizzme-server/internal/model"
)

func (r *DocumentRepository) ListCards(ctx context.Context, owner, deck string) ([]model.Card, error) {
	query := `
		SELECT id, front, back
		FROM deck_cards
		WHERE owner_id = $1 AND deck_name = $2
		ORDER BY seq ASC`

	rows, err := r.db.Query(ctx, query, owner, deck)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	defer rows.Close()

	cards := []model.Card{}
	for rows.Next() {
		var (
			id   uuid.UUID
			card model.Card
		)
		if err := rows.Scan(&id, &card.Front, &card.Back); err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		card.ID = id.String()
		cards = append(cards, card)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cards: %w", err)
	}

	return cards, nil
}
