package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dtroode/quizzme-server/internal/model"
)

func TestNewDocumentRepository(t *testing.T) {
	conn := &Connection{}
	r := NewDocumentRepository(conn)

	assert.NotNil(t, r)
	assert.Equal(t, conn, r.db)
}

func TestDocumentRepository_CommitEmptyBatch(t *testing.T) {
	r := NewDocumentRepository(&Connection{})

	assert.NoError(t, r.Commit(context.Background(), model.Batch{}))
}

func TestConnection_PingWithoutPool(t *testing.T) {
	assert.Error(t, (&Connection{}).Ping(context.Background()))
}

func TestEncodeDecks(t *testing.T) {
	tests := []struct {
		name  string
		decks []model.DeckSummary
		want  string
	}{
		{name: "nil", decks: nil, want: "[]"},
		{name: "ordered", decks: []model.DeckSummary{{Name: "A"}, {Name: "B"}}, want: `[{"name":"A"},{"name":"B"}]`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			raw, err := encodeDecks(tt.decks)
			assert.NoError(t, err)
			assert.JSONEq(t, tt.want, string(raw))
		})
	}
}
