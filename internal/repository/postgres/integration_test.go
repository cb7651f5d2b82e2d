//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dtroode/quizzme-server/internal/model"
	repo "github.com/dtroode/quizzme-server/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "quizzme_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/quizzme_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func TestDocumentRepository(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	r := repo.NewDocumentRepository(conn)
	require.NoError(t, r.Ping(ctx))

	t.Run("missing record", func(t *testing.T) {
		_, ok, err := r.GetUserRecord(ctx, "user_missing")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("create then get", func(t *testing.T) {
		created, err := r.CreateUserRecord(ctx, model.UserRecord{Owner: "user_put"})
		require.NoError(t, err)
		assert.True(t, created)

		rec, ok, err := r.GetUserRecord(ctx, "user_put")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, []model.DeckSummary{}, rec.Decks)
	})

	t.Run("create does not overwrite a saved record", func(t *testing.T) {
		require.NoError(t, r.Commit(ctx, model.Batch{
			UserRecord: &model.UserRecord{Owner: "user_saved", Decks: []model.DeckSummary{{Name: "Chem"}}},
		}))

		created, err := r.CreateUserRecord(ctx, model.UserRecord{Owner: "user_saved", Decks: []model.DeckSummary{}})
		require.NoError(t, err)
		assert.False(t, created)

		rec, _, err := r.GetUserRecord(ctx, "user_saved")
		require.NoError(t, err)
		assert.Equal(t, []model.DeckSummary{{Name: "Chem"}}, rec.Decks)
	})

	t.Run("commit writes index and cards", func(t *testing.T) {
		batch := model.Batch{
			UserRecord: &model.UserRecord{Owner: "user_abc", Decks: []model.DeckSummary{{Name: "Bio"}}},
			Cards: []model.CardWrite{
				{Owner: "user_abc", Deck: "Bio", Card: model.Card{Front: "cell", Back: "unit of life"}},
				{Owner: "user_abc", Deck: "Bio", Card: model.Card{Front: "DNA", Back: "genetic code"}},
			},
		}
		require.NoError(t, r.Commit(ctx, batch))

		rec, ok, err := r.GetUserRecord(ctx, "user_abc")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, []model.DeckSummary{{Name: "Bio"}}, rec.Decks)

		cards, err := r.ListCards(ctx, "user_abc", "Bio")
		require.NoError(t, err)
		require.Len(t, cards, 2)
		assert.Equal(t, "cell", cards[0].Front)
		assert.Equal(t, "DNA", cards[1].Front)
		assert.NotEmpty(t, cards[0].ID)
		assert.NotEqual(t, cards[0].ID, cards[1].ID)
	})

	t.Run("unknown deck lists empty", func(t *testing.T) {
		cards, err := r.ListCards(ctx, "user_abc", "Nope")
		require.NoError(t, err)
		assert.Empty(t, cards)
	})

	t.Run("failed statement rolls back the batch", func(t *testing.T) {
		batch := model.Batch{
			UserRecord: &model.UserRecord{Owner: "user_rollback", Decks: []model.DeckSummary{{Name: "X"}}},
			Cards: []model.CardWrite{
				{Owner: "user_rollback", Deck: "X", Card: model.Card{Front: "ok"}},
				{Owner: "user_rollback", Deck: "X", Card: model.Card{Front: "bad\x00byte"}},
			},
		}
		require.Error(t, r.Commit(ctx, batch))

		_, ok, err := r.GetUserRecord(ctx, "user_rollback")
		require.NoError(t, err)
		assert.False(t, ok)
		cards, err := r.ListCards(ctx, "user_rollback", "X")
		require.NoError(t, err)
		assert.Empty(t, cards)
	})
}
