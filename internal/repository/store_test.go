package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/quizzme-server/internal/config"
	"github.com/dtroode/quizzme-server/internal/model"
	"github.com/dtroode/quizzme-server/internal/testutil"
)

func TestOpen_Badger(t *testing.T) {
	cfg := &config.Config{DocumentStore: config.DocStore{
		Driver:     config.DriverBadger,
		BadgerPath: filepath.Join(t.TempDir(), "db"),
	}}

	store, closeStore, err := Open(context.Background(), cfg, testutil.MakeNoopLogger())
	require.NoError(t, err)

	ctx := context.Background()
	created, err := store.CreateUserRecord(ctx, model.UserRecord{Owner: "user_1", Decks: []model.DeckSummary{{Name: "Bio"}}})
	require.NoError(t, err)
	require.True(t, created)
	closeStore()

	store, closeStore, err = Open(ctx, cfg, testutil.MakeNoopLogger())
	require.NoError(t, err)
	defer closeStore()

	rec, ok, err := store.GetUserRecord(ctx, "user_1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []model.DeckSummary{{Name: "Bio"}}, rec.Decks)
}

func TestOpen_UnknownDriver(t *testing.T) {
	cfg := &config.Config{DocumentStore: config.DocStore{Driver: "firestore"}}

	_, _, err := Open(context.Background(), cfg, testutil.MakeNoopLogger())
	assert.ErrorContains(t, err, "unknown storage driver")
}

func TestOpenInMemory(t *testing.T) {
	store, closeStore, err := OpenInMemory(testutil.MakeNoopLogger())
	require.NoError(t, err)
	defer closeStore()

	assert.NoError(t, store.Ping(context.Background()))
}
