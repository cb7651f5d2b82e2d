package badger

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/dgraph-io/badger/v4"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/dtroode/quizzme-server/internal/model"
)

var _ model.DocumentStore = (*DocumentRepository)(nil)

const (
	userPrefix  = "user/"
	cardPrefix  = "card/"
	sequenceKey = "seq/cards"

	// Card IDs look like auto-generated document IDs.
	idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	idLength   = 20

	sequenceBandwidth = 128
)

// DocumentRepository keeps each user record under user/<owner> and each card
// under card/<owner>/<deck>/<seq>. The big-endian sequence suffix keeps
// cards in insertion order during prefix iteration.
type DocumentRepository struct {
	db  *badger.DB
	seq *badger.Sequence
}

func NewDocumentRepository(db *badger.DB) (*DocumentRepository, error) {
	seq, err := db.GetSequence([]byte(sequenceKey), sequenceBandwidth)
	if err != nil {
		return nil, fmt.Errorf("failed to get card sequence: %w", err)
	}

	return &DocumentRepository{
		db:  db,
		seq: seq,
	}, nil
}

// Close releases the card sequence. The database itself is closed by the owner.
func (r *DocumentRepository) Close() error {
	return r.seq.Release()
}

type userDocument struct {
	Decks json.RawMessage `json:"flashcards"`
}

func (r *DocumentRepository) GetUserRecord(ctx context.Context, owner string) (model.UserRecord, bool, error) {
	if err := ctx.Err(); err != nil {
		return model.UserRecord{}, false, err
	}

	var raw []byte
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(userKey(owner))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return model.UserRecord{}, false, nil
	}
	if err != nil {
		return model.UserRecord{}, false, fmt.Errorf("failed to get user record: %w", err)
	}

	var doc userDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return model.UserRecord{}, false, fmt.Errorf("failed to decode user record: %w", err)
	}
	decks, err := model.DecodeDeckIndex(doc.Decks)
	if err != nil {
		return model.UserRecord{}, false, err
	}

	return model.UserRecord{Owner: owner, Decks: decks}, true, nil
}

// CreateUserRecord reads and writes the record key in one transaction, so a
// commit that lands in between makes it a conflict and nothing is written.
func (r *DocumentRepository) CreateUserRecord(ctx context.Context, record model.UserRecord) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	created := false
	err := r.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(userKey(record.Owner))
		if err == nil {
			return nil
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		created = true
		return setUserRecord(txn, record)
	})
	if errors.Is(err, badger.ErrConflict) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to create user record: %w", err)
	}

	return created, nil
}

func (r *DocumentRepository) ListCards(ctx context.Context, owner, deck string) ([]model.Card, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cards := []model.Card{}
	prefix := deckPrefix(owner, deck)
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var card model.Card
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &card)
			})
			if err != nil {
				return fmt.Errorf("failed to decode card: %w", err)
			}
			cards = append(cards, card)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}

	return cards, nil
}

// Commit applies the batch in a single badger transaction.
func (r *DocumentRepository) Commit(ctx context.Context, b model.Batch) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if b.Empty() {
		return nil
	}

	type entry struct {
		key []byte
		val []byte
	}
	entries := make([]entry, 0, len(b.Cards))
	for _, w := range b.Cards {
		id, err := gonanoid.Generate(idAlphabet, idLength)
		if err != nil {
			return fmt.Errorf("failed to generate card id: %w", err)
		}
		n, err := r.seq.Next()
		if err != nil {
			return fmt.Errorf("failed to allocate card sequence: %w", err)
		}
		card := w.Card
		card.ID = id
		val, err := json.Marshal(card)
		if err != nil {
			return fmt.Errorf("failed to encode card: %w", err)
		}
		entries = append(entries, entry{key: cardKey(w.Owner, w.Deck, n), val: val})
	}

	err := r.db.Update(func(txn *badger.Txn) error {
		if b.UserRecord != nil {
			if err := setUserRecord(txn, *b.UserRecord); err != nil {
				return err
			}
		}
		for _, e := range entries {
			if err := txn.Set(e.key, e.val); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to commit batch: %w", err)
	}

	return nil
}

func (r *DocumentRepository) Ping(_ context.Context) error {
	if r.db.IsClosed() {
		return errors.New("badger database is closed")
	}
	return nil
}

func setUserRecord(txn *badger.Txn, record model.UserRecord) error {
	decks := record.Decks
	if decks == nil {
		decks = []model.DeckSummary{}
	}
	val, err := json.Marshal(model.UserRecord{Owner: record.Owner, Decks: decks})
	if err != nil {
		return fmt.Errorf("failed to encode user record: %w", err)
	}
	return txn.Set(userKey(record.Owner), val)
}

func userKey(owner string) []byte {
	return []byte(userPrefix + url.PathEscape(owner))
}

func deckPrefix(owner, deck string) []byte {
	return []byte(cardPrefix + url.PathEscape(owner) + "/" + url.PathEscape(deck) + "/")
}

func cardKey(owner, deck string, n uint64) []byte {
	return binary.BigEndian.AppendUint64(deckPrefix(owner, deck), n)
}
