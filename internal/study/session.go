// Package study holds view state for studying and composing decks. Every
// transition returns a new value and leaves the receiver untouched.
package study

import "github.com/dtroode/quizzme-server/internal/model"

// Session is a pass over a deck's cards.
type Session struct {
	cards   []model.Card
	flipped map[int]bool
	cursor  int
}

// NewSession starts at the first card with every card face up.
func NewSession(cards []model.Card) Session {
	return Session{
		cards:   append([]model.Card(nil), cards...),
		flipped: map[int]bool{},
	}
}

func (s Session) Len() int {
	return len(s.cards)
}

func (s Session) Cursor() int {
	return s.cursor
}

// Flipped reports whether card i shows its back.
func (s Session) Flipped(i int) bool {
	return s.flipped[i]
}

// Flip toggles card i. Out of range indexes are ignored.
func (s Session) Flip(i int) Session {
	if i < 0 || i >= len(s.cards) {
		return s
	}
	next := s.clone()
	next.flipped[i] = !s.flipped[i]
	return next
}

// Next moves to the following card, stopping at the last one.
func (s Session) Next() Session {
	if s.cursor >= len(s.cards)-1 {
		return s
	}
	next := s.clone()
	next.cursor++
	return next
}

// Prev moves to the preceding card, stopping at the first one.
func (s Session) Prev() Session {
	if s.cursor == 0 {
		return s
	}
	next := s.clone()
	next.cursor--
	return next
}

// Current returns the card under the cursor and the side facing up.
func (s Session) Current() (card model.Card, side string, ok bool) {
	if len(s.cards) == 0 {
		return model.Card{}, "", false
	}
	card = s.cards[s.cursor]
	if s.flipped[s.cursor] {
		return card, card.Back, true
	}
	return card, card.Front, true
}

func (s Session) clone() Session {
	flipped := make(map[int]bool, len(s.flipped))
	for k, v := range s.flipped {
		flipped[k] = v
	}
	return Session{cards: s.cards, flipped: flipped, cursor: s.cursor}
}
