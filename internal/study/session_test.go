package study

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dtroode/quizzme-server/internal/model"
)

var deck = []model.Card{
	{Front: "Q1", Back: "A1"},
	{Front: "Q2", Back: "A2"},
	{Front: "Q3", Back: "A3"},
}

func TestSession_Navigation(t *testing.T) {
	s := NewSession(deck)

	_, side, ok := s.Current()
	assert.True(t, ok)
	assert.Equal(t, "Q1", side)

	s = s.Prev()
	assert.Equal(t, 0, s.Cursor())

	s = s.Next().Next().Next()
	assert.Equal(t, 2, s.Cursor())
	_, side, _ = s.Current()
	assert.Equal(t, "Q3", side)

	s = s.Prev()
	assert.Equal(t, 1, s.Cursor())
}

func TestSession_Flip(t *testing.T) {
	s := NewSession(deck)

	flipped := s.Flip(0)
	assert.False(t, s.Flipped(0))
	assert.True(t, flipped.Flipped(0))

	_, side, _ := flipped.Current()
	assert.Equal(t, "A1", side)

	back := flipped.Flip(0)
	assert.False(t, back.Flipped(0))

	assert.Equal(t, flipped, flipped.Flip(10))
	assert.Equal(t, flipped, flipped.Flip(-1))
}

func TestSession_FlipIsPerCard(t *testing.T) {
	s := NewSession(deck).Flip(1).Next()

	_, side, _ := s.Current()
	assert.Equal(t, "A2", side)

	s = s.Next()
	_, side, _ = s.Current()
	assert.Equal(t, "Q3", side)
}

func TestSession_Empty(t *testing.T) {
	s := NewSession(nil)

	_, _, ok := s.Current()
	assert.False(t, ok)
	assert.Equal(t, 0, s.Next().Cursor())
	assert.Equal(t, 0, s.Len())
}
