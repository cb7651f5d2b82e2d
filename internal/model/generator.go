package model

import "context"

// MaxGeneratedCards caps the number of cards one generation returns.
const MaxGeneratedCards = 10

// Generator turns free-form study text into flashcards.
type Generator interface {
	Generate(ctx context.Context, text string) ([]Card, error)
}
