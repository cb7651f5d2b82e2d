package service

import (
	"context"
	"strings"

	"github.com/dtroode/quizzme-server/internal/logger"
	"github.com/dtroode/quizzme-server/internal/model"
	"github.com/dtroode/quizzme-server/internal/observability"
)

const generatorName = "flashcard generator"

// Generation drafts cards from study text. Drafts are not stored.
type Generation struct {
	generator model.Generator
	logger    *logger.Logger
}

func NewGeneration(generator model.Generator, logger *logger.Logger) *Generation {
	return &Generation{
		generator: generator,
		logger:    logger,
	}
}

func (s *Generation) Generate(ctx context.Context, owner, text string) ([]model.Card, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, model.NewErrValidation("please enter some text to generate flashcards")
	}

	s.logger.Debug("Generation service: generating flashcards",
		"owner", owner,
		"text_length", len(text))

	cards, err := s.generator.Generate(ctx, text)
	if err != nil {
		observability.Generations.WithLabelValues("error").Inc()
		s.logger.Error("Generation service: generator failed",
			"owner", owner,
			"error", err.Error())
		if model.KindOf(err) != model.KindUnknown {
			return nil, err
		}
		return nil, model.NewErrCollaboratorUnavailable(generatorName, err)
	}

	if len(cards) > model.MaxGeneratedCards {
		cards = cards[:model.MaxGeneratedCards]
	}
	out := make([]model.Card, 0, len(cards))
	for _, c := range cards {
		out = append(out, model.Card{Front: c.Front, Back: c.Back})
	}

	observability.Generations.WithLabelValues("ok").Inc()
	s.logger.Info("Generation service: flashcards generated",
		"owner", owner,
		"cards", len(out))

	return out, nil
}
