// Package openai drafts flashcards with an OpenAI chat model.
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/dtroode/quizzme-server/internal/config"
	"github.com/dtroode/quizzme-server/internal/logger"
	"github.com/dtroode/quizzme-server/internal/model"
)

// SystemPrompt instructs the model to answer with a JSON flashcard document.
const SystemPrompt = `You are a flashcard creator. Take in text and create exactly 10 flashcards from it.
Both front and back should be one sentence long.
Return the flashcards in the following JSON format:
{
  "flashcards": [
    {"front": "Front of the card", "back": "Back of the card"}
  ]
}`

var errEmptyCompletion = errors.New("model returned no choices")

type chatAPI interface {
	CreateChatCompletion(ctx context.Context, req goopenai.ChatCompletionRequest) (goopenai.ChatCompletionResponse, error)
}

var _ model.Generator = (*Generator)(nil)

type Generator struct {
	api    chatAPI
	model  string
	logger *logger.Logger
}

// New creates a Generator for the configured account. BaseURL overrides the
// API endpoint for compatible gateways.
func New(cfg config.OpenAI, logger *logger.Logger) *Generator {
	clientCfg := goopenai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return NewWithAPI(goopenai.NewClientWithConfig(clientCfg), cfg.Model, logger)
}

func NewWithAPI(api chatAPI, modelName string, logger *logger.Logger) *Generator {
	return &Generator{
		api:    api,
		model:  modelName,
		logger: logger,
	}
}

func (g *Generator) Generate(ctx context.Context, text string) ([]model.Card, error) {
	req := goopenai.ChatCompletionRequest{
		Model: g.model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: SystemPrompt},
			{Role: goopenai.ChatMessageRoleUser, Content: text},
		},
		ResponseFormat: &goopenai.ChatCompletionResponseFormat{
			Type: goopenai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	resp, err := g.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errEmptyCompletion
	}

	g.logger.Debug("OpenAI generator: received completion",
		"model", g.model,
		"finish_reason", resp.Choices[0].FinishReason)

	cards, err := ParseCards(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}

	return cards, nil
}

type cardDocument struct {
	Flashcards []model.Card `json:"flashcards"`
}

// ParseCards decodes a completion into cards. Both {"flashcards": [...]}
// and a bare array are accepted, optionally inside a markdown code fence.
// Cards with neither side set are skipped and at most
// model.MaxGeneratedCards are returned.
func ParseCards(content string) ([]model.Card, error) {
	content = stripFence(strings.TrimSpace(content))

	var raw []model.Card
	if strings.HasPrefix(content, "[") {
		if err := json.Unmarshal([]byte(content), &raw); err != nil {
			return nil, fmt.Errorf("failed to decode flashcards: %w", err)
		}
	} else {
		var doc cardDocument
		if err := json.Unmarshal([]byte(content), &doc); err != nil {
			return nil, fmt.Errorf("failed to decode flashcards: %w", err)
		}
		raw = doc.Flashcards
	}

	cards := make([]model.Card, 0, len(raw))
	for _, c := range raw {
		if c.Front == "" && c.Back == "" {
			continue
		}
		cards = append(cards, model.Card{Front: c.Front, Back: c.Back})
		if len(cards) == model.MaxGeneratedCards {
			break
		}
	}

	return cards, nil
}

func stripFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
