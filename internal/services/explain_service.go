package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/careguard/careguard-backend/internal/repositories"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

var ErrExplainUnavailable = errors.New("explanation provider not configured")

const explainPromptFormat = `You are a medical assistant AI designed to help users understand medicines in a very simple and safe way.

A user has scanned a medicine. Your job is to explain it clearly based on this scanned text:

Scanned Medicine Text: %s

Instructions:
- Use VERY simple language (easy for elderly users)
- Keep sentences short and clear
- Avoid medical jargon
- Ignore random OCR noise/letters/numbers in the scanned text. Deduce the primary medicine name even if there are typos.
- Look for common active ingredients or brand names in the text provided.
- Be accurate but easy to understand
- If there is absolutely no recognizable medicine name or active ingredient in the text, say "Please consult a doctor"

Provide response in the following structured format (use the identified medicine name):

Medicine: <name>

Uses:
- <what it is used for>

How to Take:
- <dosage guidance in general terms, not exact prescription>

Side Effects:
- <common side effects>

Warnings:
- <who should avoid it / precautions>

Emergency:
- <when to seek immediate help>

Output Rules:
- Do NOT give exact prescription dosage
- Do NOT act like a doctor
- Keep response under 120 words
- Always include this line at the end:

"This is general information. Please consult a doctor before use."`

// ExplainService answers "what is this medicine" questions through an
// OpenAI-compatible inference provider, with a Redis cache in front so
// repeat lookups of the same name skip the provider entirely.
type ExplainService struct {
	client *openai.Client
	model  string
	cache  repositories.ExplanationCache
	logger *zap.Logger
}

func NewExplainService(apiKey, baseURL, model string, cache repositories.ExplanationCache, logger *zap.Logger) *ExplainService {
	s := &ExplainService{
		model:  model,
		cache:  cache,
		logger: logger,
	}

	if apiKey != "" {
		clientConfig := openai.DefaultConfig(apiKey)
		clientConfig.BaseURL = baseURL
		s.client = openai.NewClientWithConfig(clientConfig)
	}

	return s
}

func (s *ExplainService) Explain(ctx context.Context, medicineName string) (string, error) {
	if s.client == nil {
		return "", ErrExplainUnavailable
	}

	if cached, err := s.cache.Get(ctx, medicineName); err == nil {
		return cached, nil
	} else if err != repositories.ErrNotFound {
		// Cache trouble should not block the explanation itself.
		s.logger.Warn("explanation cache read failed", zap.Error(err))
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		Temperature: 0.5,
		MaxTokens:   1024,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(explainPromptFormat, medicineName),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to get explanation: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty explanation response")
	}

	explanation := resp.Choices[0].Message.Content

	if err := s.cache.Set(ctx, medicineName, explanation, repositories.DefaultExplanationTTL); err != nil {
		s.logger.Warn("explanation cache write failed", zap.Error(err))
	}

	return explanation, nil
}
