package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/diindiin/pkg/types"
)

// Defaults applied by NewOpenAI.
const (
	DefaultModel   = openai.GPT3Dot5Turbo
	DefaultTimeout = 15 * time.Second
)

// Config configures the OpenAI service.
type Config struct {
	APIKey  string
	BaseURL string // Full API prefix including /v1; empty for api.openai.com.
	Model   string
	Timeout time.Duration
}

// OpenAI implements Service with chat completions.
type OpenAI struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	log     *zap.Logger
}

var _ Service = (*OpenAI)(nil)

// NewOpenAI builds the service. A nil logger discards logs.
func NewOpenAI(cfg Config, log *zap.Logger) *OpenAI {
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &OpenAI{
		client:  openai.NewClientWithConfig(oc),
		model:   cfg.Model,
		timeout: cfg.Timeout,
		log:     log.Named("ai"),
	}
}

func (s *OpenAI) Categorize(ctx context.Context, kind types.EntityType, description string) string {
	noun := "expense"
	if kind == types.EntityIncome {
		noun = "income"
	}
	categories := Categories(kind)
	answer, err := s.complete(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: fmt.Sprintf("You are a financial assistant. Categorize %ss into one of these categories: %s. Return only the category name, nothing else.",
					noun, strings.Join(categories, ", ")),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Categorize this %s: %q", noun, description),
			},
		},
		Temperature: 0.3,
		MaxTokens:   10,
	})
	if err != nil {
		s.log.Warn("categorize failed", zap.String("kind", kind.String()), zap.Error(err))
		return FallbackCategory
	}
	category := normalizeCategory(kind, answer)
	if category == FallbackCategory && !strings.EqualFold(strings.TrimSpace(answer), FallbackCategory) {
		s.log.Debug("category outside closed set", zap.String("answer", answer))
	}
	return category
}

func (s *OpenAI) Insight(ctx context.Context, sp Spending) (string, bool) {
	parts := make([]string, 0, len(sp.ByCategory))
	for _, ct := range sp.ByCategory {
		parts = append(parts, fmt.Sprintf("%s: %s", ct.Category, ct.Total.StringFixed(2)))
	}
	lang := "English"
	if sp.Language == types.Portuguese {
		lang = "Brazilian Portuguese"
	}
	answer, err := s.complete(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a financial advisor. Provide brief, actionable insights about spending patterns. Keep it under 100 words. Answer in " + lang + ".",
			},
			{
				Role: openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Total expenses: %s. Breakdown: %s. Provide insights.",
					sp.Total.StringFixed(2), strings.Join(parts, ", ")),
			},
		},
		Temperature: 0.7,
		MaxTokens:   150,
	})
	if err != nil {
		s.log.Warn("insight failed", zap.Error(err))
		return "", false
	}
	if answer == "" {
		return "", false
	}
	return answer, true
}

var errNoChoices = errors.New("completion returned no choices")

func (s *OpenAI) complete(ctx context.Context, req openai.ChatCompletionRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errNoChoices
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
