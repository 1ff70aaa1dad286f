// Package llm provides the OpenAI-compatible client that turns questions
// into SQL.
package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/bocado-labs/consulta-engine/pkg/prompts"
	"github.com/bocado-labs/consulta-engine/pkg/retry"
)

// SQLGenerator produces SQL text for a natural-language question.
type SQLGenerator interface {
	GenerateSQL(ctx context.Context, question string) (string, error)
}

// Config holds configuration for creating an LLM client.
type Config struct {
	BaseURL     string        // e.g. "https://api.openai.com/v1"
	Model       string        // e.g. "gpt-4o-mini"
	APIKey      string        // Optional for local endpoints
	Timeout     time.Duration // Per-request deadline
	Temperature float64
	MaxTokens   int
	RetryConfig *retry.Config // nil uses the default single-retry policy
}

// Client calls an OpenAI-compatible chat-completion endpoint.
type Client struct {
	client      *openai.Client
	model       string
	timeout     time.Duration
	temperature float64
	maxTokens   int
	retryCfg    *retry.Config
	logger      *zap.Logger
}

// NewClient creates a new SQL-generation client.
func NewClient(cfg *Config, logger *zap.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("model is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	retryCfg := cfg.RetryConfig
	if retryCfg == nil {
		retryCfg = retry.DefaultConfig()
	}

	return &Client{
		client:      openai.NewClientWithConfig(clientConfig),
		model:       cfg.Model,
		timeout:     timeout,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		retryCfg:    retryCfg,
		logger:      logger.Named("llm"),
	}, nil
}

// GenerateSQL sends the schema+examples prompt plus the user question and
// returns the model's raw SQL text. Transient upstream failures are retried
// once with backoff; each attempt is bounded by the configured timeout.
func (c *Client) GenerateSQL(ctx context.Context, question string) (string, error) {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: prompts.SQLGenerationSystemRole},
		{Role: openai.ChatMessageRoleUser, Content: prompts.BuildSQLGenerationPrompt(question)},
	}

	c.logger.Debug("SQL generation request",
		zap.String("model", c.model),
		zap.Int("question_len", len(question)))

	start := time.Now()
	content, err := retry.DoWithResult(ctx, c.retryCfg, func() (string, error) {
		attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		resp, err := c.client.CreateChatCompletion(attemptCtx, openai.ChatCompletionRequest{
			Model:       c.model,
			Messages:    messages,
			Temperature: float32(c.temperature),
			MaxTokens:   c.maxTokens,
		})
		if err != nil {
			return "", ClassifyError(err)
		}
		if len(resp.Choices) == 0 {
			return "", NewError(ErrorTypeResponse, "no choices in response", false, nil)
		}
		return resp.Choices[0].Message.Content, nil
	})
	if err != nil {
		c.logger.Error("SQL generation failed",
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return "", err
	}

	c.logger.Info("SQL generation completed",
		zap.Duration("elapsed", time.Since(start)))
	return strings.TrimSpace(content), nil
}
