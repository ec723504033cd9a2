// Package vision talks to the Anthropic Messages API to describe images.
package vision

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/incident-desk/internal/config"
	"github.com/heartmarshall/incident-desk/internal/domain"
)

// ErrEmptyResponse is returned when the model answers without any text.
var ErrEmptyResponse = errors.New("vision: empty response")

// Client sends a single image plus prompt and returns the text answer.
type Client struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	log       *slog.Logger
}

// NewClient creates a Client from config. Extra options are appended after
// the configured ones.
func NewClient(cfg config.ClassifierConfig, logger *slog.Logger, opts ...option.RequestOption) *Client {
	base := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(max(cfg.MaxRetries, 0)),
	}
	if cfg.BaseURL != "" {
		base = append(base, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		base = append(base, option.WithRequestTimeout(cfg.Timeout))
	}

	return &Client{
		client:    anthropic.NewClient(append(base, opts...)...),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		log:       logger.With("adapter", "vision"),
	}
}

// Describe asks the model about one image.
func (c *Client) Describe(ctx context.Context, img domain.ImageBlob, prompt string) (string, error) {
	c.log.DebugContext(ctx, "vision request",
		slog.String("model", c.model),
		slog.String("content_type", img.ContentType),
		slog.Int("bytes", len(img.Data)))

	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewImageBlockBase64(img.ContentType, base64.StdEncoding.EncodeToString(img.Data)),
				anthropic.NewTextBlock(prompt),
			),
		},
	})
	if err != nil {
		return "", fmt.Errorf("vision: messages api: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type != "text" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(block.Text)
	}
	if sb.Len() == 0 {
		return "", ErrEmptyResponse
	}

	c.log.DebugContext(ctx, "vision response",
		slog.String("stop_reason", string(msg.StopReason)),
		slog.Int64("output_tokens", msg.Usage.OutputTokens))

	return sb.String(), nil
}
