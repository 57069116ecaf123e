package service

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/hiresage/recruitai/internal/config"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

type OpenRouterServiceInterface interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// OpenRouterService is the alternate text-generation provider, selected with
// LLM_PROVIDER=openrouter. It speaks the chat-completions wire format.
type OpenRouterService struct {
	APIKey string
	Model  string
	client *resty.Client
	log    *zap.Logger
}

func NewOpenRouterService(log *zap.Logger) *OpenRouterService {
	cfg := config.LoadOpenRouterConfig()
	return &OpenRouterService{
		APIKey: cfg.APIKey,
		Model:  cfg.Model,
		client: resty.New().SetBaseURL(cfg.BaseURL),
		log:    log,
	}
}

func (s *OpenRouterService) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"model": s.Model,
			"messages": []map[string]string{
				{"role": "system", "content": "You are an AI assistant for a recruitment pipeline."},
				{"role": "user", "content": prompt},
			},
		}).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("openrouter request failed: %w", err)
	}

	if resp.StatusCode() >= 400 {
		s.log.Warn("openrouter returned error status",
			zap.Int("status", resp.StatusCode()))
		return "", fmt.Errorf("openrouter returned status %d", resp.StatusCode())
	}

	text := gjson.Get(resp.String(), "choices.0.message.content").String()
	if text == "" {
		return "", fmt.Errorf("no response from LLM")
	}
	return text, nil
}
