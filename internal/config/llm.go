package config

import (
	"os"
	"sync"
)

// LLMConfig selects which text-generation provider backs the agents.
type LLMConfig struct {
	Provider string // "gemini" or "openrouter"
}

var (
	llmConfig *LLMConfig
	llmOnce   sync.Once
)

func LoadLLMConfig() *LLMConfig {
	llmOnce.Do(func() {
		provider := os.Getenv("LLM_PROVIDER")
		if provider == "" {
			provider = "gemini"
		}
		llmConfig = &LLMConfig{Provider: provider}
	})
	return llmConfig
}
