package ai

import (
	"github.com/abdoulayediaw-ops/orsre/internal/application/ports"
	"github.com/abdoulayediaw-ops/orsre/pkg/config"
)

// NewFromConfig elige el adaptador según AI_PROVIDER. Sin API key devuelve nil:
// el tablero responde siempre con el mensaje de respaldo.
func NewFromConfig(cfg config.AIConfig) ports.LLMService {
	switch cfg.Provider {
	case config.AIProviderAnthropic:
		if cfg.AnthropicAPIKey == "" {
			return nil
		}
		return NewAnthropicService(cfg.AnthropicAPIKey, cfg.AnthropicModel)
	default:
		if cfg.GeminiAPIKey == "" {
			return nil
		}
		return NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel)
	}
}
