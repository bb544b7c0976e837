package ai

import (
	"context"
	"fmt"

	"github.com/jhoicas/review-insights-api/internal/application/ports"
	"github.com/jhoicas/review-insights-api/pkg/config"
)

// NewLLMService crea el adaptador del proveedor configurado. Se llama una sola vez
// al arrancar; la instancia resultante es inmutable y se comparte entre peticiones.
func NewLLMService(ctx context.Context, cfg config.AIConfig) (ports.LLMService, error) {
	if cfg.APIKey() == "" {
		return nil, fmt.Errorf("AI: falta la API key de %s", cfg.Provider)
	}
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return NewOpenAIService(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL, cfg.Timeout), nil
	case config.ProviderGemini:
		svc, err := NewGeminiService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, "", cfg.Timeout)
		if err != nil {
			return nil, err
		}
		return svc, nil
	case config.ProviderAnthropic:
		return NewAnthropicService(cfg.AnthropicAPIKey, cfg.AnthropicModel, cfg.Timeout), nil
	default:
		return nil, fmt.Errorf("AI: proveedor desconocido %q", cfg.Provider)
	}
}
