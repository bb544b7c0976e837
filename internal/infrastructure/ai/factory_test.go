package ai

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/review-insights-api/pkg/config"
)

func TestNewLLMService_SeleccionaProveedor(t *testing.T) {
	base := config.AIConfig{
		OpenAIAPIKey:    "sk",
		OpenAIModel:     "gpt-4",
		AnthropicAPIKey: "ak",
		AnthropicModel:  "claude",
		Timeout:         time.Second,
	}

	base.Provider = config.ProviderOpenAI
	svc, err := NewLLMService(context.Background(), base)
	require.NoError(t, err)
	assert.IsType(t, &OpenAIService{}, svc)

	base.Provider = config.ProviderAnthropic
	svc, err = NewLLMService(context.Background(), base)
	require.NoError(t, err)
	assert.IsType(t, &AnthropicService{}, svc)
}

func TestNewLLMService_SinCredencial(t *testing.T) {
	_, err := NewLLMService(context.Background(), config.AIConfig{Provider: config.ProviderGemini})
	assert.Error(t, err)
}
