package ai

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/jhoicas/review-insights-api/internal/application/ports"
)

// Verificar en tiempo de compilación que GeminiService implementa LLMService.
var _ ports.LLMService = (*GeminiService)(nil)

// GeminiService adaptador sobre el SDK google.golang.org/genai (Gemini API).
type GeminiService struct {
	client *genai.Client
	model  string
}

// NewGeminiService construye el adaptador. model suele ser "gemini-1.5-flash".
// baseURL vacío = endpoint público.
func NewGeminiService(ctx context.Context, apiKey, model, baseURL string, timeout time.Duration) (*GeminiService, error) {
	cfg := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: timeout},
	}
	if baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}
	gc, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("AI: crear cliente Gemini: %w", err)
	}
	return &GeminiService{client: gc, model: model}, nil
}

// Complete genera contenido con un solo turno de usuario y devuelve el texto concatenado.
func (s *GeminiService) Complete(ctx context.Context, in ports.CompletionRequest) (string, error) {
	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(in.Prompt), buildGeminiConfig(in))
	if err != nil {
		return "", fmt.Errorf("AI: Gemini generate content: %w", err)
	}
	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("AI: Gemini devolvió respuesta vacía")
	}
	return text, nil
}

func buildGeminiConfig(in ports.CompletionRequest) *genai.GenerateContentConfig {
	temp := float32(in.Temperature)
	config := &genai.GenerateContentConfig{
		Temperature:     &temp,
		MaxOutputTokens: int32(in.MaxTokens),
	}
	if in.System != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: in.System}},
		}
	}
	return config
}
