package ai

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/jhoicas/review-insights-api/internal/application/ports"
)

var _ ports.LLMService = (*OpenAIService)(nil)

// OpenAIService adaptador sobre el SDK oficial openai-go (chat completions).
// El cliente del SDK es seguro para uso concurrente; se crea una vez al arrancar.
type OpenAIService struct {
	client *openai.Client
	model  string
}

// NewOpenAIService construye el adaptador. baseURL vacío = API pública.
// Los reintentos del SDK se desactivan: el pipeline hace un único intento.
func NewOpenAIService(apiKey, model, baseURL string, timeout time.Duration) *OpenAIService {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(&http.Client{Timeout: timeout}),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &OpenAIService{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

// Complete envía mensaje de sistema + usuario y devuelve el contenido de la primera opción.
func (s *OpenAIService) Complete(ctx context.Context, in ports.CompletionRequest) (string, error) {
	completion, err := s.client.Chat.Completions.New(ctx, buildOpenAIParams(s.model, in))
	if err != nil {
		return "", fmt.Errorf("AI: OpenAI chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("AI: OpenAI devolvió respuesta sin choices")
	}
	return completion.Choices[0].Message.Content, nil
}

func buildOpenAIParams(model string, in ports.CompletionRequest) openai.ChatCompletionNewParams {
	var messages []openai.ChatCompletionMessageParamUnion
	if in.System != "" {
		messages = append(messages, openai.SystemMessage(in.System))
	}
	messages = append(messages, openai.UserMessage(in.Prompt))

	return openai.ChatCompletionNewParams{
		Messages:    openai.F(messages),
		Model:       openai.F(openai.ChatModel(model)),
		Temperature: openai.Float(in.Temperature),
		MaxTokens:   openai.Int(int64(in.MaxTokens)),
	}
}
