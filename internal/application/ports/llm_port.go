package ports

import "context"

// CompletionRequest prompt estructurado y parámetros de muestreo fijos por operación.
type CompletionRequest struct {
	// System mensaje de sistema; vacío = un solo mensaje de usuario.
	System      string
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// LLMService define el puerto de salida hacia el servicio de completado de texto.
// Cualquier adaptador (OpenAI, Gemini, Anthropic, stub de tests) debe implementar esta interfaz.
// La respuesta es texto libre sin formato garantizado; la validación la hace el caso de uso.
// Las implementaciones deben ser seguras para uso concurrente: se comparte una sola instancia.
type LLMService interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// SentimentLexicon analizador local usado solo como verificación cruzada.
type SentimentLexicon interface {
	// Polarity devuelve el puntaje compuesto en [-1, 1] y su etiqueta.
	Polarity(text string) (score float64, label string)
}
