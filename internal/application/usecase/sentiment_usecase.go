package usecase

import (
	"context"

	"github.com/jhoicas/review-insights-api/internal/application/dto"
	"github.com/jhoicas/review-insights-api/internal/application/ports"
	"github.com/jhoicas/review-insights-api/internal/domain"
	"github.com/jhoicas/review-insights-api/pkg/logger"
)

// SentimentUseCase clasifica reseñas como positive/negative delegando en el LLM.
// No guarda estado entre llamadas; la única dependencia compartida es el cliente LLM.
type SentimentUseCase struct {
	llm     ports.LLMService
	lexicon ports.SentimentLexicon
	log     *logger.Logger
}

// NewSentimentUseCase construye el caso de uso. lexicon puede ser nil (sin verificación cruzada).
func NewSentimentUseCase(llm ports.LLMService, lexicon ports.SentimentLexicon, log *logger.Logger) *SentimentUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &SentimentUseCase{llm: llm, lexicon: lexicon, log: log.Named("sentiment")}
}

// Classify construye el prompt, invoca el LLM una sola vez y valida la respuesta.
func (uc *SentimentUseCase) Classify(ctx context.Context, req dto.ReviewRequest) (*dto.SentimentResponse, error) {
	raw, err := uc.llm.Complete(ctx, BuildSentimentRequest(req.Review))
	if err != nil {
		uc.log.Error().Err(err).Msg("fallo al invocar el LLM")
		return nil, domain.NewTransportError("Error in sentiment classification", err)
	}

	sentiment, err := domain.ParseSentiment(raw)
	if err != nil {
		uc.log.Warn().Str("raw_response", preview(raw)).Msg("respuesta fuera del enum")
		return nil, err
	}

	uc.crossCheck(req.Review, sentiment)

	return &dto.SentimentResponse{Review: req.Review, Sentiment: sentiment}, nil
}

// crossCheck solo registra desacuerdos con el léxico local; nunca altera el resultado.
func (uc *SentimentUseCase) crossCheck(review string, sentiment domain.Sentiment) {
	if uc.lexicon == nil {
		return
	}
	score, label := uc.lexicon.Polarity(review)
	if label == "neutral" || label == string(sentiment) {
		return
	}
	uc.log.Warn().
		Str("llm_sentiment", string(sentiment)).
		Str("lexicon_label", label).
		Float64("lexicon_score", score).
		Msg("el léxico local discrepa del LLM")
}

// preview recorta la respuesta cruda para los logs.
func preview(raw string) string {
	const max = 100
	if len(raw) > max {
		return raw[:max] + "..."
	}
	return raw
}
