package usecase

import (
	"context"

	"github.com/jhoicas/review-insights-api/internal/application/dto"
	"github.com/jhoicas/review-insights-api/internal/application/ports"
	"github.com/jhoicas/review-insights-api/internal/domain"
	"github.com/jhoicas/review-insights-api/pkg/logger"
)

// BoxScoreUseCase predice el puntaje de una caja futura. El modo (entero 1-10 o
// decimal 1.00-5.00) se fija en la construcción; PredictWithMode permite sobrescribirlo.
type BoxScoreUseCase struct {
	llm  ports.LLMService
	mode domain.ScoringMode
	log  *logger.Logger
}

// NewBoxScoreUseCase construye el caso de uso con el modo configurado.
func NewBoxScoreUseCase(llm ports.LLMService, mode domain.ScoringMode, log *logger.Logger) *BoxScoreUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &BoxScoreUseCase{llm: llm, mode: mode, log: log.Named("box_score")}
}

// Mode modo de puntaje configurado.
func (uc *BoxScoreUseCase) Mode() domain.ScoringMode {
	return uc.mode
}

// Predict usa el modo configurado.
func (uc *BoxScoreUseCase) Predict(ctx context.Context, req dto.BoxScoreRequest) (*dto.BoxScoreResponse, error) {
	return uc.PredictWithMode(ctx, req, uc.mode)
}

// PredictWithMode un único intento contra el LLM; la respuesta se valida sin recortes.
func (uc *BoxScoreUseCase) PredictWithMode(ctx context.Context, req dto.BoxScoreRequest, mode domain.ScoringMode) (*dto.BoxScoreResponse, error) {
	completion := BuildIntegerScoreRequest(req)
	if mode == domain.ScoringModeDecimal {
		completion = BuildDecimalScoreRequest(req)
	}

	raw, err := uc.llm.Complete(ctx, completion)
	if err != nil {
		uc.log.Error().Err(err).Str("mode", string(mode)).Msg("fallo al invocar el LLM")
		return nil, domain.NewTransportError("Error in box score prediction", err)
	}

	score, err := domain.ParseScore(mode, raw)
	if err != nil {
		uc.log.Warn().
			Str("mode", string(mode)).
			Str("raw_response", preview(raw)).
			Msg("puntaje inválido devuelto por el LLM")
		return nil, err
	}

	return &dto.BoxScoreResponse{PredictedBoxScore: score, ScoringMode: mode}, nil
}
