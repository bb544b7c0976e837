package dto

import "github.com/jhoicas/review-insights-api/internal/domain"

// Valores por defecto cuando el campo no viene en la petición.
const (
	DefaultBoxInfo        = "No box information provided"
	DefaultHistoricalData = "No historical data provided"
	NoReviewsPlaceholder  = "No reviews provided"
)

// BoxScoreRequest entrada normalizada de POST /predict_box_score.
// FutureBoxInfo identifica la caja a puntuar; si está vacío se usa BoxInfo.
type BoxScoreRequest struct {
	Reviews        []string `json:"reviews" yaml:"reviews"`
	BoxInfo        string   `json:"box_info" yaml:"box_info"`
	HistoricalData string   `json:"historical_data" yaml:"historical_data"`
	FutureBoxInfo  string   `json:"future_box_info,omitempty" yaml:"future_box_info"`
}

// TargetBox descripción de la caja que se va a puntuar.
func (r BoxScoreRequest) TargetBox() string {
	if r.FutureBoxInfo != "" {
		return r.FutureBoxInfo
	}
	return r.BoxInfo
}

// BoxScoreResponse salida: número en modo entero, string "4.20" en modo decimal.
type BoxScoreResponse struct {
	PredictedBoxScore domain.Score       `json:"predicted_box_score"`
	ScoringMode       domain.ScoringMode `json:"scoring_mode"`
}
