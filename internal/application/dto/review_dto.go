package dto

import "github.com/jhoicas/review-insights-api/internal/domain"

// ReviewRequest entrada de clasificación de sentimiento.
type ReviewRequest struct {
	Review string `json:"review"`
}

// SentimentResponse salida de POST /sentiment.
type SentimentResponse struct {
	Review    string           `json:"review"`
	Sentiment domain.Sentiment `json:"sentiment"`
}
