package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Sentiment resultado de la clasificación de una reseña.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
)

var lower = cases.Lower(language.Und)

// ParseSentiment normaliza la respuesta del LLM (trim + minúsculas) y exige
// exactamente uno de los dos valores del enum.
func ParseSentiment(raw string) (Sentiment, error) {
	normalized := lower.String(strings.TrimSpace(raw))
	switch Sentiment(normalized) {
	case SentimentPositive:
		return SentimentPositive, nil
	case SentimentNegative:
		return SentimentNegative, nil
	}
	return "", NewInvalidResponseError("Error in sentiment classification: invalid sentiment classification received")
}
