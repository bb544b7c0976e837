package usecase

import (
	"fmt"
	"strings"

	"github.com/jhoicas/review-insights-api/internal/application/dto"
	"github.com/jhoicas/review-insights-api/internal/application/ports"
)

const sentimentSystemPrompt = "You are a sentiment analysis expert. Respond with only 'positive' or 'negative'."

const boxScoreSystemPrompt = "You are a subscription box analyst. Respond with only the score, no words."

// Parámetros de muestreo fijos por operación.
const (
	sentimentTemperature = 0.3
	sentimentMaxTokens   = 10

	integerScoreTemperature = 0.7
	integerScoreMaxTokens   = 5

	decimalScoreTemperature = 0.5
	decimalScoreMaxTokens   = 10
)

// BuildSentimentRequest embebe la reseña literal y pide exactamente un token.
func BuildSentimentRequest(review string) ports.CompletionRequest {
	prompt := fmt.Sprintf(`Classify the sentiment of the following review as either 'positive' or 'negative'.
Review: %s
Sentiment:`, review)

	return ports.CompletionRequest{
		System:      sentimentSystemPrompt,
		Prompt:      prompt,
		Temperature: sentimentTemperature,
		MaxTokens:   sentimentMaxTokens,
	}
}

// BuildIntegerScoreRequest prompt de puntaje 1-10 con cuatro factores ponderados.
func BuildIntegerScoreRequest(in dto.BoxScoreRequest) ports.CompletionRequest {
	prompt := fmt.Sprintf(`Predict how well the following subscription box will be received by customers.

Customer reviews:
%s

Box information:
%s

Historical data:
%s

Weigh these factors:
- Customer sentiment from the reviews (40%%)
- Product variety in the box (20%%)
- Retail value and surprise factor (25%%)
- Historical trend of previous boxes (15%%)

Respond with only a single integer from 1 to 10, where 10 is the best possible box. Do not include decimals or any other text.`,
		joinReviews(in.Reviews), in.TargetBox(), in.HistoricalData)

	return ports.CompletionRequest{
		System:      boxScoreSystemPrompt,
		Prompt:      prompt,
		Temperature: integerScoreTemperature,
		MaxTokens:   integerScoreMaxTokens,
	}
}

// BuildDecimalScoreRequest prompt que simula la calificación histórica 1-5 con dos decimales.
func BuildDecimalScoreRequest(in dto.BoxScoreRequest) ports.CompletionRequest {
	prompt := fmt.Sprintf(`Historical box ratings use a 1 to 5 scale with two decimal places (for example 4.37).

Historical data:
%s

Box to score:
%s

Additional box information:
%s

Customer reviews of recent boxes:
%s

Simulate the average rating customers would give the box to score, following the historical rating convention.
Respond with only the number, between 1.00 and 5.00, with exactly two digits after the decimal point.`,
		in.HistoricalData, in.TargetBox(), in.BoxInfo, joinReviews(in.Reviews))

	return ports.CompletionRequest{
		System:      boxScoreSystemPrompt,
		Prompt:      prompt,
		Temperature: decimalScoreTemperature,
		MaxTokens:   decimalScoreMaxTokens,
	}
}

func joinReviews(reviews []string) string {
	if len(reviews) == 0 {
		return dto.NoReviewsPlaceholder
	}
	return "- " + strings.Join(reviews, "\n- ")
}
