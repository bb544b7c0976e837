// Package validation contiene la validación pura de los cuerpos de petición.
// Trabaja sobre el cuerpo ya parseado (map[string]any de encoding/json o yaml.v3)
// para poder distinguir "campo ausente" de "campo con tipo incorrecto".
package validation

import (
	"strings"

	"github.com/jhoicas/review-insights-api/internal/application/dto"
	"github.com/jhoicas/review-insights-api/internal/domain"
)

// Mensajes devueltos al cliente.
const (
	MsgMissingReview  = "Missing review text in request"
	MsgInvalidReview  = "Invalid review text"
	MsgInvalidReviews = "reviews must be a list of strings"
	MsgMissingBox     = "Missing box information to score"
)

// ValidateReview exige un campo review de tipo string con al menos un carácter no blanco.
func ValidateReview(body map[string]any) (dto.ReviewRequest, error) {
	raw, ok := body["review"]
	if !ok {
		return dto.ReviewRequest{}, domain.NewValidationError(MsgMissingReview)
	}
	review, ok := raw.(string)
	if !ok || strings.TrimSpace(review) == "" {
		return dto.ReviewRequest{}, domain.NewValidationError(MsgInvalidReview)
	}
	return dto.ReviewRequest{Review: review}, nil
}

// ValidateBoxScore normaliza la petición de puntaje. Los campos ausentes se reemplazan
// por su placeholder; los presentes con tipo incorrecto se rechazan.
// Debe venir future_box_info o box_info con contenido.
func ValidateBoxScore(body map[string]any) (dto.BoxScoreRequest, error) {
	var out dto.BoxScoreRequest

	reviews, err := stringList(body, "reviews")
	if err != nil {
		return out, err
	}
	out.Reviews = reviews

	boxInfo, hasBox, err := optionalString(body, "box_info")
	if err != nil {
		return out, err
	}
	future, hasFuture, err := optionalString(body, "future_box_info")
	if err != nil {
		return out, err
	}
	historical, hasHistorical, err := optionalString(body, "historical_data")
	if err != nil {
		return out, err
	}

	if !(hasFuture && strings.TrimSpace(future) != "") && !(hasBox && strings.TrimSpace(boxInfo) != "") {
		return out, domain.NewValidationError(MsgMissingBox)
	}

	out.FutureBoxInfo = future
	out.BoxInfo = boxInfo
	if !hasBox {
		out.BoxInfo = dto.DefaultBoxInfo
	}
	out.HistoricalData = historical
	if !hasHistorical {
		out.HistoricalData = dto.DefaultHistoricalData
	}
	return out, nil
}

// optionalString: null o ausente cuenta como ausente.
func optionalString(body map[string]any, key string) (string, bool, error) {
	raw, ok := body[key]
	if !ok || raw == nil {
		return "", false, nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", false, domain.NewValidationError(key + " must be a string")
	}
	return s, true, nil
}

func stringList(body map[string]any, key string) ([]string, error) {
	raw, ok := body[key]
	if !ok || raw == nil {
		return []string{}, nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, domain.NewValidationError(MsgInvalidReviews)
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, domain.NewValidationError(MsgInvalidReviews)
		}
		out = append(out, s)
	}
	return out, nil
}
