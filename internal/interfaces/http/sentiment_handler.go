package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/review-insights-api/internal/application/usecase"
	"github.com/jhoicas/review-insights-api/internal/application/validation"
)

// SentimentHandler maneja la clasificación de reseñas.
type SentimentHandler struct {
	uc *usecase.SentimentUseCase
}

// NewSentimentHandler construye el handler.
func NewSentimentHandler(uc *usecase.SentimentUseCase) *SentimentHandler {
	return &SentimentHandler{uc: uc}
}

// Classify godoc
// @Summary      Clasificar el sentimiento de una reseña
// @Description  Devuelve "positive" o "negative". También disponible como POST /classify.
// @Tags         sentiment
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReviewRequest  true  "review (obligatorio)"
// @Success      200   {object}  dto.SentimentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /sentiment [post]
func (h *SentimentHandler) Classify(c *fiber.Ctx) error {
	body, err := parseBody(c)
	if err != nil {
		return invalidBody(c)
	}
	req, err := validation.ValidateReview(body)
	if err != nil {
		return writeError(c, err)
	}

	result, err := h.uc.Classify(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(result)
}
