package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/review-insights-api/internal/application/usecase"
	"github.com/jhoicas/review-insights-api/internal/application/validation"
)

// BoxScoreHandler maneja la predicción de puntaje de cajas.
type BoxScoreHandler struct {
	uc *usecase.BoxScoreUseCase
}

// NewBoxScoreHandler construye el handler.
func NewBoxScoreHandler(uc *usecase.BoxScoreUseCase) *BoxScoreHandler {
	return &BoxScoreHandler{uc: uc}
}

// Predict godoc
// @Summary      Predecir el puntaje de una caja futura
// @Description  Entero 1-10 (scoring_mode=integer) o string "1.00"-"5.00" (scoring_mode=decimal).
// @Tags         box-score
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BoxScoreRequest  true  "future_box_info o box_info obligatorio"
// @Success      200   {object}  dto.BoxScoreResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /predict_box_score [post]
func (h *BoxScoreHandler) Predict(c *fiber.Ctx) error {
	body, err := parseBody(c)
	if err != nil {
		return invalidBody(c)
	}
	req, err := validation.ValidateBoxScore(body)
	if err != nil {
		return writeError(c, err)
	}

	result, err := h.uc.Predict(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(result)
}
