package http

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/review-insights-api/internal/application/dto"
	"github.com/jhoicas/review-insights-api/internal/domain"
)

// Códigos de error expuestos en el campo "code".
const (
	CodeInvalidBody     = "INVALID_BODY"
	CodeValidation      = "VALIDATION"
	CodeInvalidResponse = "INVALID_RESPONSE"
	CodeUpstream        = "UPSTREAM"
	CodeInternal        = "INTERNAL"
	CodeMissingToken    = "MISSING_TOKEN"
	CodeInvalidToken    = "INVALID_TOKEN"
)

// writeError traduce el tipo de error del pipeline a status HTTP + cuerpo {"error","code"}.
func writeError(c *fiber.Ctx, err error) error {
	status, code := fiber.StatusInternalServerError, CodeInternal
	switch domain.KindOf(err) {
	case domain.ErrValidation:
		status, code = fiber.StatusBadRequest, CodeValidation
	case domain.ErrInvalidResponse:
		code = CodeInvalidResponse
	case domain.ErrTransport:
		code = CodeUpstream
	}
	return c.Status(status).JSON(dto.ErrorResponse{Error: err.Error(), Code: code})
}

// parseBody decodifica el cuerpo como objeto JSON genérico. Un cuerpo vacío
// equivale a un objeto vacío para que la validación reporte el campo que falta.
func parseBody(c *fiber.Ctx) (map[string]any, error) {
	body := map[string]any{}
	raw := c.Body()
	if len(raw) == 0 {
		return body, nil
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	if body == nil {
		return nil, errors.New("body must be a JSON object")
	}
	return body, nil
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: "Request body must be a JSON object", Code: CodeInvalidBody,
	})
}
