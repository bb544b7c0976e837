package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/review-insights-api/internal/application/usecase"
	"github.com/jhoicas/review-insights-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SentimentUC *usecase.SentimentUseCase
	BoxScoreUC  *usecase.BoxScoreUseCase
	// JWTSecret vacío = rutas públicas.
	JWTSecret string
}

// NewApp crea la aplicación Fiber con recover, request id y log de peticiones.
func NewApp(name string, log *logger.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      name,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Second * 60,
		// Sin WriteTimeout: la llamada al LLM puede tardar hasta LLM_TIMEOUT_SECONDS.
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error(), "code": CodeInternal})
		},
	})
	app.Use(recover.New())
	app.Use(RequestID())
	app.Use(RequestLogger(log))
	return app
}

// Router registra las rutas de la API. Con JWTSecret configurado las rutas de
// clasificación y puntaje exigen Bearer token; /health queda siempre público.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", Health)

	var guard []fiber.Handler
	if deps.JWTSecret != "" {
		guard = append(guard, AuthMiddleware(deps.JWTSecret))
	}

	sentimentHandler := NewSentimentHandler(deps.SentimentUC)
	app.Post("/sentiment", append(guard, sentimentHandler.Classify)...)
	app.Post("/classify", append(guard, sentimentHandler.Classify)...)

	boxScoreHandler := NewBoxScoreHandler(deps.BoxScoreUC)
	app.Post("/predict_box_score", append(guard, boxScoreHandler.Predict)...)
}
