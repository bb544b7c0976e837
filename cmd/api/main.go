package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"

	"github.com/jhoicas/review-insights-api/internal/application/ports"
	"github.com/jhoicas/review-insights-api/internal/application/usecase"
	infraai "github.com/jhoicas/review-insights-api/internal/infrastructure/ai"
	"github.com/jhoicas/review-insights-api/internal/infrastructure/lexicon"
	httpRouter "github.com/jhoicas/review-insights-api/internal/interfaces/http"
	"github.com/jhoicas/review-insights-api/pkg/config"
	"github.com/jhoicas/review-insights-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})

	// Sin credencial del proveedor el proceso no llega a escuchar.
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}

	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("llm_provider", cfg.AI.Provider).
		Str("scoring_mode", string(cfg.Scoring.Mode)).
		Bool("auth", cfg.JWT.Enabled()).
		Msg("iniciando aplicación")

	ctx := context.Background()
	llm, err := infraai.NewLLMService(ctx, cfg.AI)
	if err != nil {
		log.Fatal().Err(err).Msg("cliente LLM")
	}

	var lex ports.SentimentLexicon
	if cfg.Scoring.LexiconEnabled {
		lex = lexicon.NewVaderLexicon()
	}

	sentimentUC := usecase.NewSentimentUseCase(llm, lex, log)
	boxScoreUC := usecase.NewBoxScoreUseCase(llm, cfg.Scoring.Mode, log)

	app := httpRouter.NewApp(cfg.App.Name, log)

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Review Insights API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		SentimentUC: sentimentUC,
		BoxScoreUC:  boxScoreUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.AI.Timeout+5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
