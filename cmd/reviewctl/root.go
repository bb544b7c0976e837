package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/review-insights-api/internal/application/ports"
	infraai "github.com/jhoicas/review-insights-api/internal/infrastructure/ai"
	"github.com/jhoicas/review-insights-api/internal/infrastructure/lexicon"
	"github.com/jhoicas/review-insights-api/pkg/config"
	"github.com/jhoicas/review-insights-api/pkg/logger"
)

var (
	verbose bool

	cfg *config.Config
	log *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "reviewctl",
	Short: "Clasifica reseñas y predice puntajes de cajas desde la terminal",
	Long: "reviewctl ejecuta el mismo pipeline que la API (prompt, LLM, validación) " +
		"sin levantar el servidor. La configuración sale de las mismas variables de entorno.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		// Los logs van a stderr para no mezclarse con el resultado.
		log = logger.Nop()
		if verbose {
			log = logger.New(logger.Config{Env: "development", Level: "debug", Out: os.Stderr})
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "logs de depuración en stderr")
	rootCmd.AddCommand(classifyCmd, scoreCmd, tokenCmd)
}

// newLLM valida la credencial del proveedor y construye el cliente.
func newLLM(ctx context.Context) (ports.LLMService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return infraai.NewLLMService(ctx, cfg.AI)
}

func newLexicon() ports.SentimentLexicon {
	if !cfg.Scoring.LexiconEnabled {
		return nil
	}
	return lexicon.NewVaderLexicon()
}

func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
