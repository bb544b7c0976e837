package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/review-insights-api/internal/application/usecase"
	"github.com/jhoicas/review-insights-api/internal/application/validation"
	"github.com/jhoicas/review-insights-api/internal/domain"
)

var (
	scoreFile string
	scoreMode string
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Predice el puntaje de una caja a partir de un archivo YAML o JSON",
	Long: "El archivo tiene los mismos campos que POST /predict_box_score: " +
		"reviews, box_info, historical_data y future_box_info.",
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := loadPayload(scoreFile)
		if err != nil {
			return err
		}
		req, err := validation.ValidateBoxScore(body)
		if err != nil {
			return err
		}

		mode := cfg.Scoring.Mode
		if scoreMode != "" {
			if mode, err = domain.ParseScoringMode(scoreMode); err != nil {
				return err
			}
		}

		llm, err := newLLM(cmd.Context())
		if err != nil {
			return err
		}
		uc := usecase.NewBoxScoreUseCase(llm, mode, log)

		result, err := uc.Predict(cmd.Context(), req)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), result)
	},
}

func init() {
	scoreCmd.Flags().StringVarP(&scoreFile, "file", "f", "", "archivo con la petición (YAML o JSON)")
	scoreCmd.Flags().StringVar(&scoreMode, "mode", "", "integer|decimal (por defecto SCORING_MODE)")
	_ = scoreCmd.MarkFlagRequired("file")
}

// loadPayload lee el archivo como documento YAML genérico; JSON también se acepta
// porque es un subconjunto de YAML.
func loadPayload(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", path, err)
	}
	body := map[string]any{}
	if err := yaml.Unmarshal(data, &body); err != nil {
		return nil, fmt.Errorf("parsear %s: %w", path, err)
	}
	return body, nil
}
