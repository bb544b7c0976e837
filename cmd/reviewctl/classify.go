package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/review-insights-api/internal/application/usecase"
	"github.com/jhoicas/review-insights-api/internal/application/validation"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <review text>",
	Short: "Clasifica una reseña como positive o negative",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := validation.ValidateReview(map[string]any{"review": strings.Join(args, " ")})
		if err != nil {
			return err
		}

		llm, err := newLLM(cmd.Context())
		if err != nil {
			return err
		}
		uc := usecase.NewSentimentUseCase(llm, newLexicon(), log)

		result, err := uc.Classify(cmd.Context(), req)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), result)
	},
}
