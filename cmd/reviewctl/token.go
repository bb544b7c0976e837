package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/review-insights-api/pkg/jwt"
)

var (
	tokenClient  string
	tokenMinutes int
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Genera un Bearer token para la API (requiere JWT_SECRET)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cfg.JWT.Enabled() {
			return errors.New("JWT_SECRET environment variable is not set")
		}
		minutes := tokenMinutes
		if minutes <= 0 {
			minutes = cfg.JWT.Expiration
		}
		tok, err := jwt.Generate(cfg.JWT.Secret, tokenClient, cfg.JWT.Issuer, minutes)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), tok)
		return err
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenClient, "client", "", "identificador del cliente")
	tokenCmd.Flags().IntVar(&tokenMinutes, "minutes", 0, "vigencia en minutos (por defecto JWT_EXPIRATION_MINUTES)")
	_ = tokenCmd.MarkFlagRequired("client")
}
