package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ScoringMode contrato de salida del predictor de puntaje de cajas.
type ScoringMode string

const (
	// ScoringModeInteger entero sin decimales en [1, 10].
	ScoringModeInteger ScoringMode = "integer"
	// ScoringModeDecimal decimal con dos dígitos en [1.00, 5.00].
	ScoringModeDecimal ScoringMode = "decimal"
)

// Límites de cada modo.
const (
	MinIntegerScore = 1
	MaxIntegerScore = 10
)

var (
	MinDecimalScore = decimal.NewFromInt(1)
	MaxDecimalScore = decimal.NewFromInt(5)
)

// ParseScoringMode valida el modo configurado.
func ParseScoringMode(s string) (ScoringMode, error) {
	switch ScoringMode(strings.ToLower(strings.TrimSpace(s))) {
	case ScoringModeInteger:
		return ScoringModeInteger, nil
	case ScoringModeDecimal:
		return ScoringModeDecimal, nil
	}
	return "", fmt.Errorf("scoring mode desconocido %q (integer|decimal)", s)
}

// Score puntaje ya validado. Solo uno de Int/Dec tiene sentido según Mode.
type Score struct {
	Mode ScoringMode
	Int  int
	Dec  decimal.Decimal
}

// String representación canónica: "7" o "4.20".
func (s Score) String() string {
	if s.Mode == ScoringModeDecimal {
		return s.Dec.StringFixed(2)
	}
	return strconv.Itoa(s.Int)
}

// MarshalJSON número en modo entero, string con dos decimales en modo decimal.
func (s Score) MarshalJSON() ([]byte, error) {
	if s.Mode == ScoringModeDecimal {
		return json.Marshal(s.Dec.StringFixed(2))
	}
	return json.Marshal(s.Int)
}

// ParseIntegerScore acepta solo dígitos decimales y un valor en [1, 10].
// Nunca recorta valores fuera de rango.
func ParseIntegerScore(raw string) (Score, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.IndexFunc(trimmed, func(r rune) bool { return r < '0' || r > '9' }) != -1 {
		return Score{}, NewInvalidResponseError("Error in box score prediction: invalid score format received")
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil || n < MinIntegerScore || n > MaxIntegerScore {
		return Score{}, NewInvalidResponseError("Error in box score prediction: score out of range 1-10")
	}
	return Score{Mode: ScoringModeInteger, Int: n}, nil
}

// ParseDecimalScore interpreta un número en [1.00, 5.00] y lo canonicaliza a dos decimales.
func ParseDecimalScore(raw string) (Score, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return Score{}, NewInvalidResponseError("Error in box score prediction: score is not a number")
	}
	if d.LessThan(MinDecimalScore) || d.GreaterThan(MaxDecimalScore) {
		return Score{}, NewInvalidResponseError("Error in box score prediction: score out of range 1.00-5.00")
	}
	return Score{Mode: ScoringModeDecimal, Dec: d.Round(2)}, nil
}

// ParseScore despacha según el modo.
func ParseScore(mode ScoringMode, raw string) (Score, error) {
	if mode == ScoringModeDecimal {
		return ParseDecimalScore(raw)
	}
	return ParseIntegerScore(raw)
}
