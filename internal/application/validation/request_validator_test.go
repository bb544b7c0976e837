package validation_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/review-insights-api/internal/application/dto"
	"github.com/jhoicas/review-insights-api/internal/application/validation"
	"github.com/jhoicas/review-insights-api/internal/domain"
)

// body parsea JSON igual que lo hace el handler HTTP.
func body(t *testing.T, raw string) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	return m
}

func TestValidateReview_OK(t *testing.T) {
	got, err := validation.ValidateReview(body(t, `{"review":"  Great box!  "}`))
	require.NoError(t, err)
	// El texto se conserva literal, sin trim.
	assert.Equal(t, "  Great box!  ", got.Review)
}

func TestValidateReview_Errores(t *testing.T) {
	tests := []struct {
		name string
		in   string
		msg  string
	}{
		{"sin campo", `{}`, validation.MsgMissingReview},
		{"vacío", `{"review":""}`, validation.MsgInvalidReview},
		{"solo espacios", `{"review":"   \n\t"}`, validation.MsgInvalidReview},
		{"no string", `{"review":42}`, validation.MsgInvalidReview},
		{"null", `{"review":null}`, validation.MsgInvalidReview},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := validation.ValidateReview(body(t, tc.in))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Equal(t, tc.msg, err.Error())
		})
	}
}

func TestValidateReview_CuerpoNil(t *testing.T) {
	_, err := validation.ValidateReview(nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestValidateBoxScore_AplicaPlaceholders(t *testing.T) {
	got, err := validation.ValidateBoxScore(body(t, `{"future_box_info":"Winter snacks box"}`))
	require.NoError(t, err)

	assert.Empty(t, got.Reviews)
	assert.Equal(t, dto.DefaultBoxInfo, got.BoxInfo)
	assert.Equal(t, dto.DefaultHistoricalData, got.HistoricalData)
	assert.Equal(t, "Winter snacks box", got.TargetBox())
}

func TestValidateBoxScore_CamposCompletos(t *testing.T) {
	got, err := validation.ValidateBoxScore(body(t, `{
		"reviews": ["loved it", "meh"],
		"box_info": "Spring box, 8 items",
		"historical_data": "Jan 4.1, Feb 4.3"
	}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"loved it", "meh"}, got.Reviews)
	assert.Equal(t, "Spring box, 8 items", got.TargetBox())
	assert.Equal(t, "Jan 4.1, Feb 4.3", got.HistoricalData)
}

func TestValidateBoxScore_Errores(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"review no string", `{"reviews":[1,"ok"],"box_info":"x"}`},
		{"reviews no lista", `{"reviews":"ok","box_info":"x"}`},
		{"sin caja", `{"reviews":["ok"]}`},
		{"caja en blanco", `{"box_info":"  ","future_box_info":""}`},
		{"box_info no string", `{"box_info":12}`},
		{"historical no string", `{"box_info":"x","historical_data":["a"]}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := validation.ValidateBoxScore(body(t, tc.in))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}
