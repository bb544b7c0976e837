package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/review-insights-api/internal/application/validation"
	"github.com/jhoicas/review-insights-api/internal/domain"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadPayload_YAML(t *testing.T) {
	path := writeFile(t, "box.yaml", `
reviews:
  - Great snacks
  - Too small
box_info: Spring box
historical_data: avg 7.8
`)
	body, err := loadPayload(path)
	require.NoError(t, err)

	req, err := validation.ValidateBoxScore(body)
	require.NoError(t, err)
	assert.Equal(t, []string{"Great snacks", "Too small"}, req.Reviews)
	assert.Equal(t, "Spring box", req.BoxInfo)
	assert.Equal(t, "avg 7.8", req.HistoricalData)
}

func TestLoadPayload_JSON(t *testing.T) {
	path := writeFile(t, "box.json", `{"future_box_info": "Summer box", "reviews": []}`)
	body, err := loadPayload(path)
	require.NoError(t, err)

	req, err := validation.ValidateBoxScore(body)
	require.NoError(t, err)
	assert.Equal(t, "Summer box", req.TargetBox())
	assert.Empty(t, req.Reviews)
}

func TestLoadPayload_ReviewsNoString(t *testing.T) {
	path := writeFile(t, "bad.yaml", "reviews: [1, ok]\nbox_info: b\n")
	body, err := loadPayload(path)
	require.NoError(t, err)

	_, err = validation.ValidateBoxScore(body)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestLoadPayload_ArchivoInexistente(t *testing.T) {
	_, err := loadPayload(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
