package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/review-insights-api/internal/domain"
	apphttp "github.com/jhoicas/review-insights-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/review-insights-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "review-insights-test"
)

func authedPost(t *testing.T, app *fiber.App, path, body, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAuth_SinHeader_Retorna401(t *testing.T) {
	app := buildTestApp(replying("positive"), domain.ScoringModeInteger, testJWTSecret)
	resp := authedPost(t, app, "/sentiment", `{"review":"nice"}`, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, apphttp.CodeMissingToken, body["code"])
}

func TestAuth_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(replying("positive"), domain.ScoringModeInteger, testJWTSecret)

	for _, header := range []string{"Bearer token.invalido.aqui", "Basic abc", "Bearer "} {
		resp := authedPost(t, app, "/predict_box_score", `{"box_info":"b"}`, header)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, header)
	}
}

func TestAuth_TokenValido_Pasa(t *testing.T) {
	app := buildTestApp(replying("positive"), domain.ScoringModeInteger, testJWTSecret)
	tok, err := pkgjwt.Generate(testJWTSecret, "dashboard", testIssuer, 60)
	require.NoError(t, err)

	resp := authedPost(t, app, "/sentiment", `{"review":"nice"}`, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_ExtraeClientID(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"client_id": apphttp.GetClientID(c)})
	})
	tok, err := pkgjwt.Generate(testJWTSecret, "reviewctl", testIssuer, 60)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "reviewctl", body["client_id"])
}

func TestAuth_SinSecret_RutasPublicas(t *testing.T) {
	app := buildTestApp(replying("negative"), domain.ScoringModeInteger, "")
	resp := authedPost(t, app, "/sentiment", `{"review":"meh"}`, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
