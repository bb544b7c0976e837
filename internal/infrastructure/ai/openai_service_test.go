package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/review-insights-api/internal/application/ports"
)

const chatCompletionBody = `{
  "id": "chatcmpl-123",
  "object": "chat.completion",
  "created": 1700000000,
  "model": "gpt-4",
  "choices": [{
    "index": 0,
    "finish_reason": "stop",
    "logprobs": null,
    "message": {"role": "assistant", "content": "negative", "refusal": null}
  }]
}`

func TestOpenAIComplete_MensajesYParametros(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"), r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(chatCompletionBody))
	}))
	t.Cleanup(srv.Close)

	svc := NewOpenAIService("sk-test", "gpt-4", srv.URL+"/", 5*time.Second)
	out, err := svc.Complete(context.Background(), ports.CompletionRequest{
		System: "You are a sentiment analysis expert.", Prompt: "Review: broken", Temperature: 0.3, MaxTokens: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, "negative", out)

	assert.Equal(t, "gpt-4", body["model"])
	assert.Equal(t, 0.3, body["temperature"])
	assert.Equal(t, float64(10), body["max_tokens"])
	msgs, ok := body["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 2)
	assert.Equal(t, "system", msgs[0].(map[string]any)["role"])
	assert.Equal(t, "user", msgs[1].(map[string]any)["role"])
}

func TestOpenAIComplete_SinReintentos(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
	}))
	t.Cleanup(srv.Close)

	svc := NewOpenAIService("sk-test", "gpt-4", srv.URL+"/", 5*time.Second)
	_, err := svc.Complete(context.Background(), ports.CompletionRequest{Prompt: "x", MaxTokens: 5})
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load(), "el SDK no debe reintentar")
}

func TestBuildOpenAIParams_SinSystemUnSoloMensaje(t *testing.T) {
	params := buildOpenAIParams("gpt-4", ports.CompletionRequest{Prompt: "hola"})
	assert.Len(t, params.Messages.Value, 1)
}
