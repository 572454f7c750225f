package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ai-productivity-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOllamaProvider_Generate(t *testing.T) {
	var got ollamaChatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"model":"llama3","message":{"role":"assistant","content":"pong"},"done":true}`))
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL+"/", "")
	out, err := p.Generate(context.Background(), "ping", llm.WithTemperature(0.2))
	require.NoError(t, err)
	assert.Equal(t, "pong", out)

	assert.Equal(t, DefaultModel, got.Model)
	assert.False(t, got.Stream)
	require.NotNil(t, got.Options)
	assert.InDelta(t, 0.2, got.Options.Temperature, 1e-9)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, llm.RoleUser, got.Messages[0].Role)
}

func TestOllamaProvider_EmptyAndErrors(t *testing.T) {
	t.Run("empty content", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"message":{"role":"assistant","content":""},"done":true}`))
		}))
		defer srv.Close()

		_, err := NewOllamaProvider(srv.URL, "m").Generate(context.Background(), "x")
		assert.ErrorIs(t, err, llm.ErrEmptyResponse)
	})

	t.Run("server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("model not found"))
		}))
		defer srv.Close()

		_, err := NewOllamaProvider(srv.URL, "m").Generate(context.Background(), "x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "model not found")
	})
}
