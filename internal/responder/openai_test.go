package responder

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-medcare/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIClient_Complete(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		_ = json.NewDecoder(r.Body).Decode(&gotBody)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"breathe slowly"},"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	client, err := NewOpenAIClient(config.LLM{APIKey: "sk-test", BaseURL: srv.URL, Model: "tiny", SystemPrompt: "be kind"})
	require.NoError(t, err)

	answer, err := client.Complete(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "breathe slowly", answer)
	assert.Equal(t, "tiny", gotBody["model"])
}

func TestOpenAIClient_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	client, err := NewOpenAIClient(config.LLM{APIKey: "sk", BaseURL: srv.URL, Model: "tiny"})
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), "hello")
	assert.Error(t, err)
}

func TestOpenAIClient_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client, err := NewOpenAIClient(config.LLM{APIKey: "sk", BaseURL: srv.URL, Model: "tiny"})
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), "hello")
	assert.Error(t, err)
}

func TestNewOpenAIClient_NoKey(t *testing.T) {
	_, err := NewOpenAIClient(config.LLM{})
	assert.Error(t, err)
}
