package llm

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/raanand/careerbot/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModels_OpenAICompatibleListing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/models", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		fmt.Fprint(w, `{"data": [{"id": "gpt-5-mini"}, {"id": "gpt-5"}]}`)
	}))
	defer server.Close()

	provider := NewCustomOpenAI(server.URL, "test-key", "")
	models, err := provider.Models(context.Background())

	require.NoError(t, err)
	require.Len(t, models, 2)
	assert.Equal(t, "gpt-5-mini", models[0].ID)
	assert.Equal(t, "gpt-5", models[1].ID)
}

func TestModels_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "invalid key"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	provider := NewCustomOpenAI(server.URL, "bad-key", "")
	_, err := provider.Models(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestModels_OllamaTags(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/tags", r.URL.Path)

		fmt.Fprint(w, `{"models": [{"name": "llama3.2:3b"}, {"name": "qwen2.5:7b"}]}`)
	}))
	defer server.Close()

	provider := NewOllama(server.URL, "", "")
	models, err := provider.Models(context.Background())

	require.NoError(t, err)
	require.Len(t, models, 2)
	assert.Equal(t, "llama3.2:3b", models[0].ID)
}

func TestNewModelLister(t *testing.T) {
	cfg := &config.LLMConfig{}

	for _, provider := range []string{"openai", "openrouter", "ollama", "custom"} {
		lister, err := NewModelLister(provider, cfg)
		require.NoError(t, err, provider)
		require.NotNil(t, lister, provider)
	}

	_, err := NewModelLister("bedrock", cfg)
	require.Error(t, err)
}
