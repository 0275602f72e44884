package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/raanand/careerbot/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(baseURL string) *OpenAICompatible {
	return NewOpenAICompatible(OpenAICompatibleConfig{
		BaseURL:    baseURL,
		APIKey:     "test-key",
		Model:      "gpt-5-mini",
		AuthHeader: "Authorization",
		AuthPrefix: "Bearer ",
	})
}

func TestChat_PlainTextResponse(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		fmt.Fprint(w, `{"choices": [{"message": {"role": "assistant", "content": "I led the payments team."}}]}`)
	}))
	defer server.Close()

	provider := newTestProvider(server.URL)
	msg, err := provider.Chat(context.Background(), []core.Message{
		{Role: core.RoleSystem, Content: "You are acting as Rahul Anand."},
		{Role: core.RoleUser, Content: "What did you work on?"},
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, core.RoleAssistant, msg.Role)
	assert.Equal(t, "I led the payments team.", msg.Content)
	assert.Empty(t, msg.ToolCalls)

	assert.Equal(t, "gpt-5-mini", gotBody["model"])
	_, hasTools := gotBody["tools"]
	assert.False(t, hasTools, "tools key omitted when none are registered")
}

func TestChat_ToolCallResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Contains(t, body, "tools")

		fmt.Fprint(w, `{"choices": [{"message": {
			"role": "assistant",
			"content": "",
			"tool_calls": [{
				"id": "call_1",
				"type": "function",
				"function": {"name": "record_unknown_question", "arguments": "{\"question\": \"favourite colour?\"}"}
			}]
		}}]}`)
	}))
	defer server.Close()

	provider := newTestProvider(server.URL)
	tools := []core.Tool{{Type: "function", Function: core.Function{Name: "record_unknown_question", Parameters: json.RawMessage(`{}`)}}}

	msg, err := provider.Chat(context.Background(), []core.Message{{Role: core.RoleUser, Content: "hi"}}, tools)
	require.NoError(t, err)
	require.Len(t, msg.ToolCalls, 1)
	assert.Equal(t, "call_1", msg.ToolCalls[0].ID)
	assert.Equal(t, "record_unknown_question", msg.ToolCalls[0].Function.Name)
	assert.JSONEq(t, `{"question": "favourite colour?"}`, msg.ToolCalls[0].Function.Arguments)
}

func TestChat_RemoteError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error": {"message": "rate limited"}}`)
	}))
	defer server.Close()

	provider := newTestProvider(server.URL)
	_, err := provider.Chat(context.Background(), []core.Message{{Role: core.RoleUser, Content: "hi"}}, nil)

	require.Error(t, err)
	var pe *ProviderError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, KindRemote, pe.Kind)
	assert.Equal(t, http.StatusTooManyRequests, pe.Status)
}

func TestChat_TransportError(t *testing.T) {
	// Closed server: connection refused
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	provider := newTestProvider(server.URL)
	_, err := provider.Chat(context.Background(), []core.Message{{Role: core.RoleUser, Content: "hi"}}, nil)

	require.Error(t, err)
	assert.Equal(t, KindTransport, KindOf(err))
}

func TestChat_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"choices": []}`)
	}))
	defer server.Close()

	provider := newTestProvider(server.URL)
	_, err := provider.Chat(context.Background(), []core.Message{{Role: core.RoleUser, Content: "hi"}}, nil)

	require.Error(t, err)
	assert.Equal(t, KindRemote, KindOf(err))
}
