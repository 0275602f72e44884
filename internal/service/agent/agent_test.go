package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/raanand/careerbot/internal/config"
	"github.com/raanand/careerbot/internal/core"
	"github.com/raanand/careerbot/internal/profile"
	"github.com/raanand/careerbot/internal/providers/llm"
	"github.com/raanand/careerbot/internal/storage/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockProvider replays scripted responses and records every request it saw.
type mockProvider struct {
	responses []core.Message
	err       error
	requests  [][]core.Message
}

func (m *mockProvider) Chat(ctx context.Context, history []core.Message, tools []core.Tool) (core.Message, error) {
	snapshot := make([]core.Message, len(history))
	copy(snapshot, history)
	m.requests = append(m.requests, snapshot)

	if m.err != nil {
		return core.Message{}, m.err
	}
	if len(m.requests) <= len(m.responses) {
		return m.responses[len(m.requests)-1], nil
	}
	return m.responses[len(m.responses)-1], nil
}

// mockTools acknowledges every call and counts executions.
type mockTools struct {
	calls []string
}

func (m *mockTools) Definitions() []core.Tool {
	return []core.Tool{{Type: "function", Function: core.Function{Name: "record_unknown_question", Parameters: json.RawMessage(`{}`)}}}
}

func (m *mockTools) Call(ctx context.Context, name string, args string) (string, error) {
	m.calls = append(m.calls, name)
	return `{"recorded": "ok"}`, nil
}

func newTestAgent(provider core.AIProvider, tools core.ToolSource) *Agent {
	cfg := &config.AppConfig{
		ContextWindowSize: 30,
		MaxToolRounds:     10,
	}
	bundle := &profile.Bundle{
		Name:    "Rahul Anand",
		Summary: "Backend engineer.",
	}
	return NewAgent(cfg, bundle, provider, tools, session.NewHistoryRepo())
}

func toolCallResponse(ids ...string) core.Message {
	msg := core.Message{Role: core.RoleAssistant}
	for _, id := range ids {
		msg.ToolCalls = append(msg.ToolCalls, core.ToolCall{
			ID:   id,
			Type: "function",
			Function: core.FunctionCall{
				Name:      "record_unknown_question",
				Arguments: `{"question": "q"}`,
			},
		})
	}
	return msg
}

func TestRun_PlainTextTerminatesFirstRound(t *testing.T) {
	provider := &mockProvider{responses: []core.Message{
		{Role: core.RoleAssistant, Content: "I spent six years building payment systems."},
	}}
	ag := newTestAgent(provider, &mockTools{})

	reply := ag.Run(context.Background(), "s1", "What did you build?", nil)

	assert.Equal(t, "I spent six years building payment systems.", reply)
	assert.Len(t, provider.requests, 1, "no tool calls means exactly one round trip")
}

func TestRun_SystemTurnIsAlwaysFirst(t *testing.T) {
	provider := &mockProvider{responses: []core.Message{
		toolCallResponse("call_1"),
		{Role: core.RoleAssistant, Content: "done"},
	}}
	ag := newTestAgent(provider, &mockTools{})

	_ = ag.Run(context.Background(), "s1", "first", nil)
	_ = ag.Run(context.Background(), "s1", "second", nil)

	require.GreaterOrEqual(t, len(provider.requests), 3)
	for i, req := range provider.requests {
		require.NotEmpty(t, req, "request %d", i)
		assert.Equal(t, core.RoleSystem, req[0].Role, "request %d", i)
		assert.Contains(t, req[0].Content, "You are acting as Rahul Anand")
		for _, msg := range req[1:] {
			assert.NotEqual(t, core.RoleSystem, msg.Role, "exactly one system turn in request %d", i)
		}
	}
}

func TestRun_AllToolCallsExecutedBeforeResubmit(t *testing.T) {
	provider := &mockProvider{responses: []core.Message{
		toolCallResponse("call_1", "call_2", "call_3"),
		{Role: core.RoleAssistant, Content: "recorded them"},
	}}
	tools := &mockTools{}
	ag := newTestAgent(provider, tools)

	reply := ag.Run(context.Background(), "s1", "three things", nil)

	assert.Equal(t, "recorded them", reply)
	assert.Len(t, tools.calls, 3)
	require.Len(t, provider.requests, 2)

	second := provider.requests[1]
	require.GreaterOrEqual(t, len(second), 3)
	gotIDs := make(map[string]bool)
	for _, msg := range second[len(second)-3:] {
		assert.Equal(t, core.RoleTool, msg.Role)
		assert.JSONEq(t, `{"recorded": "ok"}`, msg.Content)
		gotIDs[msg.ToolCallID] = true
	}
	assert.Equal(t, map[string]bool{"call_1": true, "call_2": true, "call_3": true}, gotIDs)
}

func TestRun_RoundTripCap(t *testing.T) {
	// Provider never settles: every response demands another tool round.
	provider := &mockProvider{responses: []core.Message{toolCallResponse("call_1")}}
	tools := &mockTools{}
	ag := newTestAgent(provider, tools)

	reply := ag.Run(context.Background(), "s1", "loop forever", nil)

	assert.Equal(t, apologyBusy, reply)
	assert.Len(t, provider.requests, 10, "cap is 10 round trips, no 11th call")
	assert.Len(t, tools.calls, 10)
}

func TestRun_ProviderFailureBecomesApology(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{
			name: "transport failure",
			err:  &llm.ProviderError{Kind: llm.KindTransport, Err: fmt.Errorf("connection refused")},
		},
		{
			name: "remote failure",
			err:  &llm.ProviderError{Kind: llm.KindRemote, Status: 429, Err: fmt.Errorf("rate limited")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mockProvider{err: tt.err}
			ag := newTestAgent(provider, &mockTools{})

			reply := ag.Run(context.Background(), "s1", "hi", nil)
			assert.Equal(t, apologyError, reply)
		})
	}
}

func TestRun_OnUpdateObservesToolRounds(t *testing.T) {
	provider := &mockProvider{responses: []core.Message{
		toolCallResponse("call_1"),
		{Role: core.RoleAssistant, Content: "final"},
	}}
	ag := newTestAgent(provider, &mockTools{})

	var updates []core.Message
	reply := ag.Run(context.Background(), "s1", "hi", func(msg core.Message) {
		updates = append(updates, msg)
	})

	assert.Equal(t, "final", reply)
	require.Len(t, updates, 2)
	assert.Len(t, updates[0].ToolCalls, 1)
	assert.Equal(t, "final", updates[1].Content)
}
