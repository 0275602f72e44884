package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopHandler(ctx context.Context, args json.RawMessage) (string, error) {
	return "ok", nil
}

func TestRegistry_Register(t *testing.T) {
	tests := []struct {
		name       string
		toolName   string
		schema     string
		handler    Handler
		wantErrMsg string
	}{
		{
			name:     "valid registration",
			toolName: "record_user_details",
			schema:   `{"type": "object"}`,
			handler:  noopHandler,
		},
		{
			name:       "empty name",
			toolName:   "",
			schema:     `{}`,
			handler:    noopHandler,
			wantErrMsg: "name is required",
		},
		{
			name:       "nil handler",
			toolName:   "broken",
			schema:     `{}`,
			handler:    nil,
			wantErrMsg: "handler is required",
		},
		{
			name:       "invalid schema",
			toolName:   "bad_schema",
			schema:     `{"type":`,
			handler:    noopHandler,
			wantErrMsg: "not valid JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			err := r.Register(tt.toolName, "desc", json.RawMessage(tt.schema), tt.handler)
			if tt.wantErrMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
				assert.Empty(t, r.Definitions())
				return
			}
			require.NoError(t, err)
			require.Len(t, r.Definitions(), 1)
			assert.Equal(t, tt.toolName, r.Definitions()[0].Function.Name)
		})
	}
}

func TestRegistry_DuplicateName(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("record_user_details", "d", json.RawMessage(`{}`), noopHandler))

	err := r.Register("record_user_details", "d", json.RawMessage(`{}`), noopHandler)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
	assert.Len(t, r.Definitions(), 1)
}

func TestRegistry_CallUnknownTool(t *testing.T) {
	r := NewRegistry()

	_, err := r.Call(context.Background(), "does_not_exist", "{}")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tool not found")
}

func TestRegistry_CallDispatches(t *testing.T) {
	r := NewRegistry()
	var gotArgs string
	require.NoError(t, r.Register("echo", "d", json.RawMessage(`{}`), func(ctx context.Context, args json.RawMessage) (string, error) {
		gotArgs = string(args)
		return "done", nil
	}))

	out, err := r.Call(context.Background(), "echo", `{"a":1}`)
	require.NoError(t, err)
	assert.Equal(t, "done", out)
	assert.Equal(t, `{"a":1}`, gotArgs)
}

func TestRegistry_ToolDefinitionsWireShape(t *testing.T) {
	r := NewRegistry()
	contact := NewContact(&mockNotifier{})
	require.NoError(t, r.RegisterToolset(contact))
	require.NoError(t, r.RegisterToolset(NewUnknownQuestion(&mockNotifier{})))

	defs := r.Definitions()
	require.Len(t, defs, 2)
	for _, def := range defs {
		assert.Equal(t, "function", def.Type)
		assert.NotEmpty(t, def.Function.Description)

		var schema struct {
			Type                 string          `json:"type"`
			Required             []string        `json:"required"`
			AdditionalProperties json.RawMessage `json:"additionalProperties"`
		}
		require.NoError(t, json.Unmarshal(def.Function.Parameters, &schema))
		assert.Equal(t, "object", schema.Type)
		assert.NotEmpty(t, schema.Required)
		assert.Equal(t, "false", string(schema.AdditionalProperties))
	}
}
