package agent

import (
	"context"

	"github.com/raanand/careerbot/internal/core"
	"github.com/raanand/careerbot/pkg/log"
)

// sanitizeToolCalls drops orphaned tool results from the history before it
// goes to the provider. A tool result is valid only while the immediately
// preceding assistant turn declared its call ID; a user turn resets that.
// Strict providers reject out-of-pair tool messages with a 400.
func sanitizeToolCalls(ctx context.Context, messages []core.Message) []core.Message {
	var out []core.Message
	pending := make(map[string]bool)

	for _, msg := range messages {
		switch msg.Role {
		case core.RoleAssistant:
			pending = make(map[string]bool)
			for _, tc := range msg.ToolCalls {
				pending[tc.ID] = true
			}
			out = append(out, msg)
		case core.RoleTool:
			if !pending[msg.ToolCallID] {
				log.FromCtx(ctx).Debug().
					Str("tool_call_id", msg.ToolCallID).
					Msg("dropping orphaned tool result")
				continue
			}
			out = append(out, msg)
		case core.RoleUser:
			pending = make(map[string]bool)
			out = append(out, msg)
		default:
			out = append(out, msg)
		}
	}
	return out
}
