package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/raanand/careerbot/internal/core"
	"github.com/raanand/careerbot/pkg/log"
)

// Handler defines the function signature for a native tool.
type Handler func(ctx context.Context, args json.RawMessage) (string, error)

// Definition describes one registerable tool.
type Definition struct {
	Description string
	Schema      string
	Handler     Handler
}

// Toolset is anything exposing a set of named tool definitions.
type Toolset interface {
	GetDefinitions() map[string]Definition
}

// Registry maps tool names to typed handlers. All entries are validated at
// registration time; dispatch is a plain map lookup.
type Registry struct {
	handlers map[string]Handler
	defs     []core.Tool
}

func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
	}
}

func (r *Registry) Register(name, description string, schema json.RawMessage, handler Handler) error {
	if name == "" {
		return fmt.Errorf("tool name is required")
	}
	if handler == nil {
		return fmt.Errorf("tool %s: handler is required", name)
	}
	if _, exists := r.handlers[name]; exists {
		return fmt.Errorf("tool %s: already registered", name)
	}
	if !json.Valid(schema) {
		return fmt.Errorf("tool %s: schema is not valid JSON", name)
	}

	r.handlers[name] = handler
	r.defs = append(r.defs, core.Tool{
		Type: "function",
		Function: core.Function{
			Name:        name,
			Description: description,
			Parameters:  schema,
		},
	})
	return nil
}

// RegisterToolset registers every definition of a toolset, in name order so
// registration failures are deterministic.
func (r *Registry) RegisterToolset(ts Toolset) error {
	defs := ts.GetDefinitions()

	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		def := defs[name]
		if err := r.Register(name, def.Description, json.RawMessage(def.Schema), def.Handler); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) Definitions() []core.Tool {
	out := make([]core.Tool, len(r.defs))
	copy(out, r.defs)
	return out
}

func (r *Registry) Call(ctx context.Context, name string, args string) (string, error) {
	log.FromCtx(ctx).Info().Str("tool", name).Str("args", args).Msg("executing tool")

	handler, ok := r.handlers[name]
	if !ok {
		return "", fmt.Errorf("tool not found: %s", name)
	}
	return handler(ctx, json.RawMessage(args))
}
