package core

import "context"

type AIProvider interface {
	Chat(ctx context.Context, history []Message, tools []Tool) (Message, error)
}

// Notifier delivers one-line alerts to the candidate. Best effort: a failed
// delivery must never surface to the model or the visitor.
type Notifier interface {
	Push(ctx context.Context, text string) error
}

// ToolSource exposes tool schemas for the model request and dispatches the
// calls the model makes.
type ToolSource interface {
	Definitions() []Tool
	Call(ctx context.Context, name string, args string) (string, error)
}
