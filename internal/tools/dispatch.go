package tools

import (
	"context"

	"github.com/raanand/careerbot/internal/core"
	"github.com/raanand/careerbot/pkg/log"
)

// dispatch delivers a notification without blocking the tool acknowledgment.
// The turn may finish (and its context get cancelled) before delivery, so
// the push runs on a context that keeps the values but not the cancellation.
func dispatch(ctx context.Context, notifier core.Notifier, text string) {
	ctx = context.WithoutCancel(ctx)
	go func() {
		if err := notifier.Push(ctx, text); err != nil {
			log.FromCtx(ctx).Error().Err(err).Str("text", text).Msg("notification delivery failed")
		}
	}()
}
