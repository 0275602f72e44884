package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/raanand/careerbot/pkg/log"
)

// PushoverConfig carries the notification credentials. Both fields are
// optional: without them the notifier degrades to a logged no-op.
type PushoverConfig struct {
	Token string `env:"PUSHOVER_TOKEN"`
	User  string `env:"PUSHOVER_USER"`
}

func NewPushoverConfig(ctx context.Context) *PushoverConfig {
	c := &PushoverConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Pushover config")
	}
	return c
}

func (c PushoverConfig) HasCredentials() bool {
	return c.Token != "" && c.User != ""
}
