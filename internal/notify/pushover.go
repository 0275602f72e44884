package notify

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/raanand/careerbot/internal/config"
	"github.com/raanand/careerbot/internal/core"
	"github.com/raanand/careerbot/pkg/log"
	"github.com/raanand/careerbot/pkg/retry"
)

const (
	defaultAPIURL      = "https://api.pushover.net/1/messages.json"
	defaultPushTimeout = 10 * time.Second
)

// Pushover delivers one-line alerts to the candidate's devices. Delivery is
// best effort: without credentials Push is a logged no-op, and a failed POST
// is logged by the caller and otherwise ignored.
type Pushover struct {
	client  *http.Client
	retrier *retry.Retrier
	apiURL  string
	token   string
	user    string
}

func NewPushover(cfg *config.PushoverConfig) *Pushover {
	retryCfg := retry.NewDefaultConfig()
	retryCfg.MaxRetries = 2

	return &Pushover{
		client: &http.Client{
			Timeout: defaultPushTimeout,
		},
		retrier: retry.NewRetrier(retryCfg),
		apiURL:  defaultAPIURL,
		token:   cfg.Token,
		user:    cfg.User,
	}
}

func (p *Pushover) Push(ctx context.Context, text string) error {
	logger := log.FromCtx(ctx)

	if p.token == "" || p.user == "" {
		logger.Warn().Msg("pushover credentials not set, skipping notification")
		return nil
	}

	form := url.Values{}
	form.Set("token", p.token)
	form.Set("user", p.user)
	form.Set("message", text)
	encoded := form.Encode()

	err := p.retrier.Do(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.apiURL, strings.NewReader(encoded))
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("User-Agent", core.BotUserAgent)

		resp, err := p.client.Do(req)
		if err != nil {
			return fmt.Errorf("send notification: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return fmt.Errorf("pushover returned status %d", resp.StatusCode)
		}
		return nil
	})

	if err != nil {
		logger.Error().Err(err).Msg("failed to send pushover notification")
		return err
	}

	logger.Debug().Msg("pushover notification sent")
	return nil
}
