package notify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/raanand/careerbot/internal/config"
	"github.com/raanand/careerbot/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPushover(cfg *config.PushoverConfig, apiURL string) *Pushover {
	p := NewPushover(cfg)
	p.apiURL = apiURL
	p.retrier = retry.NewRetrier(&retry.Config{
		MaxRetries:    1,
		BackoffFactor: 1,
		InitialDelay:  time.Millisecond,
		MaxDelay:      time.Millisecond,
		Jitter:        time.Millisecond,
	})
	return p
}

func TestPush_MissingCredentials(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	p := newTestPushover(&config.PushoverConfig{}, server.URL)

	err := p.Push(context.Background(), "Recording question")
	assert.NoError(t, err)
	assert.Equal(t, int32(0), calls.Load(), "no HTTP call without credentials")
}

func TestPush_SendsFormFields(t *testing.T) {
	var gotToken, gotUser, gotMessage string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotToken = r.PostForm.Get("token")
		gotUser = r.PostForm.Get("user")
		gotMessage = r.PostForm.Get("message")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	p := newTestPushover(&config.PushoverConfig{Token: "app-token", User: "user-key"}, server.URL)

	err := p.Push(context.Background(), "Recording Jane with email jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "app-token", gotToken)
	assert.Equal(t, "user-key", gotUser)
	assert.Equal(t, "Recording Jane with email jane@example.com", gotMessage)
}

func TestPush_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	p := newTestPushover(&config.PushoverConfig{Token: "t", User: "u"}, server.URL)

	err := p.Push(context.Background(), "hello")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}
