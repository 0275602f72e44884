package session

import (
	"context"
	"sync"

	"github.com/raanand/careerbot/internal/core"
)

// HistoryRepo keeps conversation turns in memory, one append-only log per
// session ID. Nothing is persisted: a history lives exactly as long as the
// process serving that chat.
type HistoryRepo struct {
	mu       sync.RWMutex
	sessions map[string][]core.Message
}

func NewHistoryRepo() *HistoryRepo {
	return &HistoryRepo{
		sessions: make(map[string][]core.Message),
	}
}

func (h *HistoryRepo) AddMessage(ctx context.Context, sessionID string, msg core.Message) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sessions[sessionID] = append(h.sessions[sessionID], msg)
	return nil
}

// GetMessages returns the last limit messages in chronological order.
// A non-positive limit returns the full history.
func (h *HistoryRepo) GetMessages(ctx context.Context, sessionID string, limit int) ([]core.Message, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	history := h.sessions[sessionID]
	if limit > 0 && len(history) > limit {
		history = history[len(history)-limit:]
	}

	out := make([]core.Message, len(history))
	copy(out, history)
	return out, nil
}

func (h *HistoryRepo) Clear(ctx context.Context, sessionID string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.sessions, sessionID)
	return nil
}
