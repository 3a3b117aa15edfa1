// Package session tracks the pending half of the two-turn statistics
// dialogue: keyword first, date range on the next message.
package session

import (
	"sync"

	"github.com/rahulrajrrk/finance-tracker/internal/domain"
)

// Store keeps at most one pending statistics kind per conversation.
// Take removes the entry it returns, so the very next message from a
// conversation always consumes its pending state.
type Store interface {
	Set(chatID int64, kind domain.StatKind)
	Take(chatID int64) (domain.StatKind, bool)
}

// Memory is the in-process Store. State is lost on restart, which only
// forces the operator to resend the keyword.
type Memory struct {
	mu      sync.Mutex
	pending map[int64]domain.StatKind
}

func NewMemory() *Memory {
	return &Memory{pending: make(map[int64]domain.StatKind)}
}

func (m *Memory) Set(chatID int64, kind domain.StatKind) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending[chatID] = kind
}

func (m *Memory) Take(chatID int64) (domain.StatKind, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	kind, ok := m.pending[chatID]
	if ok {
		delete(m.pending, chatID)
	}
	return kind, ok
}
