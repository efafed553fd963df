package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
)

// 16 random bytes, hex encoded: 128 bits of entropy per token.
const tokenBytes = 16

// Manager holds the process-wide token to user id mapping. Sessions live for
// the lifetime of the process; a restart invalidates all of them. The Manager
// is constructed once in cmd and passed to every consumer by reference.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]uint
}

func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]uint),
	}
}

// Create issues a new opaque token bound to the given user id. There is no
// cap on concurrent sessions per user.
func (m *Manager) Create(userID uint) (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	token := hex.EncodeToString(buf)

	m.mu.Lock()
	m.sessions[token] = userID
	m.mu.Unlock()

	return token, nil
}

// Resolve is a pure lookup with no side effects.
func (m *Manager) Resolve(token string) (uint, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	userID, ok := m.sessions[token]
	return userID, ok
}

// Destroy removes the mapping if present. Destroying an absent token is not
// an error.
func (m *Manager) Destroy(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}
