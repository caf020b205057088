package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memorySession struct {
	userID    uint
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory. Sessions do not survive a restart
// and are not shared between instances.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]memorySession
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]memorySession),
		now:      time.Now,
	}
}

func (m *MemoryStore) Create(ctx context.Context, userID uint, ttl time.Duration) (string, error) {
	token := uuid.NewString()

	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[token] = memorySession{userID: userID, expiresAt: m.now().Add(ttl)}
	return token, nil
}

func (m *MemoryStore) Resolve(ctx context.Context, token string) (uint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[token]
	if !ok {
		return 0, ErrSessionNotFound
	}
	if !m.now().Before(s.expiresAt) {
		delete(m.sessions, token)
		return 0, ErrSessionNotFound
	}
	return s.userID, nil
}

func (m *MemoryStore) Destroy(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, token)
	return nil
}
