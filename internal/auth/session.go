package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/recruitwarx/portal/internal/models"
)

// Session is the authenticated identity resolved once per request.
type Session struct {
	UserID    uint
	Username  string
	Email     string
	Role      models.Role
	FirstName string
	LastName  string
	ExpiresAt time.Time
}

// SessionStore issues and resolves session IDs. The default implementation
// is process-local; the interface leaves room for an external backend.
type SessionStore interface {
	Create(s Session) string
	Get(id string) (Session, bool)
	Delete(id string)
}

type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	ttl      time.Duration
}

// NewMemoryStore returns an in-memory SessionStore with the given TTL.
func NewMemoryStore(ttl time.Duration) SessionStore {
	return &memoryStore{
		sessions: make(map[string]Session),
		ttl:      ttl,
	}
}

func (m *memoryStore) Create(s Session) string {
	id := uuid.New().String()
	s.ExpiresAt = time.Now().Add(m.ttl)

	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()
	return id
}

func (m *memoryStore) Get(id string) (Session, bool) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok {
		return Session{}, false
	}
	if time.Now().After(s.ExpiresAt) {
		m.Delete(id)
		return Session{}, false
	}
	return s, true
}

func (m *memoryStore) Delete(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}
