package session

import (
	"context"
	"net/http"
	"sync"

	"github.com/google/uuid"
)

// CookieName carries the session ID between requests.
const CookieName = "sid"

type contextKey struct{}

// Manager maps session IDs to live sessions. Sessions are independent of each
// other; the manager's lock only guards the map itself.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// GetOrCreate returns the session for id, lazily creating one. An empty id
// mints a fresh session under a new UUID.
func (m *Manager) GetOrCreate(id string) *Session {
	if id == "" {
		id = uuid.NewString()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		return s
	}
	s := newSession(id)
	m.sessions[id] = s
	return s
}

// End tears the session down; all of its state is discarded.
func (m *Manager) End(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Middleware resolves the request's session from the sid cookie, creating
// session and cookie on first contact, and stores it on the context.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id string
		if cookie, err := r.Cookie(CookieName); err == nil {
			id = cookie.Value
		}
		s := m.GetOrCreate(id)
		if s.ID != id {
			http.SetCookie(w, &http.Cookie{
				Name:     CookieName,
				Value:    s.ID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		ctx := context.WithValue(r.Context(), contextKey{}, s)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// FromContext returns the request's session. It panics if the middleware did
// not run; that is a routing bug, not a runtime condition.
func FromContext(ctx context.Context) *Session {
	return ctx.Value(contextKey{}).(*Session)
}
