package client

import "sync"

// SessionUser is the profile slice a session keeps after login.
type SessionUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// SessionStore persists a session across restarts. Implementations may write
// to disk, a keychain, or nothing at all.
type SessionStore interface {
	Save(user SessionUser, token string) error
	Load() (SessionUser, string, error)
	Clear() error
}

// Session holds the authenticated user and access token for the duration of a
// login. It is created empty, started on login success, and cleared on logout;
// everything that needs credentials receives the session explicitly.
type Session struct {
	mu    sync.RWMutex
	user  SessionUser
	token string
	store SessionStore
}

// NewSession returns an inactive session. The store may be nil for purely
// in-memory sessions.
func NewSession(store SessionStore) *Session {
	s := &Session{store: store}
	if store != nil {
		if user, token, err := store.Load(); err == nil && token != "" {
			s.user = user
			s.token = token
		}
	}
	return s
}

// Start activates the session after a successful login.
func (s *Session) Start(user SessionUser, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.token = token
	if s.store != nil {
		// Persistence is best effort; the in-memory session stays valid.
		_ = s.store.Save(user, token)
	}
}

// Clear ends the session on logout.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = SessionUser{}
	s.token = ""
	if s.store != nil {
		_ = s.store.Clear()
	}
}

// Active reports whether a login is in effect.
func (s *Session) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// Token returns the current access token, or "" when logged out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the logged-in user profile.
func (s *Session) User() SessionUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}
