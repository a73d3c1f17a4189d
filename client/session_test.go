package client

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memorySessionStore struct {
	user  SessionUser
	token string
}

func (m *memorySessionStore) Save(user SessionUser, token string) error {
	m.user = user
	m.token = token
	return nil
}

func (m *memorySessionStore) Load() (SessionUser, string, error) {
	if m.token == "" {
		return SessionUser{}, "", errors.New("no session")
	}
	return m.user, m.token, nil
}

func (m *memorySessionStore) Clear() error {
	m.user = SessionUser{}
	m.token = ""
	return nil
}

func TestSessionLifecycle(t *testing.T) {
	session := NewSession(nil)
	assert.False(t, session.Active())

	session.Start(SessionUser{ID: 1, Username: "admin", Email: "admin@clinic.test"}, "tok-1")
	assert.True(t, session.Active())
	assert.Equal(t, "tok-1", session.Token())
	assert.Equal(t, "admin", session.User().Username)

	session.Clear()
	assert.False(t, session.Active())
	assert.Empty(t, session.Token())
	assert.Empty(t, session.User().Username)
}

func TestSessionPersistsThroughStore(t *testing.T) {
	store := &memorySessionStore{}

	first := NewSession(store)
	first.Start(SessionUser{ID: 2, Username: "midwife"}, "tok-2")

	// A second session over the same store resumes the login.
	second := NewSession(store)
	require.True(t, second.Active())
	assert.Equal(t, "tok-2", second.Token())
	assert.Equal(t, "midwife", second.User().Username)

	second.Clear()
	third := NewSession(store)
	assert.False(t, third.Active())
}

func TestUserLabel(t *testing.T) {
	assert.Equal(t, "jane (#3)", UserLabel(SessionUser{ID: 3, Username: "jane"}))
}
