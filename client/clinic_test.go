package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BSIT-Sanchez/LGC/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserStoreMirrorsUsersCollection(t *testing.T) {
	var deletedPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			assert.Equal(t, "/users", r.URL.Path)
			respond(w, http.StatusOK, true, []models.User{
				{ID: 3, Username: "jane", Email: "jane@lgc.test"},
				{ID: 7, Username: "mark", Email: "mark@lgc.test"},
			}, "")
		case http.MethodDelete:
			deletedPath = r.URL.Path
			respond(w, http.StatusOK, true, nil, "")
		}
	}))
	t.Cleanup(server.Close)

	c := NewClient(server.URL, "test-token", NewSession(nil))
	store := NewUserStore(c, &recordingNotifier{}, func(string) bool { return true })

	require.NoError(t, store.Load(context.Background()))
	require.Len(t, store.Records(), 2)

	user, ok := store.Get("3")
	require.True(t, ok)
	assert.Equal(t, "jane", user.Username)

	require.NoError(t, store.Delete(context.Background(), "7"))
	assert.Equal(t, "/users/7", deletedPath)
	assert.Len(t, store.Records(), 1)
}

func TestUserFormRoutesEditToUpdate(t *testing.T) {
	var method, path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		respond(w, http.StatusOK, true, models.User{ID: 3, Username: "jane"}, "")
	}))
	t.Cleanup(server.Close)

	c := NewClient(server.URL, "test-token", NewSession(nil))
	store := NewUserStore(c, &recordingNotifier{}, nil)
	form := NewUserForm(store)

	form.OpenEdit("3", models.UserInput{Username: "jane", Email: "jane@lgc.test"})
	require.NoError(t, form.Submit(context.Background()))
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "/users/3", path)
	assert.False(t, form.Open())
}

func TestUserFormCreateRequiresValidDraft(t *testing.T) {
	var calls int
	var method string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		method = r.Method
		respond(w, http.StatusCreated, true, models.User{ID: 9}, "")
	}))
	t.Cleanup(server.Close)

	c := NewClient(server.URL, "test-token", NewSession(nil))
	store := NewUserStore(c, &recordingNotifier{}, nil)
	form := NewUserForm(store)

	form.OpenCreate()
	err := form.Submit(context.Background())
	require.Error(t, err, "empty draft must fail validation")
	assert.Zero(t, calls, "invalid drafts never reach the network")

	form.SetDraft(models.UserInput{Username: "jane", Email: "jane@lgc.test"})
	require.NoError(t, form.Submit(context.Background()))
	assert.Equal(t, 1, calls)
	assert.Equal(t, http.MethodPost, method)
}
