package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// recordingNotifier counts and captures notifications for assertions.
type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, message)
}

func (n *recordingNotifier) Error(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, message)
}

func (n *recordingNotifier) counts() (int, int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.successes), len(n.errors)
}

func respond(w http.ResponseWriter, status int, success bool, data interface{}, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	body := map[string]interface{}{"success": success}
	if success {
		body["data"] = data
	} else {
		body["msg"] = msg
	}
	_ = json.NewEncoder(w).Encode(body)
}

func newTestStore(t *testing.T, handler http.Handler, confirm ConfirmFunc) (*EntityStore[testRecord], *recordingNotifier, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	notifier := &recordingNotifier{}
	c := NewClient(server.URL, "test-token", NewSession(nil))
	store := NewEntityStore(c, "/things", "thing", func(r testRecord) string { return r.ID }, notifier, confirm)
	return store, notifier, server
}

func TestLoadReplacesWholesale(t *testing.T) {
	store, notifier, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusOK, true, []testRecord{{ID: "1", Name: "one"}, {ID: "2", Name: "two"}}, "")
	}), nil)

	require.NoError(t, store.Load(context.Background()))
	assert.Len(t, store.Records(), 2)
	assert.True(t, store.Loaded())

	successes, errors := notifier.counts()
	assert.Zero(t, successes)
	assert.Zero(t, errors)
}

func TestLoadFailureKeepsPreviousState(t *testing.T) {
	fail := false
	store, notifier, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			respond(w, http.StatusInternalServerError, false, nil, "boom")
			return
		}
		respond(w, http.StatusOK, true, []testRecord{{ID: "1", Name: "one"}}, "")
	}), nil)

	require.NoError(t, store.Load(context.Background()))
	require.Len(t, store.Records(), 1)

	fail = true
	err := store.Load(context.Background())
	require.Error(t, err)

	assert.Len(t, store.Records(), 1, "failed load must not disturb the mirror")
	_, errors := notifier.counts()
	assert.Equal(t, 1, errors)
}

func TestCreateAppendsCanonicalRecord(t *testing.T) {
	store, notifier, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var input map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		// The server assigns the id; the client never invents one.
		respond(w, http.StatusCreated, true, testRecord{ID: "srv-9", Name: input["name"]}, "")
	}), nil)

	created, err := store.Create(context.Background(), map[string]string{"name": "fresh"})
	require.NoError(t, err)
	assert.Equal(t, "srv-9", created.ID)

	records := store.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "srv-9", records[0].ID)

	successes, errors := notifier.counts()
	assert.Equal(t, 1, successes)
	assert.Zero(t, errors)
}

func TestFailedCreateLeavesMirrorUnchanged(t *testing.T) {
	store, notifier, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusBadRequest, false, nil, "validation failed")
	}), nil)

	_, err := store.Create(context.Background(), map[string]string{"name": "bad"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "validation failed", apiErr.Msg)

	assert.Empty(t, store.Records())
	successes, errors := notifier.counts()
	assert.Zero(t, successes)
	assert.Equal(t, 1, errors, "exactly one error notification per failed call")
}

func TestUpdateReplacesMatchingRecord(t *testing.T) {
	store, _, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			respond(w, http.StatusOK, true, []testRecord{{ID: "1", Name: "old"}, {ID: "2", Name: "other"}}, "")
		case http.MethodPut:
			respond(w, http.StatusOK, true, testRecord{ID: "1", Name: "new"}, "")
		}
	}), nil)

	require.NoError(t, store.Load(context.Background()))
	_, err := store.Update(context.Background(), "1", map[string]string{"name": "new"})
	require.NoError(t, err)

	record, ok := store.Get("1")
	require.True(t, ok)
	assert.Equal(t, "new", record.Name)

	other, ok := store.Get("2")
	require.True(t, ok)
	assert.Equal(t, "other", other.Name)
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	var calls int
	confirmed := false
	store, notifier, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			calls++
		}
		respond(w, http.StatusOK, true, nil, "")
	}), func(string) bool { return confirmed })

	// Declined: no request, no notification.
	require.NoError(t, store.Delete(context.Background(), "1"))
	assert.Zero(t, calls)
	successes, errors := notifier.counts()
	assert.Zero(t, successes)
	assert.Zero(t, errors)

	confirmed = true
	require.NoError(t, store.Delete(context.Background(), "1"))
	assert.Equal(t, 1, calls)
	successes, _ = notifier.counts()
	assert.Equal(t, 1, successes)
}

func TestDeleteWithNilConfirmSkipsPrompt(t *testing.T) {
	// nil confirm is the documented escape hatch for callers that have
	// already confirmed with the user; the request goes straight out.
	var calls int
	store, notifier, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			calls++
		}
		respond(w, http.StatusOK, true, nil, "")
	}), nil)

	require.NoError(t, store.Delete(context.Background(), "1"))
	assert.Equal(t, 1, calls)

	successes, _ := notifier.counts()
	assert.Equal(t, 1, successes)
}

func TestDeleteRemovesRecordOnSuccess(t *testing.T) {
	store, _, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			respond(w, http.StatusOK, true, []testRecord{{ID: "1"}, {ID: "2"}}, "")
			return
		}
		respond(w, http.StatusOK, true, nil, "")
	}), func(string) bool { return true })

	require.NoError(t, store.Load(context.Background()))
	require.NoError(t, store.Delete(context.Background(), "1"))

	records := store.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "2", records[0].ID)
}

func TestRecordsReturnsACopy(t *testing.T) {
	store, _, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusOK, true, []testRecord{{ID: "1", Name: "one"}}, "")
	}), nil)

	require.NoError(t, store.Load(context.Background()))
	records := store.Records()
	records[0].Name = "mutated"

	fresh, ok := store.Get("1")
	require.True(t, ok)
	assert.Equal(t, "one", fresh.Name)
}

func TestClientSendsBearerToken(t *testing.T) {
	store, _, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		respond(w, http.StatusOK, true, []testRecord{}, "")
	}), nil)

	require.NoError(t, store.Load(context.Background()))
}
