package client

import (
	"context"
	"fmt"
	"sync"
)

// ConfirmFunc asks the user to confirm a destructive action. Deletes only
// proceed when it returns true. A nil ConfirmFunc means the caller obtained
// confirmation before calling Delete, so the store does not prompt again.
type ConfirmFunc func(prompt string) bool

// EntityStore mirrors one server collection. It is not optimistic: local state
// only changes after the server has answered, and a failed call leaves the
// mirror exactly as it was. Every operation ends in exactly one notification.
type EntityStore[T any] struct {
	client   *Client
	path     string
	label    string
	id       func(T) string
	notifier Notifier
	confirm  ConfirmFunc

	mu      sync.RWMutex
	records []T
	loaded  bool
}

// NewEntityStore builds a store for the collection at path. label names the
// entity in notifications ("patient", "invoice"). id extracts a record's
// server-assigned identifier. Pass a confirm func wired to the UI so deletes
// prompt the user; nil is reserved for callers that confirm on their own.
func NewEntityStore[T any](client *Client, path, label string, id func(T) string, notifier Notifier, confirm ConfirmFunc) *EntityStore[T] {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &EntityStore[T]{
		client:   client,
		path:     path,
		label:    label,
		id:       id,
		notifier: notifier,
		confirm:  confirm,
	}
}

// Load fetches the whole collection. On success the mirror is replaced
// wholesale in server order; on failure it is left untouched.
func (s *EntityStore[T]) Load(ctx context.Context) error {
	var records []T
	if err := s.client.Get(ctx, s.path, &records); err != nil {
		s.notifier.Error(fmt.Sprintf("Failed to load %ss: %v", s.label, err))
		return err
	}

	s.mu.Lock()
	s.records = records
	s.loaded = true
	s.mu.Unlock()
	return nil
}

// Create posts the input and, on success, appends the canonical record the
// server returned. The input itself is never inserted into the mirror.
func (s *EntityStore[T]) Create(ctx context.Context, input interface{}) (*T, error) {
	var created T
	if err := s.client.Post(ctx, s.path, input, &created); err != nil {
		s.notifier.Error(fmt.Sprintf("Failed to create %s: %v", s.label, err))
		return nil, err
	}

	s.mu.Lock()
	s.records = append(s.records, created)
	s.mu.Unlock()

	s.notifier.Success(fmt.Sprintf("Created %s", s.label))
	return &created, nil
}

// Update puts the input and, on success, replaces the matching record with the
// canonical one from the server.
func (s *EntityStore[T]) Update(ctx context.Context, id string, input interface{}) (*T, error) {
	var updated T
	if err := s.client.Put(ctx, s.path+"/"+id, input, &updated); err != nil {
		s.notifier.Error(fmt.Sprintf("Failed to update %s: %v", s.label, err))
		return nil, err
	}

	s.mu.Lock()
	for i := range s.records {
		if s.id(s.records[i]) == id {
			s.records[i] = updated
			break
		}
	}
	s.mu.Unlock()

	s.notifier.Success(fmt.Sprintf("Updated %s", s.label))
	return &updated, nil
}

// Delete asks for confirmation first. Without it no request is sent and no
// notification is emitted. A confirmed, successful delete removes the record.
func (s *EntityStore[T]) Delete(ctx context.Context, id string) error {
	if s.confirm != nil && !s.confirm(fmt.Sprintf("Delete this %s?", s.label)) {
		return nil
	}

	if err := s.client.Delete(ctx, s.path+"/"+id); err != nil {
		s.notifier.Error(fmt.Sprintf("Failed to delete %s: %v", s.label, err))
		return err
	}

	s.mu.Lock()
	for i := range s.records {
		if s.id(s.records[i]) == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.notifier.Success(fmt.Sprintf("Deleted %s", s.label))
	return nil
}

// Records returns a copy of the mirror in server order.
func (s *EntityStore[T]) Records() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.records))
	copy(out, s.records)
	return out
}

// Loaded reports whether at least one Load has succeeded.
func (s *EntityStore[T]) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Get returns the mirrored record with the given id, if present.
func (s *EntityStore[T]) Get(id string) (*T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.records {
		if s.id(s.records[i]) == id {
			record := s.records[i]
			return &record, true
		}
	}
	return nil, false
}
