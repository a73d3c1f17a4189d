package client

import (
	"context"
	"errors"
	"fmt"
)

// Form is the modal controller for one entity type: a single draft buffer that
// is either creating a new record or editing an existing one, never both.
// Validation runs on the draft before any network call.
type Form[D any] struct {
	defaults func() D
	validate func(D) error
	create   func(ctx context.Context, draft D) error
	update   func(ctx context.Context, id string, draft D) error

	open   bool
	editID string
	draft  D
}

// NewForm wires a form to its draft defaults, validator, and submit actions.
// validate may be nil when the draft needs no checking.
func NewForm[D any](defaults func() D, validate func(D) error, create func(ctx context.Context, draft D) error, update func(ctx context.Context, id string, draft D) error) *Form[D] {
	return &Form[D]{
		defaults: defaults,
		validate: validate,
		create:   create,
		update:   update,
	}
}

// OpenCreate opens the form in create mode with a fresh default draft.
func (f *Form[D]) OpenCreate() {
	f.open = true
	f.editID = ""
	f.draft = f.defaults()
}

// OpenEdit opens the form in edit mode, pre-populated from the record being
// edited.
func (f *Form[D]) OpenEdit(id string, current D) {
	f.open = true
	f.editID = id
	f.draft = current
}

// Close discards the draft and leaves the form idle.
func (f *Form[D]) Close() {
	var zero D
	f.open = false
	f.editID = ""
	f.draft = zero
}

// Open reports whether the form is showing.
func (f *Form[D]) Open() bool {
	return f.open
}

// Editing reports whether the form is in edit mode, and for which record.
func (f *Form[D]) Editing() (string, bool) {
	return f.editID, f.editID != ""
}

// Draft returns the current draft buffer.
func (f *Form[D]) Draft() D {
	return f.draft
}

// SetDraft replaces the draft buffer, as field-level edits accumulate.
func (f *Form[D]) SetDraft(draft D) {
	f.draft = draft
}

// Submit validates the draft and runs the create or update action depending on
// the mode. A validation failure blocks before any network call. The form
// closes only on success.
func (f *Form[D]) Submit(ctx context.Context) error {
	if !f.open {
		return errors.New("form is not open")
	}
	if f.validate != nil {
		if err := f.validate(f.draft); err != nil {
			return fmt.Errorf("invalid input: %w", err)
		}
	}

	var err error
	if f.editID != "" {
		err = f.update(ctx, f.editID, f.draft)
	} else {
		err = f.create(ctx, f.draft)
	}
	if err != nil {
		return err
	}

	f.Close()
	return nil
}
