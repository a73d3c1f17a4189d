package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDraft struct {
	Name string
}

func newTestForm(created *[]testDraft, updated *map[string]testDraft) *Form[testDraft] {
	return NewForm(
		func() testDraft { return testDraft{Name: "default"} },
		func(d testDraft) error {
			if d.Name == "" {
				return errors.New("name is required")
			}
			return nil
		},
		func(ctx context.Context, d testDraft) error {
			*created = append(*created, d)
			return nil
		},
		func(ctx context.Context, id string, d testDraft) error {
			(*updated)[id] = d
			return nil
		},
	)
}

func TestOpenCreateUsesDefaults(t *testing.T) {
	var created []testDraft
	updated := map[string]testDraft{}
	form := newTestForm(&created, &updated)

	form.OpenCreate()
	assert.True(t, form.Open())
	assert.Equal(t, "default", form.Draft().Name)

	_, editing := form.Editing()
	assert.False(t, editing)
}

func TestOpenEditPrepopulatesDraft(t *testing.T) {
	var created []testDraft
	updated := map[string]testDraft{}
	form := newTestForm(&created, &updated)

	form.OpenEdit("42", testDraft{Name: "existing"})
	assert.Equal(t, "existing", form.Draft().Name)

	id, editing := form.Editing()
	assert.True(t, editing)
	assert.Equal(t, "42", id)
}

func TestSubmitCreateRoutesToCreate(t *testing.T) {
	var created []testDraft
	updated := map[string]testDraft{}
	form := newTestForm(&created, &updated)

	form.OpenCreate()
	form.SetDraft(testDraft{Name: "new one"})
	require.NoError(t, form.Submit(context.Background()))

	require.Len(t, created, 1)
	assert.Equal(t, "new one", created[0].Name)
	assert.Empty(t, updated)
	assert.False(t, form.Open(), "form closes after a successful submit")
}

func TestSubmitEditRoutesToUpdate(t *testing.T) {
	var created []testDraft
	updated := map[string]testDraft{}
	form := newTestForm(&created, &updated)

	form.OpenEdit("7", testDraft{Name: "before"})
	form.SetDraft(testDraft{Name: "after"})
	require.NoError(t, form.Submit(context.Background()))

	assert.Empty(t, created)
	assert.Equal(t, "after", updated["7"].Name)
}

func TestValidationFailureBlocksSubmission(t *testing.T) {
	var created []testDraft
	updated := map[string]testDraft{}
	form := newTestForm(&created, &updated)

	form.OpenCreate()
	form.SetDraft(testDraft{Name: ""})
	err := form.Submit(context.Background())
	require.Error(t, err)

	assert.Empty(t, created, "no action runs when the draft is invalid")
	assert.True(t, form.Open(), "form stays open so the draft can be fixed")
}

func TestSubmitFailureKeepsFormOpen(t *testing.T) {
	form := NewForm(
		func() testDraft { return testDraft{} },
		nil,
		func(ctx context.Context, d testDraft) error { return errors.New("server said no") },
		func(ctx context.Context, id string, d testDraft) error { return nil },
	)

	form.OpenCreate()
	form.SetDraft(testDraft{Name: "x"})
	require.Error(t, form.Submit(context.Background()))
	assert.True(t, form.Open())
	assert.Equal(t, "x", form.Draft().Name, "draft survives a failed submit")
}

func TestSubmitOnClosedFormFails(t *testing.T) {
	var created []testDraft
	updated := map[string]testDraft{}
	form := newTestForm(&created, &updated)

	assert.Error(t, form.Submit(context.Background()))
}

func TestCloseResetsEditMode(t *testing.T) {
	var created []testDraft
	updated := map[string]testDraft{}
	form := newTestForm(&created, &updated)

	form.OpenEdit("9", testDraft{Name: "x"})
	form.Close()

	_, editing := form.Editing()
	assert.False(t, editing)
	assert.False(t, form.Open())
}
