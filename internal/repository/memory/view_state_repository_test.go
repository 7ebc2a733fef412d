package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resumeforge-be/pkg/store"
)

func TestViewStateSaveAndGet(t *testing.T) {
	repo := NewViewStateRepository()

	repo.Save(&store.ViewState{
		UserID:      "user-1",
		CurrentView: store.ViewEditor,
		TemplateID:  "modern",
		ResumeID:    "resume-1",
	})

	state, found := repo.Get("user-1")
	assert.True(t, found)
	assert.Equal(t, store.ViewEditor, state.CurrentView)
	assert.Equal(t, "modern", state.TemplateID)
	assert.Equal(t, "resume-1", state.ResumeID)
	assert.Equal(t, store.SchemaVersion, state.SchemaVersion)
}

func TestViewStateGetMissing(t *testing.T) {
	repo := NewViewStateRepository()

	state, found := repo.Get("nobody")
	assert.False(t, found)
	assert.Nil(t, state)
}

func TestViewStateStaleSchemaDiscarded(t *testing.T) {
	repo := NewViewStateRepository()

	stale := &store.ViewState{
		UserID:      "user-2",
		CurrentView: store.ViewPreview,
	}
	repo.Save(stale)
	// Simulate a snapshot written by an older build.
	stale.SchemaVersion = store.SchemaVersion - 1

	state, found := repo.Get("user-2")
	assert.False(t, found)
	assert.Nil(t, state)

	// The stale entry is gone after the failed read.
	_, found = repo.Get("user-2")
	assert.False(t, found)
}

func TestViewStateDelete(t *testing.T) {
	repo := NewViewStateRepository()

	repo.Save(store.DefaultViewState("user-3"))
	repo.Delete("user-3")

	_, found := repo.Get("user-3")
	assert.False(t, found)
}

func TestDefaultViewState(t *testing.T) {
	state := store.DefaultViewState("user-4")
	assert.Equal(t, store.ViewDashboard, state.CurrentView)
	assert.Equal(t, "classic", state.TemplateID)
	assert.True(t, state.Valid())
}
