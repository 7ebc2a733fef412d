package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultViewState(t *testing.T) {
	state := DefaultViewState("user-1")

	assert.Equal(t, "user-1", state.UserID)
	assert.Equal(t, ViewDashboard, state.CurrentView)
	assert.Equal(t, "classic", state.TemplateID)
	assert.Equal(t, SchemaVersion, state.SchemaVersion)
	assert.True(t, state.Valid())
}

func TestViewStateValid(t *testing.T) {
	tests := []struct {
		name  string
		state ViewState
		want  bool
	}{
		{
			name:  "current schema",
			state: ViewState{CurrentView: ViewEditor, SchemaVersion: SchemaVersion},
			want:  true,
		},
		{
			name:  "stale schema",
			state: ViewState{CurrentView: ViewEditor, SchemaVersion: SchemaVersion - 1},
			want:  false,
		},
		{
			name:  "missing view",
			state: ViewState{SchemaVersion: SchemaVersion},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.Valid())
		})
	}
}
