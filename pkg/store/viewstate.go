package store

// SchemaVersion is bumped whenever the ViewState shape changes. Stored
// snapshots carrying an older version are discarded on read.
const SchemaVersion = 2

// ViewState represents the user's current position in the builder UI so a
// returning session can be restored where it left off.
type ViewState struct {
	UserID        string `json:"user_id"`
	CurrentView   string `json:"current_view"` // "DASHBOARD" | "EDITOR" | "PREVIEW" | "PRICING"
	TemplateID    string `json:"template_id"`
	ResumeID      string `json:"resume_id"`
	SchemaVersion int    `json:"schema_version"`
}

const (
	ViewDashboard = "DASHBOARD"
	ViewEditor    = "EDITOR"
	ViewPreview   = "PREVIEW"
	ViewPricing   = "PRICING"
)

// DefaultViewState is what a fresh or invalidated session falls back to.
func DefaultViewState(userID string) *ViewState {
	return &ViewState{
		UserID:        userID,
		CurrentView:   ViewDashboard,
		TemplateID:    "classic",
		SchemaVersion: SchemaVersion,
	}
}

// Valid reports whether a stored snapshot can still be trusted.
func (v *ViewState) Valid() bool {
	return v != nil && v.SchemaVersion == SchemaVersion && v.CurrentView != ""
}
