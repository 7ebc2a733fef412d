package dto

type SaveViewStateRequest struct {
	CurrentView string `json:"current_view" validate:"required,oneof=DASHBOARD EDITOR PREVIEW PRICING"`
	TemplateId  string `json:"template_id"`
	ResumeId    string `json:"resume_id"`
}

type ViewStateResponse struct {
	CurrentView   string `json:"current_view"`
	TemplateId    string `json:"template_id"`
	ResumeId      string `json:"resume_id"`
	SchemaVersion int    `json:"schema_version"`
	// Restored is false when no valid snapshot existed and defaults were used.
	Restored bool `json:"restored"`
}
