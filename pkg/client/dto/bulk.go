package dto

// BulkGenerationRequest starts generation for a batch of prompts at once.
// Prompt order is preserved by the server and mirrored in status responses.
type BulkGenerationRequest struct {
	Prompts        []string       `json:"prompts" required:"true"`   // one generation session is created per prompt
	CompanyInfo    *CompanyInfo   `json:"company_info,omitempty"`    // shared company context for all prompts
	CommonSettings map[string]any `json:"common_settings,omitempty"` // settings applied to every member generation
	Keywords       []string       `json:"keywords,omitempty"`        // shared SEO keywords
}

// BulkStartResult is the outcome of a bulk start call.
type BulkStartResult struct {
	Success       bool   `json:"success" yaml:"success"`
	BulkSessionID string `json:"bulkSessionId,omitempty" yaml:"bulkSessionId,omitempty"` // id of the bulk session grouping the members
	TotalPrompts  int    `json:"totalPrompts" yaml:"totalPrompts"`                       // fixed at creation, equals len(Prompts)
	Error         string `json:"error,omitempty" yaml:"error,omitempty"`
}

// MemberStatus is one member generation inside a bulk status response,
// in the original prompt order. Status fields are flat on the wire, so
// the per-session snapshot is embedded.
type MemberStatus struct {
	Prompt           string `json:"prompt,omitempty" yaml:"prompt,omitempty"`
	PublicationID    string `json:"publicationId,omitempty" yaml:"publicationId,omitempty"`
	GenerationStatus `yaml:",inline"`
}

// BulkStatus is an aggregate snapshot of a bulk session. The counts are
// recomputed from the member states on decode, never copied from the
// server-reported aggregates, so SuccessCount+ErrorCount+PendingCount
// always equals TotalPrompts.
type BulkStatus struct {
	BulkSessionID string                       `json:"bulkSessionId" yaml:"bulkSessionId"`
	TotalPrompts  int                          `json:"totalPrompts" yaml:"totalPrompts"`
	SuccessCount  int                          `json:"successCount" yaml:"successCount"`
	ErrorCount    int                          `json:"errorCount" yaml:"errorCount"`
	PendingCount  int                          `json:"pendingCount" yaml:"pendingCount"`
	Publications  []MemberStatus               `json:"publications" yaml:"publications"` // member snapshots in prompt order
	Members       map[string]*GenerationStatus `json:"-" yaml:"-"`                       // member snapshots indexed by session id
}

// IsCompleted reports aggregate completion: every member reached a terminal
// state. An empty bulk session (TotalPrompts == 0) is completed immediately.
func (s *BulkStatus) IsCompleted() bool { return s.PendingCount == 0 }
