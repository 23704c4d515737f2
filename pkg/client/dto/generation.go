package dto

// State is the lifecycle state of a generation session as reported by the API.
type State string

const (
	StatePending    State = "pending"
	StateGenerating State = "generating"
	StateCompleted  State = "completed"
	StateFailed     State = "failed"
)

// Terminal reports whether no further state transitions can occur.
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateFailed
}

// ContentPreferences tunes how generated content should look.
type ContentPreferences struct {
	Length            *string `json:"length,omitempty" yaml:"length,omitempty"` // short, medium, long
	Style             *string `json:"style,omitempty" yaml:"style,omitempty"`   // educational, promotional, technical, ...
	IncludeExamples   *bool   `json:"include_examples,omitempty" yaml:"include_examples,omitempty"`
	IncludeStatistics *bool   `json:"include_statistics,omitempty" yaml:"include_statistics,omitempty"`
	IncludeImages     *bool   `json:"include_images,omitempty" yaml:"include_images,omitempty"`
}

// CompanyInfo describes the company the content is generated for.
type CompanyInfo struct {
	Name               *string             `json:"name,omitempty" yaml:"name,omitempty"`
	Description        *string             `json:"description,omitempty" yaml:"description,omitempty"`
	Industry           *string             `json:"industry,omitempty" yaml:"industry,omitempty"`
	TargetAudience     *string             `json:"target_audience,omitempty" yaml:"target_audience,omitempty"`
	Website            *string             `json:"website,omitempty" yaml:"website,omitempty"`
	Tone               *string             `json:"tone,omitempty" yaml:"tone,omitempty"`
	ContentPreferences *ContentPreferences `json:"content_preferences,omitempty" yaml:"content_preferences,omitempty"`
}

// GenerationRequest starts a single publication generation.
type GenerationRequest struct {
	Prompt      string       `json:"prompt" required:"true"` // generation prompt (required)
	CompanyInfo *CompanyInfo `json:"company_info,omitempty"` // company context for the generator
	Keywords    []string     `json:"keywords,omitempty"`     // SEO keywords to weave into the content
}

// GenerationStartResult is the outcome of a start-generation call. API-level
// rejections are reported through Success=false rather than an error return.
type GenerationStartResult struct {
	Success       bool   `json:"success" yaml:"success"`
	SessionID     string `json:"sessionId,omitempty" yaml:"sessionId,omitempty"`         // server-assigned id of the generation session
	PublicationID string `json:"publicationId,omitempty" yaml:"publicationId,omitempty"` // id of the publication being generated
	Error         string `json:"error,omitempty" yaml:"error,omitempty"`                 // why the API rejected the request
}

// GenerationStatus is an immutable snapshot of one generation session.
// Content and BlogTopic are populated only once the state is completed;
// Error only once the state is failed. The decoder enforces both.
type GenerationStatus struct {
	SessionID string `json:"sessionId,omitempty" yaml:"sessionId,omitempty"`
	State     State  `json:"status" yaml:"status"`
	BlogTopic string `json:"blogTopic,omitempty" yaml:"blogTopic,omitempty"`
	Content   string `json:"content,omitempty" yaml:"content,omitempty"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
	StepName  string `json:"stepName,omitempty" yaml:"stepName,omitempty"` // pipeline step currently running
	Progress  *int   `json:"progress,omitempty" yaml:"progress,omitempty"` // 0-100 when the server reports it
}

func (s *GenerationStatus) IsCompleted() bool { return s.State == StateCompleted }

func (s *GenerationStatus) IsFailed() bool { return s.State == StateFailed }

func (s *GenerationStatus) IsTerminal() bool { return s.State.Terminal() }
