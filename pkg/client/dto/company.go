package dto

// CompanyData is the stored company profile.
type CompanyData struct {
	Name           *string           `json:"name,omitempty" yaml:"name,omitempty"`
	Description    *string           `json:"description,omitempty" yaml:"description,omitempty"`
	Industry       *string           `json:"industry,omitempty" yaml:"industry,omitempty"`
	Website        *string           `json:"website,omitempty" yaml:"website,omitempty"`
	ContactEmail   *string           `json:"contact_email,omitempty" yaml:"contact_email,omitempty"`
	ContactPhone   *string           `json:"contact_phone,omitempty" yaml:"contact_phone,omitempty"`
	Address        *string           `json:"address,omitempty" yaml:"address,omitempty"`
	SocialMedia    map[string]string `json:"social_media,omitempty" yaml:"social_media,omitempty"`
	LogoURL        *string           `json:"logo_url,omitempty" yaml:"logo_url,omitempty"`
	FoundedYear    *int              `json:"founded_year,omitempty" yaml:"founded_year,omitempty"`
	TargetAudience *string           `json:"target_audience,omitempty" yaml:"target_audience,omitempty"`
	Services       []string          `json:"services,omitempty" yaml:"services,omitempty"`
	Keywords       []string          `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}

// CompanyParsingRequest asks the server to extract a company profile
// from a public website.
type CompanyParsingRequest struct {
	WebsiteURL string `json:"website_url" required:"true"`
}

// CompanyParsingStart is the outcome of a parse-website call.
type CompanyParsingStart struct {
	Success          bool   `json:"success" yaml:"success"`
	ParsingSessionID string `json:"parsingSessionId,omitempty" yaml:"parsingSessionId,omitempty"`
	Error            string `json:"error,omitempty" yaml:"error,omitempty"`
}

// CompanyParsingStatus is a snapshot of an in-flight website parsing job.
type CompanyParsingStatus struct {
	State         State        `json:"status" yaml:"status"`
	Progress      *int         `json:"progress,omitempty" yaml:"progress,omitempty"` // 0-100
	Error         string       `json:"error,omitempty" yaml:"error,omitempty"`
	ExtractedData *CompanyData `json:"extractedData,omitempty" yaml:"extractedData,omitempty"` // populated once completed
}
