package dto

// ImageDimensions holds pixel dimensions of a stored image.
type ImageDimensions struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Image is a stored image resource.
type Image struct {
	ID            string           `json:"id" yaml:"id"`
	Filename      string           `json:"filename" yaml:"filename"`
	OriginalName  string           `json:"originalName" yaml:"originalName"`
	PublicURL     string           `json:"publicUrl" yaml:"publicUrl"`
	CreatedAt     string           `json:"createdAt" yaml:"createdAt"`
	Prompt        *string          `json:"prompt,omitempty" yaml:"prompt,omitempty"` // set for AI-generated images
	SectionTitle  *string          `json:"sectionTitle,omitempty" yaml:"sectionTitle,omitempty"`
	FileSize      *int             `json:"fileSize,omitempty" yaml:"fileSize,omitempty"`
	Dimensions    *ImageDimensions `json:"dimensions,omitempty" yaml:"dimensions,omitempty"`
	Tags          []string         `json:"tags,omitempty" yaml:"tags,omitempty"`
	PublicationID *string          `json:"publicationId,omitempty" yaml:"publicationId,omitempty"`
}

// ImageList is a paginated images listing.
type ImageList struct {
	Images []Image `json:"images" yaml:"images"`
	Total  int     `json:"total" yaml:"total"`
	Page   int     `json:"page" yaml:"page"`
	Limit  int     `json:"limit" yaml:"limit"`
}

// ImageGenerationRequest asks the server to generate an AI image.
type ImageGenerationRequest struct {
	Prompt string `json:"prompt" required:"true"`
	Style  string `json:"style,omitempty" default:"realistic"`
	Size   string `json:"size,omitempty" default:"1024x1024"` // e.g. 1024x1024
}
