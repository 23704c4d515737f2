package dto

// PublicationImage is an image attached to a publication.
type PublicationImage struct {
	ID           string  `json:"id" yaml:"id"`
	URL          string  `json:"url" yaml:"url"`
	Alt          *string `json:"alt,omitempty" yaml:"alt,omitempty"`
	Filename     *string `json:"filename,omitempty" yaml:"filename,omitempty"`
	Prompt       *string `json:"prompt,omitempty" yaml:"prompt,omitempty"`
	SectionTitle *string `json:"sectionTitle,omitempty" yaml:"sectionTitle,omitempty"`
	IsMainImage  *bool   `json:"isMainImage,omitempty" yaml:"isMainImage,omitempty"`
	CreatedAt    *string `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
}

// GenerationMetadata describes how a publication was generated.
type GenerationMetadata struct {
	Model          *string `json:"model,omitempty" yaml:"model,omitempty"`
	Tokens         *int    `json:"tokens,omitempty" yaml:"tokens,omitempty"`
	GenerationTime *int    `json:"generationTime,omitempty" yaml:"generationTime,omitempty"` // seconds
}

// Publication is a generated or manually created content item.
type Publication struct {
	ID                    string              `json:"id" yaml:"id"`
	Title                 string              `json:"title" yaml:"title"`
	Content               string              `json:"content" yaml:"content"`
	Type                  string              `json:"type" yaml:"type"`
	Status                string              `json:"status" yaml:"status"` // draft, published, archived
	ContentLength         int                 `json:"contentLength" yaml:"contentLength"`
	ImagesCount           int                 `json:"imagesCount" yaml:"imagesCount"`
	CreatedAt             string              `json:"createdAt" yaml:"createdAt"`
	UpdatedAt             string              `json:"updatedAt" yaml:"updatedAt"`
	SessionID             *string             `json:"sessionId,omitempty" yaml:"sessionId,omitempty"` // generation session that produced it
	MetaTitle             *string             `json:"metaTitle,omitempty" yaml:"metaTitle,omitempty"`
	MetaDescription       *string             `json:"metaDescription,omitempty" yaml:"metaDescription,omitempty"`
	GenerationType        *string             `json:"generationType,omitempty" yaml:"generationType,omitempty"`
	CompanyName           *string             `json:"companyName,omitempty" yaml:"companyName,omitempty"`
	CompanyIndustry       *string             `json:"companyIndustry,omitempty" yaml:"companyIndustry,omitempty"`
	InitialPrompt         *string             `json:"initialPrompt,omitempty" yaml:"initialPrompt,omitempty"`
	Topic                 *string             `json:"topic,omitempty" yaml:"topic,omitempty"`
	Images                []PublicationImage  `json:"images,omitempty" yaml:"images,omitempty"`
	QualityScore          *float64            `json:"qualityScore,omitempty" yaml:"qualityScore,omitempty"`
	GenerationMetadata    *GenerationMetadata `json:"generationMetadata,omitempty" yaml:"generationMetadata,omitempty"`
	GenerationTimeSeconds *int                `json:"generationTimeSeconds,omitempty" yaml:"generationTimeSeconds,omitempty"`
	PublishedAt           *string             `json:"publishedAt,omitempty" yaml:"publishedAt,omitempty"`
	MainImageURL          *string             `json:"mainImageUrl,omitempty" yaml:"mainImageUrl,omitempty"`
}

// PublicationList is a paginated publications listing.
type PublicationList struct {
	Publications []Publication `json:"publications" yaml:"publications"`
	Total        int           `json:"total" yaml:"total"`
	Page         int           `json:"page" yaml:"page"`
	Limit        int           `json:"limit" yaml:"limit"`
}

// DownloadRequest asks the server to export a publication.
type DownloadRequest struct {
	Format string `json:"format"` // pdf, docx, html, markdown
}
