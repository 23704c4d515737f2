package client

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/gemcontent/contentgem-client/pkg/client/dto"
)

const (
	DefaultBaseURL = "https://gemcontent.com/api/v1"
	DefaultTimeout = 30 * time.Second
)

// Config holds the immutable settings of a client instance. Multiple
// clients with different configs can coexist; there is no ambient state.
type Config struct {
	ApiKey  string        `json:"apiKey" yaml:"apiKey"`   // required
	Url     string        `json:"url" yaml:"url"`         // API base URL, default https://gemcontent.com/api/v1
	Timeout time.Duration `json:"timeout" yaml:"timeout"` // per-request timeout, default 30s
}

// WaitOptions bounds a polling wait. The wait makes at most MaxAttempts
// status requests and pauses Delay between non-terminal polls, so
// MaxAttempts*Delay is an upper bound on total wait time, not a wall-clock
// deadline. Callers wanting a hard deadline should use context.WithDeadline.
//
// A transport-level failure during a poll consumes one attempt and the wait
// continues; a single flaky poll therefore does not abort a long generation.
type WaitOptions struct {
	MaxAttempts int
	Delay       time.Duration
}

// DefaultWaitOptions suits single publication generations (~5 minutes).
func DefaultWaitOptions() WaitOptions {
	return WaitOptions{MaxAttempts: 60, Delay: 5 * time.Second}
}

// DefaultBulkWaitOptions suits bulk generations (~20 minutes).
func DefaultBulkWaitOptions() WaitOptions {
	return WaitOptions{MaxAttempts: 120, Delay: 10 * time.Second}
}

type Client interface {
	// Generation
	GeneratePublication(ctx context.Context, req dto.GenerationRequest) (*dto.GenerationStartResult, error)
	CheckGenerationStatus(ctx context.Context, sessionID string) (*dto.GenerationStatus, error)
	WaitForGeneration(ctx context.Context, sessionID string, opts WaitOptions) (*dto.GenerationStatus, error)

	// Bulk generation
	BulkGeneratePublications(ctx context.Context, req dto.BulkGenerationRequest) (*dto.BulkStartResult, error)
	CheckBulkGenerationStatus(ctx context.Context, bulkSessionID string) (*dto.BulkStatus, error)
	WaitForBulkGeneration(ctx context.Context, bulkSessionID string, opts WaitOptions) (*dto.BulkStatus, error)

	// Publications
	GetPublications(ctx context.Context, page, limit int) (*dto.PublicationList, error)
	GetPublication(ctx context.Context, publicationID string) (*dto.Publication, error)
	CreatePublication(ctx context.Context, data map[string]any) (*dto.Publication, error)
	UpdatePublication(ctx context.Context, publicationID string, data map[string]any) (*dto.Publication, error)
	DeletePublication(ctx context.Context, publicationID string) error
	PublishPublication(ctx context.Context, publicationID string) error
	ArchivePublication(ctx context.Context, publicationID string) error
	DownloadPublication(ctx context.Context, publicationID, format string) (json.RawMessage, error)

	// Images
	GetImages(ctx context.Context, page, limit int) (*dto.ImageList, error)
	GetImage(ctx context.Context, imageID string) (*dto.Image, error)
	UploadImage(ctx context.Context, filePath, publicationID string) (*dto.Image, error)
	GenerateImage(ctx context.Context, req dto.ImageGenerationRequest) (json.RawMessage, error)
	DeleteImage(ctx context.Context, imageID string) error

	// Company
	GetCompanyInfo(ctx context.Context) (*dto.CompanyData, error)
	UpdateCompanyInfo(ctx context.Context, data dto.CompanyData) (*dto.CompanyData, error)
	ParseCompanyWebsite(ctx context.Context, websiteURL string) (*dto.CompanyParsingStart, error)
	GetCompanyParsingStatus(ctx context.Context) (*dto.CompanyParsingStatus, error)

	// Subscription and statistics
	GetSubscriptionStatus(ctx context.Context) (*dto.SubscriptionStatus, error)
	GetSubscriptionLimits(ctx context.Context) (json.RawMessage, error)
	GetSubscriptionPlans(ctx context.Context) (json.RawMessage, error)
	GetStatisticsOverview(ctx context.Context) (*dto.StatisticsOverview, error)
	GetPublicationStatistics(ctx context.Context) (json.RawMessage, error)
	GetImageStatistics(ctx context.Context) (json.RawMessage, error)

	HealthCheck(ctx context.Context) (*dto.HealthStatus, error)
}

type gemClient struct {
	baseURL string
	apiKey  string
	timeout time.Duration
}

func NewClient(cfg Config) Client {
	url := cfg.Url
	if url == "" {
		url = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &gemClient{
		baseURL: strings.TrimRight(url, "/"),
		apiKey:  cfg.ApiKey,
		timeout: timeout,
	}
}
