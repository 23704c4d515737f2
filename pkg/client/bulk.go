package client

import (
	"context"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/gemcontent/contentgem-client/pkg/client/dto"
)

// BulkGeneratePublications starts one generation session per prompt,
// grouped under a single bulk session. An empty prompt list is rejected
// before any request leaves the client.
func (o *gemClient) BulkGeneratePublications(ctx context.Context, req dto.BulkGenerationRequest) (*dto.BulkStartResult, error) {
	if len(req.Prompts) == 0 {
		return nil, &ValidationError{Message: "prompts must not be empty"}
	}
	if _, blank := lo.Find(req.Prompts, func(p string) bool { return strings.TrimSpace(p) == "" }); blank {
		return nil, &ValidationError{Message: "prompts must not contain blank entries"}
	}

	env, err := o.request(ctx, http.MethodPost, "/publications/bulk-generate", req, nil)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return &dto.BulkStartResult{Success: false, Error: apiErr.Message}, nil
		}
		return nil, errors.Wrapf(err, "failed to start bulk generation")
	}
	if !env.Success {
		return &dto.BulkStartResult{Success: false, Error: env.ErrorMessage()}, nil
	}

	var started dto.BulkStartResult
	if err := decodeData(env, "bulk start", &started); err != nil {
		return nil, err
	}
	if started.BulkSessionID == "" {
		return nil, &DecodeError{Shape: "bulk start", Reason: "response is missing bulkSessionId"}
	}
	started.Success = true
	return &started, nil
}

// CheckBulkGenerationStatus fetches one aggregate snapshot embedding every
// member status, so a bulk wait costs a single request per poll regardless
// of how many prompts the session contains.
func (o *gemClient) CheckBulkGenerationStatus(ctx context.Context, bulkSessionID string) (*dto.BulkStatus, error) {
	if bulkSessionID == "" {
		return nil, &ValidationError{Message: "bulkSessionID must not be empty"}
	}
	env, err := o.request(ctx, http.MethodPost, "/publications/bulk-status", map[string]string{
		"bulk_session_id": bulkSessionID,
	}, nil)
	if err != nil {
		return nil, err
	}
	return decodeBulkStatus(env, bulkSessionID)
}

// WaitForBulkGeneration polls the bulk session until every member reaches a
// terminal state. The loop shape and transient-failure policy match
// WaitForGeneration; the terminal condition is aggregate (PendingCount == 0),
// so individual member failures never abort the wait. On timeout the
// returned *TimeoutError carries the last snapshot, including which members
// finished and which remain pending.
func (o *gemClient) WaitForBulkGeneration(ctx context.Context, bulkSessionID string, opts WaitOptions) (*dto.BulkStatus, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	var last *dto.BulkStatus
	for attempt := 1; attempt <= opts.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		status, err := o.CheckBulkGenerationStatus(ctx, bulkSessionID)
		switch {
		case err == nil:
			if status.IsCompleted() {
				return status, nil
			}
			last = status
		case isTransient(err):
			if attempt == opts.MaxAttempts {
				return nil, errors.Wrapf(err, "bulk status check kept failing")
			}
		default:
			return nil, err
		}
		if attempt < opts.MaxAttempts {
			if err := sleepWithContext(ctx, opts.Delay); err != nil {
				return nil, err
			}
		}
	}
	return nil, &TimeoutError{Attempts: opts.MaxAttempts, LastBulk: last}
}
