package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/gemcontent/contentgem-client/pkg/client/dto"
)

// GeneratePublication starts a single generation session. API-level
// rejections (bad key, quota exceeded) come back as Success=false results;
// only transport and protocol failures are returned as errors.
func (o *gemClient) GeneratePublication(ctx context.Context, req dto.GenerationRequest) (*dto.GenerationStartResult, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, &ValidationError{Message: "prompt must not be empty"}
	}
	env, err := o.request(ctx, http.MethodPost, "/publications/generate", req, nil)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return &dto.GenerationStartResult{Success: false, Error: apiErr.Message}, nil
		}
		return nil, errors.Wrapf(err, "failed to start generation")
	}
	if !env.Success {
		return &dto.GenerationStartResult{Success: false, Error: env.ErrorMessage()}, nil
	}

	var started dto.GenerationStartResult
	if err := decodeData(env, "generation start", &started); err != nil {
		return nil, err
	}
	if started.SessionID == "" {
		return nil, &DecodeError{Shape: "generation start", Reason: "response is missing sessionId"}
	}
	started.Success = true
	return &started, nil
}

// CheckGenerationStatus fetches one snapshot of the session's progress.
// The endpoint is read-only and idempotent, so it is safe to retry.
func (o *gemClient) CheckGenerationStatus(ctx context.Context, sessionID string) (*dto.GenerationStatus, error) {
	if sessionID == "" {
		return nil, &ValidationError{Message: "sessionID must not be empty"}
	}
	env, err := o.request(ctx, http.MethodGet, fmt.Sprintf("/publications/generation-status/%s", sessionID), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeGenerationStatus(env, sessionID)
}

// WaitForGeneration polls the session until it reaches a terminal state,
// making at most opts.MaxAttempts status requests. A failed generation is
// a legitimate terminal outcome and is returned normally; check
// GenerationStatus.IsFailed rather than the error. When the attempt budget
// runs out first, the returned error is a *TimeoutError carrying the last
// observed snapshot.
func (o *gemClient) WaitForGeneration(ctx context.Context, sessionID string, opts WaitOptions) (*dto.GenerationStatus, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	var last *dto.GenerationStatus
	for attempt := 1; attempt <= opts.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		status, err := o.CheckGenerationStatus(ctx, sessionID)
		switch {
		case err == nil:
			if status.IsTerminal() {
				return status, nil
			}
			last = status
		case isTransient(err):
			// a flaky poll consumes its attempt slot and the wait goes on
			if attempt == opts.MaxAttempts {
				return nil, errors.Wrapf(err, "generation status check kept failing")
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
	return nil, &TimeoutError{Attempts: opts.MaxAttempts, LastGeneration: last}
}

func (w WaitOptions) validate() error {
	if w.MaxAttempts < 1 {
		return &ValidationError{Message: "MaxAttempts must be at least 1"}
	}
	if w.Delay < 0 {
		return &ValidationError{Message: "Delay must not be negative"}
	}
	return nil
}

func isTransient(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
