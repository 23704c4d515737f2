package client

import (
	"fmt"

	"github.com/gemcontent/contentgem-client/pkg/client/dto"
)

// ValidationError reports caller input that violates a precondition.
// It is raised before any network call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s", e.Message)
}

// NetworkError is a transport-level failure (connection refused, DNS,
// request timeout). The pollers treat it as transient: it consumes one
// attempt-slot and the wait continues.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// APIError means the server understood and rejected the request (bad
// credential, unknown session, rate limit). Retrying will not succeed,
// so the pollers surface it immediately.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

// DecodeError means the server response violates the expected record
// invariants. It indicates a protocol mismatch no amount of waiting fixes.
type DecodeError struct {
	Shape  string // which record was being decoded
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %s", e.Shape, e.Reason)
}

// TimeoutError means the attempt budget was exhausted before the session
// reached a terminal state. The last observed snapshot is carried so the
// caller can resume waiting or inspect partial results.
type TimeoutError struct {
	Attempts       int
	LastGeneration *dto.GenerationStatus // set by WaitForGeneration
	LastBulk       *dto.BulkStatus       // set by WaitForBulkGeneration
}

func (e *TimeoutError) Error() string {
	if e.LastBulk != nil {
		return fmt.Sprintf("bulk generation still pending after %d attempts (%d of %d prompts remaining)",
			e.Attempts, e.LastBulk.PendingCount, e.LastBulk.TotalPrompts)
	}
	return fmt.Sprintf("generation did not reach a terminal state after %d attempts", e.Attempts)
}
