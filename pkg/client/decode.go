package client

import (
	"encoding/json"
	"fmt"

	"github.com/samber/lo"

	"github.com/gemcontent/contentgem-client/pkg/client/dto"
)

// decodeData unmarshals the envelope payload into out, converting any
// mismatch into a DecodeError for the given shape.
func decodeData(env *dto.Envelope, shape string, out any) error {
	if len(env.Data) == 0 {
		return &DecodeError{Shape: shape, Reason: "response carries no data"}
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &DecodeError{Shape: shape, Reason: fmt.Sprintf("malformed data: %v", err)}
	}
	return nil
}

func decodeGenerationStatus(env *dto.Envelope, sessionID string) (*dto.GenerationStatus, error) {
	var status dto.GenerationStatus
	if err := decodeData(env, "generation status", &status); err != nil {
		return nil, err
	}
	if status.SessionID == "" {
		status.SessionID = sessionID
	}
	if err := checkStatusInvariants("generation status", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// checkStatusInvariants rejects snapshots that violate the status record
// contract: content and blogTopic present iff completed, error present iff
// failed. A server drifting from this contract is a protocol mismatch, not
// a silently-defaulted value.
func checkStatusInvariants(shape string, s *dto.GenerationStatus) error {
	switch s.State {
	case dto.StateCompleted:
		if s.Content == "" || s.BlogTopic == "" {
			return &DecodeError{Shape: shape, Reason: "completed status is missing content or blogTopic"}
		}
		if s.Error != "" {
			return &DecodeError{Shape: shape, Reason: "completed status carries an error message"}
		}
	case dto.StateFailed:
		if s.Error == "" {
			return &DecodeError{Shape: shape, Reason: "failed status is missing the error message"}
		}
		if s.Content != "" || s.BlogTopic != "" {
			return &DecodeError{Shape: shape, Reason: "failed status carries generated content"}
		}
	case dto.StatePending, dto.StateGenerating:
		if s.Content != "" || s.BlogTopic != "" || s.Error != "" {
			return &DecodeError{Shape: shape, Reason: fmt.Sprintf("terminal fields set on %q status", s.State)}
		}
	default:
		return &DecodeError{Shape: shape, Reason: fmt.Sprintf("unknown status %q", s.State)}
	}
	return nil
}

// decodeBulkStatus rebuilds the aggregate counters from the member states
// instead of trusting server-reported totals, so the success/error/pending
// breakdown can never drift from the member array.
func decodeBulkStatus(env *dto.Envelope, bulkSessionID string) (*dto.BulkStatus, error) {
	var status dto.BulkStatus
	if err := decodeData(env, "bulk status", &status); err != nil {
		return nil, err
	}
	if status.BulkSessionID == "" {
		status.BulkSessionID = bulkSessionID
	}

	if status.TotalPrompts != 0 && status.TotalPrompts != len(status.Publications) {
		return nil, &DecodeError{
			Shape:  "bulk status",
			Reason: fmt.Sprintf("server reports %d prompts but lists %d members", status.TotalPrompts, len(status.Publications)),
		}
	}
	status.TotalPrompts = len(status.Publications)

	status.Members = make(map[string]*dto.GenerationStatus, len(status.Publications))
	for i := range status.Publications {
		member := &status.Publications[i]
		if member.SessionID == "" {
			return nil, &DecodeError{Shape: "bulk status", Reason: fmt.Sprintf("member %d has no sessionId", i)}
		}
		if err := checkStatusInvariants(fmt.Sprintf("bulk member %s", member.SessionID), &member.GenerationStatus); err != nil {
			return nil, err
		}
		status.Members[member.SessionID] = &member.GenerationStatus
	}

	status.SuccessCount = lo.CountBy(status.Publications, func(m dto.MemberStatus) bool {
		return m.State == dto.StateCompleted
	})
	status.ErrorCount = lo.CountBy(status.Publications, func(m dto.MemberStatus) bool {
		return m.State == dto.StateFailed
	})
	status.PendingCount = status.TotalPrompts - status.SuccessCount - status.ErrorCount

	return &status, nil
}
