package client

import (
	"encoding/json"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/pkg/errors"

	"github.com/gemcontent/contentgem-client/pkg/client/dto"
)

func envelope(data string) *dto.Envelope {
	return &dto.Envelope{Success: true, Data: json.RawMessage(data)}
}

func TestDecodeGenerationStatusInvariants(t *testing.T) {
	testCases := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{
			name: "valid pending",
			data: `{"status":"pending"}`,
		},
		{
			name: "valid generating with progress",
			data: `{"status":"generating","stepName":"writing","progress":40}`,
		},
		{
			name: "valid completed",
			data: `{"status":"completed","content":"text","blogTopic":"topic"}`,
		},
		{
			name: "valid failed",
			data: `{"status":"failed","error":"model error"}`,
		},
		{
			name:    "completed without content",
			data:    `{"status":"completed","blogTopic":"topic"}`,
			wantErr: true,
		},
		{
			name:    "completed without blogTopic",
			data:    `{"status":"completed","content":"text"}`,
			wantErr: true,
		},
		{
			name:    "completed with error message",
			data:    `{"status":"completed","content":"text","blogTopic":"topic","error":"boom"}`,
			wantErr: true,
		},
		{
			name:    "failed without error",
			data:    `{"status":"failed"}`,
			wantErr: true,
		},
		{
			name:    "failed with leaked content",
			data:    `{"status":"failed","error":"boom","content":"text"}`,
			wantErr: true,
		},
		{
			name:    "pending with leaked content",
			data:    `{"status":"pending","content":"text"}`,
			wantErr: true,
		},
		{
			name:    "unknown status",
			data:    `{"status":"paused"}`,
			wantErr: true,
		},
		{
			name:    "missing status",
			data:    `{"content":"text"}`,
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			RegisterTestingT(t)
			status, err := decodeGenerationStatus(envelope(tc.data), "sess-1")
			if tc.wantErr {
				var decodeErr *DecodeError
				Expect(errors.As(err, &decodeErr)).To(BeTrue(), "expected a DecodeError, got %v", err)
				return
			}
			Expect(err).To(BeNil())
			Expect(status.SessionID).To(Equal("sess-1"))
		})
	}
}

func TestDecodeBulkStatusRecomputesCounts(t *testing.T) {
	RegisterTestingT(t)

	// server-reported aggregates disagree with the member array on purpose
	status, err := decodeBulkStatus(envelope(`{
		"bulkSessionId": "bulk-1",
		"totalPrompts": 3,
		"successCount": 99,
		"errorCount": 99,
		"pendingCount": 99,
		"publications": [
			{"sessionId":"s1","status":"completed","content":"a","blogTopic":"t1"},
			{"sessionId":"s2","status":"failed","error":"boom"},
			{"sessionId":"s3","status":"generating"}
		]
	}`), "bulk-1")

	Expect(err).To(BeNil())
	Expect(status.SuccessCount).To(Equal(1))
	Expect(status.ErrorCount).To(Equal(1))
	Expect(status.PendingCount).To(Equal(1))
	Expect(status.SuccessCount + status.ErrorCount + status.PendingCount).To(Equal(status.TotalPrompts))
	Expect(status.IsCompleted()).To(BeFalse())
	Expect(status.Members).To(HaveLen(3))
	Expect(status.Members["s2"].IsFailed()).To(BeTrue())
}

func TestDecodeBulkStatusMemberCountMismatch(t *testing.T) {
	RegisterTestingT(t)

	_, err := decodeBulkStatus(envelope(`{
		"bulkSessionId": "bulk-1",
		"totalPrompts": 5,
		"publications": [{"sessionId":"s1","status":"pending"}]
	}`), "bulk-1")

	var decodeErr *DecodeError
	Expect(errors.As(err, &decodeErr)).To(BeTrue())
}

func TestDecodeBulkStatusMemberWithoutSessionID(t *testing.T) {
	RegisterTestingT(t)

	_, err := decodeBulkStatus(envelope(`{
		"bulkSessionId": "bulk-1",
		"publications": [{"status":"pending"}]
	}`), "bulk-1")

	var decodeErr *DecodeError
	Expect(errors.As(err, &decodeErr)).To(BeTrue())
}

func TestDecodeBulkStatusEmptyIsCompleted(t *testing.T) {
	RegisterTestingT(t)

	status, err := decodeBulkStatus(envelope(`{"bulkSessionId":"bulk-0","totalPrompts":0,"publications":[]}`), "bulk-0")

	Expect(err).To(BeNil())
	Expect(status.TotalPrompts).To(Equal(0))
	Expect(status.IsCompleted()).To(BeTrue())
}

func TestDecodeBulkStatusPreservesPromptOrder(t *testing.T) {
	RegisterTestingT(t)

	status, err := decodeBulkStatus(envelope(`{
		"bulkSessionId": "bulk-1",
		"publications": [
			{"sessionId":"s3","status":"pending"},
			{"sessionId":"s1","status":"pending"},
			{"sessionId":"s2","status":"pending"}
		]
	}`), "bulk-1")

	Expect(err).To(BeNil())
	Expect(status.Publications[0].SessionID).To(Equal("s3"))
	Expect(status.Publications[1].SessionID).To(Equal("s1"))
	Expect(status.Publications[2].SessionID).To(Equal("s2"))
}
