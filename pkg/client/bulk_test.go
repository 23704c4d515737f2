package client

import (
	"context"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/pkg/errors"

	"github.com/gemcontent/contentgem-client/pkg/client/dto"
)

const bulkAllPending = `{"success":true,"data":{"bulkSessionId":"bulk-1","totalPrompts":3,"publications":[
	{"sessionId":"s1","status":"pending"},
	{"sessionId":"s2","status":"pending"},
	{"sessionId":"s3","status":"pending"}]}}`

const bulkOnePending = `{"success":true,"data":{"bulkSessionId":"bulk-1","totalPrompts":3,"publications":[
	{"sessionId":"s1","status":"completed","content":"a","blogTopic":"t1"},
	{"sessionId":"s2","status":"completed","content":"b","blogTopic":"t2"},
	{"sessionId":"s3","status":"generating"}]}}`

const bulkFinished = `{"success":true,"data":{"bulkSessionId":"bulk-1","totalPrompts":3,"publications":[
	{"sessionId":"s1","status":"completed","content":"a","blogTopic":"t1"},
	{"sessionId":"s2","status":"completed","content":"b","blogTopic":"t2"},
	{"sessionId":"s3","status":"failed","error":"model error"}]}}`

func TestWaitForBulkGenerationReturnsOnAggregateCompletion(t *testing.T) {
	RegisterTestingT(t)

	handler := &script{responses: []string{bulkAllPending, bulkOnePending, bulkFinished}}
	c := newTestClient(t, handler)

	status, err := c.WaitForBulkGeneration(context.Background(), "bulk-1", WaitOptions{MaxAttempts: 10})

	Expect(err).To(BeNil())
	Expect(status.IsCompleted()).To(BeTrue())
	Expect(status.SuccessCount + status.ErrorCount).To(Equal(3))
	Expect(status.SuccessCount).To(Equal(2))
	Expect(status.ErrorCount).To(Equal(1))
	Expect(status.PendingCount).To(Equal(0))
	Expect(handler.Calls()).To(Equal(3))
}

func TestWaitForBulkGenerationZeroPromptsCompletesImmediately(t *testing.T) {
	RegisterTestingT(t)

	handler := &script{responses: []string{
		`{"success":true,"data":{"bulkSessionId":"bulk-0","totalPrompts":0,"publications":[]}}`,
	}}
	c := newTestClient(t, handler)

	status, err := c.WaitForBulkGeneration(context.Background(), "bulk-0", WaitOptions{MaxAttempts: 5})

	Expect(err).To(BeNil())
	Expect(status.IsCompleted()).To(BeTrue())
	Expect(status.TotalPrompts).To(Equal(0))
	Expect(handler.Calls()).To(Equal(1))
}

func TestWaitForBulkGenerationTimeoutKeepsPartialResults(t *testing.T) {
	RegisterTestingT(t)

	handler := &script{responses: []string{bulkOnePending}}
	c := newTestClient(t, handler)

	_, err := c.WaitForBulkGeneration(context.Background(), "bulk-1", WaitOptions{MaxAttempts: 2})

	var timeoutErr *TimeoutError
	Expect(errors.As(err, &timeoutErr)).To(BeTrue(), "expected a TimeoutError, got %v", err)
	Expect(timeoutErr.LastBulk).NotTo(BeNil())
	Expect(timeoutErr.LastBulk.SuccessCount).To(Equal(2))
	Expect(timeoutErr.LastBulk.PendingCount).To(Equal(1))
	Expect(timeoutErr.LastBulk.Members["s3"].State).To(Equal(dto.StateGenerating))
	Expect(handler.Calls()).To(Equal(2))
}

func TestBulkGeneratePublicationsRejectsEmptyPromptList(t *testing.T) {
	RegisterTestingT(t)

	handler := &script{responses: []string{bulkFinished}}
	c := newTestClient(t, handler)

	_, err := c.BulkGeneratePublications(context.Background(), dto.BulkGenerationRequest{Prompts: []string{}})

	var validationErr *ValidationError
	Expect(errors.As(err, &validationErr)).To(BeTrue())
	Expect(handler.Calls()).To(Equal(0))
}

func TestBulkGeneratePublicationsRejectsBlankPrompt(t *testing.T) {
	RegisterTestingT(t)

	handler := &script{responses: []string{bulkFinished}}
	c := newTestClient(t, handler)

	_, err := c.BulkGeneratePublications(context.Background(), dto.BulkGenerationRequest{Prompts: []string{"Write about AI", "  "}})

	var validationErr *ValidationError
	Expect(errors.As(err, &validationErr)).To(BeTrue())
	Expect(handler.Calls()).To(Equal(0))
}

func TestBulkGeneratePublicationsReturnsBulkSessionID(t *testing.T) {
	RegisterTestingT(t)

	c := newTestClient(t, &script{responses: []string{
		`{"success":true,"data":{"bulkSessionId":"bulk-9","totalPrompts":2}}`,
	}})

	result, err := c.BulkGeneratePublications(context.Background(), dto.BulkGenerationRequest{
		Prompts: []string{"Write about AI", "Write about Go"},
	})

	Expect(err).To(BeNil())
	Expect(result.Success).To(BeTrue())
	Expect(result.BulkSessionID).To(Equal("bulk-9"))
	Expect(result.TotalPrompts).To(Equal(2))
}
