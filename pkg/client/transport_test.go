package client

import (
	"context"
	"net/http"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
)

func TestRequestSendsAPIKeyHeader(t *testing.T) {
	RegisterTestingT(t)

	var gotKey, gotContentType string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-Key")
		gotContentType = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte(statusBody("pending")))
	}))

	_, err := c.CheckGenerationStatus(context.Background(), "sess-1")

	Expect(err).To(BeNil())
	Expect(gotKey).To(Equal("test-key"))
	Expect(gotContentType).To(Equal("application/json"))
}

func TestRequestClassifiesAPIError(t *testing.T) {
	RegisterTestingT(t)

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success":false,"error":"invalid api key"}`))
	}))

	_, err := c.CheckGenerationStatus(context.Background(), "sess-1")

	var apiErr *APIError
	Expect(errors.As(err, &apiErr)).To(BeTrue(), "expected an APIError, got %v", err)
	Expect(apiErr.StatusCode).To(Equal(http.StatusUnauthorized))
	Expect(apiErr.Message).To(Equal("invalid api key"))
}

func TestRequestFallsBackToRawBodyOnUnstructuredError(t *testing.T) {
	RegisterTestingT(t)

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))

	_, err := c.CheckGenerationStatus(context.Background(), "sess-1")

	var apiErr *APIError
	Expect(errors.As(err, &apiErr)).To(BeTrue())
	Expect(apiErr.Message).To(Equal("upstream exploded"))
}

func TestRequestClassifiesNetworkError(t *testing.T) {
	RegisterTestingT(t)

	// nothing listens on port 1
	c := NewClient(Config{ApiKey: "test-key", Url: "http://127.0.0.1:1"})

	_, err := c.CheckGenerationStatus(context.Background(), "sess-1")

	var netErr *NetworkError
	Expect(errors.As(err, &netErr)).To(BeTrue(), "expected a NetworkError, got %v", err)
}

func TestRequestClassifiesGarbageBodyAsDecodeError(t *testing.T) {
	RegisterTestingT(t)

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>definitely not json</html>"))
	}))

	_, err := c.CheckGenerationStatus(context.Background(), "sess-1")

	var decodeErr *DecodeError
	Expect(errors.As(err, &decodeErr)).To(BeTrue(), "expected a DecodeError, got %v", err)
}
