package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/gemcontent/contentgem-client/pkg/client/dto"
)

// request performs one API call and returns the decoded response envelope.
// Failures are classified: *NetworkError for transport problems, *APIError
// for non-2xx responses, *DecodeError for unparseable 2xx bodies. Context
// cancellation is returned as-is so callers can tell an aborted wait from
// a flaky network.
func (o *gemClient) request(ctx context.Context, method, endpoint string, body any, params url.Values) (*dto.Envelope, error) {
	apiURL := fmt.Sprintf("%s%s", o.baseURL, endpoint)
	if len(params) > 0 {
		apiURL += "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		reqBodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal request body")
		}
		reqBody = bytes.NewBuffer(reqBodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, apiURL, reqBody)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to init request to %s", endpoint)
	}
	req.Header.Set("X-API-Key", o.apiKey)
	req.Header.Set("Content-Type", "application/json")

	httpClient := &http.Client{Timeout: o.timeout}
	resp, err := httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	return decodeResponse(resp)
}

// upload performs a multipart file upload. The Content-Type header is set
// by the multipart writer rather than application/json.
func (o *gemClient) upload(ctx context.Context, endpoint, fieldName, filePath string, extra map[string]string) (*dto.Envelope, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %q", filePath)
	}
	defer f.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(fieldName, filepath.Base(filePath))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create multipart field %q", fieldName)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, errors.Wrapf(err, "failed to read %q", filePath)
	}
	for k, v := range extra {
		if err := writer.WriteField(k, v); err != nil {
			return nil, errors.Wrapf(err, "failed to write multipart field %q", k)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, errors.Wrapf(err, "failed to finalize multipart body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s%s", o.baseURL, endpoint), &buf)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to init upload request to %s", endpoint)
	}
	req.Header.Set("X-API-Key", o.apiKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	httpClient := &http.Client{Timeout: o.timeout}
	resp, err := httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	return decodeResponse(resp)
}

func decodeResponse(resp *http.Response) (*dto.Envelope, error) {
	respBytes := readBytes(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := string(respBytes)
		var env dto.Envelope
		if err := json.Unmarshal(respBytes, &env); err == nil && env.ErrorMessage() != "" {
			message = env.ErrorMessage()
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	var env dto.Envelope
	if err := json.Unmarshal(respBytes, &env); err != nil {
		return nil, &DecodeError{Shape: "envelope", Reason: fmt.Sprintf("invalid JSON body: %v", err)}
	}
	return &env, nil
}

func readBytes(stream io.Reader) []byte {
	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(stream)
	return buf.Bytes()
}
