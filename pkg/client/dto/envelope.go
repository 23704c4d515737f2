package dto

import (
	"encoding/json"

	"github.com/simple-container-com/go-aws-lambda-sdk/pkg/service"
)

// Envelope is the uniform wrapper around every GemContent API response.
type Envelope struct {
	Success bool                `json:"success" yaml:"success"`                     // whether the request was processed successfully
	Data    json.RawMessage     `json:"data,omitempty" yaml:"data,omitempty"`       // shape depends on the endpoint
	Message *string             `json:"message,omitempty" yaml:"message,omitempty"` // human-readable info message
	Error   *string             `json:"error,omitempty" yaml:"error,omitempty"`     // error message when success is false
	Meta    *service.ResultMeta `json:"meta,omitempty" yaml:"meta,omitempty"`       // metadata related to processing
}

// ErrorMessage returns the best error description the envelope carries.
func (e *Envelope) ErrorMessage() string {
	if e.Error != nil && *e.Error != "" {
		return *e.Error
	}
	if e.Message != nil {
		return *e.Message
	}
	return ""
}
