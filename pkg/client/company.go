package client

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/gemcontent/contentgem-client/pkg/client/dto"
)

func (o *gemClient) GetCompanyInfo(ctx context.Context) (*dto.CompanyData, error) {
	env, err := o.request(ctx, http.MethodGet, "/company", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeCompany(env)
}

func (o *gemClient) UpdateCompanyInfo(ctx context.Context, data dto.CompanyData) (*dto.CompanyData, error) {
	env, err := o.request(ctx, http.MethodPut, "/company", data, nil)
	if err != nil {
		return nil, err
	}
	return decodeCompany(env)
}

// ParseCompanyWebsite starts an asynchronous extraction of the company
// profile from a public website. Track it with GetCompanyParsingStatus.
func (o *gemClient) ParseCompanyWebsite(ctx context.Context, websiteURL string) (*dto.CompanyParsingStart, error) {
	if websiteURL == "" {
		return nil, &ValidationError{Message: "websiteURL must not be empty"}
	}
	env, err := o.request(ctx, http.MethodPost, "/company/parse", dto.CompanyParsingRequest{WebsiteURL: websiteURL}, nil)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return &dto.CompanyParsingStart{Success: false, Error: apiErr.Message}, nil
		}
		return nil, errors.Wrapf(err, "failed to start website parsing")
	}
	if !env.Success {
		return &dto.CompanyParsingStart{Success: false, Error: env.ErrorMessage()}, nil
	}
	var started dto.CompanyParsingStart
	if err := decodeData(env, "company parsing start", &started); err != nil {
		return nil, err
	}
	started.Success = true
	return &started, nil
}

func (o *gemClient) GetCompanyParsingStatus(ctx context.Context) (*dto.CompanyParsingStatus, error) {
	env, err := o.request(ctx, http.MethodGet, "/company/parsing-status", nil, nil)
	if err != nil {
		return nil, err
	}
	var status dto.CompanyParsingStatus
	if err := decodeData(env, "company parsing status", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func decodeCompany(env *dto.Envelope) (*dto.CompanyData, error) {
	var nested struct {
		Company *dto.CompanyData `json:"company"`
	}
	if err := decodeData(env, "company", &nested); err != nil {
		return nil, err
	}
	if nested.Company == nil {
		return nil, &DecodeError{Shape: "company", Reason: "response is missing the company record"}
	}
	return nested.Company, nil
}
