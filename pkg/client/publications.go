package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gemcontent/contentgem-client/pkg/client/dto"
)

func (o *gemClient) GetPublications(ctx context.Context, page, limit int) (*dto.PublicationList, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))
	env, err := o.request(ctx, http.MethodGet, "/publications", nil, params)
	if err != nil {
		return nil, err
	}
	var list dto.PublicationList
	if err := decodeData(env, "publications list", &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (o *gemClient) GetPublication(ctx context.Context, publicationID string) (*dto.Publication, error) {
	env, err := o.request(ctx, http.MethodGet, fmt.Sprintf("/publications/%s", publicationID), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodePublication(env)
}

func (o *gemClient) CreatePublication(ctx context.Context, data map[string]any) (*dto.Publication, error) {
	env, err := o.request(ctx, http.MethodPost, "/publications", data, nil)
	if err != nil {
		return nil, err
	}
	return decodePublication(env)
}

func (o *gemClient) UpdatePublication(ctx context.Context, publicationID string, data map[string]any) (*dto.Publication, error) {
	env, err := o.request(ctx, http.MethodPut, fmt.Sprintf("/publications/%s", publicationID), data, nil)
	if err != nil {
		return nil, err
	}
	return decodePublication(env)
}

func (o *gemClient) DeletePublication(ctx context.Context, publicationID string) error {
	_, err := o.request(ctx, http.MethodDelete, fmt.Sprintf("/publications/%s", publicationID), nil, nil)
	return err
}

func (o *gemClient) PublishPublication(ctx context.Context, publicationID string) error {
	_, err := o.request(ctx, http.MethodPost, fmt.Sprintf("/publications/%s/publish", publicationID), nil, nil)
	return err
}

func (o *gemClient) ArchivePublication(ctx context.Context, publicationID string) error {
	_, err := o.request(ctx, http.MethodPost, fmt.Sprintf("/publications/%s/archive", publicationID), nil, nil)
	return err
}

func (o *gemClient) DownloadPublication(ctx context.Context, publicationID, format string) (json.RawMessage, error) {
	env, err := o.request(ctx, http.MethodPost, fmt.Sprintf("/publications/%s/download", publicationID), dto.DownloadRequest{Format: format}, nil)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

func decodePublication(env *dto.Envelope) (*dto.Publication, error) {
	// the publication may come flat or nested under "publication"
	var nested struct {
		Publication *dto.Publication `json:"publication"`
	}
	if err := decodeData(env, "publication", &nested); err == nil && nested.Publication != nil {
		return nested.Publication, nil
	}
	var pub dto.Publication
	if err := decodeData(env, "publication", &pub); err != nil {
		return nil, err
	}
	return &pub, nil
}
