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

func (o *gemClient) GetImages(ctx context.Context, page, limit int) (*dto.ImageList, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))
	env, err := o.request(ctx, http.MethodGet, "/images", nil, params)
	if err != nil {
		return nil, err
	}
	var list dto.ImageList
	if err := decodeData(env, "images list", &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (o *gemClient) GetImage(ctx context.Context, imageID string) (*dto.Image, error) {
	env, err := o.request(ctx, http.MethodGet, fmt.Sprintf("/images/%s", imageID), nil, nil)
	if err != nil {
		return nil, err
	}
	var img dto.Image
	if err := decodeData(env, "image", &img); err != nil {
		return nil, err
	}
	return &img, nil
}

// UploadImage sends the file as multipart form data, optionally associating
// it with a publication.
func (o *gemClient) UploadImage(ctx context.Context, filePath, publicationID string) (*dto.Image, error) {
	if filePath == "" {
		return nil, &ValidationError{Message: "filePath must not be empty"}
	}
	extra := map[string]string{}
	if publicationID != "" {
		extra["publicationId"] = publicationID
	}
	env, err := o.upload(ctx, "/images/upload", "image", filePath, extra)
	if err != nil {
		return nil, err
	}
	var img dto.Image
	if err := decodeData(env, "image", &img); err != nil {
		return nil, err
	}
	return &img, nil
}

func (o *gemClient) GenerateImage(ctx context.Context, req dto.ImageGenerationRequest) (json.RawMessage, error) {
	if req.Prompt == "" {
		return nil, &ValidationError{Message: "prompt must not be empty"}
	}
	env, err := o.request(ctx, http.MethodPost, "/images/generate", req, nil)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (o *gemClient) DeleteImage(ctx context.Context, imageID string) error {
	_, err := o.request(ctx, http.MethodDelete, fmt.Sprintf("/images/%s", imageID), nil, nil)
	return err
}
