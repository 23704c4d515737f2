package client

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gemcontent/contentgem-client/pkg/client/dto"
)

func (o *gemClient) GetSubscriptionStatus(ctx context.Context) (*dto.SubscriptionStatus, error) {
	env, err := o.request(ctx, http.MethodGet, "/subscription/status", nil, nil)
	if err != nil {
		return nil, err
	}
	var status dto.SubscriptionStatus
	if err := decodeData(env, "subscription status", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (o *gemClient) GetSubscriptionLimits(ctx context.Context) (json.RawMessage, error) {
	env, err := o.request(ctx, http.MethodGet, "/subscription/limits", nil, nil)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (o *gemClient) GetSubscriptionPlans(ctx context.Context) (json.RawMessage, error) {
	env, err := o.request(ctx, http.MethodGet, "/subscription/plans", nil, nil)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (o *gemClient) GetStatisticsOverview(ctx context.Context) (*dto.StatisticsOverview, error) {
	env, err := o.request(ctx, http.MethodGet, "/statistics/overview", nil, nil)
	if err != nil {
		return nil, err
	}
	var overview dto.StatisticsOverview
	if err := decodeData(env, "statistics overview", &overview); err != nil {
		return nil, err
	}
	return &overview, nil
}

func (o *gemClient) GetPublicationStatistics(ctx context.Context) (json.RawMessage, error) {
	env, err := o.request(ctx, http.MethodGet, "/statistics/publications", nil, nil)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (o *gemClient) GetImageStatistics(ctx context.Context) (json.RawMessage, error) {
	env, err := o.request(ctx, http.MethodGet, "/statistics/images", nil, nil)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (o *gemClient) HealthCheck(ctx context.Context) (*dto.HealthStatus, error) {
	env, err := o.request(ctx, http.MethodGet, "/health", nil, nil)
	if err != nil {
		return nil, err
	}
	var health dto.HealthStatus
	if len(env.Data) > 0 {
		if err := decodeData(env, "health", &health); err != nil {
			return nil, err
		}
	}
	return &health, nil
}
