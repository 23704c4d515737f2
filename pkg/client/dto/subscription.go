package dto

import "encoding/json"

// Plan is the subscription plan the account is on.
type Plan struct {
	Name     string  `json:"name" yaml:"name"`
	Slug     string  `json:"slug" yaml:"slug"`
	Price    float64 `json:"price" yaml:"price"`
	Currency string  `json:"currency" yaml:"currency"`
	Interval string  `json:"interval" yaml:"interval"` // month, year
}

// Usage tracks generation quota consumption for the current period.
type Usage struct {
	PostsUsed      int `json:"postsUsed" yaml:"postsUsed"`
	PostsRemaining int `json:"postsRemaining" yaml:"postsRemaining"`
	PostsPerMonth  int `json:"postsPerMonth" yaml:"postsPerMonth"`
}

// SubscriptionStatus is the account's current subscription snapshot.
type SubscriptionStatus struct {
	Plan            *Plan   `json:"plan,omitempty" yaml:"plan,omitempty"`
	Usage           *Usage  `json:"usage,omitempty" yaml:"usage,omitempty"`
	Status          string  `json:"status" yaml:"status"` // active, cancelled, past_due
	NextBillingDate *string `json:"nextBillingDate,omitempty" yaml:"nextBillingDate,omitempty"`
}

// StatisticsOverview aggregates account-wide counters.
type StatisticsOverview struct {
	Publications map[string]int  `json:"publications,omitempty" yaml:"publications,omitempty"` // total, published, draft, ...
	Images       json.RawMessage `json:"images,omitempty" yaml:"images,omitempty"`
	APIKeys      json.RawMessage `json:"apiKeys,omitempty" yaml:"apiKeys,omitempty"`
	UserLimits   json.RawMessage `json:"userLimits,omitempty" yaml:"userLimits,omitempty"`
}

// HealthStatus is the /health endpoint payload.
type HealthStatus struct {
	User map[string]string `json:"user,omitempty" yaml:"user,omitempty"` // email, plan
}
