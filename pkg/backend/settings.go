package backend

import (
	"context"
	"net/http"
)

// AutomationUpdate partially updates the global automation switches.
type AutomationUpdate struct {
	AutomationEnabled *bool `json:"automation_enabled,omitempty"`
	EngagementEnabled *bool `json:"engagement_enabled,omitempty"`
	PostingEnabled    *bool `json:"posting_enabled,omitempty"`
}

// RateLimitsUpdate partially updates the global daily caps.
type RateLimitsUpdate struct {
	LikesPerDay    *int `json:"likes_per_day,omitempty"`
	CommentsPerDay *int `json:"comments_per_day,omitempty"`
	FollowsPerDay  *int `json:"follows_per_day,omitempty"`
	DMsPerDay      *int `json:"dms_per_day,omitempty"`
	PostsPerDay    *int `json:"posts_per_day,omitempty"`
}

// SystemStatus reports whether the backend's automation loops are running.
func (c *Client) SystemStatus(ctx context.Context) (*SystemStatus, error) {
	var out SystemStatus
	if err := c.do(ctx, http.MethodGet, "/api/settings/status", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RateLimits reports today's usage against the global caps.
func (c *Client) RateLimits(ctx context.Context) (*RateLimits, error) {
	var out RateLimits
	if err := c.do(ctx, http.MethodGet, "/api/settings/rate-limits", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAutomation flips global automation switches.
func (c *Client) UpdateAutomation(ctx context.Context, in AutomationUpdate) (*AutomationSettings, error) {
	var out AutomationSettings
	if err := c.do(ctx, http.MethodPatch, "/api/settings/automation", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateRateLimits changes the global daily caps.
func (c *Client) UpdateRateLimits(ctx context.Context, in RateLimitsUpdate) (*RateLimits, error) {
	var out RateLimits
	if err := c.do(ctx, http.MethodPatch, "/api/settings/rate-limits", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
