package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// DashboardStats fetches the cross-persona overview aggregate.
func (c *Client) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	var out DashboardStats
	if err := c.do(ctx, http.MethodGet, "/api/analytics/overview", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PersonaStats fetches the analytics aggregate for one persona.
func (c *Client) PersonaStats(ctx context.Context, id string) (*PersonaStats, error) {
	var out PersonaStats
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/analytics/personas/%s/stats", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ActivityLog returns the most recent automation audit entries, newest first.
// A non-positive limit lets the backend apply its default.
func (c *Client) ActivityLog(ctx context.Context, limit int) ([]ActivityLogEntry, error) {
	var q url.Values
	if limit > 0 {
		q = url.Values{"limit": {strconv.Itoa(limit)}}
	}

	var out []ActivityLogEntry
	if err := c.do(ctx, http.MethodGet, "/api/analytics/activity-log", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TriggerEngagement kicks off one asynchronous engagement run for the
// persona. The backend acknowledges with a task id immediately; progress is
// observed by refetching the activity log and persona counters.
func (c *Client) TriggerEngagement(ctx context.Context, personaID string) (*TaskResponse, error) {
	var out TaskResponse
	path := fmt.Sprintf("/api/analytics/personas/%s/engagement/trigger", personaID)
	if err := c.do(ctx, http.MethodPost, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
