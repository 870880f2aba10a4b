package backend

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriggerEngagementReturnsTaskUnmodified(t *testing.T) {
	c, captured := newTestClient(t, http.StatusAccepted, map[string]any{
		"success": true,
		"task_id": "t1",
		"message": "started",
	})

	task, err := c.TriggerEngagement(context.Background(), "p1")
	require.NoError(t, err)

	assert.Equal(t, "/api/analytics/personas/p1/engagement/trigger", captured.Path)
	assert.Equal(t, &TaskResponse{Success: true, TaskID: "t1", Message: "started"}, task)
}

func TestActivityLogLimit(t *testing.T) {
	c, captured := newTestClient(t, http.StatusOK, []ActivityLogEntry{})

	_, err := c.ActivityLog(context.Background(), 25)
	require.NoError(t, err)

	q, err := url.ParseQuery(captured.Query)
	require.NoError(t, err)
	assert.Equal(t, "25", q.Get("limit"))
}

func TestActivityLogWithoutLimitOmitsParam(t *testing.T) {
	c, captured := newTestClient(t, http.StatusOK, []ActivityLogEntry{})

	_, err := c.ActivityLog(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, captured.Query)
}

func TestDashboardStats(t *testing.T) {
	c, captured := newTestClient(t, http.StatusOK, map[string]any{
		"total_personas":  3,
		"active_personas": 2,
		"pending_review":  5,
		"engagement_today": map[string]int{
			"likes": 40, "comments": 11, "follows": 3, "dms": 1,
		},
	})

	stats, err := c.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/api/analytics/overview", captured.Path)
	assert.Equal(t, 3, stats.TotalPersonas)
	assert.Equal(t, 40, stats.EngagementToday.Likes)
}

func TestSettingsEndpoints(t *testing.T) {
	c, captured := newTestClient(t, http.StatusOK, map[string]any{"automation_enabled": true})
	_, err := c.SystemStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/api/settings/status", captured.Path)

	c, captured = newTestClient(t, http.StatusOK, map[string]any{"automation_enabled": false})
	enabled := false
	settings, err := c.UpdateAutomation(context.Background(), AutomationUpdate{AutomationEnabled: &enabled})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, captured.Method)
	assert.Equal(t, "/api/settings/automation", captured.Path)
	assert.False(t, settings.AutomationEnabled)

	keys := bodyKeys(t, captured.Body)
	require.Len(t, keys, 1)
	assert.Contains(t, keys, "automation_enabled")

	c, captured = newTestClient(t, http.StatusOK, map[string]any{
		"likes": map[string]int{"used": 10, "limit": 100},
	})
	limits, err := c.RateLimits(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/api/settings/rate-limits", captured.Path)
	assert.Equal(t, 10, limits.Likes.Used)
	assert.Equal(t, 100, limits.Likes.Limit)
}
