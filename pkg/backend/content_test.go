package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListContentQuerySerialization(t *testing.T) {
	c, captured := newTestClient(t, http.StatusOK, []Content{})

	_, err := c.ListContent(context.Background(), &ContentFilters{Status: StatusScheduled})
	require.NoError(t, err)

	q, err := url.ParseQuery(captured.Query)
	require.NoError(t, err)
	assert.Equal(t, "scheduled", q.Get("status"))
	assert.False(t, q.Has("persona_id"))
}

func TestListContentWithoutFilters(t *testing.T) {
	c, captured := newTestClient(t, http.StatusOK, []Content{})

	_, err := c.ListContent(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "/api/content/", captured.Path)
	assert.Empty(t, captured.Query)
}

func TestContentQueue(t *testing.T) {
	c, captured := newTestClient(t, http.StatusOK, []Content{{ID: "c1", Status: StatusPendingReview}})

	items, err := c.ContentQueue(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "/api/content/queue/p1", captured.Path)
	require.Len(t, items, 1)
	assert.Equal(t, StatusPendingReview, items[0].Status)
}

func TestUpdateContentSendsOnlyProvidedFields(t *testing.T) {
	c, captured := newTestClient(t, http.StatusOK, map[string]any{"id": "c1"})

	caption := "updated caption"
	_, err := c.UpdateContent(context.Background(), "c1", ContentUpdate{Caption: &caption})
	require.NoError(t, err)

	keys := bodyKeys(t, captured.Body)
	require.Len(t, keys, 1)
	assert.Contains(t, keys, "caption")
}

func TestPostContentNowWithoutPlatforms(t *testing.T) {
	c, captured := newTestClient(t, http.StatusOK, map[string]any{"id": "c1"})

	_, err := c.PostContentNow(context.Background(), "c1", nil)
	require.NoError(t, err)

	assert.Equal(t, "/api/content/c1/post-now", captured.Path)
	assert.NotContains(t, bodyKeys(t, captured.Body), "platforms")
}

func TestPostContentNowWithPlatforms(t *testing.T) {
	c, captured := newTestClient(t, http.StatusOK, map[string]any{"id": "c1"})

	_, err := c.PostContentNow(context.Background(), "c1", []string{"twitter", "instagram"})
	require.NoError(t, err)

	var body struct {
		Platforms []string `json:"platforms"`
	}
	require.NoError(t, json.Unmarshal(captured.Body, &body))
	assert.Equal(t, []string{"twitter", "instagram"}, body.Platforms)
}

func TestApproveRejectRetry(t *testing.T) {
	c, captured := newTestClient(t, http.StatusOK, map[string]any{"id": "c1", "status": "approved"})
	item, err := c.ApproveContent(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "/api/content/c1/approve", captured.Path)
	assert.Equal(t, StatusApproved, item.Status)

	c, captured = newTestClient(t, http.StatusNoContent, nil)
	require.NoError(t, c.RejectContent(context.Background(), "c1"))
	assert.Equal(t, "/api/content/c1/reject", captured.Path)
	assert.Equal(t, http.MethodPost, captured.Method)

	c, captured = newTestClient(t, http.StatusOK, map[string]any{"id": "c1", "status": "scheduled"})
	item, err = c.RetryContent(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "/api/content/c1/retry", captured.Path)
	assert.Equal(t, StatusScheduled, item.Status)
}

func TestGenerateContentRemapsVideoPost(t *testing.T) {
	c, captured := newTestClient(t, http.StatusOK, map[string]any{"id": "c1"})

	_, err := c.GenerateContent(context.Background(), "p1", GenerateOptions{
		ContentType:   ContentTypeVideo,
		GenerateVideo: false,
		Topic:         "leg day",
	})
	require.NoError(t, err)

	assert.Equal(t, "/api/content/p1/generate", captured.Path)

	var body GenerateRequest
	require.NoError(t, json.Unmarshal(captured.Body, &body))
	assert.Equal(t, ContentTypePost, body.ContentType)
	assert.True(t, body.GenerateVideo)
	assert.Equal(t, "leg day", body.Topic)
}

func TestGenerateContentPlainPostDefaultsVideoOff(t *testing.T) {
	c, captured := newTestClient(t, http.StatusOK, map[string]any{"id": "c1"})

	_, err := c.GenerateContent(context.Background(), "p1", GenerateOptions{ContentType: ContentTypePost})
	require.NoError(t, err)

	var body GenerateRequest
	require.NoError(t, json.Unmarshal(captured.Body, &body))
	assert.Equal(t, ContentTypePost, body.ContentType)
	assert.False(t, body.GenerateVideo)
}
