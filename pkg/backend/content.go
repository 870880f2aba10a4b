package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ContentFilters narrows a content listing. Zero-valued fields are omitted
// from the query string.
type ContentFilters struct {
	PersonaID string
	Status    ContentStatus
}

func (f *ContentFilters) query() url.Values {
	if f == nil {
		return nil
	}
	q := url.Values{}
	if f.PersonaID != "" {
		q.Set("persona_id", f.PersonaID)
	}
	if f.Status != "" {
		q.Set("status", string(f.Status))
	}
	return q
}

// ContentUpdate is a partial update for a content item.
type ContentUpdate struct {
	Caption      *string        `json:"caption,omitempty"`
	Hashtags     *[]string      `json:"hashtags,omitempty"`
	ContentType  *ContentType   `json:"content_type,omitempty"`
	Status       *ContentStatus `json:"status,omitempty"`
	ScheduledFor *time.Time     `json:"scheduled_for,omitempty"`
}

type postNowRequest struct {
	Platforms []string `json:"platforms,omitempty"`
}

// ListContent returns content items, optionally filtered by persona and status.
func (c *Client) ListContent(ctx context.Context, filters *ContentFilters) ([]Content, error) {
	var out []Content
	if err := c.do(ctx, http.MethodGet, "/api/content/", filters.query(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ContentQueue returns the pending-review queue for one persona.
func (c *Client) ContentQueue(ctx context.Context, personaID string) ([]Content, error) {
	var out []Content
	if err := c.do(ctx, http.MethodGet, "/api/content/queue/"+personaID, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateContent applies a partial update and returns the merged item.
func (c *Client) UpdateContent(ctx context.Context, id string, in ContentUpdate) (*Content, error) {
	var out Content
	if err := c.do(ctx, http.MethodPatch, "/api/content/"+id, nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteContent removes a content item.
func (c *Client) DeleteContent(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/content/"+id, nil, nil, nil)
}

// ApproveContent resolves a pending_review item into the scheduled pipeline.
func (c *Client) ApproveContent(ctx context.Context, id string) (*Content, error) {
	var out Content
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/content/%s/approve", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RejectContent discards a pending_review item. The backend returns no body.
func (c *Client) RejectContent(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/content/%s/reject", id), nil, nil, nil)
}

// PostContentNow asks the backend to publish immediately. With a nil or empty
// platforms slice the backend picks its default targets; the request body
// then carries no platforms field at all. Publishing is asynchronous: the
// returned item usually still shows its pre-publish status.
func (c *Client) PostContentNow(ctx context.Context, id string, platforms []string) (*Content, error) {
	body := postNowRequest{}
	if len(platforms) > 0 {
		body.Platforms = platforms
	}

	var out Content
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/content/%s/post-now", id), nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RetryContent moves a failed item back to scheduled.
func (c *Client) RetryContent(ctx context.Context, id string) (*Content, error) {
	var out Content
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/content/%s/retry", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateContent asks the backend to generate a new item for the persona.
// Options pass through BuildGenerateRequest before hitting the wire.
func (c *Client) GenerateContent(ctx context.Context, personaID string, opts GenerateOptions) (*Content, error) {
	var out Content
	req := BuildGenerateRequest(opts)
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/content/%s/generate", personaID), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
