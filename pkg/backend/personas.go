package backend

import (
	"context"
	"fmt"
	"net/http"
)

// PersonaCreate is the payload for creating a persona. The backend rejects
// an empty niche list.
type PersonaCreate struct {
	Name                 string              `json:"name"`
	Bio                  string              `json:"bio"`
	Niche                []string            `json:"niche"`
	Voice                VoiceProfile        `json:"voice"`
	AIProvider           string              `json:"ai_provider,omitempty"`
	PostingSchedule      string              `json:"posting_schedule,omitempty"`
	EngagementHoursStart int                 `json:"engagement_hours_start"`
	EngagementHoursEnd   int                 `json:"engagement_hours_end"`
	Timezone             string              `json:"timezone,omitempty"`
	AutoApproveContent   bool                `json:"auto_approve_content"`
	RateLimits           *RateLimitOverrides `json:"rate_limits,omitempty"`
	Prompts              *PromptOverrides    `json:"prompts,omitempty"`
	Appearance           *Appearance         `json:"appearance,omitempty"`
}

// PersonaUpdate is a partial update. Nil fields are left out of the PATCH
// body entirely, so the backend only merges what the caller set.
type PersonaUpdate struct {
	Name                 *string             `json:"name,omitempty"`
	Bio                  *string             `json:"bio,omitempty"`
	Niche                *[]string           `json:"niche,omitempty"`
	Voice                *VoiceProfile       `json:"voice,omitempty"`
	AIProvider           *string             `json:"ai_provider,omitempty"`
	PostingSchedule      *string             `json:"posting_schedule,omitempty"`
	EngagementHoursStart *int                `json:"engagement_hours_start,omitempty"`
	EngagementHoursEnd   *int                `json:"engagement_hours_end,omitempty"`
	Timezone             *string             `json:"timezone,omitempty"`
	AutoApproveContent   *bool               `json:"auto_approve_content,omitempty"`
	RateLimits           *RateLimitOverrides `json:"rate_limits,omitempty"`
	Prompts              *PromptOverrides    `json:"prompts,omitempty"`
	Appearance           *Appearance         `json:"appearance,omitempty"`
}

// Personas lists every persona.
func (c *Client) Personas(ctx context.Context) ([]Persona, error) {
	var out []Persona
	if err := c.do(ctx, http.MethodGet, "/api/personas/", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Persona fetches one persona by id.
func (c *Client) Persona(ctx context.Context, id string) (*Persona, error) {
	var out Persona
	if err := c.do(ctx, http.MethodGet, "/api/personas/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreatePersona creates a persona and returns it with backend-assigned fields.
func (c *Client) CreatePersona(ctx context.Context, in PersonaCreate) (*Persona, error) {
	var out Persona
	if err := c.do(ctx, http.MethodPost, "/api/personas/", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePersona applies a partial update and returns the merged persona.
func (c *Client) UpdatePersona(ctx context.Context, id string, in PersonaUpdate) (*Persona, error) {
	var out Persona
	if err := c.do(ctx, http.MethodPatch, "/api/personas/"+id, nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePersona removes a persona. There is no undo.
func (c *Client) DeletePersona(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/personas/"+id, nil, nil, nil)
}

// PausePersona stops all automation for the persona (is_active becomes false).
func (c *Client) PausePersona(ctx context.Context, id string) (*Persona, error) {
	var out Persona
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/personas/%s/pause", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResumePersona restarts automation for the persona (is_active becomes true).
func (c *Client) ResumePersona(ctx context.Context, id string) (*Persona, error) {
	var out Persona
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/personas/%s/resume", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
