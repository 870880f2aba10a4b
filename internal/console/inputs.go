package console

import (
	v "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/personaops/console/pkg/backend"
)

type CreatePersonaBody struct {
	Name                 string                      `json:"name"`
	Bio                  string                      `json:"bio"`
	Niche                []string                    `json:"niche"`
	Voice                backend.VoiceProfile        `json:"voice"`
	AIProvider           string                      `json:"ai_provider"`
	PostingSchedule      string                      `json:"posting_schedule"`
	EngagementHoursStart int                         `json:"engagement_hours_start"`
	EngagementHoursEnd   int                         `json:"engagement_hours_end"`
	Timezone             string                      `json:"timezone"`
	AutoApproveContent   bool                        `json:"auto_approve_content"`
	RateLimits           *backend.RateLimitOverrides `json:"rate_limits"`
	Prompts              *backend.PromptOverrides    `json:"prompts"`
	Appearance           *backend.Appearance         `json:"appearance"`
}

func (b CreatePersonaBody) Validate() error {
	return v.ValidateStruct(&b,
		v.Field(&b.Name, v.Required),
		v.Field(&b.Niche, v.Required, v.Length(1, 0)),
		v.Field(&b.EngagementHoursStart, v.Min(0), v.Max(23)),
		v.Field(&b.EngagementHoursEnd, v.Min(0), v.Max(23)),
	)
}

func (b CreatePersonaBody) toCreate() backend.PersonaCreate {
	return backend.PersonaCreate{
		Name:                 b.Name,
		Bio:                  b.Bio,
		Niche:                b.Niche,
		Voice:                b.Voice,
		AIProvider:           b.AIProvider,
		PostingSchedule:      b.PostingSchedule,
		EngagementHoursStart: b.EngagementHoursStart,
		EngagementHoursEnd:   b.EngagementHoursEnd,
		Timezone:             b.Timezone,
		AutoApproveContent:   b.AutoApproveContent,
		RateLimits:           b.RateLimits,
		Prompts:              b.Prompts,
		Appearance:           b.Appearance,
	}
}

type GenerateBody struct {
	Topic         string `json:"topic"`
	ContentType   string `json:"content_type"`
	GenerateVideo bool   `json:"generate_video"`
	Platform      string `json:"platform"`
}

func (b GenerateBody) Validate() error {
	return v.ValidateStruct(&b,
		v.Field(&b.ContentType, v.In("", "post", "video_post", "story", "reel", "carousel")),
		v.Field(&b.Platform, v.In("", backend.PlatformTwitter, backend.PlatformInstagram, backend.PlatformFanvue)),
	)
}

type CompleteOAuthBody struct {
	OAuthToken string `json:"oauth_token"`
	PIN        string `json:"pin"`
}

func (b CompleteOAuthBody) Validate() error {
	return v.ValidateStruct(&b,
		v.Field(&b.OAuthToken, v.Required),
		v.Field(&b.PIN, v.Required),
	)
}

type ConnectInstagramBody struct {
	AccessToken string `json:"access_token"`
}

func (b ConnectInstagramBody) Validate() error {
	return v.ValidateStruct(&b,
		v.Field(&b.AccessToken, v.Required),
	)
}

type SetCookiesBody struct {
	Cookies string `json:"cookies"`
}

func (b SetCookiesBody) Validate() error {
	return v.ValidateStruct(&b,
		v.Field(&b.Cookies, v.Required),
	)
}

type ToggleAccountBody struct {
	EngagementPaused *bool `json:"engagement_paused"`
	PostingPaused    *bool `json:"posting_paused"`
}

func (b ToggleAccountBody) Validate() error {
	if b.EngagementPaused == nil && b.PostingPaused == nil {
		return v.NewError("validation_empty_toggle", "at least one of engagement_paused or posting_paused is required")
	}
	return nil
}

type PostNowBody struct {
	Platforms []string `json:"platforms"`
}

func (b PostNowBody) Validate() error {
	return v.ValidateStruct(&b,
		v.Field(&b.Platforms, v.Each(v.In(backend.PlatformTwitter, backend.PlatformInstagram, backend.PlatformFanvue))),
	)
}
