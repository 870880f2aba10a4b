package backend

import "time"

// ContentType is the UI-facing type of a content item.
type ContentType string

const (
	ContentTypePost     ContentType = "post"
	ContentTypeVideo    ContentType = "video_post"
	ContentTypeStory    ContentType = "story"
	ContentTypeReel     ContentType = "reel"
	ContentTypeCarousel ContentType = "carousel"
)

// ContentStatus is the lifecycle stage of a content item.
type ContentStatus string

const (
	StatusDraft         ContentStatus = "draft"
	StatusPendingReview ContentStatus = "pending_review"
	StatusApproved      ContentStatus = "approved"
	StatusScheduled     ContentStatus = "scheduled"
	StatusPosted        ContentStatus = "posted"
	StatusPublished     ContentStatus = "published"
	StatusFailed        ContentStatus = "failed"
)

const (
	PlatformTwitter   = "twitter"
	PlatformInstagram = "instagram"
	PlatformFanvue    = "fanvue"
)

// VoiceProfile describes how a persona writes.
type VoiceProfile struct {
	Tone             string   `json:"tone"`
	VocabularyLevel  string   `json:"vocabulary_level"`
	EmojiUsage       string   `json:"emoji_usage"`
	HashtagStyle     string   `json:"hashtag_style"`
	SignaturePhrases []string `json:"signature_phrases"`
}

// RateLimitOverrides are optional per-persona caps on daily automation actions.
type RateLimitOverrides struct {
	LikesPerDay    *int `json:"likes_per_day,omitempty"`
	CommentsPerDay *int `json:"comments_per_day,omitempty"`
	FollowsPerDay  *int `json:"follows_per_day,omitempty"`
	DMsPerDay      *int `json:"dms_per_day,omitempty"`
	PostsPerDay    *int `json:"posts_per_day,omitempty"`
}

// PromptOverrides replace the backend's default generation prompts for one persona.
type PromptOverrides struct {
	SystemPrompt  *string `json:"system_prompt,omitempty"`
	ContentPrompt *string `json:"content_prompt,omitempty"`
	CommentPrompt *string `json:"comment_prompt,omitempty"`
}

// Appearance feeds image/video generation for personas with a visual identity.
type Appearance struct {
	ImageDescription string `json:"image_description,omitempty"`
	VideoDescription string `json:"video_description,omitempty"`
}

// Persona is one AI-driven social identity managed by the backend.
type Persona struct {
	ID                   string              `json:"id"`
	Name                 string              `json:"name"`
	Bio                  string              `json:"bio"`
	Niche                []string            `json:"niche"`
	Voice                VoiceProfile        `json:"voice"`
	AIProvider           string              `json:"ai_provider"`
	PostingSchedule      string              `json:"posting_schedule"`
	EngagementHoursStart int                 `json:"engagement_hours_start"`
	EngagementHoursEnd   int                 `json:"engagement_hours_end"`
	Timezone             string              `json:"timezone"`
	AutoApproveContent   bool                `json:"auto_approve_content"`
	IsActive             bool                `json:"is_active"`
	FollowerCount        int                 `json:"follower_count"`
	FollowingCount       int                 `json:"following_count"`
	PostCount            int                 `json:"post_count"`
	LikesToday           int                 `json:"likes_today"`
	CommentsToday        int                 `json:"comments_today"`
	FollowsToday         int                 `json:"follows_today"`
	DMsToday             int                 `json:"dms_today"`
	RateLimits           *RateLimitOverrides `json:"rate_limits,omitempty"`
	Prompts              *PromptOverrides    `json:"prompts,omitempty"`
	Appearance           *Appearance         `json:"appearance,omitempty"`
	CreatedAt            time.Time           `json:"created_at"`
	UpdatedAt            time.Time           `json:"updated_at"`
}

// Content is one generated or scheduled social post.
type Content struct {
	ID              string        `json:"id"`
	PersonaID       string        `json:"persona_id"`
	ContentType     ContentType   `json:"content_type"`
	Caption         string        `json:"caption"`
	Hashtags        []string      `json:"hashtags"`
	MediaURLs       []string      `json:"media_urls"`
	VideoURLs       []string      `json:"video_urls"`
	Status          ContentStatus `json:"status"`
	ScheduledFor    *time.Time    `json:"scheduled_for"`
	PostedAt        *time.Time    `json:"posted_at"`
	AutoGenerated   bool          `json:"auto_generated"`
	EngagementCount int           `json:"engagement_count"`
	ErrorMessage    *string       `json:"error_message"`
	PostedPlatforms []string      `json:"posted_platforms"`
	PlatformURL     string        `json:"platform_url"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// PlatformAccount is a linked external social account owned by a persona.
type PlatformAccount struct {
	ID                string    `json:"id"`
	PersonaID         string    `json:"persona_id"`
	Platform          string    `json:"platform"`
	Username          string    `json:"username"`
	PlatformUserID    string    `json:"platform_user_id"`
	ProfileURL        string    `json:"profile_url"`
	IsConnected       bool      `json:"is_connected"`
	IsPrimary         bool      `json:"is_primary"`
	EngagementEnabled bool      `json:"engagement_enabled"`
	EngagementPaused  bool      `json:"engagement_paused"`
	PostingPaused     bool      `json:"posting_paused"`
	FollowerCount     int       `json:"follower_count"`
	FollowingCount    int       `json:"following_count"`
	PostCount         int       `json:"post_count"`
	CreatedAt         time.Time `json:"created_at"`
}

// EngagementTotals groups one day's automation counters.
type EngagementTotals struct {
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
	Follows  int `json:"follows"`
	DMs      int `json:"dms"`
}

// DashboardStats is the read-only overview aggregate.
type DashboardStats struct {
	TotalPersonas   int              `json:"total_personas"`
	ActivePersonas  int              `json:"active_personas"`
	TotalPosts      int              `json:"total_posts"`
	PostsToday      int              `json:"posts_today"`
	PendingReview   int              `json:"pending_review"`
	ScheduledPosts  int              `json:"scheduled_posts"`
	FailedPosts     int              `json:"failed_posts"`
	TotalFollowers  int              `json:"total_followers"`
	EngagementToday EngagementTotals `json:"engagement_today"`
}

// PersonaStats is the per-persona analytics aggregate.
type PersonaStats struct {
	PersonaID       string           `json:"persona_id"`
	FollowerCount   int              `json:"follower_count"`
	FollowingCount  int              `json:"following_count"`
	PostCount       int              `json:"post_count"`
	PostsThisWeek   int              `json:"posts_this_week"`
	FollowerGrowth  int              `json:"follower_growth"`
	EngagementRate  float64          `json:"engagement_rate"`
	EngagementToday EngagementTotals `json:"engagement_today"`
}

// ActivityLogEntry is one row of the backend's automation audit trail.
type ActivityLogEntry struct {
	ID          string    `json:"id"`
	PersonaID   string    `json:"persona_id"`
	PersonaName string    `json:"persona_name"`
	Platform    string    `json:"platform"`
	Action      string    `json:"action"`
	Detail      string    `json:"detail"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// RateLimitWindow reports usage against one daily cap.
type RateLimitWindow struct {
	Used     int       `json:"used"`
	Limit    int       `json:"limit"`
	ResetsAt time.Time `json:"resets_at"`
}

// RateLimits is the global automation budget report.
type RateLimits struct {
	Likes    RateLimitWindow `json:"likes"`
	Comments RateLimitWindow `json:"comments"`
	Follows  RateLimitWindow `json:"follows"`
	DMs      RateLimitWindow `json:"dms"`
	Posts    RateLimitWindow `json:"posts"`
}

// SystemStatus reports whether backend automation loops are running.
type SystemStatus struct {
	AutomationEnabled bool      `json:"automation_enabled"`
	EngagementEnabled bool      `json:"engagement_enabled"`
	PostingEnabled    bool      `json:"posting_enabled"`
	Uptime            string    `json:"uptime"`
	Version           string    `json:"version"`
	CheckedAt         time.Time `json:"checked_at"`
}

// AutomationSettings mirrors the PATCHable global automation switches.
type AutomationSettings struct {
	AutomationEnabled bool `json:"automation_enabled"`
	EngagementEnabled bool `json:"engagement_enabled"`
	PostingEnabled    bool `json:"posting_enabled"`
}

// OAuthStart is the first leg of the Twitter PIN-based OAuth handshake.
type OAuthStart struct {
	AuthorizationURL string `json:"authorization_url"`
	OAuthToken       string `json:"oauth_token"`
}

// StatusResponse is the embedded-outcome shape for cookie-injection calls.
// A 200 with Success=false is a failure the caller must inspect; the backend
// reserves HTTP errors for transport-level problems on these endpoints.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SessionResult reports a guided or browser login, including the identity
// the backend captured when the login succeeded. As with StatusResponse,
// failure is embedded rather than thrown.
type SessionResult struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	Username       string `json:"username,omitempty"`
	PlatformUserID string `json:"platform_user_id,omitempty"`
}

// TaskResponse acknowledges a fire-and-forget action; completion is observed
// later through the activity log and persona counters.
type TaskResponse struct {
	Success bool   `json:"success"`
	TaskID  string `json:"task_id"`
	Message string `json:"message"`
}
