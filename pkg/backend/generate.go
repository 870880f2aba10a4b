package backend

// GenerateOptions are the caller-facing knobs for content generation.
type GenerateOptions struct {
	Topic         string
	ContentType   ContentType
	GenerateVideo bool
	Platform      string
}

// GenerateRequest is the wire shape of a generation call.
type GenerateRequest struct {
	Topic         string      `json:"topic,omitempty"`
	ContentType   ContentType `json:"content_type"`
	GenerateVideo bool        `json:"generate_video"`
	Platform      string      `json:"platform,omitempty"`
}

// BuildGenerateRequest maps UI-facing generation options onto the backend's
// request shape. The backend has no "video_post" type: it models a video post
// as type "post" with generate_video set. Story and reel keep their type but
// are inherently video, so the flag is forced for them as well, regardless of
// what the caller passed. A zero ContentType defaults to "post".
func BuildGenerateRequest(opts GenerateOptions) GenerateRequest {
	req := GenerateRequest{
		Topic:         opts.Topic,
		ContentType:   opts.ContentType,
		GenerateVideo: opts.GenerateVideo,
		Platform:      opts.Platform,
	}

	if req.ContentType == "" {
		req.ContentType = ContentTypePost
	}

	switch opts.ContentType {
	case ContentTypeVideo:
		req.ContentType = ContentTypePost
		req.GenerateVideo = true
	case ContentTypeStory, ContentTypeReel:
		req.GenerateVideo = true
	}

	return req
}
