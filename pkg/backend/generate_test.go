package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildGenerateRequest(t *testing.T) {
	tt := []struct {
		name string
		opts GenerateOptions
		want GenerateRequest
	}{
		{
			name: "defaults to post without video",
			opts: GenerateOptions{},
			want: GenerateRequest{ContentType: ContentTypePost, GenerateVideo: false},
		},
		{
			name: "plain post keeps caller flag off",
			opts: GenerateOptions{ContentType: ContentTypePost, Topic: "gym day"},
			want: GenerateRequest{ContentType: ContentTypePost, Topic: "gym day", GenerateVideo: false},
		},
		{
			name: "plain post keeps caller flag on",
			opts: GenerateOptions{ContentType: ContentTypePost, GenerateVideo: true},
			want: GenerateRequest{ContentType: ContentTypePost, GenerateVideo: true},
		},
		{
			name: "video_post remaps to post and forces video",
			opts: GenerateOptions{ContentType: ContentTypeVideo},
			want: GenerateRequest{ContentType: ContentTypePost, GenerateVideo: true},
		},
		{
			name: "video_post forces video even when caller says no",
			opts: GenerateOptions{ContentType: ContentTypeVideo, GenerateVideo: false},
			want: GenerateRequest{ContentType: ContentTypePost, GenerateVideo: true},
		},
		{
			name: "story keeps type and forces video",
			opts: GenerateOptions{ContentType: ContentTypeStory},
			want: GenerateRequest{ContentType: ContentTypeStory, GenerateVideo: true},
		},
		{
			name: "reel keeps type and forces video",
			opts: GenerateOptions{ContentType: ContentTypeReel, GenerateVideo: false},
			want: GenerateRequest{ContentType: ContentTypeReel, GenerateVideo: true},
		},
		{
			name: "carousel is untouched",
			opts: GenerateOptions{ContentType: ContentTypeCarousel},
			want: GenerateRequest{ContentType: ContentTypeCarousel, GenerateVideo: false},
		},
		{
			name: "topic and platform pass through",
			opts: GenerateOptions{ContentType: ContentTypeReel, Topic: "morning routine", Platform: PlatformInstagram},
			want: GenerateRequest{ContentType: ContentTypeReel, Topic: "morning routine", Platform: PlatformInstagram, GenerateVideo: true},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, BuildGenerateRequest(tc.opts))
		})
	}
}
