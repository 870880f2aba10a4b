// Package web fetches remote media referenced by content items.
package web

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// maxMediaBytes caps a preview download; social media assets past this size
// are not worth proxying.
const maxMediaBytes = 64 << 20

var client = resty.New()

// FetchMedia downloads the asset at mediaURI.
func FetchMedia(ctx context.Context, mediaURI string) ([]byte, error) {
	resp, err := client.R().SetContext(ctx).Get(mediaURI)
	if err != nil {
		return nil, err
	}

	if resp.IsError() {
		return nil, fmt.Errorf("failed to fetch media: %s, %s", resp.Status(), resp.String())
	}

	body := resp.Body()
	if len(body) > maxMediaBytes {
		return nil, fmt.Errorf("media too large: %d bytes", len(body))
	}

	return body, nil
}
