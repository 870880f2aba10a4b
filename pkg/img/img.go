// Package img downscales content images to a preview budget.
package img

import (
	"bytes"
	"fmt"
	"image/jpeg"

	"github.com/sunshineplan/imgconv"
)

// Downscale re-encodes imageData as JPEG capped at maxMPXS megapixels.
// Images already under the budget are re-encoded without resizing.
func Downscale(imageData []byte, maxMPXS float64) ([]byte, error) {
	src, err := imgconv.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("error decoding image: %w", err)
	}

	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	currentMPXS := float64(width*height) / 1e6

	if currentMPXS > maxMPXS {
		ratio := maxMPXS / currentMPXS
		src = imgconv.Resize(src, &imgconv.ResizeOption{
			Width:  int(float64(width) * ratio),
			Height: int(float64(height) * ratio),
		})
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, nil); err != nil {
		return nil, fmt.Errorf("error encoding JPEG: %w", err)
	}

	return buf.Bytes(), nil
}
