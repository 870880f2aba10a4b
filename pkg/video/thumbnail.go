// Package video extracts preview frames from content videos. Requires
// ffmpeg on PATH.
package video

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Thumbnail returns a PNG of the frame one second into the video.
func Thumbnail(input []byte) ([]byte, error) {
	tempDir, err := os.MkdirTemp("", "preview_frame")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	inputPath := filepath.Join(tempDir, "input.mp4")
	outputPath := filepath.Join(tempDir, "frame.png")

	if err := os.WriteFile(inputPath, input, 0644); err != nil {
		return nil, fmt.Errorf("failed to write input video to temp file: %w", err)
	}

	cmd := exec.Command(
		"ffmpeg",
		"-i", inputPath,
		"-ss", "00:00:01.000",
		"-vframes", "1",
		"-y",
		outputPath,
	)
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffmpeg command failed: %w", err)
	}

	frame, err := os.ReadFile(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read thumbnail: %w", err)
	}

	return frame, nil
}
