package ocrmac

import (
	"fmt"
	"image"
	"os"

	// Formats the engine accepts for direct image input.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/tiff"
)

// imageSize reads pixel dimensions from the image header without decoding
// the pixel data.
func imageSize(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return cfg.Width, cfg.Height, nil
}
