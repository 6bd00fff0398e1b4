// Package validator decides whether a downloaded image is large enough to keep.
// Only the container header is read, pixel data is never decoded.
package validator

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/supchaser/getimgs/internal/utils/logger"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Minimum accepted dimensions, inclusive.
const (
	MinWidth  = 600
	MinHeight = 800
)

// MaxPixels bounds width*height of an accepted image. Anything larger would
// need gigabytes to decode.
const MaxPixels = 100_000_000

type Validator struct {
	minWidth  int
	minHeight int
}

func New() *Validator {
	return &Validator{minWidth: MinWidth, minHeight: MinHeight}
}

// Dimensions returns the pixel size stored in the image header at path.
func Dimensions(path string) (int, int, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, "", err
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, "", fmt.Errorf("read image header: %w", err)
	}

	return cfg.Width, cfg.Height, format, nil
}

func (v *Validator) Accepts(width, height int) bool {
	if width < v.minWidth || height < v.minHeight {
		return false
	}
	return !TooLarge(width, height)
}

// TooLarge reports whether an image of the given size exceeds MaxPixels.
func TooLarge(width, height int) bool {
	return int64(width)*int64(height) > MaxPixels
}

// IsAcceptable reports whether the image at path meets the minimum size.
// Unreadable images are never acceptable.
func (v *Validator) IsAcceptable(path string) bool {
	const funcName = "Validator.IsAcceptable"

	width, height, format, err := Dimensions(path)
	if err != nil {
		logger.Debug("image metadata unreadable",
			zap.String("function", funcName),
			zap.String("path", path),
			zap.Error(err),
		)
		return false
	}

	ok := v.Accepts(width, height)
	logger.Debug("image measured",
		zap.String("function", funcName),
		zap.String("path", path),
		zap.String("format", format),
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Bool("accepted", ok),
	)

	return ok
}
