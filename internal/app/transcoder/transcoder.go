package transcoder

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/supchaser/getimgs/internal/app/validator"
	"github.com/supchaser/getimgs/internal/utils/errs"
	"github.com/supchaser/getimgs/internal/utils/logger"
	"go.uber.org/zap"
	_ "golang.org/x/image/webp"
)

const (
	JPEGQuality     = 85
	OutputExtension = ".jpg"
)

type Transcoder struct {
	quality int
}

func New() *Transcoder {
	return &Transcoder{quality: JPEGQuality}
}

func (t *Transcoder) Extension() string {
	return OutputExtension
}

// Transcode decodes src and writes it to dst as JPEG. The source file is
// never touched; on failure no output is left at dst.
func (t *Transcoder) Transcode(ctx context.Context, src, dst string) error {
	const funcName = "Transcoder.Transcode"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrConversion, err)
	}

	width, height, _, err := validator.Dimensions(src)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", errs.ErrConversion, filepath.Base(src), err)
	}
	if validator.TooLarge(width, height) {
		return fmt.Errorf("%w: %s: %dx%d exceeds %d pixels",
			errs.ErrConversion, filepath.Base(src), width, height, validator.MaxPixels)
	}

	img, err := imaging.Open(src, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("%w: decode %s: %w", errs.ErrConversion, filepath.Base(src), err)
	}

	img = flatten(img)

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".transcode-*"+OutputExtension)
	if err != nil {
		return fmt.Errorf("%w: create output: %w", errs.ErrConversion, err)
	}
	tmpPath := tmp.Name()

	fail := func(step string, err error) error {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %s: %w", errs.ErrConversion, step, err)
	}

	if err := imaging.Encode(tmp, img, imaging.JPEG, imaging.JPEGQuality(t.quality)); err != nil {
		return fail("encode", err)
	}

	if err := tmp.Close(); err != nil {
		return fail("close output", err)
	}

	if err := os.Rename(tmpPath, dst); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: rename output: %w", errs.ErrConversion, err)
	}

	bounds := img.Bounds()
	logger.Debug("image transcoded",
		zap.String("function", funcName),
		zap.String("src", src),
		zap.String("dst", dst),
		zap.Int("width", bounds.Dx()),
		zap.Int("height", bounds.Dy()),
	)

	return nil
}

// flatten composites images with transparency onto white, JPEG has no alpha.
func flatten(img image.Image) image.Image {
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return img
	}

	bounds := img.Bounds()
	bg := imaging.New(bounds.Dx(), bounds.Dy(), color.White)
	return imaging.Overlay(bg, img, image.Pt(0, 0), 1.0)
}
