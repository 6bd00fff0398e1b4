package downloader

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/supchaser/getimgs/internal/app/models"
	"github.com/supchaser/getimgs/internal/utils/errs"
	"github.com/supchaser/getimgs/internal/utils/logger"
	"go.uber.org/zap"
)

// StagingDirName is the directory inside a destination that holds raw
// downloads until they are transcoded or discarded.
const StagingDirName = ".incoming"

const dirPermissions fs.FileMode = 0o755

// MaxImageSize caps the bytes stored for a single image.
const MaxImageSize = 50 << 20

type Opener interface {
	Open(ctx context.Context, rawURL string) (io.ReadCloser, error)
}

type Downloader struct {
	opener   Opener
	maxBytes int64
}

func New(opener Opener) *Downloader {
	return &Downloader{opener: opener, maxBytes: MaxImageSize}
}

func StagingDir(dir string) string {
	return filepath.Join(dir, StagingDirName)
}

// Download streams the job's source into a temp file in the staging directory
// and renames it to job.FileName. On failure nothing is left behind.
func (d *Downloader) Download(ctx context.Context, job *models.DownloadJob) (string, error) {
	const funcName = "Downloader.Download"

	staging := StagingDir(job.Dir)
	if err := os.MkdirAll(staging, dirPermissions); err != nil {
		return "", fmt.Errorf("%w: create staging dir: %w", errs.ErrDownload, err)
	}

	body, err := d.opener.Open(ctx, string(job.Source))
	if err != nil {
		return "", fmt.Errorf("%w: %w", errs.ErrDownload, err)
	}
	defer body.Close()

	tmp, err := os.CreateTemp(staging, "download-*.part")
	if err != nil {
		return "", fmt.Errorf("%w: create temp file: %w", errs.ErrDownload, err)
	}
	tmpPath := tmp.Name()

	cleanup := func() {
		tmp.Close()
		if rmErr := os.Remove(tmpPath); rmErr != nil && !os.IsNotExist(rmErr) {
			logger.Warn("failed to remove temp file",
				zap.String("function", funcName),
				zap.String("path", tmpPath),
				zap.Error(rmErr),
			)
		}
	}

	written, err := io.Copy(tmp, io.LimitReader(body, d.maxBytes+1))
	if err != nil {
		cleanup()
		return "", fmt.Errorf("%w: %s: write body: %w", errs.ErrDownload, job.Source, err)
	}
	if written > d.maxBytes {
		cleanup()
		return "", fmt.Errorf("%w: %s: image exceeds %d bytes", errs.ErrDownload, job.Source, d.maxBytes)
	}

	if err := tmp.Sync(); err != nil {
		cleanup()
		return "", fmt.Errorf("%w: sync temp file: %w", errs.ErrDownload, err)
	}

	if err := tmp.Close(); err != nil {
		cleanup()
		return "", fmt.Errorf("%w: close temp file: %w", errs.ErrDownload, err)
	}

	finalPath := filepath.Join(staging, job.FileName)
	if err := os.Rename(tmpPath, finalPath); err != nil {
		cleanup()
		return "", fmt.Errorf("%w: rename temp file: %w", errs.ErrDownload, err)
	}

	logger.Debug("image downloaded",
		zap.String("function", funcName),
		zap.Int("job_id", job.ID),
		zap.String("url", string(job.Source)),
		zap.String("path", finalPath),
		zap.Int64("bytes", written),
	)

	return finalPath, nil
}
