package app

import (
	"context"
	"io"
	"net/url"

	"github.com/supchaser/getimgs/internal/app/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock.go

type PageFetcher interface {
	FetchPage(ctx context.Context, rawURL string) (string, error)
	Open(ctx context.Context, rawURL string) (io.ReadCloser, error)
}

type ImageExtractor interface {
	Extract(markup string, base *url.URL) ([]models.ImageReference, error)
}

type ImageDownloader interface {
	Download(ctx context.Context, job *models.DownloadJob) (string, error)
}

type ImageValidator interface {
	IsAcceptable(path string) bool
}

type ImageTranscoder interface {
	Transcode(ctx context.Context, src, dst string) error
	Extension() string
}

type RunRepository interface {
	CreateRun(ctx context.Context, run *models.Run) error
	GetRun(ctx context.Context, id string) (*models.Run, error)
	GetAllRuns(ctx context.Context) ([]*models.Run, error)
	FinishRun(ctx context.Context, id string) error
	ActiveRunID() string
}

type RunUsecase interface {
	StartRun(ctx context.Context, req models.PageRequest) (*models.Run, error)
	GetRun(ctx context.Context, id string) (*models.Run, error)
	GetRunStatus(ctx context.Context, id string) (models.RunStatus, error)
	GetAllRuns(ctx context.Context) ([]*models.Run, error)
	ListFiles(ctx context.Context, id string) ([]string, error)
	FilePath(ctx context.Context, id, name string) (string, error)
	ActiveRunID() string
}
