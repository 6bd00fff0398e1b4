package usecase

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/supchaser/getimgs/internal/app"
	"github.com/supchaser/getimgs/internal/app/downloader"
	"github.com/supchaser/getimgs/internal/app/models"
	"github.com/supchaser/getimgs/internal/utils/errs"
	"github.com/supchaser/getimgs/internal/utils/logger"
	"github.com/supchaser/getimgs/internal/utils/validate"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

const (
	DefaultOutputDir  = "./storage"
	DefaultMaxWorkers = 8
	DefaultMaxPerHost = 4

	runIDPrefix = "run-"
	dirPerm     = 0o755
)

// Pipeline holds the per-stage collaborators of a run.
type Pipeline struct {
	Fetcher    app.PageFetcher
	Extractor  app.ImageExtractor
	Downloader app.ImageDownloader
	Validator  app.ImageValidator
	Transcoder app.ImageTranscoder
}

type Options struct {
	OutputDir  string
	MaxWorkers int
	MaxPerHost int
	// Context bounds every run started by the usecase. Cancelling it aborts
	// in-flight downloads.
	Context context.Context
}

type RunUsecase struct {
	runRepository app.RunRepository
	pipeline      Pipeline
	outputDir     string
	maxWorkers    int
	maxPerHost    int64
	baseCtx       context.Context

	onUpdate func(models.RunStatus)
	notifyMu sync.Mutex
	wg       sync.WaitGroup
}

func CreateRunUsecase(runRepository app.RunRepository, pipeline Pipeline, opts Options) *RunUsecase {
	if opts.OutputDir == "" {
		opts.OutputDir = DefaultOutputDir
	}
	if opts.MaxWorkers <= 0 {
		opts.MaxWorkers = DefaultMaxWorkers
	}
	if opts.MaxPerHost <= 0 {
		opts.MaxPerHost = DefaultMaxPerHost
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}

	return &RunUsecase{
		runRepository: runRepository,
		pipeline:      pipeline,
		outputDir:     opts.OutputDir,
		maxWorkers:    opts.MaxWorkers,
		maxPerHost:    int64(opts.MaxPerHost),
		baseCtx:       opts.Context,
	}
}

// SetUpdateCallback registers a progress listener. Calls are serialized, so a
// listener sees the completed count never decrease and the completed state
// arrive after every earlier status.
func (u *RunUsecase) SetUpdateCallback(callback func(models.RunStatus)) {
	u.onUpdate = callback
}

func (u *RunUsecase) notifyUpdate(run *models.Run) {
	if u.onUpdate == nil {
		return
	}

	u.notifyMu.Lock()
	defer u.notifyMu.Unlock()
	u.onUpdate(run.Status())
}

// Wait blocks until every started run has completed.
func (u *RunUsecase) Wait() {
	u.wg.Wait()
}

// StartRun validates the page URL, claims the single active run slot and
// processes the page in the background.
func (u *RunUsecase) StartRun(ctx context.Context, req models.PageRequest) (*models.Run, error) {
	const funcName = "RunUsecase.StartRun"
	logger.Debug("starting run",
		zap.String("function", funcName),
		zap.String("url", req.URL),
		zap.String("dir", req.Dir),
	)

	pageURL, err := validate.ValidatePageURL(req.URL)
	if err != nil {
		logger.Warn("invalid page url",
			zap.String("function", funcName),
			zap.String("url", req.URL),
			zap.Error(err),
		)
		return nil, err
	}

	id := generateRunID()
	dir := filepath.Join(u.outputDir, id)
	if strings.TrimSpace(req.Dir) != "" {
		dir, err = validate.ResolveSubDir(u.outputDir, req.Dir)
		if err != nil {
			logger.Warn("invalid destination directory",
				zap.String("function", funcName),
				zap.String("dir", req.Dir),
				zap.Error(err),
			)
			return nil, err
		}
	}

	run := models.NewRun(id, pageURL.String(), dir)
	if err := u.runRepository.CreateRun(ctx, run); err != nil {
		logger.Warn("failed to create run",
			zap.String("function", funcName),
			zap.String("url", req.URL),
			zap.Error(err),
		)
		return nil, err
	}

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		logger.Error("failed to create destination directory",
			zap.String("function", funcName),
			zap.String("run_id", id),
			zap.String("dir", dir),
			zap.Error(err),
		)
		run.SetPageErr(fmt.Errorf("create destination directory: %w", err))
		run.Complete()
		u.runRepository.FinishRun(ctx, id)
		return nil, fmt.Errorf("create destination directory: %w", err)
	}

	u.wg.Add(1)
	go func() {
		defer u.wg.Done()
		u.Process(u.baseCtx, run)
	}()

	logger.Info("run started",
		zap.String("function", funcName),
		zap.String("run_id", id),
		zap.String("url", run.PageURL),
		zap.String("dir", dir),
	)

	return run, nil
}

// Process executes the pipeline for run: fetch the page, extract image
// references and push every image through download, validation and
// transcoding on a bounded pool. The run completes exactly once.
func (u *RunUsecase) Process(ctx context.Context, run *models.Run) {
	const funcName = "RunUsecase.Process"
	start := time.Now()

	run.SetState(models.RunFetchingPage)
	u.notifyUpdate(run)

	markup, err := u.pipeline.Fetcher.FetchPage(ctx, run.PageURL)
	if err != nil {
		logger.Error("failed to fetch page",
			zap.String("function", funcName),
			zap.String("run_id", run.ID),
			zap.String("url", run.PageURL),
			zap.Error(err),
		)
		run.SetPageErr(fmt.Errorf("%w: %w", errs.ErrPageFetch, err))
		run.SetTotal(0)
		u.finish(run, start)
		return
	}

	run.SetState(models.RunExtractingImages)
	u.notifyUpdate(run)

	refs, err := u.extract(markup, run.PageURL)
	if err != nil {
		logger.Warn("image extraction failed, continuing with no images",
			zap.String("function", funcName),
			zap.String("run_id", run.ID),
			zap.Error(err),
		)
		run.SetExtractErr(err)
		refs = nil
	}

	jobs := buildJobs(refs, run.Dir)
	total := len(jobs)
	run.SetTotal(total)
	run.SetState(models.RunDownloadingAll)
	u.notifyUpdate(run)

	logger.Info("images extracted",
		zap.String("function", funcName),
		zap.String("run_id", run.ID),
		zap.Int("total_jobs", total),
	)

	if total == 0 {
		u.finish(run, start)
		return
	}

	hosts := newHostLimiter(u.maxPerHost)
	g := new(errgroup.Group)
	g.SetLimit(u.maxWorkers)

	for _, job := range jobs {
		job := job
		g.Go(func() error {
			res := u.processJob(ctx, job, hosts)
			completed := run.Record(res)
			u.notifyUpdate(run)

			if completed == total {
				u.finish(run, start)
			}
			return nil
		})
	}

	g.Wait()
}

func (u *RunUsecase) extract(markup, pageURL string) ([]models.ImageReference, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("%w: parse page url: %w", errs.ErrExtraction, err)
	}

	return u.pipeline.Extractor.Extract(markup, base)
}

func buildJobs(refs []models.ImageReference, dir string) []*models.DownloadJob {
	names := downloader.UniqueFileNames(refs)
	jobs := make([]*models.DownloadJob, 0, len(refs))
	for i, ref := range refs {
		jobs = append(jobs, &models.DownloadJob{
			ID:       i + 1,
			Source:   ref,
			Dir:      dir,
			FileName: names[i],
			State:    models.JobPending,
		})
	}

	return jobs
}

// processJob runs one image through the pipeline and always returns exactly
// one terminal result.
func (u *RunUsecase) processJob(ctx context.Context, job *models.DownloadJob, hosts *hostLimiter) models.JobResult {
	const funcName = "RunUsecase.processJob"

	job.State = models.JobDownloading
	rawPath, err := u.download(ctx, job, hosts)
	if err != nil {
		logger.Warn("failed to download image",
			zap.String("function", funcName),
			zap.Int("job_id", job.ID),
			zap.String("url", string(job.Source)),
			zap.Error(err),
		)
		job.State = models.JobSkipped
		return models.NewJobResult(job, models.OutcomeFetchFailed, "", err)
	}

	job.State = models.JobValidating
	if !u.pipeline.Validator.IsAcceptable(rawPath) {
		job.State = models.JobRejected
		removeFile(rawPath)
		job.State = models.JobSkipped
		return models.NewJobResult(job, models.OutcomeRejectedTooSmall, "", nil)
	}

	job.State = models.JobAccepted
	dst := filepath.Join(job.Dir, downloader.Stem(job.FileName)+u.pipeline.Transcoder.Extension())

	job.State = models.JobTranscoding
	if err := u.pipeline.Transcoder.Transcode(ctx, rawPath, dst); err != nil {
		logger.Warn("failed to transcode image",
			zap.String("function", funcName),
			zap.Int("job_id", job.ID),
			zap.String("src", rawPath),
			zap.Error(err),
		)
		job.State = models.JobSkipped
		return models.NewJobResult(job, models.OutcomeConversionFailed, rawPath, err)
	}

	removeFile(rawPath)
	job.State = models.JobDone

	return models.NewJobResult(job, models.OutcomeConverted, dst, nil)
}

func (u *RunUsecase) download(ctx context.Context, job *models.DownloadJob, hosts *hostLimiter) (string, error) {
	sem := hosts.get(hostOf(job.Source))
	if err := sem.Acquire(ctx, 1); err != nil {
		return "", fmt.Errorf("%w: %w", errs.ErrDownload, err)
	}
	defer sem.Release(1)

	return u.pipeline.Downloader.Download(ctx, job)
}

// finish releases the run's resources and fires completion. It is reached
// once per run: either directly when there is nothing to download, or from
// the job that brings the completed count to the total.
func (u *RunUsecase) finish(run *models.Run, start time.Time) {
	const funcName = "RunUsecase.finish"

	removeStagingDir(run.Dir)

	// completion is visible before the slot is released
	fired := run.Complete()

	if err := u.runRepository.FinishRun(context.Background(), run.ID); err != nil {
		logger.Error("failed to release run",
			zap.String("function", funcName),
			zap.String("run_id", run.ID),
			zap.Error(err),
		)
	}

	if !fired {
		return
	}
	u.notifyUpdate(run)

	fields := []zap.Field{
		zap.String("function", funcName),
		zap.String("run_id", run.ID),
		zap.Int("total", run.Total()),
		zap.Int("converted", run.Count(models.OutcomeConverted)),
		zap.Int("rejected", run.Count(models.OutcomeRejectedTooSmall)),
		zap.Int("fetch_failed", run.Count(models.OutcomeFetchFailed)),
		zap.Int("conversion_failed", run.Count(models.OutcomeConversionFailed)),
		zap.Duration("elapsed", time.Since(start)),
	}
	if err := run.JobErrors(); err != nil {
		fields = append(fields, zap.NamedError("job_errors", err))
	}
	if err := run.Err(); err != nil {
		logger.Error("run failed", append(fields, zap.Error(err))...)
		return
	}

	logger.Info("run completed", fields...)
}

func (u *RunUsecase) GetRun(ctx context.Context, id string) (*models.Run, error) {
	const funcName = "RunUsecase.GetRun"
	logger.Debug("getting run",
		zap.String("function", funcName),
		zap.String("run_id", id),
	)

	run, err := u.runRepository.GetRun(ctx, id)
	if err != nil {
		logger.Error("failed to get run",
			zap.String("function", funcName),
			zap.String("run_id", id),
			zap.Error(err),
		)
		return nil, err
	}

	return run, nil
}

func (u *RunUsecase) GetRunStatus(ctx context.Context, id string) (models.RunStatus, error) {
	run, err := u.GetRun(ctx, id)
	if err != nil {
		return models.RunStatus{}, err
	}

	return run.Status(), nil
}

func (u *RunUsecase) GetAllRuns(ctx context.Context) ([]*models.Run, error) {
	const funcName = "RunUsecase.GetAllRuns"
	logger.Debug("getting all runs",
		zap.String("function", funcName),
	)

	runs, err := u.runRepository.GetAllRuns(ctx)
	if err != nil {
		logger.Error("failed to get all runs",
			zap.String("function", funcName),
			zap.Error(err),
		)
		return nil, err
	}

	return runs, nil
}

// ActiveRunID names the run holding the single active slot, empty when idle.
func (u *RunUsecase) ActiveRunID() string {
	return u.runRepository.ActiveRunID()
}

// ListFiles returns the names of the transcoded images in the run directory.
func (u *RunUsecase) ListFiles(ctx context.Context, id string) ([]string, error) {
	const funcName = "RunUsecase.ListFiles"

	run, err := u.GetRun(ctx, id)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(run.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		logger.Error("failed to read run directory",
			zap.String("function", funcName),
			zap.String("run_id", id),
			zap.String("dir", run.Dir),
			zap.Error(err),
		)
		return nil, err
	}

	ext := u.pipeline.Transcoder.Extension()
	files := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if !e.Type().IsRegular() || strings.HasPrefix(name, ".") {
			continue
		}
		if strings.EqualFold(filepath.Ext(name), ext) {
			files = append(files, name)
		}
	}
	sort.Strings(files)

	return files, nil
}

// FilePath resolves a transcoded file of the run to its path on disk.
func (u *RunUsecase) FilePath(ctx context.Context, id, name string) (string, error) {
	if err := validate.ValidateFileName(name); err != nil {
		return "", err
	}

	run, err := u.GetRun(ctx, id)
	if err != nil {
		return "", err
	}

	path := filepath.Join(run.Dir, name)
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", errs.ErrFileNotFound
	}

	return path, nil
}

type hostLimiter struct {
	mu    sync.Mutex
	limit int64
	sems  map[string]*semaphore.Weighted
}

func newHostLimiter(limit int64) *hostLimiter {
	return &hostLimiter{limit: limit, sems: make(map[string]*semaphore.Weighted)}
}

func (h *hostLimiter) get(host string) *semaphore.Weighted {
	h.mu.Lock()
	defer h.mu.Unlock()

	sem, ok := h.sems[host]
	if !ok {
		sem = semaphore.NewWeighted(h.limit)
		h.sems[host] = sem
	}
	return sem
}

func hostOf(ref models.ImageReference) string {
	u, err := url.Parse(string(ref))
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Host)
}

func removeFile(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logger.Warn("failed to remove file",
			zap.String("function", "removeFile"),
			zap.String("path", path),
			zap.Error(err),
		)
	}
}

// removeStagingDir drops the staging directory once nothing is left in it.
// Sources of failed conversions stay behind.
func removeStagingDir(dir string) {
	staging := downloader.StagingDir(dir)
	entries, err := os.ReadDir(staging)
	if err != nil || len(entries) > 0 {
		return
	}
	removeFile(staging)
}

// generateRunID returns a time ordered identifier.
func generateRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(runIDPrefix+"%d", time.Now().UnixNano())
	}
	return runIDPrefix + id.String()
}
