package models

import (
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/multierr"
)

type RunState string

const (
	RunIdle             RunState = "idle"
	RunFetchingPage     RunState = "fetching_page"
	RunExtractingImages RunState = "extracting_images"
	RunDownloadingAll   RunState = "downloading_all"
	RunCompleted        RunState = "completed"
)

type JobState string

const (
	JobPending     JobState = "pending"
	JobDownloading JobState = "downloading"
	JobValidating  JobState = "validating"
	JobAccepted    JobState = "accepted"
	JobRejected    JobState = "rejected"
	JobTranscoding JobState = "transcoding"
	JobDone        JobState = "done"
	JobSkipped     JobState = "skipped"
)

type Outcome string

const (
	OutcomeConverted        Outcome = "converted"
	OutcomeRejectedTooSmall Outcome = "rejected_too_small"
	OutcomeFetchFailed      Outcome = "fetch_failed"
	OutcomeConversionFailed Outcome = "conversion_failed"
)

// ImageReference is an absolute image URL found on the page.
type ImageReference string

type PageRequest struct {
	URL string `json:"url"`
	Dir string `json:"dir,omitempty"`
}

// DownloadJob tracks one image through download, validation and transcoding.
// It is owned by the goroutine processing it.
type DownloadJob struct {
	ID       int
	Source   ImageReference
	Dir      string
	FileName string
	State    JobState
}

type JobResult struct {
	JobID   int            `json:"job_id"`
	Source  ImageReference `json:"source"`
	Outcome Outcome        `json:"outcome"`
	Path    string         `json:"path,omitempty"`
	Error   string         `json:"error,omitempty"`

	err error
}

func NewJobResult(job *DownloadJob, outcome Outcome, path string, err error) JobResult {
	res := JobResult{
		JobID:   job.ID,
		Source:  job.Source,
		Outcome: outcome,
		Path:    path,
		err:     err,
	}
	if err != nil {
		res.Error = err.Error()
	}

	return res
}

func (r JobResult) Err() error {
	return r.err
}

// Run aggregates the state of one pipeline execution for a single page.
// The completed counter only grows and the done channel is closed exactly once.
type Run struct {
	ID        string
	PageURL   string
	Dir       string
	CreatedAt time.Time

	mu          sync.RWMutex
	state       RunState
	total       int
	results     []JobResult
	pageErr     error
	extractErr  error
	finishedAt  time.Time
	completed   atomic.Int64
	done        chan struct{}
	completeOne sync.Once
}

func NewRun(id, pageURL, dir string) *Run {
	return &Run{
		ID:        id,
		PageURL:   pageURL,
		Dir:       dir,
		CreatedAt: time.Now(),
		state:     RunIdle,
		done:      make(chan struct{}),
	}
}

func (r *Run) State() RunState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

func (r *Run) SetState(state RunState) {
	r.mu.Lock()
	r.state = state
	r.mu.Unlock()
}

// SetTotal fixes the number of jobs. It must be called before any job reports.
func (r *Run) SetTotal(total int) {
	r.mu.Lock()
	r.total = total
	r.results = make([]JobResult, 0, total)
	r.mu.Unlock()
}

func (r *Run) Total() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.total
}

func (r *Run) CompletedCount() int {
	return int(r.completed.Load())
}

// Record stores a terminal job result and returns the new completed count.
func (r *Run) Record(res JobResult) int {
	r.mu.Lock()
	r.results = append(r.results, res)
	r.mu.Unlock()

	return int(r.completed.Add(1))
}

// Progress is completed/total in [0, 1]. A run without jobs reports 1.
func (r *Run) Progress() float64 {
	total := r.Total()
	if total == 0 {
		switch r.State() {
		case RunDownloadingAll, RunCompleted:
			return 1.0
		default:
			return 0.0
		}
	}

	completed := r.CompletedCount()
	if completed >= total {
		return 1.0
	}

	return float64(completed) / float64(total)
}

// Complete moves the run to its terminal state. Only the first call has an
// effect; it reports whether this call was the one that completed the run.
func (r *Run) Complete() bool {
	fired := false
	r.completeOne.Do(func() {
		r.mu.Lock()
		r.state = RunCompleted
		r.finishedAt = time.Now()
		r.mu.Unlock()
		close(r.done)
		fired = true
	})

	return fired
}

func (r *Run) Done() <-chan struct{} {
	return r.done
}

func (r *Run) FinishedAt() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.finishedAt
}

func (r *Run) SetPageErr(err error) {
	r.mu.Lock()
	r.pageErr = err
	r.mu.Unlock()
}

// Err is the run level failure: only a failed page fetch.
func (r *Run) Err() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.pageErr
}

func (r *Run) SetExtractErr(err error) {
	r.mu.Lock()
	r.extractErr = err
	r.mu.Unlock()
}

func (r *Run) ExtractErr() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.extractErr
}

func (r *Run) Results() []JobResult {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]JobResult, len(r.results))
	copy(out, r.results)
	return out
}

// JobErrors combines the errors of every failed job.
func (r *Run) JobErrors() error {
	var combined error
	for _, res := range r.Results() {
		combined = multierr.Append(combined, res.Err())
	}

	return combined
}

func (r *Run) Count(outcome Outcome) int {
	n := 0
	for _, res := range r.Results() {
		if res.Outcome == outcome {
			n++
		}
	}

	return n
}

type RunStatus struct {
	ID        string   `json:"id"`
	State     RunState `json:"state"`
	Progress  float64  `json:"progress"`
	Completed int      `json:"completed"`
	Total     int      `json:"total"`
}

type RunResponse struct {
	ID         string      `json:"id"`
	PageURL    string      `json:"page_url"`
	Dir        string      `json:"dir"`
	State      RunState    `json:"state"`
	Progress   float64     `json:"progress"`
	Completed  int         `json:"completed"`
	Total      int         `json:"total"`
	Error      string      `json:"error,omitempty"`
	Extraction string      `json:"extraction_error,omitempty"`
	Results    []JobResult `json:"results,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	FinishedAt *time.Time  `json:"finished_at,omitempty"`
}

func (r *Run) Status() RunStatus {
	return RunStatus{
		ID:        r.ID,
		State:     r.State(),
		Progress:  r.Progress(),
		Completed: r.CompletedCount(),
		Total:     r.Total(),
	}
}

func (r *Run) Response(withResults bool) RunResponse {
	resp := RunResponse{
		ID:        r.ID,
		PageURL:   r.PageURL,
		Dir:       r.Dir,
		State:     r.State(),
		Progress:  r.Progress(),
		Completed: r.CompletedCount(),
		Total:     r.Total(),
		CreatedAt: r.CreatedAt,
	}
	if err := r.Err(); err != nil {
		resp.Error = err.Error()
	}
	if err := r.ExtractErr(); err != nil {
		resp.Extraction = err.Error()
	}
	if finished := r.FinishedAt(); !finished.IsZero() {
		resp.FinishedAt = &finished
	}
	if withResults {
		resp.Results = r.Results()
	}

	return resp
}
