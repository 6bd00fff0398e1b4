package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/supchaser/getimgs/internal/app/models"
	"github.com/supchaser/getimgs/internal/utils/errs"
	"github.com/supchaser/getimgs/internal/utils/logger"
	"go.uber.org/zap"
)

// RunRepository keeps runs in memory and allows at most one active run.
type RunRepository struct {
	runs     map[string]*models.Run
	activeID string
	mu       sync.Mutex
}

func CreateRunRepository() *RunRepository {
	return &RunRepository{
		runs: make(map[string]*models.Run),
	}
}

func (r *RunRepository) CreateRun(ctx context.Context, run *models.Run) error {
	const funcName = "RunRepository.CreateRun"
	logger.Debug("attempting to create run",
		zap.String("function", funcName),
		zap.String("page_url", run.PageURL),
	)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.activeID != "" {
		logger.Warn("run already in progress",
			zap.String("function", funcName),
			zap.String("active_run_id", r.activeID),
		)
		return fmt.Errorf("%w: active run %s", errs.ErrRunInProgress, r.activeID)
	}

	if _, exists := r.runs[run.ID]; exists {
		return fmt.Errorf("run %s already exists", run.ID)
	}

	r.runs[run.ID] = run
	r.activeID = run.ID

	logger.Info("run created successfully",
		zap.String("function", funcName),
		zap.String("run_id", run.ID),
		zap.String("dir", run.Dir),
		zap.Time("created_at", run.CreatedAt),
	)

	return nil
}

func (r *RunRepository) GetRun(ctx context.Context, id string) (*models.Run, error) {
	const funcName = "RunRepository.GetRun"

	r.mu.Lock()
	defer r.mu.Unlock()

	run, exists := r.runs[id]
	if !exists {
		logger.Warn("run not found",
			zap.String("function", funcName),
			zap.String("run_id", id),
		)
		return nil, errs.ErrRunNotFound
	}

	return run, nil
}

// FinishRun releases the active slot held by the run.
func (r *RunRepository) FinishRun(ctx context.Context, id string) error {
	const funcName = "RunRepository.FinishRun"

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.runs[id]; !exists {
		logger.Warn("run not found when finishing",
			zap.String("function", funcName),
			zap.String("run_id", id),
		)
		return errs.ErrRunNotFound
	}

	if r.activeID == id {
		r.activeID = ""
		logger.Info("active run slot released",
			zap.String("function", funcName),
			zap.String("run_id", id),
		)
	}

	return nil
}

// GetAllRuns returns runs oldest first.
func (r *RunRepository) GetAllRuns(ctx context.Context) ([]*models.Run, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	runs := make([]*models.Run, 0, len(r.runs))
	for _, run := range r.runs {
		runs = append(runs, run)
	}
	sort.Slice(runs, func(i, j int) bool {
		if runs[i].CreatedAt.Equal(runs[j].CreatedAt) {
			return runs[i].ID < runs[j].ID
		}
		return runs[i].CreatedAt.Before(runs[j].CreatedAt)
	})

	return runs, nil
}

func (r *RunRepository) ActiveRunID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.activeID
}
