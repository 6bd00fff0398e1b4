package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/supchaser/getimgs/internal/app/models"
	"github.com/supchaser/getimgs/internal/utils/errs"
	"github.com/supchaser/getimgs/internal/utils/logger"
)

func TestMain(m *testing.M) {
	logger.InitTestLogger()
	m.Run()
}

func TestCreateRun_Success(t *testing.T) {
	repo := CreateRunRepository()
	run := models.NewRun("run-1", "https://example.test/gallery", "/tmp/run-1")

	err := repo.CreateRun(context.Background(), run)

	assert.NoError(t, err)
	assert.Equal(t, "run-1", repo.ActiveRunID())
	assert.Equal(t, models.RunIdle, run.State())
}

func TestCreateRun_RejectsSecondActiveRun(t *testing.T) {
	repo := CreateRunRepository()
	assert.NoError(t, repo.CreateRun(context.Background(), models.NewRun("run-1", "https://a.test", "/tmp/a")))

	err := repo.CreateRun(context.Background(), models.NewRun("run-2", "https://b.test", "/tmp/b"))

	assert.ErrorIs(t, err, errs.ErrRunInProgress)
	_, err = repo.GetRun(context.Background(), "run-2")
	assert.ErrorIs(t, err, errs.ErrRunNotFound)
}

func TestCreateRun_AfterFinish(t *testing.T) {
	repo := CreateRunRepository()
	assert.NoError(t, repo.CreateRun(context.Background(), models.NewRun("run-1", "https://a.test", "/tmp/a")))
	assert.NoError(t, repo.FinishRun(context.Background(), "run-1"))
	assert.Empty(t, repo.ActiveRunID())

	err := repo.CreateRun(context.Background(), models.NewRun("run-2", "https://b.test", "/tmp/b"))

	assert.NoError(t, err)
	assert.Equal(t, "run-2", repo.ActiveRunID())
}

func TestCreateRun_ConcurrentOnlyOneWins(t *testing.T) {
	repo := CreateRunRepository()
	ids := []string{"a", "b", "c", "d", "e", "f", "g", "h"}

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if err := repo.CreateRun(context.Background(), models.NewRun(id, "https://x.test", "/tmp/"+id)); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}(id)
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	runs, err := repo.GetAllRuns(context.Background())
	assert.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestGetRun_NotFound(t *testing.T) {
	repo := CreateRunRepository()

	run, err := repo.GetRun(context.Background(), "missing")

	assert.Nil(t, run)
	assert.ErrorIs(t, err, errs.ErrRunNotFound)
}

func TestFinishRun_NotFound(t *testing.T) {
	repo := CreateRunRepository()

	err := repo.FinishRun(context.Background(), "missing")

	assert.ErrorIs(t, err, errs.ErrRunNotFound)
}

func TestGetAllRuns(t *testing.T) {
	repo := CreateRunRepository()
	for _, id := range []string{"r1", "r2", "r3"} {
		assert.NoError(t, repo.CreateRun(context.Background(), models.NewRun(id, "https://x.test", "/tmp/"+id)))
		assert.NoError(t, repo.FinishRun(context.Background(), id))
	}

	runs, err := repo.GetAllRuns(context.Background())

	assert.NoError(t, err)
	assert.Len(t, runs, 3)
}

func TestGetAllRuns_Empty(t *testing.T) {
	repo := CreateRunRepository()

	runs, err := repo.GetAllRuns(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, runs)
}
