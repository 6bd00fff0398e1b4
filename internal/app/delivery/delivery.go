package delivery

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/supchaser/getimgs/internal/app"
	"github.com/supchaser/getimgs/internal/app/models"
	"github.com/supchaser/getimgs/internal/utils/errs"
	"github.com/supchaser/getimgs/internal/utils/logger"
	"github.com/supchaser/getimgs/internal/utils/responses"
	"go.uber.org/zap"
)

const maxRequestBody = 1 << 16

type RunDelivery struct {
	runUsecase app.RunUsecase
}

func CreateRunDelivery(runUsecase app.RunUsecase) *RunDelivery {
	return &RunDelivery{
		runUsecase: runUsecase,
	}
}

// RegisterRoutes mounts the run endpoints on router.
func (d *RunDelivery) RegisterRoutes(router *mux.Router) {
	runRouter := router.PathPrefix("/runs").Subrouter()
	runRouter.HandleFunc("", d.CreateRun).Methods(http.MethodPost)
	runRouter.HandleFunc("", d.GetAllRuns).Methods(http.MethodGet)
	runRouter.HandleFunc("/{id}", d.GetRun).Methods(http.MethodGet)
	runRouter.HandleFunc("/{id}/status", d.GetRunStatus).Methods(http.MethodGet)
	runRouter.HandleFunc("/{id}/files", d.ListFiles).Methods(http.MethodGet)
	runRouter.HandleFunc("/{id}/files/{name}", d.DownloadFile).Methods(http.MethodGet)
}

func (d *RunDelivery) CreateRun(w http.ResponseWriter, r *http.Request) {
	const funcName = "RunDelivery.CreateRun"
	logger.Debug("creating new run", zap.String("function", funcName))

	req := models.PageRequest{}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid request body")
		return
	}

	run, err := d.runUsecase.StartRun(r.Context(), req)
	if err != nil {
		if errors.Is(err, errs.ErrRunInProgress) {
			responses.DoJSONResponse(w, map[string]any{
				"error":         err.Error(),
				"active_run_id": d.runUsecase.ActiveRunID(),
				"suggestion":    "Wait for the current run to complete",
			}, http.StatusConflict)
			return
		}
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/v1/runs/%s", run.ID))
	responses.DoJSONResponse(w, run.Response(false), http.StatusAccepted)
}

func (d *RunDelivery) GetRun(w http.ResponseWriter, r *http.Request) {
	const funcName = "RunDelivery.GetRun"
	logger.Debug("getting run",
		zap.String("function", funcName),
	)

	run, err := d.runUsecase.GetRun(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, run.Response(true), http.StatusOK)
}

func (d *RunDelivery) GetRunStatus(w http.ResponseWriter, r *http.Request) {
	const funcName = "RunDelivery.GetRunStatus"
	logger.Debug("getting run status",
		zap.String("function", funcName),
	)

	status, err := d.runUsecase.GetRunStatus(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, status, http.StatusOK)
}

func (d *RunDelivery) GetAllRuns(w http.ResponseWriter, r *http.Request) {
	const funcName = "RunDelivery.GetAllRuns"
	logger.Debug("getting all runs",
		zap.String("function", funcName),
	)

	runs, err := d.runUsecase.GetAllRuns(r.Context())
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	if len(runs) == 0 {
		responses.DoJSONResponse(w, map[string]any{
			"message":    "No runs found",
			"suggestion": "Start a new run with POST /api/v1/runs",
			"count":      0,
			"runs":       []any{},
		}, http.StatusOK)
		return
	}

	response := make([]models.RunResponse, 0, len(runs))
	for _, run := range runs {
		response = append(response, run.Response(false))
	}

	responses.DoJSONResponse(w, map[string]any{
		"count": len(response),
		"runs":  response,
	}, http.StatusOK)
}

func (d *RunDelivery) ListFiles(w http.ResponseWriter, r *http.Request) {
	const funcName = "RunDelivery.ListFiles"
	logger.Debug("listing converted files",
		zap.String("function", funcName),
	)

	id := mux.Vars(r)["id"]
	files, err := d.runUsecase.ListFiles(r.Context(), id)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, map[string]any{
		"run_id": id,
		"count":  len(files),
		"files":  files,
	}, http.StatusOK)
}

func (d *RunDelivery) DownloadFile(w http.ResponseWriter, r *http.Request) {
	const funcName = "RunDelivery.DownloadFile"
	logger.Debug("downloading converted file",
		zap.String("function", funcName),
	)

	vars := mux.Vars(r)
	id, name := vars["id"], vars["name"]

	path, err := d.runUsecase.FilePath(r.Context(), id, name)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	http.ServeFile(w, r, path)

	logger.Info("file downloaded successfully",
		zap.String("function", funcName),
		zap.String("run_id", id),
		zap.String("file", name),
	)
}
