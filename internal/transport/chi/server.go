// Package chi exposes the runstore HTTP API on a chi router.
package chi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kailas-cloud/runstore/internal/domain/query/request"
	gen "github.com/kailas-cloud/runstore/internal/transport/generated"
	experimentuc "github.com/kailas-cloud/runstore/internal/usecase/experiment"
	healthuc "github.com/kailas-cloud/runstore/internal/usecase/health"
	projectuc "github.com/kailas-cloud/runstore/internal/usecase/project"
	queryuc "github.com/kailas-cloud/runstore/internal/usecase/query"
	runuc "github.com/kailas-cloud/runstore/internal/usecase/run"
	"github.com/kailas-cloud/runstore/internal/version"
)

// Server implements generated.ServerInterface for the oapi-codegen chi router.
type Server struct {
	gen.Unimplemented
	projects      *projectuc.Service
	experiments   *experimentuc.Service
	runs          *runuc.Service
	queries       *queryuc.Service
	health        *healthuc.Service
	limits        request.Limits
	errorHandlers []errorHandler
}

var _ gen.ServerInterface = (*Server)(nil)

// NewServer creates an HTTP API server. limits bounds query request sizes.
func NewServer(
	projects *projectuc.Service,
	experiments *experimentuc.Service,
	runs *runuc.Service,
	queries *queryuc.Service,
	health *healthuc.Service,
	limits request.Limits,
) *Server {
	return &Server{
		projects:      projects,
		experiments:   experiments,
		runs:          runs,
		queries:       queries,
		health:        health,
		limits:        limits,
		errorHandlers: defaultErrorHandlers(),
	}
}

// CreateProject handles POST /api/v1/projects.
func (s *Server) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req gen.CreateProjectJSONRequestBody
	if !decode(w, r, &req) {
		return
	}
	p, err := s.projects.Create(r.Context(), projectParamsFromGen(req))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	w.Header().Set("Location", "/api/v1/projects/"+p.ID())
	writeJSON(w, http.StatusCreated, projectToGen(p))
}

// GetProject handles GET /api/v1/projects/{id}.
func (s *Server) GetProject(w http.ResponseWriter, r *http.Request, id gen.ID) {
	p, err := s.projects.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, projectToGen(p))
}

// CreateExperiment handles POST /api/v1/experiments.
func (s *Server) CreateExperiment(w http.ResponseWriter, r *http.Request) {
	var req gen.CreateExperimentJSONRequestBody
	if !decode(w, r, &req) {
		return
	}
	e, err := s.experiments.Create(r.Context(), experimentParamsFromGen(req))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	w.Header().Set("Location", "/api/v1/experiments/"+e.ID())
	writeJSON(w, http.StatusCreated, experimentToGen(e))
}

// GetExperiment handles GET /api/v1/experiments/{id}.
func (s *Server) GetExperiment(w http.ResponseWriter, r *http.Request, id gen.ID) {
	e, err := s.experiments.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, experimentToGen(e))
}

// CreateExperimentRun handles POST /api/v1/experiment-runs.
func (s *Server) CreateExperimentRun(w http.ResponseWriter, r *http.Request) {
	var req gen.CreateExperimentRunJSONRequestBody
	if !decode(w, r, &req) {
		return
	}
	run, err := s.runs.Create(r.Context(), runParamsFromGen(req))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	w.Header().Set("Location", "/api/v1/experiment-runs/"+run.ID())
	writeJSON(w, http.StatusCreated, runToGen(run))
}

// GetExperimentRun handles GET /api/v1/experiment-runs/{id}.
func (s *Server) GetExperimentRun(w http.ResponseWriter, r *http.Request, id gen.ID) {
	run, err := s.runs.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, runToGen(run))
}

// DeleteExperimentRun handles DELETE /api/v1/experiment-runs/{id}.
func (s *Server) DeleteExperimentRun(w http.ResponseWriter, r *http.Request, id gen.ID) {
	if err := s.runs.Delete(r.Context(), id); err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AppendToExperimentRun handles POST /api/v1/experiment-runs/{id}/{container}.
// Unknown containers reach the run service, which rejects them.
func (s *Server) AppendToExperimentRun(w http.ResponseWriter, r *http.Request, id gen.ID, container gen.Container) {
	var req gen.AppendToExperimentRunJSONRequestBody
	if !decode(w, r, &req) {
		return
	}
	run, err := s.runs.Append(r.Context(), id, string(container), keyValuesFromGen(req.Entries))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, runToGen(run))
}

// SetExperimentRunEndTime handles PUT /api/v1/experiment-runs/{id}/end-time.
func (s *Server) SetExperimentRunEndTime(w http.ResponseWriter, r *http.Request, id gen.ID) {
	var req gen.SetExperimentRunEndTimeJSONRequestBody
	if !decode(w, r, &req) {
		return
	}
	if req.EndTime == nil {
		writeError(w, http.StatusBadRequest, gen.ErrorResponseCodeInvalidArgument, "end_time is required")
		return
	}
	run, err := s.runs.SetEndTime(r.Context(), id, *req.EndTime)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, runToGen(run))
}

// FindExperimentRuns handles POST /api/v1/experiment-runs/find.
func (s *Server) FindExperimentRuns(w http.ResponseWriter, r *http.Request) {
	var req gen.FindExperimentRunsJSONRequestBody
	if !decode(w, r, &req) {
		return
	}
	find, err := findFromGen(req, s.limits)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	res, err := s.queries.Find(r.Context(), &find)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resultToGen(res))
}

// SortExperimentRuns handles POST /api/v1/experiment-runs/sort.
func (s *Server) SortExperimentRuns(w http.ResponseWriter, r *http.Request) {
	var req gen.SortExperimentRunsJSONRequestBody
	if !decode(w, r, &req) {
		return
	}
	sortReq, err := sortFromGen(req, s.limits)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	res, err := s.queries.Sort(r.Context(), &sortReq)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resultToGen(res))
}

// TopExperimentRunsSelector handles POST /api/v1/experiment-runs/top.
func (s *Server) TopExperimentRunsSelector(w http.ResponseWriter, r *http.Request) {
	var req gen.TopExperimentRunsSelectorJSONRequestBody
	if !decode(w, r, &req) {
		return
	}
	top, err := topFromGen(req, s.limits)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	res, err := s.queries.TopK(r.Context(), &top)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resultToGen(res))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	status := gen.HealthResponseStatusOk
	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = gen.HealthResponseStatusDegraded
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, gen.HealthResponse{
		Status:  status,
		Backend: report.Backend,
		Checks:  checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// GetVersion handles GET /version.
func (s *Server) GetVersion(w http.ResponseWriter, _ *http.Request) {
	info := version.Get()
	writeJSON(w, http.StatusOK, gen.VersionResponse{
		Version: info.Version,
		Commit:  info.Commit,
		Date:    info.Date,
	})
}

// decode reads a JSON body. It writes a 400 and returns false on failure.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, gen.ErrorResponseCodeBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return false
	}
	return true
}
