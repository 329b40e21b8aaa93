package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/AvallenSolutions/lca-engine/internal/jobs"
	"github.com/AvallenSolutions/lca-engine/internal/lca"
	"github.com/AvallenSolutions/lca-engine/internal/report"
)

const (
	maxRequestBytes  = 1 << 20
	defaultListLimit = 50
)

// CreateCalculationRequest is the submission payload.
type CreateCalculationRequest struct {
	ProductName string     `json:"product_name"`
	Lines       []lca.Line `json:"lines"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCreateCalculation(w http.ResponseWriter, r *http.Request) {
	var req CreateCalculationRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}

	if len(req.Lines) == 0 {
		s.writeError(w, http.StatusBadRequest, errors.New("at least one line is required"))
		return
	}
	for i, line := range req.Lines {
		if line.Material == "" {
			s.writeError(w, http.StatusBadRequest, fmt.Errorf("line %d: material is required", i))
			return
		}
		if line.Amount < 0 {
			s.writeError(w, http.StatusBadRequest, fmt.Errorf("line %d: amount must not be negative", i))
			return
		}
	}

	job, err := s.store.Create(r.Context(), req.ProductName, req.Lines)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	s.writeJSON(w, http.StatusAccepted, job)
}

func (s *Server) handleGetCalculation(w http.ResponseWriter, r *http.Request) {
	job, err := s.store.Get(r.Context(), r.PathValue("id"))
	if errors.Is(err, jobs.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	s.writeJSON(w, http.StatusOK, job)
}

func (s *Server) handleListCalculations(w http.ResponseWriter, r *http.Request) {
	list, err := s.store.List(r.Context(), defaultListLimit)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	if list == nil {
		list = []jobs.Job{}
	}

	s.writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleCalculationReport(w http.ResponseWriter, r *http.Request) {
	job, err := s.store.Get(r.Context(), r.PathValue("id"))
	if errors.Is(err, jobs.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	if job.Status != jobs.StatusCompleted || job.Result == nil {
		s.writeError(w, http.StatusConflict,
			fmt.Errorf("job %s is %s, report requires a completed job", job.ID, job.Status))
		return
	}

	var buf bytes.Buffer
	if err := report.RenderPDF(report.Build(*job.Result), &buf); err != nil {
		s.writeError(w, http.StatusInternalServerError, fmt.Errorf("render report: %w", err))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", "impact-report-"+job.ID+".pdf"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("encoding response failed")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error().Err(err).Msg("request failed")
	}
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}
