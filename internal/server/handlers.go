package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/deploymenttheory/go-form-composer/internal/common/errors"
	"github.com/deploymenttheory/go-form-composer/internal/document"
	"github.com/deploymenttheory/go-form-composer/internal/evaluation"
	"github.com/deploymenttheory/go-form-composer/internal/logic"
	"github.com/deploymenttheory/go-form-composer/internal/model"
)

type evaluateRequest struct {
	Process  json.RawMessage `json:"process"`
	FormData json.RawMessage `json:"formData"`
}

type summaryResponse struct {
	*evaluation.Summary
	Warnings []string `json:"warnings"`
}

type patternResponse struct {
	Type    model.ValidationType `json:"type"`
	Pattern string               `json:"pattern"`
}

func (s *Server) handleValidationPatterns(w http.ResponseWriter, r *http.Request) {
	patterns := make([]patternResponse, 0, len(model.ValidationTypes))
	for _, kind := range model.ValidationTypes {
		if pattern, ok := logic.ValidationPattern(kind); ok {
			patterns = append(patterns, patternResponse{Type: kind, Pattern: pattern})
		}
	}
	writeJSON(w, http.StatusOK, patterns)
}

// handleEvaluate evaluates a process against a snapshot. Without formData the
// snapshot is seeded from element defaults.
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if len(req.Process) == 0 {
		writeError(w, http.StatusBadRequest, fmt.Errorf("%w: process is required", errors.ErrInvalidArgument))
		return
	}

	process, err := document.Parse(req.Process, document.FormatJSON)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	data := evaluation.InitialFormData(process)
	if len(req.FormData) > 0 && string(req.FormData) != "null" {
		data, err = document.ParseFormData(req.FormData, document.FormatJSON)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err)
			return
		}
	}

	writeJSON(w, http.StatusOK, s.evaluator.Evaluate(process, data))
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	process, ok := readProcess(w, r)
	if !ok {
		return
	}

	warnings := []string{}
	for _, err := range document.Check(process) {
		warnings = append(warnings, err.Error())
	}
	writeJSON(w, http.StatusOK, summaryResponse{Summary: evaluation.Summarize(process), Warnings: warnings})
}

// handleUpgrade returns the document at the current schema version
func (s *Server) handleUpgrade(w http.ResponseWriter, r *http.Request) {
	process, ok := readProcess(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, process)
}

// readProcess parses the whole request body as a process document
func readProcess(w http.ResponseWriter, r *http.Request) (*model.Process, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return nil, false
	}

	process, err := document.Parse(body, document.FormatJSON)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return nil, false
	}
	return process, true
}

func decodeBody(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %s", errors.ErrInvalidArgument, err.Error())
	}
	return nil
}
