package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/abdidvp/siteaudit/internal/domain"
)

const (
	maxRequestBytes     = 1 << 20
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type auditResponse struct {
	Success bool               `json:"success"`
	Report  domain.AuditReport `json:"report"`
}

type historyResponse struct {
	Events []domain.Event `json:"events"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAudit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)

	var req domain.AuditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	report, err := s.auditor.Audit(r.Context(), req)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Message)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to audit website: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, auditResponse{Success: true, Report: report})
}

func (s *Server) handleListAudits(w http.ResponseWriter, r *http.Request) {
	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxHistoryLimit)
	}

	events, err := s.auditor.History(r.Context(), limit)
	if err != nil {
		s.log.WithError(err).WithField("request_id", RequestID(r.Context())).Error("loading audit history")
		writeError(w, http.StatusInternalServerError, "Failed to load audit history: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, historyResponse{Events: events})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
