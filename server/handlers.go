package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/umputun/postscope/pkg/domain"
	"github.com/umputun/postscope/pkg/service"
)

// feedbackRequest is the payload for feedback submission
type feedbackRequest struct {
	ContentID string         `json:"content_id"`
	Metrics   map[string]any `json:"metrics"`
	Comments  string         `json:"comments,omitempty"`
}

// evaluateRequest is the payload for content evaluation
type evaluateRequest struct {
	Content     string             `json:"content"`
	ContentType domain.ContentType `json:"content_type"`
	Engagement  map[string]float64 `json:"engagement,omitempty"`
}

// addFeedbackHandler appends one feedback observation to the ledger.
// Ledger writes are best-effort, the request is acknowledged regardless.
func (s *Server) addFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request: %w", err), http.StatusBadRequest)
		return
	}
	if req.ContentID == "" {
		RenderError(w, r, fmt.Errorf("content_id is required"), http.StatusBadRequest)
		return
	}
	if len(req.Metrics) == 0 {
		RenderError(w, r, fmt.Errorf("metrics are required"), http.StatusBadRequest)
		return
	}

	s.analyzer.AddFeedback(r.Context(), req.ContentID, req.Metrics, req.Comments)
	RenderJSON(w, r, http.StatusAccepted, map[string]string{"status": "accepted", "content_id": req.ContentID})
}

// feedbackHistoryHandler returns ledger entries, optionally filtered by
// the content_type query parameter
func (s *Server) feedbackHistoryHandler(w http.ResponseWriter, r *http.Request) {
	entries, err := s.analyzer.FeedbackHistory(r.Context(), r.URL.Query().Get("content_type"))
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]any{"feedback": entries, "count": len(entries)})
}

// metricsHistoryHandler returns evaluation score snapshots, optionally
// filtered by the content_type query parameter
func (s *Server) metricsHistoryHandler(w http.ResponseWriter, r *http.Request) {
	records, err := s.analyzer.MetricsHistory(r.Context(), r.URL.Query().Get("content_type"))
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]any{"metrics": records, "count": len(records)})
}

// trendsHandler runs trend analysis over the full ledger
func (s *Server) trendsHandler(w http.ResponseWriter, r *http.Request) {
	report, err := s.analyzer.AnalyzeFeedback(r.Context())
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, report)
}

// patternsHandler runs pattern discovery over the full ledger
func (s *Server) patternsHandler(w http.ResponseWriter, r *http.Request) {
	report, err := s.analyzer.AnalyzePatterns(r.Context())
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, report)
}

// insightsHandler returns the latest pattern discovery snapshot
func (s *Server) insightsHandler(w http.ResponseWriter, r *http.Request) {
	insights, err := s.analyzer.Insights(r.Context())
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]any{"insights": insights, "count": len(insights)})
}

// reportsHandler returns stored analysis reports, newest first
func (s *Server) reportsHandler(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			RenderError(w, r, fmt.Errorf("invalid limit %q", v), http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	reports, err := s.reports.ListReports(r.Context(), limit)
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]any{"reports": reports, "count": len(reports)})
}

// evaluateHandler scores a piece of content
func (s *Server) evaluateHandler(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request: %w", err), http.StatusBadRequest)
		return
	}
	if !req.ContentType.Valid() {
		RenderError(w, r, fmt.Errorf("unknown content type %q", req.ContentType), http.StatusBadRequest)
		return
	}

	metrics, err := s.evaluator.Evaluate(r.Context(), req.Content, req.ContentType, req.Engagement)
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, metrics)
}

// generateHandler runs the full generation flow
func (s *Server) generateHandler(w http.ResponseWriter, r *http.Request) {
	var req service.GenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request: %w", err), http.StatusBadRequest)
		return
	}

	res, err := s.composer.Compose(r.Context(), req)
	if err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}
	RenderJSON(w, r, http.StatusOK, res)
}

// bestPracticesHandler returns best practices for an area
func (s *Server) bestPracticesHandler(w http.ResponseWriter, r *http.Request) {
	area := r.URL.Query().Get("area")
	practices, err := s.analyzer.BestPractices(r.Context(), area)
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]any{"area": area, "practices": practices})
}

// adaptationsHandler returns the prompt adaptation audit trail
func (s *Server) adaptationsHandler(w http.ResponseWriter, r *http.Request) {
	records, err := s.tuner.AdaptationHistory(r.Context(), r.URL.Query().Get("content_type"))
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]any{"adaptations": records, "count": len(records)})
}

// getTemplatesHandler returns prompt templates for a content type
func (s *Server) getTemplatesHandler(w http.ResponseWriter, r *http.Request) {
	contentType := domain.ContentType(r.PathValue("type"))
	if !contentType.Valid() {
		RenderError(w, r, fmt.Errorf("unknown content type %q", contentType), http.StatusBadRequest)
		return
	}

	templates, err := s.tuner.Templates(r.Context(), contentType)
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]any{"content_type": contentType, "templates": templates})
}

// updateTemplatesHandler replaces prompt templates for a content type
func (s *Server) updateTemplatesHandler(w http.ResponseWriter, r *http.Request) {
	contentType := domain.ContentType(r.PathValue("type"))
	if !contentType.Valid() {
		RenderError(w, r, fmt.Errorf("unknown content type %q", contentType), http.StatusBadRequest)
		return
	}

	var templates map[string]string
	if err := json.NewDecoder(r.Body).Decode(&templates); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request: %w", err), http.StatusBadRequest)
		return
	}
	if len(templates) == 0 {
		RenderError(w, r, fmt.Errorf("templates are required"), http.StatusBadRequest)
		return
	}

	if err := s.tuner.UpdateTemplates(r.Context(), contentType, templates); err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]any{"content_type": contentType, "updated": len(templates)})
}
