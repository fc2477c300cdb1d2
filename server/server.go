package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/postscope/pkg/domain"
	"github.com/umputun/postscope/pkg/service"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/analyzer.go -pkg mocks -skip-ensure -fmt goimports . Analyzer
//go:generate moq -out mocks/evaluator.go -pkg mocks -skip-ensure -fmt goimports . Evaluator
//go:generate moq -out mocks/composer.go -pkg mocks -skip-ensure -fmt goimports . Composer
//go:generate moq -out mocks/tuner.go -pkg mocks -skip-ensure -fmt goimports . Tuner
//go:generate moq -out mocks/report_store.go -pkg mocks -skip-ensure -fmt goimports . ReportStore

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	analyzer  Analyzer
	evaluator Evaluator
	composer  Composer
	tuner     Tuner
	reports   ReportStore
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Analyzer interface for feedback and analysis operations
type Analyzer interface {
	AddFeedback(ctx context.Context, contentID string, metrics map[string]any, comments string)
	FeedbackHistory(ctx context.Context, contentType string) ([]domain.FeedbackEntry, error)
	MetricsHistory(ctx context.Context, contentType string) ([]domain.MetricRecord, error)
	AnalyzeFeedback(ctx context.Context) (*domain.TrendReport, error)
	AnalyzePatterns(ctx context.Context) (*domain.PatternReport, error)
	Insights(ctx context.Context) ([]string, error)
	BestPractices(ctx context.Context, area string) ([]string, error)
}

// Evaluator interface for content scoring
type Evaluator interface {
	Evaluate(ctx context.Context, content string, contentType domain.ContentType, engagement map[string]float64) (domain.MetricSet, error)
}

// Composer interface for the content generation flow
type Composer interface {
	Compose(ctx context.Context, req service.GenerationRequest) (*service.GenerationResult, error)
}

// Tuner interface for prompt adaptation history and templates
type Tuner interface {
	AdaptationHistory(ctx context.Context, contentType string) ([]domain.AdaptationRecord, error)
	UpdateTemplates(ctx context.Context, contentType domain.ContentType, templates map[string]string) error
	Templates(ctx context.Context, contentType domain.ContentType) (map[string]string, error)
}

// ReportStore interface for stored analysis reports
type ReportStore interface {
	ListReports(ctx context.Context, limit int) ([]domain.AnalysisReport, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, analyzer Analyzer, evaluator Evaluator, composer Composer, tuner Tuner, reports ReportStore, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		analyzer:  analyzer,
		evaluator: evaluator,
		composer:  composer,
		tuner:     tuner,
		reports:   reports,
		version:   version,
		debug:     debug,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("postscope", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("POST /feedback", s.addFeedbackHandler)
		r.HandleFunc("GET /feedback", s.feedbackHistoryHandler)
		r.HandleFunc("GET /metrics", s.metricsHistoryHandler)

		r.HandleFunc("GET /analysis/trends", s.trendsHandler)
		r.HandleFunc("GET /analysis/patterns", s.patternsHandler)
		r.HandleFunc("GET /analysis/insights", s.insightsHandler)
		r.HandleFunc("GET /analysis/reports", s.reportsHandler)

		r.HandleFunc("POST /evaluate", s.evaluateHandler)
		r.HandleFunc("POST /generate", s.generateHandler)

		r.HandleFunc("GET /best-practices", s.bestPracticesHandler)

		r.HandleFunc("GET /adaptations", s.adaptationsHandler)
		r.HandleFunc("GET /templates/{type}", s.getTemplatesHandler)
		r.HandleFunc("PUT /templates/{type}", s.updateTemplatesHandler)
	})
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	RenderJSON(w, r, http.StatusOK, status)
}

// RenderJSON sends JSON response
func RenderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// RenderError sends error response as JSON
func RenderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	RenderJSON(w, r, code, map[string]string{"error": errMsg})
}
