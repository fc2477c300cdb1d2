package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/postscope/pkg/domain"
)

//go:generate moq -out mocks/analyzer.go -pkg mocks -skip-ensure -fmt goimports . Analyzer
//go:generate moq -out mocks/report_store.go -pkg mocks -skip-ensure -fmt goimports . ReportStore

// Analyzer runs trend aggregation and pattern discovery over the
// feedback ledger
type Analyzer interface {
	AnalyzeFeedback(ctx context.Context) (*domain.TrendReport, error)
	AnalyzePatterns(ctx context.Context) (*domain.PatternReport, error)
}

// ReportStore persists combined analysis reports
type ReportStore interface {
	SaveReport(ctx context.Context, report domain.AnalysisReport) error
}

// Scheduler runs the analysis cycle periodically. Each run combines trend
// analysis and pattern discovery into one timestamped report.
type Scheduler struct {
	analyzer Analyzer
	reports  ReportStore
	interval time.Duration
	wg       sync.WaitGroup
	cancel   context.CancelFunc
}

// NewScheduler creates a scheduler, zero interval defaults to 24h
func NewScheduler(analyzer Analyzer, reports ReportStore, interval time.Duration) *Scheduler {
	if interval == 0 {
		interval = 24 * time.Hour
	}
	return &Scheduler{analyzer: analyzer, reports: reports, interval: interval}
}

// Start begins the periodic analysis loop. The first run executes
// synchronously before the loop starts, so callers observe a fresh report
// as soon as Start returns.
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.runAnalysis(ctx)

	s.wg.Add(1)
	go s.analysisWorker(ctx)

	lgr.Printf("[INFO] scheduler started with analysis interval %v", s.interval)
}

// Stop gracefully stops the scheduler, waiting for an in-flight run
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// analysisWorker ticks until the context is canceled
func (s *Scheduler) analysisWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAnalysis(ctx)
		}
	}
}

// runAnalysis executes one combined trend and pattern pass and persists
// the report. Failures are logged, the loop never dies on a bad run.
func (s *Scheduler) runAnalysis(ctx context.Context) {
	started := time.Now()
	lgr.Printf("[INFO] running scheduled analysis")

	var trends *domain.TrendReport
	var patterns *domain.PatternReport

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		trends, err = s.analyzer.AnalyzeFeedback(gctx)
		return err
	})
	g.Go(func() (err error) {
		patterns, err = s.analyzer.AnalyzePatterns(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		lgr.Printf("[ERROR] scheduled analysis failed: %v", err)
		return
	}

	report := domain.AnalysisReport{
		ID:              uuid.New().String(),
		Timestamp:       time.Now().UTC(),
		MetricTrends:    trends.MetricTrends,
		Recommendations: trends.Recommendations,
		Patterns:        patterns.Patterns,
		Clusters:        patterns.Clusters,
	}
	if err := s.reports.SaveReport(ctx, report); err != nil {
		lgr.Printf("[ERROR] failed to save analysis report: %v", err)
		return
	}

	lgr.Printf("[INFO] scheduled analysis completed in %v, report %s", time.Since(started).Round(time.Millisecond), report.ID)
}
