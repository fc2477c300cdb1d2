package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/postscope/pkg/domain"
)

// recommendation thresholds, historical heuristics kept for compatibility
const (
	belowTargetThreshold = 0.7
	enhanceThreshold     = 0.8
)

// FeedbackStore is the ledger the analyzer owns all mutation of
type FeedbackStore interface {
	Add(ctx context.Context, contentID string, metrics map[string]any, comments string) error
	List(ctx context.Context, contentType string) ([]domain.FeedbackEntry, error)
	ListMetrics(ctx context.Context, contentType string) ([]domain.MetricRecord, error)
}

// InsightStore persists discovered patterns and serves best practices
type InsightStore interface {
	SaveInsights(ctx context.Context, patterns []string) error
	GetInsights(ctx context.Context) ([]string, error)
	GetBestPractices(ctx context.Context, area string) ([]string, error)
}

// Analyzer is the single logical owner of the feedback ledger. It appends
// feedback, aggregates metric trends into recommendations, and mines the
// ledger for latent performance segments.
type Analyzer struct {
	feedback FeedbackStore
	insights InsightStore
}

// NewAnalyzer creates an analyzer over the given stores
func NewAnalyzer(feedback FeedbackStore, insights InsightStore) *Analyzer {
	return &Analyzer{feedback: feedback, insights: insights}
}

// AddFeedback appends one observation to the ledger. The write is a
// best-effort side channel, I/O failures are logged and swallowed so the
// caller never observes them.
func (a *Analyzer) AddFeedback(ctx context.Context, contentID string, metrics map[string]any, comments string) {
	if err := a.feedback.Add(ctx, contentID, metrics, comments); err != nil {
		lgr.Printf("[WARN] failed to add feedback for %s: %v", contentID, err)
	}
}

// FeedbackHistory returns ledger entries, optionally filtered by the
// content_type value carried inside stored metrics
func (a *Analyzer) FeedbackHistory(ctx context.Context, contentType string) ([]domain.FeedbackEntry, error) {
	entries, err := a.feedback.List(ctx, contentType)
	if err != nil {
		return nil, fmt.Errorf("feedback history: %w", err)
	}
	return entries, nil
}

// AnalyzeFeedback aggregates the ledger into per-metric averages and
// qualitative recommendations. An empty ledger is not an error, it yields
// empty trends and a single no-data sentinel.
func (a *Analyzer) AnalyzeFeedback(ctx context.Context) (*domain.TrendReport, error) {
	entries, err := a.feedback.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("read feedback ledger: %w", err)
	}

	if len(entries) == 0 {
		return &domain.TrendReport{
			MetricTrends:    map[string]float64{},
			Recommendations: []string{"No feedback data available yet for analysis"},
		}, nil
	}

	// accumulate sums per numeric metric, in first-encounter order
	var order []string
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, entry := range entries {
		for metric, raw := range entry.Metrics {
			v, ok := toFloat(raw)
			if !ok {
				continue
			}
			if _, seen := counts[metric]; !seen {
				order = append(order, metric)
			}
			sums[metric] += v
			counts[metric]++
		}
	}

	trends := make(map[string]float64, len(order))
	var recommendations []string
	for _, metric := range order {
		avg := sums[metric] / float64(counts[metric])
		trends[metric] = round2(avg)

		switch {
		case avg < belowTargetThreshold:
			recommendations = append(recommendations, fmt.Sprintf("Focus on improving %s - currently below target", metric))
		case avg < enhanceThreshold:
			recommendations = append(recommendations, fmt.Sprintf("Consider enhancing %s for better performance", metric))
		}
	}

	// keyword scan over free-text comments
	var sb strings.Builder
	for _, entry := range entries {
		sb.WriteString(entry.Comments)
		sb.WriteString(" ")
	}
	comments := strings.ToLower(sb.String())
	if strings.Contains(comments, "engaging") {
		recommendations = append(recommendations, "Multiple feedback entries mention engagement - consider adding more interactive elements")
	}
	if strings.Contains(comments, "clarity") {
		recommendations = append(recommendations, "Pay attention to content clarity based on feedback patterns")
	}

	if recommendations == nil {
		recommendations = []string{}
	}
	return &domain.TrendReport{MetricTrends: trends, Recommendations: recommendations}, nil
}

// MetricsHistory returns evaluation score snapshots, optionally filtered
// by content type
func (a *Analyzer) MetricsHistory(ctx context.Context, contentType string) ([]domain.MetricRecord, error) {
	records, err := a.feedback.ListMetrics(ctx, contentType)
	if err != nil {
		return nil, fmt.Errorf("metrics history: %w", err)
	}
	return records, nil
}

// Insights returns the latest pattern discovery snapshot
func (a *Analyzer) Insights(ctx context.Context) ([]string, error) {
	insights, err := a.insights.GetInsights(ctx)
	if err != nil {
		return nil, fmt.Errorf("insights: %w", err)
	}
	return insights, nil
}

// BestPractices returns stored practices for an area, falling back to the
// built-in defaults when the area has none
func (a *Analyzer) BestPractices(ctx context.Context, area string) ([]string, error) {
	practices, err := a.insights.GetBestPractices(ctx, area)
	if err != nil {
		return nil, fmt.Errorf("best practices: %w", err)
	}
	if len(practices) > 0 {
		return practices, nil
	}
	return []string{
		"Use clear and concise language",
		"Include a strong call-to-action",
		"Focus on value proposition",
	}, nil
}

// toFloat extracts a numeric value from a JSON-decoded metric
func toFloat(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case json.Number:
		f, err := val.Float64()
		return f, err == nil
	}
	return 0, false
}
