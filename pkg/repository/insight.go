package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/postscope/pkg/domain"
)

// InsightRepository handles the last-write-wins insights snapshot and the
// timestamped scheduled-analysis reports
type InsightRepository struct {
	db *sqlx.DB
}

// NewInsightRepository creates a new insight repository
func NewInsightRepository(database *sqlx.DB) *InsightRepository {
	return &InsightRepository{db: database}
}

// SaveInsights overwrites the ml insights snapshot with the given patterns
func (r *InsightRepository) SaveInsights(ctx context.Context, patterns []string) error {
	if patterns == nil {
		patterns = []string{}
	}
	data, err := json.Marshal(patterns)
	if err != nil {
		return fmt.Errorf("marshal insights: %w", err)
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `UPDATE insights SET ml_insights = ?, updated_at = ? WHERE id = 1`
		if _, err := r.db.ExecContext(ctx, query, string(data), time.Now().UTC()); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("save insights: %w", err)}
		}
		return nil
	})
}

// GetInsights returns the current ml insights snapshot
func (r *InsightRepository) GetInsights(ctx context.Context) ([]string, error) {
	var data string
	if err := r.db.GetContext(ctx, &data, `SELECT ml_insights FROM insights WHERE id = 1`); err != nil {
		return nil, fmt.Errorf("get insights: %w", err)
	}

	var patterns []string
	if err := json.Unmarshal([]byte(data), &patterns); err != nil {
		return nil, fmt.Errorf("unmarshal insights: %w", err)
	}
	return patterns, nil
}

// GetBestPractices returns stored best practices for an area, nil when the
// area has none
func (r *InsightRepository) GetBestPractices(ctx context.Context, area string) ([]string, error) {
	var data string
	if err := r.db.GetContext(ctx, &data, `SELECT best_practices FROM insights WHERE id = 1`); err != nil {
		return nil, fmt.Errorf("get best practices: %w", err)
	}

	practices := map[string][]string{}
	if err := json.Unmarshal([]byte(data), &practices); err != nil {
		return nil, fmt.Errorf("unmarshal best practices: %w", err)
	}
	return practices[area], nil
}

// SaveReport persists one combined scheduled-analysis report
func (r *InsightRepository) SaveReport(ctx context.Context, report domain.AnalysisReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `INSERT INTO reports (id, report, created_at) VALUES (?, ?, ?)`
		if _, err := r.db.ExecContext(ctx, query, report.ID, string(data), report.Timestamp); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("save report: %w", err)}
		}
		return nil
	})
}

// ListReports returns the most recent analysis reports, newest first
func (r *InsightRepository) ListReports(ctx context.Context, limit int) ([]domain.AnalysisReport, error) {
	if limit <= 0 {
		limit = 10
	}

	var rows []string
	query := `SELECT report FROM reports ORDER BY created_at DESC LIMIT ?`
	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}

	reports := make([]domain.AnalysisReport, 0, len(rows))
	for _, raw := range rows {
		var report domain.AnalysisReport
		if err := json.Unmarshal([]byte(raw), &report); err != nil {
			return nil, fmt.Errorf("unmarshal report: %w", err)
		}
		reports = append(reports, report)
	}
	return reports, nil
}
