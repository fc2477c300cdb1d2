package repository

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/postscope/pkg/domain"
)

// FeedbackRepository handles the append-only feedback ledger and the
// metrics history written by the evaluator
type FeedbackRepository struct {
	db *sqlx.DB
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(database *sqlx.DB) *FeedbackRepository {
	return &FeedbackRepository{db: database}
}

// jsonMap is an arbitrary key/value document stored as JSON text
type jsonMap map[string]any

// Value implements driver.Valuer for database storage
func (m jsonMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for database retrieval
func (m *jsonMap) Scan(value interface{}) error {
	if value == nil {
		*m = jsonMap{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		*m = jsonMap{}
		return nil
	}

	return json.Unmarshal(data, m)
}

// feedbackSQL represents a ledger row for SQL operations
type feedbackSQL struct {
	ID        int64     `db:"id"`
	ContentID string    `db:"content_id"`
	Metrics   jsonMap   `db:"metrics"`
	Comments  string    `db:"comments"`
	CreatedAt time.Time `db:"created_at"`
}

// Add appends one feedback entry to the ledger. Entries are never
// deduplicated, a repeated content id is a distinct observation.
func (r *FeedbackRepository) Add(ctx context.Context, contentID string, metrics map[string]any, comments string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `INSERT INTO feedback (content_id, metrics, comments, created_at) VALUES (?, ?, ?, ?)`
		_, err := r.db.ExecContext(ctx, query, contentID, jsonMap(metrics), comments, time.Now().UTC())
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("add feedback: %w", err)}
		}
		return nil
	})
}

// List returns ledger entries in insertion order. A non-empty contentType
// keeps only entries whose stored metrics carry an exactly matching
// content_type value, entries without one never match.
func (r *FeedbackRepository) List(ctx context.Context, contentType string) ([]domain.FeedbackEntry, error) {
	var rows []feedbackSQL
	query := `SELECT id, content_id, metrics, comments, created_at FROM feedback ORDER BY id`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}

	entries := make([]domain.FeedbackEntry, 0, len(rows))
	for _, row := range rows {
		if contentType != "" {
			ct, ok := row.Metrics["content_type"].(string)
			if !ok || ct != contentType {
				continue
			}
		}
		entries = append(entries, domain.FeedbackEntry{
			ID:        row.ID,
			ContentID: row.ContentID,
			Metrics:   row.Metrics,
			Comments:  row.Comments,
			CreatedAt: row.CreatedAt,
		})
	}
	return entries, nil
}

// metricRecordSQL represents a metrics-history row for SQL operations
type metricRecordSQL struct {
	ID          int64     `db:"id"`
	ContentType string    `db:"content_type"`
	Metrics     string    `db:"metrics"`
	CreatedAt   time.Time `db:"created_at"`
}

// AddMetrics appends one evaluation result to the metrics history
func (r *FeedbackRepository) AddMetrics(ctx context.Context, contentType domain.ContentType, metrics domain.MetricSet) error {
	data, err := json.Marshal(metrics)
	if err != nil {
		return fmt.Errorf("marshal metrics: %w", err)
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `INSERT INTO metrics_history (content_type, metrics, created_at) VALUES (?, ?, ?)`
		if _, err := r.db.ExecContext(ctx, query, string(contentType), string(data), time.Now().UTC()); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("add metrics record: %w", err)}
		}
		return nil
	})
}

// ListMetrics returns metrics history in insertion order, optionally
// filtered by content type
func (r *FeedbackRepository) ListMetrics(ctx context.Context, contentType string) ([]domain.MetricRecord, error) {
	query := `SELECT id, content_type, metrics, created_at FROM metrics_history ORDER BY id`
	args := []interface{}{}
	if contentType != "" {
		query = `SELECT id, content_type, metrics, created_at FROM metrics_history WHERE content_type = ? ORDER BY id`
		args = append(args, contentType)
	}

	var rows []metricRecordSQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list metrics history: %w", err)
	}

	records := make([]domain.MetricRecord, 0, len(rows))
	for _, row := range rows {
		var metrics domain.MetricSet
		if err := json.Unmarshal([]byte(row.Metrics), &metrics); err != nil {
			return nil, fmt.Errorf("unmarshal metrics record %d: %w", row.ID, err)
		}
		records = append(records, domain.MetricRecord{
			ID:          row.ID,
			ContentType: domain.ContentType(row.ContentType),
			Metrics:     metrics,
			CreatedAt:   row.CreatedAt,
		})
	}
	return records, nil
}
