package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/postscope/pkg/domain"
)

// ExampleRepository handles few-shot examples, prompt templates and the
// prompt adaptation audit trail
type ExampleRepository struct {
	db *sqlx.DB
}

// NewExampleRepository creates a new example repository
func NewExampleRepository(database *sqlx.DB) *ExampleRepository {
	return &ExampleRepository{db: database}
}

// exampleSQL represents an example row for SQL operations
type exampleSQL struct {
	ID          int64     `db:"id"`
	Content     string    `db:"content"`
	ContentType string    `db:"content_type"`
	Metrics     string    `db:"metrics"`
	Context     jsonMap   `db:"context"`
	CreatedAt   time.Time `db:"created_at"`
}

// AddExample appends one quality-gated example to the library
func (r *ExampleRepository) AddExample(ctx context.Context, example domain.ExampleEntry) error {
	data, err := json.Marshal(example.Metrics)
	if err != nil {
		return fmt.Errorf("marshal example metrics: %w", err)
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `INSERT INTO examples (content, content_type, metrics, context, created_at) VALUES (?, ?, ?, ?, ?)`
		_, err := r.db.ExecContext(ctx, query, example.Content, string(example.ContentType),
			string(data), jsonMap(example.Context), time.Now().UTC())
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("add example: %w", err)}
		}
		return nil
	})
}

// ListExamples returns examples of the given content type, most recent
// first
func (r *ExampleRepository) ListExamples(ctx context.Context, contentType domain.ContentType) ([]domain.ExampleEntry, error) {
	query := `
		SELECT id, content, content_type, metrics, context, created_at
		FROM examples
		WHERE content_type = ?
		ORDER BY created_at DESC, id DESC
	`

	var rows []exampleSQL
	if err := r.db.SelectContext(ctx, &rows, query, string(contentType)); err != nil {
		return nil, fmt.Errorf("list examples: %w", err)
	}

	examples := make([]domain.ExampleEntry, 0, len(rows))
	for _, row := range rows {
		var metrics domain.MetricSet
		if err := json.Unmarshal([]byte(row.Metrics), &metrics); err != nil {
			return nil, fmt.Errorf("unmarshal example metrics %d: %w", row.ID, err)
		}
		examples = append(examples, domain.ExampleEntry{
			ID:          row.ID,
			Content:     row.Content,
			ContentType: domain.ContentType(row.ContentType),
			Metrics:     metrics,
			Context:     row.Context,
			CreatedAt:   row.CreatedAt,
		})
	}
	return examples, nil
}

// adaptationSQL represents an audit trail row for SQL operations
type adaptationSQL struct {
	ID             int64     `db:"id"`
	ContentType    string    `db:"content_type"`
	OriginalPrompt string    `db:"original_prompt"`
	AdaptedPrompt  string    `db:"adapted_prompt"`
	CreatedAt      time.Time `db:"created_at"`
}

// AddAdaptation appends one prompt adaptation record to the audit trail
func (r *ExampleRepository) AddAdaptation(ctx context.Context, rec domain.AdaptationRecord) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `INSERT INTO adaptations (content_type, original_prompt, adapted_prompt, created_at) VALUES (?, ?, ?, ?)`
		_, err := r.db.ExecContext(ctx, query, string(rec.ContentType), rec.OriginalPrompt, rec.AdaptedPrompt, time.Now().UTC())
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("add adaptation: %w", err)}
		}
		return nil
	})
}

// ListAdaptations returns the audit trail in insertion order, optionally
// filtered by content type
func (r *ExampleRepository) ListAdaptations(ctx context.Context, contentType string) ([]domain.AdaptationRecord, error) {
	query := `SELECT id, content_type, original_prompt, adapted_prompt, created_at FROM adaptations ORDER BY id`
	args := []interface{}{}
	if contentType != "" {
		query = `SELECT id, content_type, original_prompt, adapted_prompt, created_at FROM adaptations WHERE content_type = ? ORDER BY id`
		args = append(args, contentType)
	}

	var rows []adaptationSQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list adaptations: %w", err)
	}

	records := make([]domain.AdaptationRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, domain.AdaptationRecord{
			ID:             row.ID,
			ContentType:    domain.ContentType(row.ContentType),
			OriginalPrompt: row.OriginalPrompt,
			AdaptedPrompt:  row.AdaptedPrompt,
			CreatedAt:      row.CreatedAt,
		})
	}
	return records, nil
}

// SetTemplates stores prompt templates for a content type, replacing the
// previous set
func (r *ExampleRepository) SetTemplates(ctx context.Context, contentType domain.ContentType, templates map[string]string) error {
	data, err := json.Marshal(templates)
	if err != nil {
		return fmt.Errorf("marshal templates: %w", err)
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO prompt_templates (content_type, templates, updated_at) VALUES (?, ?, ?)
			ON CONFLICT(content_type) DO UPDATE SET templates = excluded.templates, updated_at = excluded.updated_at
		`
		if _, err := r.db.ExecContext(ctx, query, string(contentType), string(data), time.Now().UTC()); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("set templates: %w", err)}
		}
		return nil
	})
}

// GetTemplates returns prompt templates for a content type, empty map when
// none are stored
func (r *ExampleRepository) GetTemplates(ctx context.Context, contentType domain.ContentType) (map[string]string, error) {
	var data string
	err := r.db.GetContext(ctx, &data, `SELECT templates FROM prompt_templates WHERE content_type = ?`, string(contentType))
	if errors.Is(err, sql.ErrNoRows) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get templates: %w", err)
	}

	templates := map[string]string{}
	if err := json.Unmarshal([]byte(data), &templates); err != nil {
		return nil, fmt.Errorf("unmarshal templates: %w", err)
	}
	return templates, nil
}
