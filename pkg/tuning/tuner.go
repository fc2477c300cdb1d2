package tuning

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/postscope/pkg/domain"
)

// defaults for the few-shot selector, historical values kept as tunables
const (
	defaultQualityThreshold = 0.8
	defaultFewShotLimit     = 5
)

// ExampleStore persists few-shot examples, prompt templates and the
// adaptation audit trail
type ExampleStore interface {
	AddExample(ctx context.Context, example domain.ExampleEntry) error
	ListExamples(ctx context.Context, contentType domain.ContentType) ([]domain.ExampleEntry, error)
	AddAdaptation(ctx context.Context, rec domain.AdaptationRecord) error
	ListAdaptations(ctx context.Context, contentType string) ([]domain.AdaptationRecord, error)
	SetTemplates(ctx context.Context, contentType domain.ContentType, templates map[string]string) error
	GetTemplates(ctx context.Context, contentType domain.ContentType) (map[string]string, error)
}

// Tuner adapts base prompts with high-quality historical examples and
// recent feedback. Every adaptation is recorded for auditability.
type Tuner struct {
	store        ExampleStore
	threshold    float64
	fewShotLimit int
}

// New creates a tuner, zero threshold/limit select the defaults
func New(store ExampleStore, threshold float64, fewShotLimit int) *Tuner {
	if threshold == 0 {
		threshold = defaultQualityThreshold
	}
	if fewShotLimit == 0 {
		fewShotLimit = defaultFewShotLimit
	}
	return &Tuner{store: store, threshold: threshold, fewShotLimit: fewShotLimit}
}

// AddExample admits content into the example library only when every
// metric score meets the quality threshold, an all-or-nothing gate.
// Returns whether the example was admitted.
func (t *Tuner) AddExample(ctx context.Context, content string, contentType domain.ContentType,
	metrics domain.MetricSet, genContext map[string]any) (bool, error) {

	for _, score := range metrics.Scores() {
		if score < t.threshold {
			return false, nil
		}
	}

	example := domain.ExampleEntry{
		Content:     content,
		ContentType: contentType,
		Metrics:     metrics,
		Context:     genContext,
	}
	if err := t.store.AddExample(ctx, example); err != nil {
		return false, fmt.Errorf("store example: %w", err)
	}
	return true, nil
}

// FewShotExamples returns the most recent high-quality examples of the
// given content type, capped at the few-shot limit
func (t *Tuner) FewShotExamples(ctx context.Context, contentType domain.ContentType) ([]domain.ExampleEntry, error) {
	examples, err := t.store.ListExamples(ctx, contentType)
	if err != nil {
		return nil, fmt.Errorf("list examples: %w", err)
	}

	selected := make([]domain.ExampleEntry, 0, t.fewShotLimit)
	for _, ex := range examples { // already most recent first
		if !qualifies(ex.Metrics, t.threshold) {
			continue
		}
		selected = append(selected, ex)
		if len(selected) == t.fewShotLimit {
			break
		}
	}
	return selected, nil
}

// AdaptPrompt folds selected examples and optional feedback into the base
// prompt. Zero examples is not an error, the base prompt passes through
// with only the feedback suffix. One adaptation record is always appended.
func (t *Tuner) AdaptPrompt(ctx context.Context, basePrompt string, contentType domain.ContentType, feedback map[string]any) (string, error) {
	examples, err := t.FewShotExamples(ctx, contentType)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(basePrompt)

	if len(examples) > 0 {
		sb.WriteString("\n\nHere are some successful examples:\n")
		for i, ex := range examples {
			sb.WriteString(fmt.Sprintf("\nExample %d:\n", i+1))
			sb.WriteString(fmt.Sprintf("Context: %s\n", mustJSON(ex.Context)))
			sb.WriteString(fmt.Sprintf("Content: %s\n", ex.Content))
			sb.WriteString(fmt.Sprintf("Metrics: %s\n", mustJSON(ex.Metrics)))
		}
	}

	if len(feedback) > 0 {
		sb.WriteString("\n\nRecent feedback and improvements:\n")
		keys := make([]string, 0, len(feedback))
		for k := range feedback {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("- %s: %v\n", k, feedback[k]))
		}
	}

	adapted := sb.String()

	// audit trail is write-only and best-effort, never read back mid-call
	rec := domain.AdaptationRecord{
		ContentType:    contentType,
		OriginalPrompt: basePrompt,
		AdaptedPrompt:  adapted,
	}
	if err := t.store.AddAdaptation(ctx, rec); err != nil {
		lgr.Printf("[WARN] failed to record prompt adaptation: %v", err)
	}

	return adapted, nil
}

// AdaptationHistory returns the audit trail, optionally filtered by
// content type
func (t *Tuner) AdaptationHistory(ctx context.Context, contentType string) ([]domain.AdaptationRecord, error) {
	return t.store.ListAdaptations(ctx, contentType)
}

// UpdateTemplates replaces the prompt templates for a content type
func (t *Tuner) UpdateTemplates(ctx context.Context, contentType domain.ContentType, templates map[string]string) error {
	return t.store.SetTemplates(ctx, contentType, templates)
}

// Templates returns the prompt templates for a content type
func (t *Tuner) Templates(ctx context.Context, contentType domain.ContentType) (map[string]string, error) {
	return t.store.GetTemplates(ctx, contentType)
}

// qualifies reports if every metric score meets the threshold
func qualifies(metrics domain.MetricSet, threshold float64) bool {
	for _, score := range metrics.Scores() {
		if score < threshold {
			return false
		}
	}
	return true
}

// mustJSON renders a value as compact JSON, map keys are sorted by the
// encoder so output is deterministic
func mustJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(data)
}
