package service

import (
	"context"
	"fmt"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/postscope/pkg/domain"
)

//go:generate moq -out mocks/prompt_adapter.go -pkg mocks -skip-ensure -fmt goimports . PromptAdapter
//go:generate moq -out mocks/content_generator.go -pkg mocks -skip-ensure -fmt goimports . ContentGenerator
//go:generate moq -out mocks/content_evaluator.go -pkg mocks -skip-ensure -fmt goimports . ContentEvaluator

// PromptAdapter folds historical examples and feedback into a base prompt
// and gates high-quality results into the example library
type PromptAdapter interface {
	AdaptPrompt(ctx context.Context, basePrompt string, contentType domain.ContentType, feedback map[string]any) (string, error)
	AddExample(ctx context.Context, content string, contentType domain.ContentType, metrics domain.MetricSet, genContext map[string]any) (bool, error)
}

// ContentGenerator produces a content draft from a prompt
type ContentGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ContentEvaluator scores a content draft
type ContentEvaluator interface {
	Evaluate(ctx context.Context, content string, contentType domain.ContentType, engagement map[string]float64) (domain.MetricSet, error)
}

// Composer runs the full generation flow: adapt the prompt with examples
// and feedback, generate a draft, evaluate it, and admit it into the
// example library when it clears the quality gate. The generator is an
// out-of-core collaborator, its failures degrade the result instead of
// failing the call.
type Composer struct {
	adapter   PromptAdapter
	generator ContentGenerator
	evaluator ContentEvaluator
}

// GenerationRequest describes one content generation call
type GenerationRequest struct {
	Prompt      string             `json:"prompt"`
	ContentType domain.ContentType `json:"content_type"`
	Feedback    map[string]any     `json:"feedback,omitempty"`
	Context     map[string]any     `json:"context,omitempty"`
}

// GenerationResult is the outcome of one generation flow
type GenerationResult struct {
	Content       string           `json:"content"`
	AdaptedPrompt string           `json:"adapted_prompt"`
	Metrics       domain.MetricSet `json:"metrics"`
	Admitted      bool             `json:"admitted"`
	Degraded      bool             `json:"degraded"`
}

// NewComposer creates a composer. The generator may be nil when content
// generation is not configured, every call then takes the degraded path.
func NewComposer(adapter PromptAdapter, generator ContentGenerator, evaluator ContentEvaluator) *Composer {
	return &Composer{adapter: adapter, generator: generator, evaluator: evaluator}
}

// Compose adapts the prompt, generates content and evaluates it. When the
// generator is unavailable or fails the result carries an explanatory
// placeholder with Degraded set, evaluation and admission are skipped.
func (c *Composer) Compose(ctx context.Context, req GenerationRequest) (*GenerationResult, error) {
	if req.Prompt == "" {
		return nil, fmt.Errorf("prompt is required")
	}
	if !req.ContentType.Valid() {
		return nil, fmt.Errorf("unknown content type %q", req.ContentType)
	}

	adapted, err := c.adapter.AdaptPrompt(ctx, req.Prompt, req.ContentType, req.Feedback)
	if err != nil {
		return nil, fmt.Errorf("adapt prompt: %w", err)
	}

	res := &GenerationResult{AdaptedPrompt: adapted}

	if c.generator == nil {
		res.Content = "Content generation is not available: no LLM configured"
		res.Degraded = true
		return res, nil
	}

	content, err := c.generator.Generate(ctx, adapted)
	if err != nil {
		lgr.Printf("[WARN] content generation failed: %v", err)
		res.Content = fmt.Sprintf("Content generation is not available: %v", err)
		res.Degraded = true
		return res, nil
	}
	res.Content = content

	metrics, err := c.evaluator.Evaluate(ctx, content, req.ContentType, nil)
	if err != nil {
		return nil, fmt.Errorf("evaluate generated content: %w", err)
	}
	res.Metrics = metrics

	admitted, err := c.adapter.AddExample(ctx, content, req.ContentType, metrics, req.Context)
	if err != nil {
		lgr.Printf("[WARN] failed to admit generated example: %v", err)
	} else {
		res.Admitted = admitted
	}

	return res, nil
}
