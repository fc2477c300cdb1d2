package domain

import "time"

// ExampleEntry is a quality-gated content sample reused as a few-shot
// example when adapting prompts. Admission requires every metric score
// to meet the quality threshold.
type ExampleEntry struct {
	ID          int64          `json:"id"`
	Content     string         `json:"content"`
	ContentType ContentType    `json:"content_type"`
	Metrics     MetricSet      `json:"metrics"`
	Context     map[string]any `json:"context,omitempty"`
	CreatedAt   time.Time      `json:"timestamp"`
}

// AdaptationRecord is one audit entry pairing an original prompt with its
// example/feedback-augmented version
type AdaptationRecord struct {
	ID             int64       `json:"id"`
	ContentType    ContentType `json:"content_type"`
	OriginalPrompt string      `json:"original_prompt"`
	AdaptedPrompt  string      `json:"adapted_prompt"`
	CreatedAt      time.Time   `json:"timestamp"`
}
