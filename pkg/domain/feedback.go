package domain

import "time"

// FeedbackEntry is one observation in the append-only feedback ledger.
// ContentID is caller-supplied and not required to be unique, repeated ids
// are treated as distinct observations. Metrics may carry arbitrary
// caller-supplied fields next to the scored ones (e.g. content_type).
type FeedbackEntry struct {
	ID        int64          `json:"id"`
	ContentID string         `json:"content_id"`
	Metrics   map[string]any `json:"metrics"`
	Comments  string         `json:"comments"`
	CreatedAt time.Time      `json:"timestamp"`
}

// MetricRecord is one metrics-history observation written on every evaluation
type MetricRecord struct {
	ID          int64       `json:"id"`
	ContentType ContentType `json:"content_type"`
	Metrics     MetricSet   `json:"metrics"`
	CreatedAt   time.Time   `json:"timestamp"`
}

// TrendReport aggregates the ledger into per-metric running averages plus
// qualitative recommendations
type TrendReport struct {
	MetricTrends    map[string]float64 `json:"metric_trends"`
	Recommendations []string           `json:"recommendations"`
}

// Cluster is a derived view of one content-performance segment, recomputed
// fully on every pattern analysis
type Cluster struct {
	Size       int                `json:"size"`
	AvgMetrics map[string]float64 `json:"avg_metrics"`
	TopPosts   []string           `json:"top_posts"`
}

// PatternReport carries discovered performance segments and textual flags
type PatternReport struct {
	Patterns []string           `json:"patterns"`
	Clusters map[string]Cluster `json:"clusters"`
}

// AnalysisReport is the combined scheduled-analysis snapshot persisted on
// every scheduler run
type AnalysisReport struct {
	ID              string             `json:"id"`
	Timestamp       time.Time          `json:"timestamp"`
	MetricTrends    map[string]float64 `json:"metric_trends"`
	Recommendations []string           `json:"recommendations"`
	Patterns        []string           `json:"ml_patterns"`
	Clusters        map[string]Cluster `json:"clusters"`
}
