package analysis

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/postscope/pkg/domain"
)

// clustering parameters, fixed seed keeps every refit reproducible
const (
	clusterCount      = 3
	clusterSeed       = 42
	highEngagementAvg = 0.8
	topPostsLimit     = 3
)

// metric columns used as the clustering feature vector
var featureColumns = []string{"engagement", "clarity", "call_to_action"}

// AnalyzePatterns mines the feedback ledger for latent performance
// segments. The scaler and centroids are refit from scratch on every call,
// no model state survives between runs. Discovered patterns overwrite the
// insights snapshot, last write wins.
func (a *Analyzer) AnalyzePatterns(ctx context.Context) (*domain.PatternReport, error) {
	entries, err := a.feedback.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("read feedback ledger: %w", err)
	}

	report := &domain.PatternReport{Patterns: []string{}, Clusters: map[string]domain.Cluster{}}
	if len(entries) == 0 {
		return report, nil
	}

	// one feature vector per ledger entry, missing metrics default to 0
	vectors := make([][]float64, len(entries))
	for i, entry := range entries {
		vec := make([]float64, len(featureColumns))
		for j, col := range featureColumns {
			if v, ok := toFloat(entry.Metrics[col]); ok {
				vec[j] = v
			}
		}
		vectors[i] = vec
	}

	assignments := kMeans(standardize(vectors), clusterCount, clusterSeed)

	for cid := 0; cid < clusterCount; cid++ {
		var members []int
		for i, c := range assignments {
			if c == cid {
				members = append(members, i)
			}
		}
		if len(members) == 0 {
			continue
		}

		// per-column means of the original, unstandardized metrics
		avg := make(map[string]float64, len(featureColumns))
		for j, col := range featureColumns {
			sum := 0.0
			for _, i := range members {
				sum += vectors[i][j]
			}
			avg[col] = sum / float64(len(members))
		}

		// up to 3 content ids ranked by raw engagement
		ranked := make([]int, len(members))
		copy(ranked, members)
		sort.SliceStable(ranked, func(x, y int) bool {
			return vectors[ranked[x]][0] > vectors[ranked[y]][0]
		})
		top := make([]string, 0, topPostsLimit)
		for _, i := range ranked {
			if len(top) == topPostsLimit {
				break
			}
			top = append(top, entries[i].ContentID)
		}

		report.Clusters[fmt.Sprintf("cluster_%d", cid)] = domain.Cluster{
			Size:       len(members),
			AvgMetrics: avg,
			TopPosts:   top,
		}

		if avg["engagement"] > highEngagementAvg {
			report.Patterns = append(report.Patterns,
				fmt.Sprintf("High-performing cluster %d found - analyze top posts for success factors", cid))
		}
	}

	if err := a.insights.SaveInsights(ctx, report.Patterns); err != nil {
		lgr.Printf("[WARN] failed to save pattern insights: %v", err)
	}

	return report, nil
}

// standardize scales each column to zero mean and unit variance, columns
// with zero variance collapse to 0
func standardize(vectors [][]float64) [][]float64 {
	if len(vectors) == 0 {
		return nil
	}

	cols := len(vectors[0])
	means := make([]float64, cols)
	stds := make([]float64, cols)
	for j := 0; j < cols; j++ {
		sum := 0.0
		for _, v := range vectors {
			sum += v[j]
		}
		means[j] = sum / float64(len(vectors))

		variance := 0.0
		for _, v := range vectors {
			d := v[j] - means[j]
			variance += d * d
		}
		stds[j] = math.Sqrt(variance / float64(len(vectors)))
	}

	scaled := make([][]float64, len(vectors))
	for i, v := range vectors {
		row := make([]float64, cols)
		for j := 0; j < cols; j++ {
			if stds[j] > 0 {
				row[j] = (v[j] - means[j]) / stds[j]
			}
		}
		scaled[i] = row
	}
	return scaled
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
