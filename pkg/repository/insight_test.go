package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/postscope/pkg/domain"
)

func TestInsightRepository_Insights(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	t.Run("empty snapshot on fresh store", func(t *testing.T) {
		patterns, err := repos.Insight.GetInsights(ctx)
		require.NoError(t, err)
		assert.Empty(t, patterns)
	})

	t.Run("save and get", func(t *testing.T) {
		err := repos.Insight.SaveInsights(ctx, []string{"High-performing cluster 0 found - analyze top posts for success factors"})
		require.NoError(t, err)

		patterns, err := repos.Insight.GetInsights(ctx)
		require.NoError(t, err)
		require.Len(t, patterns, 1)
	})

	t.Run("last write wins", func(t *testing.T) {
		require.NoError(t, repos.Insight.SaveInsights(ctx, []string{"first"}))
		require.NoError(t, repos.Insight.SaveInsights(ctx, []string{"second", "third"}))

		patterns, err := repos.Insight.GetInsights(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"second", "third"}, patterns)
	})

	t.Run("nil patterns stored as empty list", func(t *testing.T) {
		require.NoError(t, repos.Insight.SaveInsights(ctx, nil))

		patterns, err := repos.Insight.GetInsights(ctx)
		require.NoError(t, err)
		assert.Empty(t, patterns)
	})
}

func TestInsightRepository_BestPractices(t *testing.T) {
	repos := setupTestRepos(t)

	practices, err := repos.Insight.GetBestPractices(context.Background(), "engagement")
	require.NoError(t, err)
	assert.Nil(t, practices) // fresh store has no stored practices
}

func TestInsightRepository_Reports(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		report := domain.AnalysisReport{
			ID:              uuid.New().String(),
			Timestamp:       base.Add(time.Duration(i) * time.Hour),
			MetricTrends:    map[string]float64{"engagement": 0.5 + float64(i)/10},
			Recommendations: []string{"Consider enhancing engagement for better performance"},
		}
		require.NoError(t, repos.Insight.SaveReport(ctx, report))
	}

	t.Run("newest first", func(t *testing.T) {
		reports, err := repos.Insight.ListReports(ctx, 0)
		require.NoError(t, err)
		require.Len(t, reports, 3)

		assert.InDelta(t, 0.7, reports[0].MetricTrends["engagement"], 0.001)
		assert.InDelta(t, 0.5, reports[2].MetricTrends["engagement"], 0.001)
	})

	t.Run("limit applies", func(t *testing.T) {
		reports, err := repos.Insight.ListReports(ctx, 2)
		require.NoError(t, err)
		assert.Len(t, reports, 2)
	})

	t.Run("empty store", func(t *testing.T) {
		fresh := setupTestRepos(t)
		reports, err := fresh.Insight.ListReports(ctx, 0)
		require.NoError(t, err)
		assert.Empty(t, reports)
	})
}
