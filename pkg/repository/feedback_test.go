package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/postscope/pkg/domain"
)

func TestFeedbackRepository_AddAndList(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	err := repos.Feedback.Add(ctx, "post-1", map[string]any{"engagement": 0.9, "content_type": "text"}, "great post")
	require.NoError(t, err)
	err = repos.Feedback.Add(ctx, "post-2", map[string]any{"engagement": 0.4, "content_type": "article"}, "")
	require.NoError(t, err)

	entries, err := repos.Feedback.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "post-1", entries[0].ContentID)
	assert.Equal(t, "great post", entries[0].Comments)
	assert.InDelta(t, 0.9, entries[0].Metrics["engagement"], 0.001)
	assert.False(t, entries[0].CreatedAt.IsZero())

	assert.Equal(t, "post-2", entries[1].ContentID)
}

func TestFeedbackRepository_AppendOnly(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	// same content id is a distinct observation, never deduplicated
	for i := 0; i < 3; i++ {
		require.NoError(t, repos.Feedback.Add(ctx, "post-1", map[string]any{"engagement": 0.5}, ""))
	}

	entries, err := repos.Feedback.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestFeedbackRepository_ListFilterByContentType(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	require.NoError(t, repos.Feedback.Add(ctx, "p1", map[string]any{"content_type": "text"}, ""))
	require.NoError(t, repos.Feedback.Add(ctx, "p2", map[string]any{"content_type": "article"}, ""))
	require.NoError(t, repos.Feedback.Add(ctx, "p3", map[string]any{"engagement": 0.7}, "")) // no content_type

	t.Run("matching entries only", func(t *testing.T) {
		entries, err := repos.Feedback.List(ctx, "text")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "p1", entries[0].ContentID)
	})

	t.Run("entries without content_type never match", func(t *testing.T) {
		entries, err := repos.Feedback.List(ctx, "video")
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("empty filter returns everything", func(t *testing.T) {
		entries, err := repos.Feedback.List(ctx, "")
		require.NoError(t, err)
		assert.Len(t, entries, 3)
	})
}

func TestFeedbackRepository_EmptyLedger(t *testing.T) {
	repos := setupTestRepos(t)

	entries, err := repos.Feedback.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFeedbackRepository_Metrics(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	acc := 0.85
	err := repos.Feedback.AddMetrics(ctx, domain.ContentText, domain.MetricSet{
		Clarity:             0.8,
		EngagementPotential: 0.6,
		EngagementAccuracy:  &acc,
	})
	require.NoError(t, err)

	err = repos.Feedback.AddMetrics(ctx, domain.ContentArticle, domain.MetricSet{
		Clarity:             0.7,
		ContentTypeSpecific: map[string]float64{"depth_of_insight": 0.5},
	})
	require.NoError(t, err)

	t.Run("all records", func(t *testing.T) {
		records, err := repos.Feedback.ListMetrics(ctx, "")
		require.NoError(t, err)
		require.Len(t, records, 2)

		assert.Equal(t, domain.ContentText, records[0].ContentType)
		assert.InDelta(t, 0.8, records[0].Metrics.Clarity, 0.001)
		require.NotNil(t, records[0].Metrics.EngagementAccuracy)
		assert.InDelta(t, 0.85, *records[0].Metrics.EngagementAccuracy, 0.001)
	})

	t.Run("filtered by content type", func(t *testing.T) {
		records, err := repos.Feedback.ListMetrics(ctx, "article")
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.InDelta(t, 0.5, records[0].Metrics.ContentTypeSpecific["depth_of_insight"], 0.001)
	})
}
