package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/postscope/pkg/domain"
)

func TestExampleRepository_AddAndList(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	err := repos.Example.AddExample(ctx, domain.ExampleEntry{
		Content:     "first example",
		ContentType: domain.ContentText,
		Metrics:     domain.MetricSet{Clarity: 0.9, EngagementPotential: 0.85},
		Context:     map[string]any{"topic": "golang"},
	})
	require.NoError(t, err)

	err = repos.Example.AddExample(ctx, domain.ExampleEntry{
		Content:     "second example",
		ContentType: domain.ContentText,
		Metrics:     domain.MetricSet{Clarity: 0.95},
	})
	require.NoError(t, err)

	err = repos.Example.AddExample(ctx, domain.ExampleEntry{
		Content:     "article example",
		ContentType: domain.ContentArticle,
		Metrics:     domain.MetricSet{Clarity: 0.8},
	})
	require.NoError(t, err)

	t.Run("most recent first", func(t *testing.T) {
		examples, err := repos.Example.ListExamples(ctx, domain.ContentText)
		require.NoError(t, err)
		require.Len(t, examples, 2)

		assert.Equal(t, "second example", examples[0].Content)
		assert.Equal(t, "first example", examples[1].Content)
		assert.InDelta(t, 0.9, examples[1].Metrics.Clarity, 0.001)
		assert.Equal(t, "golang", examples[1].Context["topic"])
	})

	t.Run("filtered by type", func(t *testing.T) {
		examples, err := repos.Example.ListExamples(ctx, domain.ContentArticle)
		require.NoError(t, err)
		require.Len(t, examples, 1)
		assert.Equal(t, "article example", examples[0].Content)
	})

	t.Run("no examples for type", func(t *testing.T) {
		examples, err := repos.Example.ListExamples(ctx, domain.ContentMedia)
		require.NoError(t, err)
		assert.Empty(t, examples)
	})
}

func TestExampleRepository_Adaptations(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	err := repos.Example.AddAdaptation(ctx, domain.AdaptationRecord{
		ContentType:    domain.ContentText,
		OriginalPrompt: "write a post",
		AdaptedPrompt:  "write a post\n\nHere are some successful examples:",
	})
	require.NoError(t, err)

	err = repos.Example.AddAdaptation(ctx, domain.AdaptationRecord{
		ContentType:    domain.ContentArticle,
		OriginalPrompt: "write an article",
		AdaptedPrompt:  "write an article",
	})
	require.NoError(t, err)

	t.Run("all records in insertion order", func(t *testing.T) {
		records, err := repos.Example.ListAdaptations(ctx, "")
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "write a post", records[0].OriginalPrompt)
		assert.False(t, records[0].CreatedAt.IsZero())
	})

	t.Run("filtered by content type", func(t *testing.T) {
		records, err := repos.Example.ListAdaptations(ctx, "article")
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, domain.ContentArticle, records[0].ContentType)
	})
}

func TestExampleRepository_Templates(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	t.Run("empty map when none stored", func(t *testing.T) {
		templates, err := repos.Example.GetTemplates(ctx, domain.ContentText)
		require.NoError(t, err)
		assert.Empty(t, templates)
	})

	t.Run("set and get", func(t *testing.T) {
		err := repos.Example.SetTemplates(ctx, domain.ContentText, map[string]string{
			"base":     "write a {topic} post",
			"followup": "expand on {topic}",
		})
		require.NoError(t, err)

		templates, err := repos.Example.GetTemplates(ctx, domain.ContentText)
		require.NoError(t, err)
		assert.Equal(t, "write a {topic} post", templates["base"])
		assert.Len(t, templates, 2)
	})

	t.Run("replace overwrites previous set", func(t *testing.T) {
		err := repos.Example.SetTemplates(ctx, domain.ContentText, map[string]string{"base": "new base"})
		require.NoError(t, err)

		templates, err := repos.Example.GetTemplates(ctx, domain.ContentText)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"base": "new base"}, templates)
	})
}
