package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/postscope/pkg/domain"
	"github.com/umputun/postscope/pkg/service"
	"github.com/umputun/postscope/server/mocks"
)

// testMocks bundles the server dependencies for handler tests
type testMocks struct {
	config    *mocks.ConfigProviderMock
	analyzer  *mocks.AnalyzerMock
	evaluator *mocks.EvaluatorMock
	composer  *mocks.ComposerMock
	tuner     *mocks.TunerMock
	reports   *mocks.ReportStoreMock
}

func newTestMocks() *testMocks {
	return &testMocks{
		config: &mocks.ConfigProviderMock{
			GetServerConfigFunc: func() (string, time.Duration) { return "127.0.0.1:0", 30 * time.Second },
		},
		analyzer: &mocks.AnalyzerMock{
			AddFeedbackFunc: func(_ context.Context, _ string, _ map[string]any, _ string) {},
			FeedbackHistoryFunc: func(_ context.Context, _ string) ([]domain.FeedbackEntry, error) {
				return []domain.FeedbackEntry{{ContentID: "post-1", Metrics: map[string]any{"engagement": 0.8}}}, nil
			},
			MetricsHistoryFunc: func(_ context.Context, _ string) ([]domain.MetricRecord, error) {
				return []domain.MetricRecord{{ContentType: domain.ContentText, Metrics: domain.MetricSet{Clarity: 0.9}}}, nil
			},
			InsightsFunc: func(_ context.Context) ([]string, error) {
				return []string{"High-performing cluster 0 found - analyze top posts for success factors"}, nil
			},
			AnalyzeFeedbackFunc: func(_ context.Context) (*domain.TrendReport, error) {
				return &domain.TrendReport{MetricTrends: map[string]float64{"engagement": 0.75}}, nil
			},
			AnalyzePatternsFunc: func(_ context.Context) (*domain.PatternReport, error) {
				return &domain.PatternReport{Patterns: []string{"pattern one"}}, nil
			},
			BestPracticesFunc: func(_ context.Context, _ string) ([]string, error) {
				return []string{"keep posts short"}, nil
			},
		},
		evaluator: &mocks.EvaluatorMock{
			EvaluateFunc: func(_ context.Context, _ string, _ domain.ContentType, _ map[string]float64) (domain.MetricSet, error) {
				return domain.MetricSet{Clarity: 0.9}, nil
			},
		},
		composer: &mocks.ComposerMock{
			ComposeFunc: func(_ context.Context, _ service.GenerationRequest) (*service.GenerationResult, error) {
				return &service.GenerationResult{Content: "generated", Admitted: true}, nil
			},
		},
		tuner: &mocks.TunerMock{
			AdaptationHistoryFunc: func(_ context.Context, _ string) ([]domain.AdaptationRecord, error) {
				return []domain.AdaptationRecord{{OriginalPrompt: "base"}}, nil
			},
			UpdateTemplatesFunc: func(_ context.Context, _ domain.ContentType, _ map[string]string) error { return nil },
			TemplatesFunc: func(_ context.Context, _ domain.ContentType) (map[string]string, error) {
				return map[string]string{"base": "write {topic}"}, nil
			},
		},
		reports: &mocks.ReportStoreMock{
			ListReportsFunc: func(_ context.Context, _ int) ([]domain.AnalysisReport, error) {
				return []domain.AnalysisReport{{ID: "report-1"}}, nil
			},
		},
	}
}

func startTestServer(t *testing.T, m *testMocks) *httptest.Server {
	t.Helper()
	srv := New(m.config, m.analyzer, m.evaluator, m.composer, m.tuner, m.reports, "test", false)
	ts := httptest.NewServer(srv.router)
	t.Cleanup(ts.Close)
	return ts
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestServer_Status(t *testing.T) {
	ts := startTestServer(t, newTestMocks())

	resp, err := http.Get(ts.URL + "/api/v1/status")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "test", body["version"])
}

func TestServer_Ping(t *testing.T) {
	ts := startTestServer(t, newTestMocks())

	resp, err := http.Get(ts.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "pong", string(data))
}

func TestServer_AddFeedback(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		m := newTestMocks()
		ts := startTestServer(t, m)

		payload := `{"content_id":"post-1","metrics":{"engagement":0.8,"clicks":42},"comments":"more engaging please"}`
		resp, err := http.Post(ts.URL+"/api/v1/feedback", "application/json", bytes.NewBufferString(payload))
		require.NoError(t, err)
		require.Equal(t, http.StatusAccepted, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "accepted", body["status"])
		assert.Equal(t, "post-1", body["content_id"])

		require.Len(t, m.analyzer.AddFeedbackCalls(), 1)
		call := m.analyzer.AddFeedbackCalls()[0]
		assert.Equal(t, "post-1", call.ContentID)
		assert.InDelta(t, 0.8, call.Metrics["engagement"], 0.001)
		assert.Equal(t, "more engaging please", call.Comments)
	})

	t.Run("missing content_id", func(t *testing.T) {
		m := newTestMocks()
		ts := startTestServer(t, m)

		resp, err := http.Post(ts.URL+"/api/v1/feedback", "application/json",
			bytes.NewBufferString(`{"metrics":{"engagement":0.8}}`))
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, decodeBody(t, resp)["error"], "content_id")
		assert.Empty(t, m.analyzer.AddFeedbackCalls())
	})

	t.Run("missing metrics", func(t *testing.T) {
		ts := startTestServer(t, newTestMocks())

		resp, err := http.Post(ts.URL+"/api/v1/feedback", "application/json",
			bytes.NewBufferString(`{"content_id":"post-1"}`))
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, decodeBody(t, resp)["error"], "metrics")
	})

	t.Run("malformed json", func(t *testing.T) {
		ts := startTestServer(t, newTestMocks())

		resp, err := http.Post(ts.URL+"/api/v1/feedback", "application/json", bytes.NewBufferString("{not json"))
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})
}

func TestServer_FeedbackHistory(t *testing.T) {
	t.Run("filtered by content type", func(t *testing.T) {
		m := newTestMocks()
		ts := startTestServer(t, m)

		resp, err := http.Get(ts.URL + "/api/v1/feedback?content_type=text")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.InDelta(t, 1, body["count"], 0.001)

		require.Len(t, m.analyzer.FeedbackHistoryCalls(), 1)
		assert.Equal(t, "text", m.analyzer.FeedbackHistoryCalls()[0].ContentType)
	})

	t.Run("store failure", func(t *testing.T) {
		m := newTestMocks()
		m.analyzer.FeedbackHistoryFunc = func(_ context.Context, _ string) ([]domain.FeedbackEntry, error) {
			return nil, fmt.Errorf("db down")
		}
		ts := startTestServer(t, m)

		resp, err := http.Get(ts.URL + "/api/v1/feedback")
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		resp.Body.Close()
	})
}

func TestServer_MetricsHistory(t *testing.T) {
	m := newTestMocks()
	ts := startTestServer(t, m)

	resp, err := http.Get(ts.URL + "/api/v1/metrics?content_type=text")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.InDelta(t, 1, body["count"], 0.001)

	require.Len(t, m.analyzer.MetricsHistoryCalls(), 1)
	assert.Equal(t, "text", m.analyzer.MetricsHistoryCalls()[0].ContentType)
}

func TestServer_Insights(t *testing.T) {
	m := newTestMocks()
	ts := startTestServer(t, m)

	resp, err := http.Get(ts.URL + "/api/v1/analysis/insights")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	insights, ok := body["insights"].([]any)
	require.True(t, ok)
	assert.Contains(t, insights[0], "High-performing cluster")
}

func TestServer_Analysis(t *testing.T) {
	t.Run("trends", func(t *testing.T) {
		ts := startTestServer(t, newTestMocks())

		resp, err := http.Get(ts.URL + "/api/v1/analysis/trends")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		trends, ok := body["metric_trends"].(map[string]any)
		require.True(t, ok)
		assert.InDelta(t, 0.75, trends["engagement"], 0.001)
	})

	t.Run("patterns", func(t *testing.T) {
		ts := startTestServer(t, newTestMocks())

		resp, err := http.Get(ts.URL + "/api/v1/analysis/patterns")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		patterns, ok := body["patterns"].([]any)
		require.True(t, ok)
		assert.Equal(t, "pattern one", patterns[0])
	})

	t.Run("trends failure", func(t *testing.T) {
		m := newTestMocks()
		m.analyzer.AnalyzeFeedbackFunc = func(_ context.Context) (*domain.TrendReport, error) {
			return nil, fmt.Errorf("ledger unreadable")
		}
		ts := startTestServer(t, m)

		resp, err := http.Get(ts.URL + "/api/v1/analysis/trends")
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		resp.Body.Close()
	})
}

func TestServer_Reports(t *testing.T) {
	t.Run("default limit", func(t *testing.T) {
		m := newTestMocks()
		ts := startTestServer(t, m)

		resp, err := http.Get(ts.URL + "/api/v1/analysis/reports")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.InDelta(t, 1, body["count"], 0.001)

		require.Len(t, m.reports.ListReportsCalls(), 1)
		assert.Equal(t, 0, m.reports.ListReportsCalls()[0].Limit)
	})

	t.Run("explicit limit", func(t *testing.T) {
		m := newTestMocks()
		ts := startTestServer(t, m)

		resp, err := http.Get(ts.URL + "/api/v1/analysis/reports?limit=5")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()

		require.Len(t, m.reports.ListReportsCalls(), 1)
		assert.Equal(t, 5, m.reports.ListReportsCalls()[0].Limit)
	})

	t.Run("invalid limit", func(t *testing.T) {
		ts := startTestServer(t, newTestMocks())

		for _, limit := range []string{"abc", "0", "-3"} {
			resp, err := http.Get(ts.URL + "/api/v1/analysis/reports?limit=" + limit)
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "limit=%s", limit)
			resp.Body.Close()
		}
	})
}

func TestServer_Evaluate(t *testing.T) {
	t.Run("scores returned", func(t *testing.T) {
		m := newTestMocks()
		ts := startTestServer(t, m)

		payload := `{"content":"a fine post","content_type":"text","engagement":{"likes":10}}`
		resp, err := http.Post(ts.URL+"/api/v1/evaluate", "application/json", bytes.NewBufferString(payload))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.InDelta(t, 0.9, body["clarity"], 0.001)

		require.Len(t, m.evaluator.EvaluateCalls(), 1)
		call := m.evaluator.EvaluateCalls()[0]
		assert.Equal(t, "a fine post", call.Content)
		assert.Equal(t, domain.ContentText, call.ContentType)
		assert.InDelta(t, 10, call.Engagement["likes"], 0.001)
	})

	t.Run("unknown content type", func(t *testing.T) {
		ts := startTestServer(t, newTestMocks())

		resp, err := http.Post(ts.URL+"/api/v1/evaluate", "application/json",
			bytes.NewBufferString(`{"content":"x","content_type":"video"}`))
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, decodeBody(t, resp)["error"], "unknown content type")
	})

	t.Run("evaluation failure", func(t *testing.T) {
		m := newTestMocks()
		m.evaluator.EvaluateFunc = func(_ context.Context, _ string, _ domain.ContentType, _ map[string]float64) (domain.MetricSet, error) {
			return domain.MetricSet{}, fmt.Errorf("extractor broken")
		}
		ts := startTestServer(t, m)

		resp, err := http.Post(ts.URL+"/api/v1/evaluate", "application/json",
			bytes.NewBufferString(`{"content":"x","content_type":"text"}`))
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		resp.Body.Close()
	})
}

func TestServer_Generate(t *testing.T) {
	t.Run("result returned", func(t *testing.T) {
		m := newTestMocks()
		ts := startTestServer(t, m)

		payload := `{"prompt":"write a post","content_type":"text","context":{"topic":"golang"}}`
		resp, err := http.Post(ts.URL+"/api/v1/generate", "application/json", bytes.NewBufferString(payload))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "generated", body["content"])
		assert.Equal(t, true, body["admitted"])

		require.Len(t, m.composer.ComposeCalls(), 1)
		req := m.composer.ComposeCalls()[0].Req
		assert.Equal(t, "write a post", req.Prompt)
		assert.Equal(t, domain.ContentText, req.ContentType)
		assert.Equal(t, "golang", req.Context["topic"])
	})

	t.Run("degraded result passes through", func(t *testing.T) {
		m := newTestMocks()
		m.composer.ComposeFunc = func(_ context.Context, _ service.GenerationRequest) (*service.GenerationResult, error) {
			return &service.GenerationResult{Content: "Content generation is not available: no LLM configured", Degraded: true}, nil
		}
		ts := startTestServer(t, m)

		resp, err := http.Post(ts.URL+"/api/v1/generate", "application/json",
			bytes.NewBufferString(`{"prompt":"write","content_type":"text"}`))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, true, body["degraded"])
	})

	t.Run("compose error rejected", func(t *testing.T) {
		m := newTestMocks()
		m.composer.ComposeFunc = func(_ context.Context, _ service.GenerationRequest) (*service.GenerationResult, error) {
			return nil, fmt.Errorf("prompt is required")
		}
		ts := startTestServer(t, m)

		resp, err := http.Post(ts.URL+"/api/v1/generate", "application/json",
			bytes.NewBufferString(`{"content_type":"text"}`))
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, decodeBody(t, resp)["error"], "prompt is required")
	})
}

func TestServer_BestPractices(t *testing.T) {
	m := newTestMocks()
	ts := startTestServer(t, m)

	resp, err := http.Get(ts.URL + "/api/v1/best-practices?area=engagement")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "engagement", body["area"])
	practices, ok := body["practices"].([]any)
	require.True(t, ok)
	assert.Equal(t, "keep posts short", practices[0])

	require.Len(t, m.analyzer.BestPracticesCalls(), 1)
	assert.Equal(t, "engagement", m.analyzer.BestPracticesCalls()[0].Area)
}

func TestServer_Adaptations(t *testing.T) {
	m := newTestMocks()
	ts := startTestServer(t, m)

	resp, err := http.Get(ts.URL + "/api/v1/adaptations?content_type=text")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.InDelta(t, 1, body["count"], 0.001)

	require.Len(t, m.tuner.AdaptationHistoryCalls(), 1)
	assert.Equal(t, "text", m.tuner.AdaptationHistoryCalls()[0].ContentType)
}

func TestServer_Templates(t *testing.T) {
	t.Run("get", func(t *testing.T) {
		m := newTestMocks()
		ts := startTestServer(t, m)

		resp, err := http.Get(ts.URL + "/api/v1/templates/text")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "text", body["content_type"])
		templates, ok := body["templates"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "write {topic}", templates["base"])
	})

	t.Run("get unknown type", func(t *testing.T) {
		ts := startTestServer(t, newTestMocks())

		resp, err := http.Get(ts.URL + "/api/v1/templates/video")
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("update", func(t *testing.T) {
		m := newTestMocks()
		ts := startTestServer(t, m)

		req, err := http.NewRequest(http.MethodPut, ts.URL+"/api/v1/templates/article",
			bytes.NewBufferString(`{"base":"write an article about {topic}"}`))
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.InDelta(t, 1, body["updated"], 0.001)

		require.Len(t, m.tuner.UpdateTemplatesCalls(), 1)
		call := m.tuner.UpdateTemplatesCalls()[0]
		assert.Equal(t, domain.ContentArticle, call.ContentType)
		assert.Equal(t, "write an article about {topic}", call.Templates["base"])
	})

	t.Run("update with empty templates", func(t *testing.T) {
		m := newTestMocks()
		ts := startTestServer(t, m)

		req, err := http.NewRequest(http.MethodPut, ts.URL+"/api/v1/templates/text", bytes.NewBufferString(`{}`))
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
		assert.Empty(t, m.tuner.UpdateTemplatesCalls())
	})
}

func TestServer_RunAndShutdown(t *testing.T) {
	m := newTestMocks()
	srv := New(m.config, m.analyzer, m.evaluator, m.composer, m.tuner, m.reports, "test", true)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down")
	}
}
