//go:build integration

package test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/2beens/gymweights/internal/weights"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) do(ctx context.Context, method, path, body string) (int, []byte) {
	t := s.T()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reader)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, respBytes
}

func (s *IntegrationTestSuite) TestWeightsLifecycle() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	status, body := s.do(ctx, http.MethodPost, "/settings/reset", "")
	require.Equal(t, http.StatusNoContent, status, string(body))

	status, body = s.do(ctx, http.MethodGet, "/exercises", "")
	require.Equal(t, http.StatusOK, status)
	var list weights.ListResponse
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Equal(t, 20, list.Total)
	assert.Equal(t, "bench-press", list.Exercises[0].ID)

	status, body = s.do(ctx, http.MethodPut, "/exercises/bench-press/weight", `{"text": "62,3"}`)
	require.Equal(t, http.StatusOK, status, string(body))
	var wr weights.WeightResponse
	require.NoError(t, json.Unmarshal(body, &wr))
	assert.Equal(t, 62.5, wr.Weight)
	assert.Equal(t, "62.5", wr.FormattedWeight)

	raw, ok := s.storedValue("gym-weight-tracker-weights")
	require.True(t, ok)
	assert.JSONEq(t, `{"bench-press": 62.5}`, raw)

	status, body = s.do(ctx, http.MethodPost, "/exercises", `{"name": "Cable Fly", "defaultWeight": 12.3}`)
	require.Equal(t, http.StatusCreated, status, string(body))
	var ex weights.Exercise
	require.NoError(t, json.Unmarshal(body, &ex))
	assert.Equal(t, "cable-fly", ex.ID)

	status, _ = s.do(ctx, http.MethodPost, "/exercises/cable-fly/done/toggle", "")
	require.Equal(t, http.StatusOK, status)

	status, body = s.do(ctx, http.MethodGet, "/stats", "")
	require.Equal(t, http.StatusOK, status)
	var stats weights.Stats
	require.NoError(t, json.Unmarshal(body, &stats))
	assert.Equal(t, weights.Stats{ExerciseCount: 21, DoneCount: 1}, stats)

	status, _ = s.do(ctx, http.MethodDelete, "/exercises/cable-fly", "")
	require.Equal(t, http.StatusOK, status)
	status, _ = s.do(ctx, http.MethodGet, "/exercises/cable-fly/weight", "")
	assert.Equal(t, http.StatusNotFound, status)

	// orphaned weight and done flag stay behind
	raw, ok = s.storedValue("gym-weight-tracker-done")
	require.True(t, ok)
	assert.JSONEq(t, `{"cable-fly": true}`, raw)
}

func (s *IntegrationTestSuite) TestLegacyMigrationOnReset() {
	ctx := context.Background()
	t := s.T()

	status, _ := s.do(ctx, http.MethodPost, "/settings/clear", "")
	require.Equal(t, http.StatusNoContent, status)

	_, ok := s.storedValue("gym-weight-tracker-weights")
	assert.False(t, ok)
	raw, ok := s.storedValue("gym-weight-tracker-exercises")
	require.True(t, ok)
	assert.JSONEq(t, `[]`, raw)

	status, _ = s.do(ctx, http.MethodPost, "/settings/reset", "")
	require.Equal(t, http.StatusNoContent, status)
	_, ok = s.storedValue("gym-weight-tracker-exercises")
	assert.False(t, ok)

	// reads see the catalog without writing it
	status, body := s.do(ctx, http.MethodGet, "/exercises", "")
	require.Equal(t, http.StatusOK, status)
	var list weights.ListResponse
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Equal(t, 20, list.Total)
	_, ok = s.storedValue("gym-weight-tracker-exercises")
	assert.False(t, ok)
}

func (s *IntegrationTestSuite) TestSnapshotRoundTrip() {
	ctx := context.Background()
	t := s.T()

	status, _ := s.do(ctx, http.MethodPost, "/settings/reset", "")
	require.Equal(t, http.StatusNoContent, status)
	status, _ = s.do(ctx, http.MethodPut, "/account/name", `{"name": "Integration"}`)
	require.Equal(t, http.StatusOK, status)

	status, exported := s.do(ctx, http.MethodGet, "/snapshot?format=json", "")
	require.Equal(t, http.StatusOK, status)

	status, _ = s.do(ctx, http.MethodPost, "/settings/reset", "")
	require.Equal(t, http.StatusNoContent, status)

	status, body := s.do(ctx, http.MethodPut, "/snapshot", string(exported))
	require.Equal(t, http.StatusOK, status, string(body))

	status, body = s.do(ctx, http.MethodGet, "/account/name", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"name": "Integration"}`, string(body))
}

func (s *IntegrationTestSuite) TestMetricsEndpoint() {
	t := s.T()
	resp, err := s.httpClient.Get(fmt.Sprintf("http://%s:%s/metrics", serverHost, metricsPort))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "backend_weights_request")
	assert.Contains(t, string(body), "pgxpool_")
}
