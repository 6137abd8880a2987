package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/launchpadhq/launchpad-api/config"
	"github.com/launchpadhq/launchpad-api/internal/dto"
	"github.com/launchpadhq/launchpad-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyzerConfig(baseURL string) *config.Config {
	cfg := &config.Config{}
	cfg.Analyzer.BaseURL = baseURL
	cfg.Analyzer.RequestTimeout = 2 * time.Second
	return cfg
}

func TestAnalyzerClientPostsAnalyzeRequest(t *testing.T) {
	var received dto.AnalyzeRequestDTO
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/analyze", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	client := service.NewAnalyzerClient(analyzerConfig(srv.URL))
	err := client.Analyze(context.Background(), dto.AnalyzeRequestDTO{
		JobID:       "job-1",
		UserID:      "user-1",
		CvURL:       "https://api.launchpad.test/internal/analysis/jobs/job-1/cv",
		CallbackURL: "https://api.launchpad.test/internal/analysis/callback",
	})
	require.NoError(t, err)
	assert.Equal(t, "job-1", received.JobID)
	assert.Equal(t, "user-1", received.UserID)
}

func TestAnalyzerClientTreatsNon2xxAsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := service.NewAnalyzerClient(analyzerConfig(srv.URL))
	err := client.Analyze(context.Background(), dto.AnalyzeRequestDTO{JobID: "job-1"})
	assert.Error(t, err)
}

func TestAnalyzerClientConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	client := service.NewAnalyzerClient(analyzerConfig(srv.URL))
	err := client.Analyze(context.Background(), dto.AnalyzeRequestDTO{JobID: "job-1"})
	assert.Error(t, err)
}
