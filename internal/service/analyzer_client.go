package service

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/launchpadhq/launchpad-api/config"
	"github.com/launchpadhq/launchpad-api/internal/dto"
	"github.com/rs/zerolog/log"
)

// AnalyzerClient delivers analysis requests to the external CV-scoring
// worker. The worker responds out-of-band via the callback endpoint; this
// call only hands the job off.
type AnalyzerClient interface {
	Analyze(ctx context.Context, req dto.AnalyzeRequestDTO) error
}

type analyzerClient struct {
	http    *resty.Client
	baseURL string
}

func NewAnalyzerClient(cfg *config.Config) AnalyzerClient {
	client := resty.New().
		SetTimeout(cfg.Analyzer.RequestTimeout).
		SetHeader("Content-Type", "application/json")
	return &analyzerClient{http: client, baseURL: cfg.Analyzer.BaseURL}
}

// Analyze returns an error on any network failure or non-2xx response; a
// timeout is treated the same as a refused connection.
func (c *analyzerClient) Analyze(ctx context.Context, req dto.AnalyzeRequestDTO) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		Post(c.baseURL + "/analyze")
	if err != nil {
		log.Error().Err(err).Str("jobID", req.JobID).Msg("Analyzer request failed")
		return err
	}
	if resp.IsError() {
		log.Error().Int("status", resp.StatusCode()).Str("jobID", req.JobID).Msg("Analyzer rejected request")
		return fmt.Errorf("analyzer returned status %d", resp.StatusCode())
	}
	return nil
}
