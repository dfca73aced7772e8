// Package status runs the DevKit status check: two sequential requests,
// then a single report or a single failure handed to a Renderer.
package status

import (
	"context"
	"log/slog"

	"github.com/dmagro/yaci-status/internal/config"
	"github.com/dmagro/yaci-status/internal/yaci"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// API is the part of the DevKit client the reporter depends on.
type API interface {
	LatestEpoch(ctx context.Context) (*yaci.EpochInfo, yaci.RequestSample, error)
	LatestBlock(ctx context.Context) (*yaci.BlockInfo, yaci.RequestSample, error)
}

// Renderer presents the outcome of a check.
type Renderer interface {
	// Start is called once, before the first request.
	Start(baseURL string) error
	// Success receives the complete report when every request succeeded.
	Success(r *Report) error
	// Failure receives the first request error; nothing else follows.
	Failure(f *Failure) error
}

// Network holds the identity values passed through from the environment.
type Network struct {
	Magic string
	ID    string
}

// Report is everything gathered by a successful check.
type Report struct {
	BaseURL  string
	Epoch    *yaci.EpochInfo
	Block    *yaci.BlockInfo
	Network  Network
	Requests []yaci.RequestSample
}

// Failure describes why a check aborted.
type Failure struct {
	BaseURL string
	// Endpoint is the API path whose request failed.
	Endpoint string
	Err      error
	// ConnectionRefused is set when no connection to the DevKit could be
	// established, as opposed to a request that completed but failed.
	ConnectionRefused bool
}

type Reporter struct {
	cfg    *config.Config
	api    API
	out    Renderer
	logger *slog.Logger
}

func NewReporter(cfg *config.Config, api API, out Renderer, logger *slog.Logger) *Reporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reporter{cfg: cfg, api: api, out: out, logger: logger}
}

// Run performs the check and returns the process exit code. Any request
// failure aborts the remaining sequence.
func (r *Reporter) Run(ctx context.Context) int {
	if err := r.out.Start(r.cfg.BaseURL); err != nil {
		r.logger.Error("failed to write output", "error", err)
		return ExitFailure
	}

	report := &Report{
		BaseURL: r.cfg.BaseURL,
		Network: Network{Magic: r.cfg.NetworkMagic, ID: r.cfg.NetworkID},
	}

	epoch, sample, err := r.api.LatestEpoch(ctx)
	if err != nil {
		return r.fail(yaci.PathLatestEpoch, err)
	}
	report.Epoch = epoch
	report.Requests = append(report.Requests, sample)

	block, sample, err := r.api.LatestBlock(ctx)
	if err != nil {
		return r.fail(yaci.PathLatestBlock, err)
	}
	report.Block = block
	report.Requests = append(report.Requests, sample)

	if err := r.out.Success(report); err != nil {
		r.logger.Error("failed to write output", "error", err)
		return ExitFailure
	}
	return ExitOK
}

func (r *Reporter) fail(endpoint string, err error) int {
	f := &Failure{
		BaseURL:           r.cfg.BaseURL,
		Endpoint:          endpoint,
		Err:               err,
		ConnectionRefused: yaci.IsConnectionRefused(err),
	}
	r.logger.Debug("status check failed", "endpoint", endpoint, "refused", f.ConnectionRefused, "error", err)

	if werr := r.out.Failure(f); werr != nil {
		r.logger.Error("failed to write output", "error", werr)
	}
	return ExitFailure
}
