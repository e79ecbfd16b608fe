package cmd

import (
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/parallel-tools/parallel-tools/internal/config"
	apperrors "github.com/parallel-tools/parallel-tools/internal/errors"
	"github.com/parallel-tools/parallel-tools/internal/observability"
	"github.com/parallel-tools/parallel-tools/internal/output"
	"github.com/parallel-tools/parallel-tools/internal/parallel"
)

var (
	// Version info set by main package
	versionInfo struct {
		Version   string
		Commit    string
		BuildDate string
	}

	// currentCorrelationID tags the envelope logged on failure.
	currentCorrelationID string
)

// SetVersionInfo is called by main package to set version information
func SetVersionInfo(version, commit, buildDate string) {
	versionInfo.Version = version
	versionInfo.Commit = commit
	versionInfo.BuildDate = buildDate
}

// session carries everything one invocation needs after the API key check.
type session struct {
	client   *parallel.Client
	renderer output.Renderer
	stdout   io.Writer
	close    func()
}

// newSession loads configuration, requires the API key and prepares logging,
// tracing, the API client and the renderer.
func newSession(tool string, stdout io.Writer) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, apperrors.ConfigInvalid(err)
	}
	if cfg.APIKey == "" {
		return nil, apperrors.MissingCredential(parallel.APIKeyEnv)
	}

	observability.InitCLILogger(tool, cfg.Verbose)
	logger := observability.CLILogger

	format, err := output.ParseFormat(cfg.Output)
	if err != nil {
		return nil, apperrors.ConfigInvalid(err)
	}

	currentCorrelationID = uuid.New().String()
	logger.Debug("Starting",
		zap.String("tool", tool),
		zap.String("version", versionInfo.Version),
		zap.String("commit", versionInfo.Commit),
		zap.String("correlation_id", currentCorrelationID),
		zap.String("base_url", cfg.BaseURL),
		zap.String("output", string(format)),
	)

	closeFn := func() {}
	if cfg.Trace != "" {
		cleanup, err := parallel.EnableTracing(cfg.Trace)
		if err != nil {
			logger.Warn("Failed to enable tracing", zap.Error(err))
		} else {
			logger.Debug("Request tracing enabled", zap.String("file", cfg.Trace))
			closeFn = cleanup
		}
	}

	client := parallel.NewClient(cfg.BaseURL, cfg.APIKey)
	client.BetaVersion = cfg.Beta
	client.Timeout = cfg.Timeout
	client.CorrelationID = currentCorrelationID

	return &session{
		client:   client,
		renderer: output.NewRenderer(format),
		stdout:   stdout,
		close:    closeFn,
	}, nil
}

// callFailed classifies an API client error and logs it.
func (s *session) callFailed(err error, started time.Time) error {
	observability.CLILogger.Debug("API call failed",
		zap.Duration("elapsed", time.Since(started)),
		zap.Error(err),
	)
	var apiErr *parallel.APIError
	if errors.As(err, &apiErr) {
		return apperrors.RemoteAPI(apiErr)
	}
	return apperrors.NetworkOrParse(err)
}

// callDone logs a successful API call.
func (s *session) callDone(endpoint string, results int, started time.Time) {
	observability.CLILogger.Debug("API call complete",
		zap.String("endpoint", endpoint),
		zap.Int("results", results),
		zap.Duration("elapsed", time.Since(started)),
	)
}
