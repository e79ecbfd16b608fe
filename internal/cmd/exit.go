package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fulmenhq/gofulmen/foundry"
	"github.com/fulmenhq/gofulmen/logging"
	"go.uber.org/zap"

	apperrors "github.com/parallel-tools/parallel-tools/internal/errors"
	"github.com/parallel-tools/parallel-tools/internal/observability"
)

// ExitCode returns the process exit code for a command result: zero for nil,
// the foundry failure code for everything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	info, ok := foundry.GetExitCodeInfo(foundry.ExitFailure)
	if !ok {
		return int(foundry.ExitFailure)
	}
	return info.Code
}

// ReportError writes a fatal error for the user: "Error: <message>" followed
// by any hint lines.
func ReportError(w io.Writer, err error) {
	cliErr := apperrors.Ensure(err)
	if cliErr == nil {
		return
	}
	fmt.Fprintf(w, "Error: %s\n", cliErr.Message)
	for _, hint := range cliErr.Hints {
		fmt.Fprintln(w, hint)
	}
}

// ExitWithError reports err on stderr, logs its envelope at debug level and
// exits with the failure code.
func ExitWithError(err error) {
	ReportError(os.Stderr, err)
	logEnvelope(observability.CLILogger, err)
	os.Exit(ExitCode(err))
}

func logEnvelope(logger *logging.Logger, err error) {
	cliErr := apperrors.Ensure(err)
	if logger == nil || cliErr == nil {
		return
	}

	envelope := cliErr.Envelope(currentCorrelationID)
	fields := []zap.Field{
		zap.Int("exit_code", ExitCode(err)),
		zap.String("error_kind", string(cliErr.Kind)),
		zap.String("error_code", envelope.Code),
		zap.String("error_message", envelope.Message),
		zap.String("correlation_id", envelope.CorrelationID),
	}
	if envelope.Context != nil {
		fields = append(fields, zap.Any("error_context", envelope.Context))
	}
	logger.Debug("Command failed", fields...)
}
