// Package errors defines the fatal error kinds reported by the command-line
// tools and maps them onto gofulmen error envelopes.
package errors

import (
	stderrors "errors"
	"fmt"

	gferrors "github.com/fulmenhq/gofulmen/errors"
	"github.com/google/uuid"
)

// Kind classifies a fatal error.
type Kind string

const (
	KindMissingCredential       Kind = "missing_credential"
	KindMissingRequiredArgument Kind = "missing_required_argument"
	KindInvalidOptionValue      Kind = "invalid_option_value"
	KindRemoteAPI               Kind = "remote_api_error"
	KindNetworkOrParse          Kind = "network_or_parse_failure"
	KindConfigInvalid           Kind = "config_invalid"
)

// Envelope codes, shared with the gofulmen error catalog.
const (
	CodeConfigInvalid   = "CONFIG_INVALID"
	CodeInvalidInput    = "INVALID_INPUT"
	CodeValidation      = "VALIDATION_FAILED"
	CodeExternalService = "EXTERNAL_SERVICE_ERROR"
	CodeDataProcessing  = "DATA_PROCESSING_ERROR"
)

const usageHint = "Run with --help for usage"

// Error is a fatal error surfaced to the user on stderr.
//
// Message is printed after "Error: ". Hints are printed verbatim on the
// following lines.
type Error struct {
	Kind    Kind
	Message string
	Hints   []string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return "unknown error"
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Code returns the envelope code for the error kind.
func (e *Error) Code() string {
	if e == nil {
		return CodeDataProcessing
	}
	switch e.Kind {
	case KindMissingCredential, KindConfigInvalid:
		return CodeConfigInvalid
	case KindMissingRequiredArgument:
		return CodeInvalidInput
	case KindInvalidOptionValue:
		return CodeValidation
	case KindRemoteAPI:
		return CodeExternalService
	default:
		return CodeDataProcessing
	}
}

// Envelope converts the error to a gofulmen envelope tagged with the given
// correlation ID. An empty ID gets a fresh UUID.
func (e *Error) Envelope(correlationID string) *gferrors.ErrorEnvelope {
	if correlationID == "" {
		correlationID = uuid.New().String()
	}

	envelope := gferrors.NewErrorEnvelope(e.Code(), e.Error())
	envelope = envelope.WithCorrelationID(correlationID)

	severity := gferrors.SeverityMedium
	if e != nil && (e.Kind == KindRemoteAPI || e.Kind == KindNetworkOrParse) {
		severity = gferrors.SeverityHigh
	}
	if updated, err := envelope.WithSeverity(severity); err == nil {
		envelope = updated
	}

	if e != nil && e.Err != nil {
		if updated, err := envelope.WithContext(map[string]interface{}{
			"kind":          string(e.Kind),
			"wrapped_error": e.Err.Error(),
		}); err == nil {
			envelope = updated
		}
	}
	return envelope
}

// MissingCredential reports an unset API key environment variable.
func MissingCredential(envVar string) *Error {
	return &Error{
		Kind:    KindMissingCredential,
		Message: fmt.Sprintf("%s environment variable not set", envVar),
		Hints: []string{
			"Set it in your ~/.zshrc or ~/.bashrc:",
			fmt.Sprintf("  export %s='your-api-key-here'", envVar),
		},
	}
}

// MissingArgument reports an invocation lacking its required input.
func MissingArgument(message string) *Error {
	return &Error{
		Kind:    KindMissingRequiredArgument,
		Message: message,
		Hints:   []string{usageHint},
	}
}

// InvalidOption reports a flag value the tool cannot accept.
func InvalidOption(flag, value, expected string) *Error {
	return &Error{
		Kind:    KindInvalidOptionValue,
		Message: fmt.Sprintf("Invalid value %q for %s (expected %s)", value, flag, expected),
		Hints:   []string{usageHint},
	}
}

// MissingOptionValue reports a value-taking flag at the end of the arguments
// whose absent value cannot be tolerated.
func MissingOptionValue(flag string) *Error {
	return &Error{
		Kind:    KindInvalidOptionValue,
		Message: fmt.Sprintf("Missing value for %s", flag),
		Hints:   []string{usageHint},
	}
}

// RemoteAPI wraps a non-2xx API response. The message is the error text
// unchanged so the raw response body reaches the user.
func RemoteAPI(err error) *Error {
	return &Error{Kind: KindRemoteAPI, Message: err.Error(), Err: err}
}

// ConfigInvalid wraps a configuration loading failure.
func ConfigInvalid(err error) *Error {
	return &Error{Kind: KindConfigInvalid, Message: fmt.Sprintf("invalid configuration: %v", err), Err: err}
}

// NetworkOrParse wraps a transport or decoding failure.
func NetworkOrParse(err error) *Error {
	return &Error{Kind: KindNetworkOrParse, Message: err.Error(), Err: err}
}

// Ensure normalizes any error into an *Error. Unknown errors become
// NetworkOrParse failures.
func Ensure(err error) *Error {
	if err == nil {
		return nil
	}
	var cliErr *Error
	if stderrors.As(err, &cliErr) {
		return cliErr
	}
	return NetworkOrParse(err)
}
