package cmd

import "errors"

// Exit codes for the coverout CLI
const (
	// ExitSuccess indicates the text was written (or silenced)
	ExitSuccess = 0

	// ExitWriteFailure indicates the output stream rejected a write
	ExitWriteFailure = 1

	// ExitConfigError indicates a configuration error
	ExitConfigError = 3

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)

// exitError carries the process exit code for an error returned by a command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func withExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: code, err: err}
}

// exitCode maps an error returned by Execute to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return ExitWriteFailure
}
