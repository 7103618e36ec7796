package domain

import (
	"errors"
	"fmt"
)

// Process exit statuses.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitConfig  = 2
)

var (
	// ErrNoEnvironment is returned when no usable venv can be located.
	ErrNoEnvironment = errors.New("no venv found")
	// ErrUnknownFormatter is returned for a formatter outside the recognized set.
	ErrUnknownFormatter = errors.New("unknown formatter")
	// ErrUnknownTypeChecker is returned for a type checker outside the recognized set.
	ErrUnknownTypeChecker = errors.New("unknown typechecker")
	// ErrProvision is returned when creating a venv fails.
	ErrProvision = errors.New("venv creation failed")
	// ErrReleasePreflight is returned when a release preflight check fails.
	ErrReleasePreflight = errors.New("release preflight failed")
	// ErrStageFailed is returned when a tool exits with a non-zero status.
	ErrStageFailed = errors.New("stage failed")
	// ErrSecurityFailed is returned when at least one security stage failed.
	ErrSecurityFailed = errors.New("security checks failed")
)

// ExitError carries the status the process should exit with. Its message
// has already been shown to the user by the time it is returned.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}

	return fmt.Sprintf("exit status %d: %v", e.Code, e.Err)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func exitWith(code int, err error) error {
	return &ExitError{Code: code, Err: err}
}

// ExitCode maps an error returned by a workflow to a process status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitFailure
}
