package main

import (
	"fmt"

	"oserr/internal/domain"
)

// exitCodeError is a wrapper type for returning exit codes via error interface.
type exitCodeError struct {
	code domain.ExitCode
}

func (e exitCodeError) Error() string {
	switch e.code {
	case domain.ExitStatusFailure:
		return "a nonzero status was reported"
	case domain.ExitError:
		return "command failed with error"
	default:
		return fmt.Sprintf("exit code %d", e.code)
	}
}

func exitCode(code domain.ExitCode) error {
	if code == domain.ExitOK {
		return nil
	}
	return exitCodeError{code: code}
}
