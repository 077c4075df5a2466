// Package domain provides core types for the status decoder CLI.
package domain

// ExitCode represents the exit status of the oserr process.
type ExitCode int

const (
	// ExitOK indicates every inspected status code was success.
	ExitOK ExitCode = 0
	// ExitStatusFailure indicates a nonzero status code was reported.
	ExitStatusFailure ExitCode = 1
	// ExitError indicates a usage or configuration error.
	ExitError ExitCode = 2
)

// Int returns the exit code as an int for use with os.Exit.
func (e ExitCode) Int() int {
	return int(e)
}
