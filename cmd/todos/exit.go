package main

// exitError carries a process exit code alongside the error message.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func (e *exitError) ExitCode() int {
	return e.code
}

// exitCodeNotFound is returned when an ID or category does not resolve.
const exitCodeNotFound = 2

func notFound(err error) error {
	return &exitError{code: exitCodeNotFound, err: err}
}
