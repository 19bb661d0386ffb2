package retry

// Stop wraps an error to signal that it must not be retried, regardless of
// the session's condition. The engine terminates with an *OperationError
// wrapping the original error.
func Stop(err error) error {
	if err == nil {
		return nil
	}
	return &stopError{err: err}
}

// stopError wraps an error that should not be retried.
type stopError struct {
	err error
}

func (e *stopError) Error() string {
	return e.err.Error()
}

func (e *stopError) Unwrap() error {
	return e.err
}
