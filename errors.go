package retry

// OperationError is the terminal error when the retried action itself
// fails: the condition rejected the failure, or the strategy was exhausted
// before an attempt succeeded. The wrapped error is the last attempt's
// failure, unmodified.
type OperationError struct {
	Err error
}

func (e *OperationError) Error() string {
	return e.Err.Error()
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// TimerError is the terminal error when the clock fails while waiting
// between attempts. It is always fatal; the engine never retries it.
type TimerError struct {
	Err error
}

func (e *TimerError) Error() string {
	return e.Err.Error()
}

func (e *TimerError) Unwrap() error {
	return e.Err
}
