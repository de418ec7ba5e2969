package timerun

// Error is the common type for all errors surfaced by timerun. Callers can classify any
// timerun failure with errors.As, or match a specific kind against one of the exported
// sentinel values with errors.Is.
type Error struct {
	msg string
}

// Error returns the human-readable description of the failure.
func (e *Error) Error() string {
	return e.msg
}

var (
	// ErrNotLaunched is returned when an elapsed time is requested from a Measurer that
	// has never been launched. The caller must launch the measurer before elapsing it;
	// the condition is a usage error, not a transient failure, and is never retried.
	ErrNotLaunched = &Error{"timerun: measurer has not been launched yet"}

	// ErrNoCapture is returned when the most recent duration is requested from a Catcher
	// whose history is empty. The caller must complete at least one scoped or wrapped
	// invocation first.
	ErrNoCapture = &Error{"timerun: no duration has been captured yet"}
)
