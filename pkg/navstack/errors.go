package navstack

import (
	"errors"
	"fmt"
)

// Sentinel errors for controller lifecycle conditions. Navigation commands
// themselves never fail; these only describe whether a command could reach
// the controller at all.
var (
	// ErrClosed indicates the controller loop has stopped and accepts no
	// more commands.
	ErrClosed = errors.New("navstack: controller closed")

	// ErrAlreadyRunning indicates Run was called on a controller that has
	// already been started.
	ErrAlreadyRunning = errors.New("navstack: controller already running")
)

// ControllerError wraps a failure to hand a command to the controller, such
// as a cancelled context while waiting for space in the inbox.
type ControllerError struct {
	Op  string // Operation that failed (e.g., "dispatch", "do", "load_options")
	Err error  // Underlying error
}

func (e *ControllerError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("navstack: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("navstack: %s", e.Op)
}

func (e *ControllerError) Unwrap() error {
	return e.Err
}

// NewControllerError creates a new controller error.
func NewControllerError(op string, err error) *ControllerError {
	return &ControllerError{Op: op, Err: err}
}

// IsControllerError checks if an error is a controller error.
func IsControllerError(err error) bool {
	var ctrlErr *ControllerError
	return errors.As(err, &ctrlErr)
}

// IsClosed checks if an error indicates the controller has stopped.
func IsClosed(err error) bool {
	return errors.Is(err, ErrClosed)
}
