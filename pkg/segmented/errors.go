package segmented

import (
	"errors"
	"fmt"
)

// Sentinel errors for host and input-source conditions. The Control itself
// never fails.
var (
	// ErrClosed indicates an input or appearance source was used after Close.
	ErrClosed = errors.New("source closed")

	// ErrNoDevice indicates no usable touchscreen was found.
	ErrNoDevice = errors.New("no touch device")
)

// InfrastructureError represents a host-level failure (window creation,
// texture upload, device access, file watching). These errors come from
// the rendering substrate or the OS, never from the control's state.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "create_window", "open_device")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("segmented: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("segmented: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsClosed checks if an error indicates a closed source.
func IsClosed(err error) bool {
	return errors.Is(err, ErrClosed)
}
