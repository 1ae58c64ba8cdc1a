package imaging

import "fmt"

// InputError reports caller-supplied data that violates a precondition:
// a missing image, a missing or malformed color, or an image without
// transparency passed to LocateVisualCenter.
//
// Callers can always recover from an InputError by fixing their input.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return "invalid input: " + e.Reason
}

// inputErrorf builds an *InputError with a formatted reason.
func inputErrorf(format string, args ...interface{}) error {
	return &InputError{Reason: fmt.Sprintf(format, args...)}
}

// DecodeError reports image bytes that could not be parsed as a raster.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode image: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// InternalError reports an unexpected failure while producing a result,
// such as a PNG encoder or file write error.
type InternalError struct {
	Op  string
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *InternalError) Unwrap() error { return e.Err }
