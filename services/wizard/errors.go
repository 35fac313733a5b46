package wizard

import "fmt"

// StateError reports an operation attempted from the wrong wizard step
// or decision sub-state.
type StateError struct {
	Message string
}

func (e *StateError) Error() string {
	return e.Message
}

func stateErrorf(format string, args ...any) *StateError {
	return &StateError{Message: fmt.Sprintf(format, args...)}
}

// ValidationError reports contact fields that failed validation. Fields
// maps field name to a customer-facing message.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}
