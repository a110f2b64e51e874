package types

import "fmt"

// Result statuses for operations that cross the orchestrator boundary.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Result is the tagged envelope every public pipeline operation returns
// to the external orchestrator.
type Result struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// SuccessResult builds a success envelope around data.
func SuccessResult(message string, data any) Result {
	return Result{Status: StatusSuccess, Message: message, Data: data}
}

// ErrorResult builds an error envelope from an error.
func ErrorResult(err error) Result {
	return Result{Status: StatusError, Message: err.Error()}
}

// ValidationError represents malformed or out-of-range input detected
// synchronously before any artifact is written.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}
