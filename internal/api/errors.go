package api

import "fmt"

// ErrorType categorizes analysis request failures
type ErrorType string

const (
	// ErrTypeTransport indicates the request itself failed: DNS, connection,
	// timeout, or an unparseable response body
	ErrTypeTransport ErrorType = "transport"

	// ErrTypeProtocol indicates a non-success HTTP status
	ErrTypeProtocol ErrorType = "protocol"

	// ErrTypeApplication indicates the service parsed the request but
	// rejected the file, reported through the body's error field
	ErrTypeApplication ErrorType = "application"
)

// GenericFailureMessage is shown when a failure carries no usable text.
const GenericFailureMessage = "analysis request failed"

// ServiceError represents a failed analysis request.
type ServiceError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}

func newServiceError(errType ErrorType, message string) *ServiceError {
	return &ServiceError{Type: errType, Message: message}
}

func newServiceErrorWithCause(errType ErrorType, message string, cause error) *ServiceError {
	return &ServiceError{Type: errType, Message: message, Cause: cause}
}

// DisplayMessage reduces a failure to the single string shown to the user.
// Precedence: server-supplied error text, then the transport error's own
// message, then the generic fallback.
func DisplayMessage(err error) string {
	if err == nil {
		return ""
	}

	if svcErr, ok := err.(*ServiceError); ok {
		if svcErr.Message != "" {
			return svcErr.Message
		}
		if svcErr.Cause != nil && svcErr.Cause.Error() != "" {
			return svcErr.Cause.Error()
		}
		return GenericFailureMessage
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return GenericFailureMessage
}
