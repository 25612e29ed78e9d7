package weather

import "errors"

// Error kinds. Match them with errors.Is against a *ServiceError.
var (
	ErrEmptyCity    = errors.New("empty city")
	ErrNotFound     = errors.New("location not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrServer       = errors.New("server error")
	ErrStatus       = errors.New("unexpected status")
	ErrTimeout      = errors.New("timeout")
	ErrNetwork      = errors.New("network error")
	ErrDecode       = errors.New("malformed response")
)

// ServiceError is a lookup failure with a message fit for end users.
type ServiceError struct {
	Kind       error
	Message    string
	StatusCode int
	cause      error
}

func newServiceError(kind error, status int, msg string) *ServiceError {
	return &ServiceError{Kind: kind, Message: msg, StatusCode: status}
}

func (e *ServiceError) Error() string {
	return e.Message
}

// Is reports whether target is this error's kind.
func (e *ServiceError) Is(target error) bool {
	return e.Kind == target
}

func (e *ServiceError) Unwrap() error {
	return e.cause
}
