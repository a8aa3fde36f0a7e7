package apperror

import "errors"

// Sentinel errors shared by services and the HTTP error handler.
var (
	ErrUnauthorized         = errors.New("unauthorized")
	ErrValidation           = errors.New("validation failed")
	ErrNotFound             = errors.New("resource not found")
	ErrGeneration           = errors.New("generation failed")
	ErrGenerationInProgress = errors.New("generation is already in progress for this story")
	ErrPersistence          = errors.New("persistence failed")
)

// Error pairs a sentinel kind with a message that is safe to show to the client.
// Cause stays in logs only.
type Error struct {
	Kind    error
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Kind, e.Cause}
	}
	return []error{e.Kind}
}

func New(kind error, message string) error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind error, message string, cause error) error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// PublicMessage returns the client-facing message of err, or fallback when err carries none.
func PublicMessage(err error, fallback string) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}
