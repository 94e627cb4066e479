package errors

var (
	// ErrTimeoutExceeded is returned when graceful timeout period exceeds.
	ErrTimeoutExceeded = New("Timeout exceeded")
	// ErrInvalidEnvironemt is returned when the env is incorrect.
	ErrInvalidEnvironemt = New("Invalid Environment")
	// GenericErrorMessage is generic error message returned to UI
	GenericErrorMessage = New("Unexpected error. Please try again later.")
	// ErrMissingDemoFields is returned when full name or email is empty after trimming.
	ErrMissingDemoFields = New("Full name and email are required.")
	// ErrUnknownRemoteDriver is returned when the configured remote driver is not supported.
	ErrUnknownRemoteDriver = New("unknown remote store driver")
	// ErrSaveFailed prefixes the message returned when no store accepted a demo request.
	ErrSaveFailed = New("Failed to save demo request.")
)

// Error represents a json-encoded API error.
type Error struct {
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

// New returns a new error message.
func New(text string) error {
	return &Error{Message: text}
}
