package services

// Error carries the HTTP status a failure maps to. Controllers unwrap it and
// reuse the message in the response envelope; anything else becomes a 500.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

func Invalid(message string) *Error  { return &Error{Status: 400, Message: message} }
func NotFound(message string) *Error { return &Error{Status: 404, Message: message} }
func Conflict(message string) *Error { return &Error{Status: 409, Message: message} }
