package apperrors

// messageError carries a user-visible message while still matching one of the
// sentinel errors under errors.Is, so handlers can map it to a status code
// without losing the message.
type messageError struct {
	msg      string
	sentinel error
}

func (e *messageError) Error() string { return e.msg }

func (e *messageError) Unwrap() error { return e.sentinel }

// Unauthorized returns an ErrUnauthorized with a user-visible message.
func Unauthorized(msg string) error {
	return &messageError{msg: msg, sentinel: ErrUnauthorized}
}

// Conflict returns an ErrDuplicate with a user-visible message.
func Conflict(msg string) error {
	return &messageError{msg: msg, sentinel: ErrDuplicate}
}

// NotFound returns an ErrNotFound with a user-visible message.
func NotFound(msg string) error {
	return &messageError{msg: msg, sentinel: ErrNotFound}
}
