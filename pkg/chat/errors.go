package chat

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyMessage is returned when the submitted text is empty after trimming.
	ErrEmptyMessage = errors.New("message is empty")
	// ErrMessageTooLong is returned when the submitted text exceeds the limit.
	ErrMessageTooLong = errors.New("message is too long")
	// ErrNoAttachments is returned when an attach action carries no file names.
	ErrNoAttachments = errors.New("no files attached")
	// ErrEmptyQuery is returned when a search action has an empty query.
	ErrEmptyQuery = errors.New("search query is empty")

	// ErrBusy is returned when a submission arrives while a reply is pending.
	ErrBusy = errors.New("a response is already pending")
	// ErrNotBusy is returned by Complete when no reply is pending.
	ErrNotBusy = errors.New("no response is pending")
	// ErrStaleTurn is returned by Complete when the turn was superseded.
	ErrStaleTurn = errors.New("turn is no longer pending")
)

// ValidationError describes rejected user input.
type ValidationError struct {
	Reason error
	Length int
	Limit  int
}

func (e *ValidationError) Error() string {
	if errors.Is(e.Reason, ErrMessageTooLong) {
		return fmt.Sprintf("validation failed: %v (%d > %d characters)", e.Reason, e.Length, e.Limit)
	}
	return fmt.Sprintf("validation failed: %v", e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Reason
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsBusy reports whether err was caused by a pending response.
func IsBusy(err error) bool {
	return errors.Is(err, ErrBusy)
}

// UserNotice returns the text shown in the transient notice for err.
func UserNotice(err error) string {
	var ve *ValidationError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyMessage):
		return "Please enter a message before sending."
	case errors.As(err, &ve) && errors.Is(err, ErrMessageTooLong):
		return fmt.Sprintf("Message is too long. Please keep it under %d characters.", ve.Limit)
	case errors.Is(err, ErrEmptyQuery):
		return "Please enter a search query."
	case errors.Is(err, ErrNoAttachments):
		return "No files were selected."
	case IsBusy(err):
		return "Please wait for the current response to complete."
	default:
		return "Failed to send message. Please try again."
	}
}
