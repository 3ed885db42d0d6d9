package contact

import (
	"errors"
	"fmt"
)

// User-facing messages, returned verbatim by the HTTP layer.
const (
	MsgFieldsRequired = "All fields are required"
	MsgInvalidEmail   = "Invalid email format"
	MsgTooLong        = "Message is too long"
	MsgSent           = "Message sent successfully! I'll get back to you within 24 hours."
	MsgSendFailed     = "Failed to send email. Please try again."
)

// ErrNotConfigured is returned by a mailer without credentials.
var ErrNotConfigured = errors.New("smtp credentials not configured")

// ValidationError describes a submission the sender must correct.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// DeliveryError wraps a failure to hand the message to the mail server.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("deliver contact message: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *DeliveryError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
