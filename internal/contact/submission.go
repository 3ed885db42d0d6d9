package contact

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MaxMessageLen is the longest accepted message, in runes.
const MaxMessageLen = 5000

// Submission is one contact form post. The form tags match the HTML form's
// field names; JSON clients use the json names.
type Submission struct {
	Name    string `json:"name" form:"fullName" validate:"required"`
	Email   string `json:"email" form:"email" validate:"required,email_strict"`
	Message string `json:"message" form:"message" validate:"required,max=5000"`
}

// Normalize trims surrounding whitespace from every field.
func (s Submission) Normalize() Submission {
	return Submission{
		Name:    strings.TrimSpace(s.Name),
		Email:   strings.TrimSpace(s.Email),
		Message: strings.TrimSpace(s.Message),
	}
}

// Validate reports the first problem a sender should fix as a
// *ValidationError. Missing fields win over a malformed email, which wins
// over an overlong message.
func (s Submission) Validate() error {
	err := validatorInstance().Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	var first *ValidationError
	rank := func(tag string) int {
		switch tag {
		case "required":
			return 0
		case "email_strict":
			return 1
		default:
			return 2
		}
	}
	best := 3
	for _, fe := range fieldErrs {
		r := rank(fe.Tag())
		if r >= best {
			continue
		}
		best = r
		switch r {
		case 0:
			first = &ValidationError{Message: MsgFieldsRequired}
		case 1:
			first = &ValidationError{Field: "email", Message: MsgInvalidEmail}
		default:
			first = &ValidationError{Field: "message", Message: MsgTooLong}
		}
	}
	return first
}
