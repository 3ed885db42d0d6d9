package contact

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	// Looser than RFC 5322 on purpose: same rule as the browser form.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// validatorInstance configures and returns the shared validator instance used across the contact package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("email_strict", func(fl validator.FieldLevel) bool {
			return emailPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}
