package auth

import (
	stderrors "errors"
	"talk/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// MinPasswordLength is the provider's weak-password threshold.
const MinPasswordLength = 6

type RegisterRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// ValidateRegister checks a sign-up request and reports the provider error
// for the first failing field. Email problems win over password problems.
func ValidateRegister(req RegisterRequest) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if !stderrors.As(err, &fieldErrors) {
		return err
	}
	for _, fe := range fieldErrors {
		if fe.Field() == "Email" {
			return errors.ErrInvalidEmail
		}
	}
	return errors.ErrWeakPassword
}

// ValidateEmail checks the format of a sign-in email.
func ValidateEmail(email string) error {
	if err := validate.Var(email, "required,email"); err != nil {
		return errors.ErrInvalidEmail
	}
	return nil
}
