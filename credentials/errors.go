package credentials

import (
	"fmt"
	"talk/errors"
)

// AuthErrorKind is the user facing class of an auth failure.
type AuthErrorKind int

const (
	Unknown AuthErrorKind = iota
	DuplicateEmail
	WeakPassword
	InvalidEmailFormat
	InvalidCredentials
	ProviderDisabled
)

func (k AuthErrorKind) String() string {
	switch k {
	case DuplicateEmail:
		return "duplicate_email"
	case WeakPassword:
		return "weak_password"
	case InvalidEmailFormat:
		return "invalid_email_format"
	case InvalidCredentials:
		return "invalid_credentials"
	case ProviderDisabled:
		return "provider_disabled"
	}
	return "unknown"
}

const (
	messageDuplicateEmail     = "This email is already registered."
	messageWeakPassword       = "Password must be at least 6 characters."
	messageInvalidEmailFormat = "The email address is not valid."
	messageInvalidCredentials = "Wrong email or password."
	messageProviderDisabled   = "This sign-in method is disabled on the server. Try continuing as a guest."
	messageUnknown            = "Authentication failed. Check the server configuration."
	messageGuestFailed        = "Guest sign-in failed."
)

// AuthFailure is a mapped auth error, ready to be shown.
type AuthFailure struct {
	Kind    AuthErrorKind
	Code    string
	Message string
	Err     error
}

func (f *AuthFailure) Error() string {
	return fmt.Sprintf("%s: %s", f.Kind, f.Code)
}

func (f *AuthFailure) Unwrap() error { return f.Err }

// MapAuthError classifies err on its provider code. The same code always
// gives the same kind and message.
func MapAuthError(err error) *AuthFailure {
	code := errors.Code(err)
	failure := &AuthFailure{Code: code, Err: err}
	switch code {
	case errors.CodeEmailAlreadyInUse:
		failure.Kind, failure.Message = DuplicateEmail, messageDuplicateEmail
	case errors.CodeWeakPassword:
		failure.Kind, failure.Message = WeakPassword, messageWeakPassword
	case errors.CodeInvalidEmail:
		failure.Kind, failure.Message = InvalidEmailFormat, messageInvalidEmailFormat
	case errors.CodeInvalidCredential, errors.CodeUserNotFound, errors.CodeWrongPassword:
		failure.Kind, failure.Message = InvalidCredentials, messageInvalidCredentials
	case errors.CodeOperationNotAllowed:
		failure.Kind, failure.Message = ProviderDisabled, messageProviderDisabled
	default:
		failure.Kind, failure.Message = Unknown, messageUnknown
	}
	return failure
}
