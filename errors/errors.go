// Package errors holds the sentinel errors shared by the backend, the
// transport and the client. Provider errors carry their wire code as the
// error text so that a code survives any hop unchanged.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Provider error codes reported by the auth provider and the document store.
const (
	CodeEmailAlreadyInUse   = "auth/email-already-in-use"
	CodeWeakPassword        = "auth/weak-password"
	CodeInvalidEmail        = "auth/invalid-email"
	CodeInvalidCredential   = "auth/invalid-credential"
	CodeUserNotFound        = "auth/user-not-found"
	CodeWrongPassword       = "auth/wrong-password"
	CodeOperationNotAllowed = "auth/operation-not-allowed"
	CodeInvalidCustomToken  = "auth/invalid-custom-token"
	CodeUnauthenticated     = "auth/unauthenticated"
	CodeAlreadyExists       = "store/already-exists"
	CodeInvalidArgument     = "store/invalid-argument"
	CodePermissionDenied    = "store/permission-denied"
	CodeUnavailable         = "store/unavailable"
	CodeUnknown             = "unknown"
)

var (
	ErrEmailAlreadyInUse   = stderrors.New(CodeEmailAlreadyInUse)
	ErrWeakPassword        = stderrors.New(CodeWeakPassword)
	ErrInvalidEmail        = stderrors.New(CodeInvalidEmail)
	ErrInvalidCredentials  = stderrors.New(CodeInvalidCredential)
	ErrUserNotFound        = stderrors.New(CodeUserNotFound)
	ErrWrongPassword       = stderrors.New(CodeWrongPassword)
	ErrOperationNotAllowed = stderrors.New(CodeOperationNotAllowed)
	ErrInvalidCustomToken  = stderrors.New(CodeInvalidCustomToken)
	ErrUnauthenticated     = stderrors.New(CodeUnauthenticated)
	ErrAlreadyExists       = stderrors.New(CodeAlreadyExists)
	ErrInvalidArgument     = stderrors.New(CodeInvalidArgument)
	ErrPermissionDenied    = stderrors.New(CodePermissionDenied)
	ErrUnavailable         = stderrors.New(CodeUnavailable)
)

var (
	ErrWorkerPanic     = fmt.Errorf("worker panic")
	ErrTokenGeneration = fmt.Errorf("token generation failed")
	// ErrLogin marks a failed bootstrap token exchange. It is never shown.
	ErrLogin = fmt.Errorf("initial token login failed")
	// ErrNoSession is returned when a store call is made while signed out.
	ErrNoSession  = fmt.Errorf("no active session")
	ErrEmptyWords = fmt.Errorf("no censored words loaded")
)

var providerErrors = map[string]error{
	CodeEmailAlreadyInUse:   ErrEmailAlreadyInUse,
	CodeWeakPassword:        ErrWeakPassword,
	CodeInvalidEmail:        ErrInvalidEmail,
	CodeInvalidCredential:   ErrInvalidCredentials,
	CodeUserNotFound:        ErrUserNotFound,
	CodeWrongPassword:       ErrWrongPassword,
	CodeOperationNotAllowed: ErrOperationNotAllowed,
	CodeInvalidCustomToken:  ErrInvalidCustomToken,
	CodeUnauthenticated:     ErrUnauthenticated,
	CodeAlreadyExists:       ErrAlreadyExists,
	CodeInvalidArgument:     ErrInvalidArgument,
	CodePermissionDenied:    ErrPermissionDenied,
	CodeUnavailable:         ErrUnavailable,
}

var codeOrder = []string{
	CodeEmailAlreadyInUse, CodeWeakPassword, CodeInvalidEmail, CodeInvalidCredential,
	CodeUserNotFound, CodeWrongPassword, CodeOperationNotAllowed, CodeInvalidCustomToken,
	CodeUnauthenticated, CodeAlreadyExists, CodeInvalidArgument, CodePermissionDenied,
	CodeUnavailable,
}

// FromCode returns the sentinel for a provider code, or nil when the code is unknown.
func FromCode(code string) error {
	return providerErrors[code]
}

// Code extracts the provider code carried by err. Errors that wrap no
// provider sentinel report CodeUnknown.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, code := range codeOrder {
		if stderrors.Is(err, providerErrors[code]) {
			return code
		}
	}
	return CodeUnknown
}

// Is and As are re-exported so callers importing this package under its
// default name keep access to the standard helpers.
func Is(err, target error) bool { return stderrors.Is(err, target) }

func As(err error, target any) bool { return stderrors.As(err, target) }
