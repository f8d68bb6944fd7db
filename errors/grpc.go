package errors

import (
	"context"
	stderrors "errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var grpcCodes = map[string]codes.Code{
	CodeEmailAlreadyInUse:   codes.AlreadyExists,
	CodeWeakPassword:        codes.InvalidArgument,
	CodeInvalidEmail:        codes.InvalidArgument,
	CodeInvalidCredential:   codes.Unauthenticated,
	CodeUserNotFound:        codes.NotFound,
	CodeWrongPassword:       codes.Unauthenticated,
	CodeOperationNotAllowed: codes.FailedPrecondition,
	CodeInvalidCustomToken:  codes.Unauthenticated,
	CodeUnauthenticated:     codes.Unauthenticated,
	CodeAlreadyExists:       codes.AlreadyExists,
	CodeInvalidArgument:     codes.InvalidArgument,
	CodePermissionDenied:    codes.PermissionDenied,
	CodeUnavailable:         codes.Unavailable,
}

// MapToGRPCError converts a service error into a gRPC status. The status
// message is the provider code so the client can restore the sentinel.
func MapToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok && Code(err) == CodeUnknown {
		return err
	}
	code := Code(err)
	if grpcCode, ok := grpcCodes[code]; ok {
		return status.Error(grpcCode, code)
	}
	switch {
	case stderrors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case stderrors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}

// FromGRPCError restores the provider sentinel carried by a gRPC status.
// Transport failures become ErrUnavailable; anything else is wrapped as is.
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	if sentinel := FromCode(st.Message()); sentinel != nil {
		return sentinel
	}
	switch st.Code() {
	case codes.Unavailable:
		return fmt.Errorf("%w: %s", ErrUnavailable, st.Message())
	case codes.Canceled:
		return context.Canceled
	case codes.DeadlineExceeded:
		return context.DeadlineExceeded
	}
	return fmt.Errorf("rpc failed (%s): %s", st.Code(), st.Message())
}
