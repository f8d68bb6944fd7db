package server

import (
	"context"
	"crypto/subtle"
	"strings"
	"talk/domain"
	"talk/errors"
	pb "talk/proto/talk"
	"talk/services"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// Methods that do not require a session token.
var publicMethods = map[string]struct{}{
	pb.AuthService_SignInWithPassword_FullMethodName:    {},
	pb.AuthService_CreateAccount_FullMethodName:         {},
	pb.AuthService_SignInAnonymously_FullMethodName:     {},
	pb.AuthService_SignInWithCustomToken_FullMethodName: {},
}

type contextKey string

const identityKey contextKey = "identity"

// IdentityFromContext returns the caller injected by the auth interceptors.
func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(domain.Identity)
	return identity, ok
}

func WithIdentity(ctx context.Context, identity domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// APIKeyInterceptor rejects unary calls without the project API key.
// An empty key disables the check.
func APIKeyInterceptor(apiKey string) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if err := checkAPIKey(ctx, apiKey); err != nil {
			return nil, err
		}
		return handler(ctx, req)
	}
}

func APIKeyStreamInterceptor(apiKey string) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if err := checkAPIKey(ss.Context(), apiKey); err != nil {
			return err
		}
		return handler(srv, ss)
	}
}

// AuthInterceptor validates the bearer session token of protected unary
// calls and injects the caller identity into the context.
func AuthInterceptor(authService services.IAuthService) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if isPublicMethod(info.FullMethod) {
			return handler(ctx, req)
		}
		newCtx, err := authenticate(ctx, authService)
		if err != nil {
			return nil, err
		}
		return handler(newCtx, req)
	}
}

func AuthStreamInterceptor(authService services.IAuthService) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if isPublicMethod(info.FullMethod) {
			return handler(srv, ss)
		}
		newCtx, err := authenticate(ss.Context(), authService)
		if err != nil {
			return err
		}
		return handler(srv, &identityStream{ServerStream: ss, ctx: newCtx})
	}
}

type identityStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *identityStream) Context() context.Context { return s.ctx }

func checkAPIKey(ctx context.Context, apiKey string) error {
	if apiKey == "" {
		return nil
	}
	md, _ := metadata.FromIncomingContext(ctx)
	values := md.Get(pb.MetadataAPIKey)
	if len(values) == 0 || subtle.ConstantTimeCompare([]byte(values[0]), []byte(apiKey)) != 1 {
		return status.Error(codes.Unauthenticated, errors.CodeUnauthenticated)
	}
	return nil
}

func authenticate(ctx context.Context, authService services.IAuthService) (context.Context, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, errors.CodeUnauthenticated)
	}
	values := md.Get(pb.MetadataAuthorization)
	if len(values) == 0 || !strings.HasPrefix(values[0], pb.BearerPrefix) {
		return nil, status.Error(codes.Unauthenticated, errors.CodeUnauthenticated)
	}

	identity, err := authService.VerifySession(ctx, strings.TrimPrefix(values[0], pb.BearerPrefix))
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return WithIdentity(ctx, identity), nil
}

func isPublicMethod(method string) bool {
	_, ok := publicMethods[method]
	return ok
}
