package server

import (
	"context"
	"log/slog"
	"talk/domain"
	"talk/errors"
	pb "talk/proto/talk"
	"talk/services"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

type AuthServer struct {
	pb.UnimplementedAuthServiceServer
	log         *slog.Logger
	authService services.IAuthService
}

func NewAuthServer(log *slog.Logger, authService services.IAuthService) *AuthServer {
	return &AuthServer{log: log, authService: authService}
}

func (s *AuthServer) SignInWithPassword(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	email, password := pb.DecodeCredentials(in)
	return s.session(s.authService.SignInWithPassword(ctx, email, password))
}

// CreateAccount registers an email/password account and signs it in.
func (s *AuthServer) CreateAccount(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	email, password := pb.DecodeCredentials(in)
	return s.session(s.authService.CreateAccount(ctx, email, password))
}

// UpdateProfile sets the display name of the authenticated caller.
func (s *AuthServer) UpdateProfile(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	caller, ok := IdentityFromContext(ctx)
	if !ok {
		return nil, errors.MapToGRPCError(errors.ErrUnauthenticated)
	}
	identity, err := s.authService.UpdateProfile(ctx, caller.ID, pb.DecodeProfile(in))
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	out, err := pb.EncodeIdentity(identity)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

func (s *AuthServer) SignInAnonymously(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	return s.session(s.authService.SignInAnonymously(ctx))
}

func (s *AuthServer) SignInWithCustomToken(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return s.session(s.authService.SignInWithCustomToken(ctx, pb.DecodeCustomToken(in)))
}

func (s *AuthServer) session(session domain.AuthSession, err error) (*structpb.Struct, error) {
	if err != nil {
		s.log.Debug("Auth call rejected", "code", errors.Code(err))
		return nil, errors.MapToGRPCError(err)
	}
	out, err := pb.EncodeSession(session)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}
