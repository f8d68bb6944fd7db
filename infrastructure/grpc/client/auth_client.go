package client

import (
	"context"
	"talk/domain"
	"talk/errors"
	pb "talk/proto/talk"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// AuthClient calls talk.v1.AuthService.
type AuthClient struct {
	client pb.AuthServiceClient
	apiKey string
}

func NewAuthClient(conn grpc.ClientConnInterface, apiKey string) *AuthClient {
	return &AuthClient{client: pb.NewAuthServiceClient(conn), apiKey: apiKey}
}

func (c *AuthClient) SignInWithPassword(ctx context.Context, email, password string) (domain.AuthSession, error) {
	in, err := pb.EncodeCredentials(email, password)
	if err != nil {
		return domain.AuthSession{}, err
	}
	return session(c.client.SignInWithPassword(outgoing(ctx, c.apiKey, ""), in))
}

func (c *AuthClient) CreateAccount(ctx context.Context, email, password string) (domain.AuthSession, error) {
	in, err := pb.EncodeCredentials(email, password)
	if err != nil {
		return domain.AuthSession{}, err
	}
	return session(c.client.CreateAccount(outgoing(ctx, c.apiKey, ""), in))
}

func (c *AuthClient) UpdateProfile(ctx context.Context, token, displayName string) (domain.Identity, error) {
	in, err := pb.EncodeProfile(displayName)
	if err != nil {
		return domain.Identity{}, err
	}
	out, err := c.client.UpdateProfile(outgoing(ctx, c.apiKey, token), in)
	if err != nil {
		return domain.Identity{}, errors.FromGRPCError(err)
	}
	return pb.DecodeIdentity(out)
}

func (c *AuthClient) SignInAnonymously(ctx context.Context) (domain.AuthSession, error) {
	return session(c.client.SignInAnonymously(outgoing(ctx, c.apiKey, ""), &structpb.Struct{}))
}

func (c *AuthClient) SignInWithCustomToken(ctx context.Context, customToken string) (domain.AuthSession, error) {
	in, err := pb.EncodeCustomToken(customToken)
	if err != nil {
		return domain.AuthSession{}, err
	}
	return session(c.client.SignInWithCustomToken(outgoing(ctx, c.apiKey, ""), in))
}

func session(out *structpb.Struct, err error) (domain.AuthSession, error) {
	if err != nil {
		return domain.AuthSession{}, errors.FromGRPCError(err)
	}
	return pb.DecodeSession(out)
}
