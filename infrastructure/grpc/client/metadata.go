package client

import (
	"context"
	pb "talk/proto/talk"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

// Dial opens a plaintext connection to the talk server.
func Dial(address string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	return grpc.NewClient(address, opts...)
}

// outgoing attaches the project API key and the session token, when set.
func outgoing(ctx context.Context, apiKey, token string) context.Context {
	var pairs []string
	if apiKey != "" {
		pairs = append(pairs, pb.MetadataAPIKey, apiKey)
	}
	if token != "" {
		pairs = append(pairs, pb.MetadataAuthorization, pb.BearerPrefix+token)
	}
	if len(pairs) == 0 {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, pairs...)
}
