package client

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestLoggingInterceptor(t *testing.T) {
	ctx := context.Background()

	t.Run("should log the call with its bodies", func(t *testing.T) {
		req := require.New(t)
		var out bytes.Buffer
		log := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug}))
		interceptor := LoggingInterceptor(log, true)
		in, err := structpb.NewStruct(map[string]any{"path": "artifacts/a/public/data/messages"})
		req.NoError(err)
		reply := &structpb.Struct{}

		// When
		err = interceptor(ctx, "/talk.v1.DocumentStore/Append", in, reply, nil,
			func(context.Context, string, any, any, *grpc.ClientConn, ...grpc.CallOption) error { return nil })

		// Then
		req.NoError(err)
		req.Contains(out.String(), "/talk.v1.DocumentStore/Append")
		req.Contains(out.String(), "code=OK")
		req.Contains(out.String(), "artifacts/a/public/data/messages")
	})

	t.Run("should pass the error through", func(t *testing.T) {
		req := require.New(t)
		var out bytes.Buffer
		log := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug}))
		interceptor := LoggingInterceptor(log, false)
		failure := status.Error(codes.Unauthenticated, "auth/unauthenticated")

		// When
		err := interceptor(ctx, "/talk.v1.AuthService/UpdateProfile", &structpb.Struct{}, &structpb.Struct{}, nil,
			func(context.Context, string, any, any, *grpc.ClientConn, ...grpc.CallOption) error { return failure })

		// Then
		req.Equal(failure, err)
		req.Contains(out.String(), "code=Unauthenticated")
		req.NotContains(out.String(), "request=")
	})
}
