package client

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// LoggingInterceptor logs every unary call at debug level with its status
// and duration. With dumpJSON the request and response bodies are logged
// too, credentials included, so keep it for local debugging.
func LoggingInterceptor(log *slog.Logger, dumpJSON bool) grpc.UnaryClientInterceptor {
	marshaler := protojson.MarshalOptions{
		UseProtoNames:   true,
		Multiline:       true,
		EmitUnpopulated: true,
	}
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		start := time.Now()
		err := invoker(ctx, method, req, reply, cc, opts...)

		attrs := []any{"method", method, "code", status.Code(err).String(), "duration", time.Since(start)}
		if dumpJSON {
			attrs = append(attrs, "request", format(marshaler, req))
			if err == nil {
				attrs = append(attrs, "response", format(marshaler, reply))
			}
		}
		log.Debug("gRPC call", attrs...)
		return err
	}
}

func format(marshaler protojson.MarshalOptions, v any) string {
	m, ok := v.(proto.Message)
	if !ok {
		return fmt.Sprintf("%v", v)
	}
	return strings.TrimSpace(marshaler.Format(m))
}
