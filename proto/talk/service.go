// Package talk declares the talk.v1 gRPC services. Every message is a
// google.protobuf.Struct, see messages.go for their layout.
package talk

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	AuthService_SignInWithPassword_FullMethodName    = "/talk.v1.AuthService/SignInWithPassword"
	AuthService_CreateAccount_FullMethodName         = "/talk.v1.AuthService/CreateAccount"
	AuthService_UpdateProfile_FullMethodName         = "/talk.v1.AuthService/UpdateProfile"
	AuthService_SignInAnonymously_FullMethodName     = "/talk.v1.AuthService/SignInAnonymously"
	AuthService_SignInWithCustomToken_FullMethodName = "/talk.v1.AuthService/SignInWithCustomToken"
	DocumentStore_Append_FullMethodName              = "/talk.v1.DocumentStore/Append"
	DocumentStore_Subscribe_FullMethodName           = "/talk.v1.DocumentStore/Subscribe"
)

// Metadata keys read by the server interceptors.
const (
	MetadataAPIKey        = "x-api-key"
	MetadataAuthorization = "authorization"
	BearerPrefix          = "Bearer "
)

// AuthServiceServer is the server API for talk.v1.AuthService.
type AuthServiceServer interface {
	SignInWithPassword(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CreateAccount(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateProfile(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SignInAnonymously(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SignInWithCustomToken(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// UnimplementedAuthServiceServer must be embedded to have forward compatible implementations.
type UnimplementedAuthServiceServer struct{}

func (UnimplementedAuthServiceServer) SignInWithPassword(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method SignInWithPassword not implemented")
}
func (UnimplementedAuthServiceServer) CreateAccount(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateAccount not implemented")
}
func (UnimplementedAuthServiceServer) UpdateProfile(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateProfile not implemented")
}
func (UnimplementedAuthServiceServer) SignInAnonymously(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method SignInAnonymously not implemented")
}
func (UnimplementedAuthServiceServer) SignInWithCustomToken(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method SignInWithCustomToken not implemented")
}

func RegisterAuthServiceServer(s grpc.ServiceRegistrar, srv AuthServiceServer) {
	s.RegisterService(&AuthService_ServiceDesc, srv)
}

type authCall func(AuthServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func authHandler(fullMethod string, call authCall) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(AuthServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(AuthServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// AuthService_ServiceDesc is the grpc.ServiceDesc for talk.v1.AuthService.
var AuthService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "talk.v1.AuthService",
	HandlerType: (*AuthServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SignInWithPassword",
			Handler:    authHandler(AuthService_SignInWithPassword_FullMethodName, AuthServiceServer.SignInWithPassword),
		},
		{
			MethodName: "CreateAccount",
			Handler:    authHandler(AuthService_CreateAccount_FullMethodName, AuthServiceServer.CreateAccount),
		},
		{
			MethodName: "UpdateProfile",
			Handler:    authHandler(AuthService_UpdateProfile_FullMethodName, AuthServiceServer.UpdateProfile),
		},
		{
			MethodName: "SignInAnonymously",
			Handler:    authHandler(AuthService_SignInAnonymously_FullMethodName, AuthServiceServer.SignInAnonymously),
		},
		{
			MethodName: "SignInWithCustomToken",
			Handler:    authHandler(AuthService_SignInWithCustomToken_FullMethodName, AuthServiceServer.SignInWithCustomToken),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "talk/v1/talk.proto",
}

// AuthServiceClient is the client API for talk.v1.AuthService.
type AuthServiceClient interface {
	SignInWithPassword(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	CreateAccount(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	UpdateProfile(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	SignInAnonymously(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	SignInWithCustomToken(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type authServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAuthServiceClient(cc grpc.ClientConnInterface) AuthServiceClient {
	return &authServiceClient{cc}
}

func (c *authServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts []grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *authServiceClient) SignInWithPassword(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, AuthService_SignInWithPassword_FullMethodName, in, opts)
}

func (c *authServiceClient) CreateAccount(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, AuthService_CreateAccount_FullMethodName, in, opts)
}

func (c *authServiceClient) UpdateProfile(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, AuthService_UpdateProfile_FullMethodName, in, opts)
}

func (c *authServiceClient) SignInAnonymously(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, AuthService_SignInAnonymously_FullMethodName, in, opts)
}

func (c *authServiceClient) SignInWithCustomToken(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, AuthService_SignInWithCustomToken_FullMethodName, in, opts)
}

// DocumentStoreServer is the server API for talk.v1.DocumentStore.
type DocumentStoreServer interface {
	Append(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Subscribe(*structpb.Struct, DocumentStore_SubscribeServer) error
}

// UnimplementedDocumentStoreServer must be embedded to have forward compatible implementations.
type UnimplementedDocumentStoreServer struct{}

func (UnimplementedDocumentStoreServer) Append(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method Append not implemented")
}
func (UnimplementedDocumentStoreServer) Subscribe(*structpb.Struct, DocumentStore_SubscribeServer) error {
	return status.Error(codes.Unimplemented, "method Subscribe not implemented")
}

func RegisterDocumentStoreServer(s grpc.ServiceRegistrar, srv DocumentStoreServer) {
	s.RegisterService(&DocumentStore_ServiceDesc, srv)
}

func _DocumentStore_Append_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocumentStoreServer).Append(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: DocumentStore_Append_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DocumentStoreServer).Append(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocumentStore_Subscribe_Handler(srv any, stream grpc.ServerStream) error {
	m := new(structpb.Struct)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(DocumentStoreServer).Subscribe(m, &documentStoreSubscribeServer{stream})
}

// DocumentStore_SubscribeServer streams snapshots to one subscriber.
type DocumentStore_SubscribeServer interface {
	Send(*structpb.Struct) error
	grpc.ServerStream
}

type documentStoreSubscribeServer struct {
	grpc.ServerStream
}

func (x *documentStoreSubscribeServer) Send(m *structpb.Struct) error {
	return x.ServerStream.SendMsg(m)
}

// DocumentStore_ServiceDesc is the grpc.ServiceDesc for talk.v1.DocumentStore.
var DocumentStore_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "talk.v1.DocumentStore",
	HandlerType: (*DocumentStoreServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Append",
			Handler:    _DocumentStore_Append_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Subscribe",
			Handler:       _DocumentStore_Subscribe_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "talk/v1/talk.proto",
}

// DocumentStoreClient is the client API for talk.v1.DocumentStore.
type DocumentStoreClient interface {
	Append(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Subscribe(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (DocumentStore_SubscribeClient, error)
}

type documentStoreClient struct {
	cc grpc.ClientConnInterface
}

func NewDocumentStoreClient(cc grpc.ClientConnInterface) DocumentStoreClient {
	return &documentStoreClient{cc}
}

func (c *documentStoreClient) Append(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, DocumentStore_Append_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *documentStoreClient) Subscribe(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (DocumentStore_SubscribeClient, error) {
	stream, err := c.cc.NewStream(ctx, &DocumentStore_ServiceDesc.Streams[0], DocumentStore_Subscribe_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &documentStoreSubscribeClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// DocumentStore_SubscribeClient receives the snapshots of a subscription.
type DocumentStore_SubscribeClient interface {
	Recv() (*structpb.Struct, error)
	grpc.ClientStream
}

type documentStoreSubscribeClient struct {
	grpc.ClientStream
}

func (x *documentStoreSubscribeClient) Recv() (*structpb.Struct, error) {
	m := new(structpb.Struct)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}
