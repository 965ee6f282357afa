package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "healthgate.v1.Gateway"

const (
	MethodRegister     = "/" + ServiceName + "/Register"
	MethodLogin        = "/" + ServiceName + "/Login"
	MethodPredict      = "/" + ServiceName + "/Predict"
	MethodListDiseases = "/" + ServiceName + "/ListDiseases"
	MethodPing         = "/" + ServiceName + "/Ping"
)

// GatewayServer is the server API. Every message is a google.protobuf.Struct;
// the field layout of each one is documented on the handler.
type GatewayServer interface {
	Register(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Login(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Predict(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListDiseases(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Ping(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(GatewayServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call unaryMethod) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(GatewayServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(GatewayServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ServiceDesc describes the gateway service for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*GatewayServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Register", Handler: unaryHandler(MethodRegister, GatewayServer.Register)},
		{MethodName: "Login", Handler: unaryHandler(MethodLogin, GatewayServer.Login)},
		{MethodName: "Predict", Handler: unaryHandler(MethodPredict, GatewayServer.Predict)},
		{MethodName: "ListDiseases", Handler: unaryHandler(MethodListDiseases, GatewayServer.ListDiseases)},
		{MethodName: "Ping", Handler: unaryHandler(MethodPing, GatewayServer.Ping)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "healthgate/v1/gateway.proto",
}

func RegisterGatewayServer(s grpc.ServiceRegistrar, srv GatewayServer) {
	s.RegisterService(&ServiceDesc, srv)
}
