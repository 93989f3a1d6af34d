// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: agentrunner.proto

package agentrunnerv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	AgentRunner_Run_FullMethodName   = "/agentrunner.v1.AgentRunner/Run"
	AgentRunner_Abort_FullMethodName = "/agentrunner.v1.AgentRunner/Abort"
)

// AgentRunnerClient is the client API for AgentRunner service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// AgentRunner is the sandboxed execution service. The engine streams one
// Run per request execution and may Abort it out of band.
type AgentRunnerClient interface {
	Run(ctx context.Context, in *RunRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[RunEvent], error)
	Abort(ctx context.Context, in *AbortRequest, opts ...grpc.CallOption) (*AbortResponse, error)
}

type agentRunnerClient struct {
	cc grpc.ClientConnInterface
}

func NewAgentRunnerClient(cc grpc.ClientConnInterface) AgentRunnerClient {
	return &agentRunnerClient{cc}
}

func (c *agentRunnerClient) Run(ctx context.Context, in *RunRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[RunEvent], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &AgentRunner_ServiceDesc.Streams[0], AgentRunner_Run_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[RunRequest, RunEvent]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type AgentRunner_RunClient = grpc.ServerStreamingClient[RunEvent]

func (c *agentRunnerClient) Abort(ctx context.Context, in *AbortRequest, opts ...grpc.CallOption) (*AbortResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AbortResponse)
	err := c.cc.Invoke(ctx, AgentRunner_Abort_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AgentRunnerServer is the server API for AgentRunner service.
// All implementations must embed UnimplementedAgentRunnerServer
// for forward compatibility.
//
// AgentRunner is the sandboxed execution service. The engine streams one
// Run per request execution and may Abort it out of band.
type AgentRunnerServer interface {
	Run(*RunRequest, grpc.ServerStreamingServer[RunEvent]) error
	Abort(context.Context, *AbortRequest) (*AbortResponse, error)
	mustEmbedUnimplementedAgentRunnerServer()
}

// UnimplementedAgentRunnerServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedAgentRunnerServer struct{}

func (UnimplementedAgentRunnerServer) Run(*RunRequest, grpc.ServerStreamingServer[RunEvent]) error {
	return status.Error(codes.Unimplemented, "method Run not implemented")
}
func (UnimplementedAgentRunnerServer) Abort(context.Context, *AbortRequest) (*AbortResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Abort not implemented")
}
func (UnimplementedAgentRunnerServer) mustEmbedUnimplementedAgentRunnerServer() {}
func (UnimplementedAgentRunnerServer) testEmbeddedByValue()                     {}

// UnsafeAgentRunnerServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to AgentRunnerServer will
// result in compilation errors.
type UnsafeAgentRunnerServer interface {
	mustEmbedUnimplementedAgentRunnerServer()
}

func RegisterAgentRunnerServer(s grpc.ServiceRegistrar, srv AgentRunnerServer) {
	// If the following call panics, it indicates UnimplementedAgentRunnerServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&AgentRunner_ServiceDesc, srv)
}

func _AgentRunner_Run_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(RunRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(AgentRunnerServer).Run(m, &grpc.GenericServerStream[RunRequest, RunEvent]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type AgentRunner_RunServer = grpc.ServerStreamingServer[RunEvent]

func _AgentRunner_Abort_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AbortRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AgentRunnerServer).Abort(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AgentRunner_Abort_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AgentRunnerServer).Abort(ctx, req.(*AbortRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// AgentRunner_ServiceDesc is the grpc.ServiceDesc for AgentRunner service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var AgentRunner_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "agentrunner.v1.AgentRunner",
	HandlerType: (*AgentRunnerServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Abort",
			Handler:    _AgentRunner_Abort_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Run",
			Handler:       _AgentRunner_Run_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "agentrunner.proto",
}
