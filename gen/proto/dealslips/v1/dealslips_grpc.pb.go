// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: dealslips/v1/dealslips.proto

package dealslipsv1

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
	DealSlipService_ProcessBatch_FullMethodName     = "/dealslips.v1.DealSlipService/ProcessBatch"
	DealSlipService_ProcessDirectory_FullMethodName = "/dealslips.v1.DealSlipService/ProcessDirectory"
)

// DealSlipServiceClient is the client API for DealSlipService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type DealSlipServiceClient interface {
	// ProcessBatch extracts every uploaded slip and returns the aggregated
	// workbook. Row i of the workbook corresponds to files[i].
	ProcessBatch(ctx context.Context, in *ProcessBatchRequest, opts ...grpc.CallOption) (*ProcessBatchResponse, error)
	// ProcessDirectory ingests, extracts, and exports every matching file
	// under root_path on the server host.
	ProcessDirectory(ctx context.Context, in *ProcessDirectoryRequest, opts ...grpc.CallOption) (*ProcessDirectoryResponse, error)
}

type dealSlipServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewDealSlipServiceClient(cc grpc.ClientConnInterface) DealSlipServiceClient {
	return &dealSlipServiceClient{cc}
}

func (c *dealSlipServiceClient) ProcessBatch(ctx context.Context, in *ProcessBatchRequest, opts ...grpc.CallOption) (*ProcessBatchResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ProcessBatchResponse)
	err := c.cc.Invoke(ctx, DealSlipService_ProcessBatch_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dealSlipServiceClient) ProcessDirectory(ctx context.Context, in *ProcessDirectoryRequest, opts ...grpc.CallOption) (*ProcessDirectoryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ProcessDirectoryResponse)
	err := c.cc.Invoke(ctx, DealSlipService_ProcessDirectory_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DealSlipServiceServer is the server API for DealSlipService service.
// All implementations must embed UnimplementedDealSlipServiceServer
// for forward compatibility.
type DealSlipServiceServer interface {
	// ProcessBatch extracts every uploaded slip and returns the aggregated
	// workbook. Row i of the workbook corresponds to files[i].
	ProcessBatch(context.Context, *ProcessBatchRequest) (*ProcessBatchResponse, error)
	// ProcessDirectory ingests, extracts, and exports every matching file
	// under root_path on the server host.
	ProcessDirectory(context.Context, *ProcessDirectoryRequest) (*ProcessDirectoryResponse, error)
	mustEmbedUnimplementedDealSlipServiceServer()
}

// UnimplementedDealSlipServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedDealSlipServiceServer struct{}

func (UnimplementedDealSlipServiceServer) ProcessBatch(context.Context, *ProcessBatchRequest) (*ProcessBatchResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ProcessBatch not implemented")
}
func (UnimplementedDealSlipServiceServer) ProcessDirectory(context.Context, *ProcessDirectoryRequest) (*ProcessDirectoryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ProcessDirectory not implemented")
}
func (UnimplementedDealSlipServiceServer) mustEmbedUnimplementedDealSlipServiceServer() {}
func (UnimplementedDealSlipServiceServer) testEmbeddedByValue()                         {}

// UnsafeDealSlipServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to DealSlipServiceServer will
// result in compilation errors.
type UnsafeDealSlipServiceServer interface {
	mustEmbedUnimplementedDealSlipServiceServer()
}

func RegisterDealSlipServiceServer(s grpc.ServiceRegistrar, srv DealSlipServiceServer) {
	// If the following call pancis, it indicates UnimplementedDealSlipServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&DealSlipService_ServiceDesc, srv)
}

func _DealSlipService_ProcessBatch_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProcessBatchRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DealSlipServiceServer).ProcessBatch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DealSlipService_ProcessBatch_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DealSlipServiceServer).ProcessBatch(ctx, req.(*ProcessBatchRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DealSlipService_ProcessDirectory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProcessDirectoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DealSlipServiceServer).ProcessDirectory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DealSlipService_ProcessDirectory_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DealSlipServiceServer).ProcessDirectory(ctx, req.(*ProcessDirectoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// DealSlipService_ServiceDesc is the grpc.ServiceDesc for DealSlipService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var DealSlipService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "dealslips.v1.DealSlipService",
	HandlerType: (*DealSlipServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ProcessBatch",
			Handler:    _DealSlipService_ProcessBatch_Handler,
		},
		{
			MethodName: "ProcessDirectory",
			Handler:    _DealSlipService_ProcessDirectory_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "dealslips/v1/dealslips.proto",
}
