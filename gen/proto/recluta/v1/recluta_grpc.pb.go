// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: recluta/v1/recluta.proto

package reclutav1

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
	RecruitmentService_ProcessCVBatch_FullMethodName       = "/recluta.v1.RecruitmentService/ProcessCVBatch"
	RecruitmentService_ListApplications_FullMethodName     = "/recluta.v1.RecruitmentService/ListApplications"
	RecruitmentService_StartBackgroundCheck_FullMethodName = "/recluta.v1.RecruitmentService/StartBackgroundCheck"
	RecruitmentService_ExportApplications_FullMethodName   = "/recluta.v1.RecruitmentService/ExportApplications"
)

// RecruitmentServiceClient is the client API for RecruitmentService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type RecruitmentServiceClient interface {
	// ProcessCVBatch analyzes a batch of CV files against one offer and
	// returns the created records once scoring has been persisted.
	ProcessCVBatch(ctx context.Context, in *ProcessCVBatchRequest, opts ...grpc.CallOption) (*ProcessCVBatchResponse, error)
	// ListApplications returns the applications for one offer, highest
	// score first.
	ListApplications(ctx context.Context, in *ListApplicationsRequest, opts ...grpc.CallOption) (*ListApplicationsResponse, error)
	// StartBackgroundCheck enqueues polling of an upstream background-check
	// job for one CV record and returns immediately.
	StartBackgroundCheck(ctx context.Context, in *StartBackgroundCheckRequest, opts ...grpc.CallOption) (*StartBackgroundCheckResponse, error)
	// ExportApplications renders one offer's applications as an XLSX workbook.
	ExportApplications(ctx context.Context, in *ExportApplicationsRequest, opts ...grpc.CallOption) (*ExportApplicationsResponse, error)
}

type recruitmentServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewRecruitmentServiceClient(cc grpc.ClientConnInterface) RecruitmentServiceClient {
	return &recruitmentServiceClient{cc}
}

func (c *recruitmentServiceClient) ProcessCVBatch(ctx context.Context, in *ProcessCVBatchRequest, opts ...grpc.CallOption) (*ProcessCVBatchResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ProcessCVBatchResponse)
	err := c.cc.Invoke(ctx, RecruitmentService_ProcessCVBatch_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *recruitmentServiceClient) ListApplications(ctx context.Context, in *ListApplicationsRequest, opts ...grpc.CallOption) (*ListApplicationsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListApplicationsResponse)
	err := c.cc.Invoke(ctx, RecruitmentService_ListApplications_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *recruitmentServiceClient) StartBackgroundCheck(ctx context.Context, in *StartBackgroundCheckRequest, opts ...grpc.CallOption) (*StartBackgroundCheckResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StartBackgroundCheckResponse)
	err := c.cc.Invoke(ctx, RecruitmentService_StartBackgroundCheck_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *recruitmentServiceClient) ExportApplications(ctx context.Context, in *ExportApplicationsRequest, opts ...grpc.CallOption) (*ExportApplicationsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportApplicationsResponse)
	err := c.cc.Invoke(ctx, RecruitmentService_ExportApplications_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RecruitmentServiceServer is the server API for RecruitmentService service.
// All implementations must embed UnimplementedRecruitmentServiceServer
// for forward compatibility.
type RecruitmentServiceServer interface {
	// ProcessCVBatch analyzes a batch of CV files against one offer and
	// returns the created records once scoring has been persisted.
	ProcessCVBatch(context.Context, *ProcessCVBatchRequest) (*ProcessCVBatchResponse, error)
	// ListApplications returns the applications for one offer, highest
	// score first.
	ListApplications(context.Context, *ListApplicationsRequest) (*ListApplicationsResponse, error)
	// StartBackgroundCheck enqueues polling of an upstream background-check
	// job for one CV record and returns immediately.
	StartBackgroundCheck(context.Context, *StartBackgroundCheckRequest) (*StartBackgroundCheckResponse, error)
	// ExportApplications renders one offer's applications as an XLSX workbook.
	ExportApplications(context.Context, *ExportApplicationsRequest) (*ExportApplicationsResponse, error)
	mustEmbedUnimplementedRecruitmentServiceServer()
}

// UnimplementedRecruitmentServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedRecruitmentServiceServer struct{}

func (UnimplementedRecruitmentServiceServer) ProcessCVBatch(context.Context, *ProcessCVBatchRequest) (*ProcessCVBatchResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ProcessCVBatch not implemented")
}
func (UnimplementedRecruitmentServiceServer) ListApplications(context.Context, *ListApplicationsRequest) (*ListApplicationsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListApplications not implemented")
}
func (UnimplementedRecruitmentServiceServer) StartBackgroundCheck(context.Context, *StartBackgroundCheckRequest) (*StartBackgroundCheckResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method StartBackgroundCheck not implemented")
}
func (UnimplementedRecruitmentServiceServer) ExportApplications(context.Context, *ExportApplicationsRequest) (*ExportApplicationsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportApplications not implemented")
}
func (UnimplementedRecruitmentServiceServer) mustEmbedUnimplementedRecruitmentServiceServer() {}
func (UnimplementedRecruitmentServiceServer) testEmbeddedByValue()                            {}

// UnsafeRecruitmentServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to RecruitmentServiceServer will
// result in compilation errors.
type UnsafeRecruitmentServiceServer interface {
	mustEmbedUnimplementedRecruitmentServiceServer()
}

func RegisterRecruitmentServiceServer(s grpc.ServiceRegistrar, srv RecruitmentServiceServer) {
	// If the following call pancis, it indicates UnimplementedRecruitmentServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&RecruitmentService_ServiceDesc, srv)
}

func _RecruitmentService_ProcessCVBatch_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProcessCVBatchRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RecruitmentServiceServer).ProcessCVBatch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RecruitmentService_ProcessCVBatch_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RecruitmentServiceServer).ProcessCVBatch(ctx, req.(*ProcessCVBatchRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RecruitmentService_ListApplications_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListApplicationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RecruitmentServiceServer).ListApplications(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RecruitmentService_ListApplications_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RecruitmentServiceServer).ListApplications(ctx, req.(*ListApplicationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RecruitmentService_StartBackgroundCheck_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StartBackgroundCheckRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RecruitmentServiceServer).StartBackgroundCheck(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RecruitmentService_StartBackgroundCheck_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RecruitmentServiceServer).StartBackgroundCheck(ctx, req.(*StartBackgroundCheckRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RecruitmentService_ExportApplications_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportApplicationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RecruitmentServiceServer).ExportApplications(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RecruitmentService_ExportApplications_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RecruitmentServiceServer).ExportApplications(ctx, req.(*ExportApplicationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// RecruitmentService_ServiceDesc is the grpc.ServiceDesc for RecruitmentService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var RecruitmentService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "recluta.v1.RecruitmentService",
	HandlerType: (*RecruitmentServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ProcessCVBatch",
			Handler:    _RecruitmentService_ProcessCVBatch_Handler,
		},
		{
			MethodName: "ListApplications",
			Handler:    _RecruitmentService_ListApplications_Handler,
		},
		{
			MethodName: "StartBackgroundCheck",
			Handler:    _RecruitmentService_StartBackgroundCheck_Handler,
		},
		{
			MethodName: "ExportApplications",
			Handler:    _RecruitmentService_ExportApplications_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "recluta/v1/recluta.proto",
}
