// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: distribuidores/v1/distribuidores.proto

package distribuidoresv1

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
	RequestsService_CreateRequest_FullMethodName     = "/distribuidores.v1.RequestsService/CreateRequest"
	RequestsService_GetRequest_FullMethodName        = "/distribuidores.v1.RequestsService/GetRequest"
	RequestsService_ListRequests_FullMethodName      = "/distribuidores.v1.RequestsService/ListRequests"
	RequestsService_UpdateRequest_FullMethodName     = "/distribuidores.v1.RequestsService/UpdateRequest"
	RequestsService_TransitionRequest_FullMethodName = "/distribuidores.v1.RequestsService/TransitionRequest"
	RequestsService_AddReference_FullMethodName      = "/distribuidores.v1.RequestsService/AddReference"
)

// RequestsServiceClient is the client API for RequestsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type RequestsServiceClient interface {
	CreateRequest(ctx context.Context, in *CreateRequestRequest, opts ...grpc.CallOption) (*CreateRequestResponse, error)
	GetRequest(ctx context.Context, in *GetRequestRequest, opts ...grpc.CallOption) (*GetRequestResponse, error)
	ListRequests(ctx context.Context, in *ListRequestsRequest, opts ...grpc.CallOption) (*ListRequestsResponse, error)
	UpdateRequest(ctx context.Context, in *UpdateRequestRequest, opts ...grpc.CallOption) (*UpdateRequestResponse, error)
	TransitionRequest(ctx context.Context, in *TransitionRequestRequest, opts ...grpc.CallOption) (*TransitionRequestResponse, error)
	AddReference(ctx context.Context, in *AddReferenceRequest, opts ...grpc.CallOption) (*AddReferenceResponse, error)
}

type requestsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewRequestsServiceClient(cc grpc.ClientConnInterface) RequestsServiceClient {
	return &requestsServiceClient{cc}
}

func (c *requestsServiceClient) CreateRequest(ctx context.Context, in *CreateRequestRequest, opts ...grpc.CallOption) (*CreateRequestResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateRequestResponse)
	err := c.cc.Invoke(ctx, RequestsService_CreateRequest_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *requestsServiceClient) GetRequest(ctx context.Context, in *GetRequestRequest, opts ...grpc.CallOption) (*GetRequestResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetRequestResponse)
	err := c.cc.Invoke(ctx, RequestsService_GetRequest_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *requestsServiceClient) ListRequests(ctx context.Context, in *ListRequestsRequest, opts ...grpc.CallOption) (*ListRequestsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListRequestsResponse)
	err := c.cc.Invoke(ctx, RequestsService_ListRequests_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *requestsServiceClient) UpdateRequest(ctx context.Context, in *UpdateRequestRequest, opts ...grpc.CallOption) (*UpdateRequestResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateRequestResponse)
	err := c.cc.Invoke(ctx, RequestsService_UpdateRequest_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *requestsServiceClient) TransitionRequest(ctx context.Context, in *TransitionRequestRequest, opts ...grpc.CallOption) (*TransitionRequestResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(TransitionRequestResponse)
	err := c.cc.Invoke(ctx, RequestsService_TransitionRequest_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *requestsServiceClient) AddReference(ctx context.Context, in *AddReferenceRequest, opts ...grpc.CallOption) (*AddReferenceResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AddReferenceResponse)
	err := c.cc.Invoke(ctx, RequestsService_AddReference_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RequestsServiceServer is the server API for RequestsService service.
// All implementations must embed UnimplementedRequestsServiceServer
// for forward compatibility.
type RequestsServiceServer interface {
	CreateRequest(context.Context, *CreateRequestRequest) (*CreateRequestResponse, error)
	GetRequest(context.Context, *GetRequestRequest) (*GetRequestResponse, error)
	ListRequests(context.Context, *ListRequestsRequest) (*ListRequestsResponse, error)
	UpdateRequest(context.Context, *UpdateRequestRequest) (*UpdateRequestResponse, error)
	TransitionRequest(context.Context, *TransitionRequestRequest) (*TransitionRequestResponse, error)
	AddReference(context.Context, *AddReferenceRequest) (*AddReferenceResponse, error)
	mustEmbedUnimplementedRequestsServiceServer()
}

// UnimplementedRequestsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedRequestsServiceServer struct{}

func (UnimplementedRequestsServiceServer) CreateRequest(context.Context, *CreateRequestRequest) (*CreateRequestResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateRequest not implemented")
}
func (UnimplementedRequestsServiceServer) GetRequest(context.Context, *GetRequestRequest) (*GetRequestResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetRequest not implemented")
}
func (UnimplementedRequestsServiceServer) ListRequests(context.Context, *ListRequestsRequest) (*ListRequestsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListRequests not implemented")
}
func (UnimplementedRequestsServiceServer) UpdateRequest(context.Context, *UpdateRequestRequest) (*UpdateRequestResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateRequest not implemented")
}
func (UnimplementedRequestsServiceServer) TransitionRequest(context.Context, *TransitionRequestRequest) (*TransitionRequestResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method TransitionRequest not implemented")
}
func (UnimplementedRequestsServiceServer) AddReference(context.Context, *AddReferenceRequest) (*AddReferenceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddReference not implemented")
}
func (UnimplementedRequestsServiceServer) mustEmbedUnimplementedRequestsServiceServer() {}
func (UnimplementedRequestsServiceServer) testEmbeddedByValue()                         {}

// UnsafeRequestsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to RequestsServiceServer will
// result in compilation errors.
type UnsafeRequestsServiceServer interface {
	mustEmbedUnimplementedRequestsServiceServer()
}

func RegisterRequestsServiceServer(s grpc.ServiceRegistrar, srv RequestsServiceServer) {
	// If the following call pancis, it indicates UnimplementedRequestsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&RequestsService_ServiceDesc, srv)
}

func _RequestsService_CreateRequest_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateRequestRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RequestsServiceServer).CreateRequest(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RequestsService_CreateRequest_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RequestsServiceServer).CreateRequest(ctx, req.(*CreateRequestRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RequestsService_GetRequest_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetRequestRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RequestsServiceServer).GetRequest(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RequestsService_GetRequest_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RequestsServiceServer).GetRequest(ctx, req.(*GetRequestRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RequestsService_ListRequests_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListRequestsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RequestsServiceServer).ListRequests(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RequestsService_ListRequests_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RequestsServiceServer).ListRequests(ctx, req.(*ListRequestsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RequestsService_UpdateRequest_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateRequestRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RequestsServiceServer).UpdateRequest(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RequestsService_UpdateRequest_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RequestsServiceServer).UpdateRequest(ctx, req.(*UpdateRequestRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RequestsService_TransitionRequest_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TransitionRequestRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RequestsServiceServer).TransitionRequest(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RequestsService_TransitionRequest_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RequestsServiceServer).TransitionRequest(ctx, req.(*TransitionRequestRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RequestsService_AddReference_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AddReferenceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RequestsServiceServer).AddReference(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RequestsService_AddReference_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RequestsServiceServer).AddReference(ctx, req.(*AddReferenceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// RequestsService_ServiceDesc is the grpc.ServiceDesc for RequestsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var RequestsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "distribuidores.v1.RequestsService",
	HandlerType: (*RequestsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateRequest",
			Handler:    _RequestsService_CreateRequest_Handler,
		},
		{
			MethodName: "GetRequest",
			Handler:    _RequestsService_GetRequest_Handler,
		},
		{
			MethodName: "ListRequests",
			Handler:    _RequestsService_ListRequests_Handler,
		},
		{
			MethodName: "UpdateRequest",
			Handler:    _RequestsService_UpdateRequest_Handler,
		},
		{
			MethodName: "TransitionRequest",
			Handler:    _RequestsService_TransitionRequest_Handler,
		},
		{
			MethodName: "AddReference",
			Handler:    _RequestsService_AddReference_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "distribuidores/v1/distribuidores.proto",
}

const (
	DocumentsService_SubmitDocument_FullMethodName = "/distribuidores.v1.DocumentsService/SubmitDocument"
	DocumentsService_PollTask_FullMethodName       = "/distribuidores.v1.DocumentsService/PollTask"
	DocumentsService_AwaitTask_FullMethodName      = "/distribuidores.v1.DocumentsService/AwaitTask"
)

// DocumentsServiceClient is the client API for DocumentsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type DocumentsServiceClient interface {
	SubmitDocument(ctx context.Context, in *SubmitDocumentRequest, opts ...grpc.CallOption) (*SubmitDocumentResponse, error)
	PollTask(ctx context.Context, in *PollTaskRequest, opts ...grpc.CallOption) (*PollTaskResponse, error)
	AwaitTask(ctx context.Context, in *AwaitTaskRequest, opts ...grpc.CallOption) (*AwaitTaskResponse, error)
}

type documentsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewDocumentsServiceClient(cc grpc.ClientConnInterface) DocumentsServiceClient {
	return &documentsServiceClient{cc}
}

func (c *documentsServiceClient) SubmitDocument(ctx context.Context, in *SubmitDocumentRequest, opts ...grpc.CallOption) (*SubmitDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitDocumentResponse)
	err := c.cc.Invoke(ctx, DocumentsService_SubmitDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *documentsServiceClient) PollTask(ctx context.Context, in *PollTaskRequest, opts ...grpc.CallOption) (*PollTaskResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PollTaskResponse)
	err := c.cc.Invoke(ctx, DocumentsService_PollTask_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *documentsServiceClient) AwaitTask(ctx context.Context, in *AwaitTaskRequest, opts ...grpc.CallOption) (*AwaitTaskResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AwaitTaskResponse)
	err := c.cc.Invoke(ctx, DocumentsService_AwaitTask_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DocumentsServiceServer is the server API for DocumentsService service.
// All implementations must embed UnimplementedDocumentsServiceServer
// for forward compatibility.
type DocumentsServiceServer interface {
	SubmitDocument(context.Context, *SubmitDocumentRequest) (*SubmitDocumentResponse, error)
	PollTask(context.Context, *PollTaskRequest) (*PollTaskResponse, error)
	AwaitTask(context.Context, *AwaitTaskRequest) (*AwaitTaskResponse, error)
	mustEmbedUnimplementedDocumentsServiceServer()
}

// UnimplementedDocumentsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedDocumentsServiceServer struct{}

func (UnimplementedDocumentsServiceServer) SubmitDocument(context.Context, *SubmitDocumentRequest) (*SubmitDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitDocument not implemented")
}
func (UnimplementedDocumentsServiceServer) PollTask(context.Context, *PollTaskRequest) (*PollTaskResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PollTask not implemented")
}
func (UnimplementedDocumentsServiceServer) AwaitTask(context.Context, *AwaitTaskRequest) (*AwaitTaskResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AwaitTask not implemented")
}
func (UnimplementedDocumentsServiceServer) mustEmbedUnimplementedDocumentsServiceServer() {}
func (UnimplementedDocumentsServiceServer) testEmbeddedByValue()                          {}

// UnsafeDocumentsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to DocumentsServiceServer will
// result in compilation errors.
type UnsafeDocumentsServiceServer interface {
	mustEmbedUnimplementedDocumentsServiceServer()
}

func RegisterDocumentsServiceServer(s grpc.ServiceRegistrar, srv DocumentsServiceServer) {
	// If the following call pancis, it indicates UnimplementedDocumentsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&DocumentsService_ServiceDesc, srv)
}

func _DocumentsService_SubmitDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocumentsServiceServer).SubmitDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocumentsService_SubmitDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocumentsServiceServer).SubmitDocument(ctx, req.(*SubmitDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocumentsService_PollTask_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PollTaskRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocumentsServiceServer).PollTask(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocumentsService_PollTask_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocumentsServiceServer).PollTask(ctx, req.(*PollTaskRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocumentsService_AwaitTask_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AwaitTaskRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocumentsServiceServer).AwaitTask(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocumentsService_AwaitTask_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocumentsServiceServer).AwaitTask(ctx, req.(*AwaitTaskRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// DocumentsService_ServiceDesc is the grpc.ServiceDesc for DocumentsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var DocumentsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "distribuidores.v1.DocumentsService",
	HandlerType: (*DocumentsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SubmitDocument",
			Handler:    _DocumentsService_SubmitDocument_Handler,
		},
		{
			MethodName: "PollTask",
			Handler:    _DocumentsService_PollTask_Handler,
		},
		{
			MethodName: "AwaitTask",
			Handler:    _DocumentsService_AwaitTask_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "distribuidores/v1/distribuidores.proto",
}

const (
	ReviewService_ReviewField_FullMethodName     = "/distribuidores.v1.ReviewService/ReviewField"
	ReviewService_ReviewDocument_FullMethodName  = "/distribuidores.v1.ReviewService/ReviewDocument"
	ReviewService_ReviewBranch_FullMethodName    = "/distribuidores.v1.ReviewService/ReviewBranch"
	ReviewService_ReviewReference_FullMethodName = "/distribuidores.v1.ReviewService/ReviewReference"
)

// ReviewServiceClient is the client API for ReviewService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ReviewServiceClient interface {
	ReviewField(ctx context.Context, in *ReviewFieldRequest, opts ...grpc.CallOption) (*ReviewResponse, error)
	ReviewDocument(ctx context.Context, in *ReviewChildRequest, opts ...grpc.CallOption) (*ReviewResponse, error)
	ReviewBranch(ctx context.Context, in *ReviewChildRequest, opts ...grpc.CallOption) (*ReviewResponse, error)
	ReviewReference(ctx context.Context, in *ReviewChildRequest, opts ...grpc.CallOption) (*ReviewResponse, error)
}

type reviewServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewReviewServiceClient(cc grpc.ClientConnInterface) ReviewServiceClient {
	return &reviewServiceClient{cc}
}

func (c *reviewServiceClient) ReviewField(ctx context.Context, in *ReviewFieldRequest, opts ...grpc.CallOption) (*ReviewResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ReviewResponse)
	err := c.cc.Invoke(ctx, ReviewService_ReviewField_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reviewServiceClient) ReviewDocument(ctx context.Context, in *ReviewChildRequest, opts ...grpc.CallOption) (*ReviewResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ReviewResponse)
	err := c.cc.Invoke(ctx, ReviewService_ReviewDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reviewServiceClient) ReviewBranch(ctx context.Context, in *ReviewChildRequest, opts ...grpc.CallOption) (*ReviewResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ReviewResponse)
	err := c.cc.Invoke(ctx, ReviewService_ReviewBranch_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reviewServiceClient) ReviewReference(ctx context.Context, in *ReviewChildRequest, opts ...grpc.CallOption) (*ReviewResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ReviewResponse)
	err := c.cc.Invoke(ctx, ReviewService_ReviewReference_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReviewServiceServer is the server API for ReviewService service.
// All implementations must embed UnimplementedReviewServiceServer
// for forward compatibility.
type ReviewServiceServer interface {
	ReviewField(context.Context, *ReviewFieldRequest) (*ReviewResponse, error)
	ReviewDocument(context.Context, *ReviewChildRequest) (*ReviewResponse, error)
	ReviewBranch(context.Context, *ReviewChildRequest) (*ReviewResponse, error)
	ReviewReference(context.Context, *ReviewChildRequest) (*ReviewResponse, error)
	mustEmbedUnimplementedReviewServiceServer()
}

// UnimplementedReviewServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedReviewServiceServer struct{}

func (UnimplementedReviewServiceServer) ReviewField(context.Context, *ReviewFieldRequest) (*ReviewResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ReviewField not implemented")
}
func (UnimplementedReviewServiceServer) ReviewDocument(context.Context, *ReviewChildRequest) (*ReviewResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ReviewDocument not implemented")
}
func (UnimplementedReviewServiceServer) ReviewBranch(context.Context, *ReviewChildRequest) (*ReviewResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ReviewBranch not implemented")
}
func (UnimplementedReviewServiceServer) ReviewReference(context.Context, *ReviewChildRequest) (*ReviewResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ReviewReference not implemented")
}
func (UnimplementedReviewServiceServer) mustEmbedUnimplementedReviewServiceServer() {}
func (UnimplementedReviewServiceServer) testEmbeddedByValue()                       {}

// UnsafeReviewServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ReviewServiceServer will
// result in compilation errors.
type UnsafeReviewServiceServer interface {
	mustEmbedUnimplementedReviewServiceServer()
}

func RegisterReviewServiceServer(s grpc.ServiceRegistrar, srv ReviewServiceServer) {
	// If the following call pancis, it indicates UnimplementedReviewServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ReviewService_ServiceDesc, srv)
}

func _ReviewService_ReviewField_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReviewFieldRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReviewServiceServer).ReviewField(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReviewService_ReviewField_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReviewServiceServer).ReviewField(ctx, req.(*ReviewFieldRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReviewService_ReviewDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReviewChildRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReviewServiceServer).ReviewDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReviewService_ReviewDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReviewServiceServer).ReviewDocument(ctx, req.(*ReviewChildRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReviewService_ReviewBranch_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReviewChildRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReviewServiceServer).ReviewBranch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReviewService_ReviewBranch_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReviewServiceServer).ReviewBranch(ctx, req.(*ReviewChildRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReviewService_ReviewReference_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReviewChildRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReviewServiceServer).ReviewReference(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReviewService_ReviewReference_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReviewServiceServer).ReviewReference(ctx, req.(*ReviewChildRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ReviewService_ServiceDesc is the grpc.ServiceDesc for ReviewService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ReviewService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "distribuidores.v1.ReviewService",
	HandlerType: (*ReviewServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ReviewField",
			Handler:    _ReviewService_ReviewField_Handler,
		},
		{
			MethodName: "ReviewDocument",
			Handler:    _ReviewService_ReviewDocument_Handler,
		},
		{
			MethodName: "ReviewBranch",
			Handler:    _ReviewService_ReviewBranch_Handler,
		},
		{
			MethodName: "ReviewReference",
			Handler:    _ReviewService_ReviewReference_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "distribuidores/v1/distribuidores.proto",
}

const (
	DistributorsService_GraduateRequest_FullMethodName  = "/distribuidores.v1.DistributorsService/GraduateRequest"
	DistributorsService_ListDistributors_FullMethodName = "/distribuidores.v1.DistributorsService/ListDistributors"
)

// DistributorsServiceClient is the client API for DistributorsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type DistributorsServiceClient interface {
	GraduateRequest(ctx context.Context, in *GraduateRequestRequest, opts ...grpc.CallOption) (*GraduateRequestResponse, error)
	ListDistributors(ctx context.Context, in *ListDistributorsRequest, opts ...grpc.CallOption) (*ListDistributorsResponse, error)
}

type distributorsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewDistributorsServiceClient(cc grpc.ClientConnInterface) DistributorsServiceClient {
	return &distributorsServiceClient{cc}
}

func (c *distributorsServiceClient) GraduateRequest(ctx context.Context, in *GraduateRequestRequest, opts ...grpc.CallOption) (*GraduateRequestResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GraduateRequestResponse)
	err := c.cc.Invoke(ctx, DistributorsService_GraduateRequest_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *distributorsServiceClient) ListDistributors(ctx context.Context, in *ListDistributorsRequest, opts ...grpc.CallOption) (*ListDistributorsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListDistributorsResponse)
	err := c.cc.Invoke(ctx, DistributorsService_ListDistributors_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DistributorsServiceServer is the server API for DistributorsService service.
// All implementations must embed UnimplementedDistributorsServiceServer
// for forward compatibility.
type DistributorsServiceServer interface {
	GraduateRequest(context.Context, *GraduateRequestRequest) (*GraduateRequestResponse, error)
	ListDistributors(context.Context, *ListDistributorsRequest) (*ListDistributorsResponse, error)
	mustEmbedUnimplementedDistributorsServiceServer()
}

// UnimplementedDistributorsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedDistributorsServiceServer struct{}

func (UnimplementedDistributorsServiceServer) GraduateRequest(context.Context, *GraduateRequestRequest) (*GraduateRequestResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GraduateRequest not implemented")
}
func (UnimplementedDistributorsServiceServer) ListDistributors(context.Context, *ListDistributorsRequest) (*ListDistributorsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListDistributors not implemented")
}
func (UnimplementedDistributorsServiceServer) mustEmbedUnimplementedDistributorsServiceServer() {}
func (UnimplementedDistributorsServiceServer) testEmbeddedByValue()                             {}

// UnsafeDistributorsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to DistributorsServiceServer will
// result in compilation errors.
type UnsafeDistributorsServiceServer interface {
	mustEmbedUnimplementedDistributorsServiceServer()
}

func RegisterDistributorsServiceServer(s grpc.ServiceRegistrar, srv DistributorsServiceServer) {
	// If the following call pancis, it indicates UnimplementedDistributorsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&DistributorsService_ServiceDesc, srv)
}

func _DistributorsService_GraduateRequest_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GraduateRequestRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DistributorsServiceServer).GraduateRequest(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DistributorsService_GraduateRequest_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DistributorsServiceServer).GraduateRequest(ctx, req.(*GraduateRequestRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DistributorsService_ListDistributors_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListDistributorsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DistributorsServiceServer).ListDistributors(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DistributorsService_ListDistributors_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DistributorsServiceServer).ListDistributors(ctx, req.(*ListDistributorsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// DistributorsService_ServiceDesc is the grpc.ServiceDesc for DistributorsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var DistributorsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "distribuidores.v1.DistributorsService",
	HandlerType: (*DistributorsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GraduateRequest",
			Handler:    _DistributorsService_GraduateRequest_Handler,
		},
		{
			MethodName: "ListDistributors",
			Handler:    _DistributorsService_ListDistributors_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "distribuidores/v1/distribuidores.proto",
}

const (
	TrackingService_GetTracking_FullMethodName    = "/distribuidores.v1.TrackingService/GetTracking"
	TrackingService_ExportTracking_FullMethodName = "/distribuidores.v1.TrackingService/ExportTracking"
)

// TrackingServiceClient is the client API for TrackingService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type TrackingServiceClient interface {
	GetTracking(ctx context.Context, in *GetTrackingRequest, opts ...grpc.CallOption) (*GetTrackingResponse, error)
	ExportTracking(ctx context.Context, in *ExportTrackingRequest, opts ...grpc.CallOption) (*ExportTrackingResponse, error)
}

type trackingServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewTrackingServiceClient(cc grpc.ClientConnInterface) TrackingServiceClient {
	return &trackingServiceClient{cc}
}

func (c *trackingServiceClient) GetTracking(ctx context.Context, in *GetTrackingRequest, opts ...grpc.CallOption) (*GetTrackingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetTrackingResponse)
	err := c.cc.Invoke(ctx, TrackingService_GetTracking_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *trackingServiceClient) ExportTracking(ctx context.Context, in *ExportTrackingRequest, opts ...grpc.CallOption) (*ExportTrackingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportTrackingResponse)
	err := c.cc.Invoke(ctx, TrackingService_ExportTracking_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// TrackingServiceServer is the server API for TrackingService service.
// All implementations must embed UnimplementedTrackingServiceServer
// for forward compatibility.
type TrackingServiceServer interface {
	GetTracking(context.Context, *GetTrackingRequest) (*GetTrackingResponse, error)
	ExportTracking(context.Context, *ExportTrackingRequest) (*ExportTrackingResponse, error)
	mustEmbedUnimplementedTrackingServiceServer()
}

// UnimplementedTrackingServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedTrackingServiceServer struct{}

func (UnimplementedTrackingServiceServer) GetTracking(context.Context, *GetTrackingRequest) (*GetTrackingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetTracking not implemented")
}
func (UnimplementedTrackingServiceServer) ExportTracking(context.Context, *ExportTrackingRequest) (*ExportTrackingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportTracking not implemented")
}
func (UnimplementedTrackingServiceServer) mustEmbedUnimplementedTrackingServiceServer() {}
func (UnimplementedTrackingServiceServer) testEmbeddedByValue()                         {}

// UnsafeTrackingServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to TrackingServiceServer will
// result in compilation errors.
type UnsafeTrackingServiceServer interface {
	mustEmbedUnimplementedTrackingServiceServer()
}

func RegisterTrackingServiceServer(s grpc.ServiceRegistrar, srv TrackingServiceServer) {
	// If the following call pancis, it indicates UnimplementedTrackingServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&TrackingService_ServiceDesc, srv)
}

func _TrackingService_GetTracking_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetTrackingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TrackingServiceServer).GetTracking(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TrackingService_GetTracking_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TrackingServiceServer).GetTracking(ctx, req.(*GetTrackingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TrackingService_ExportTracking_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportTrackingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TrackingServiceServer).ExportTracking(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TrackingService_ExportTracking_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TrackingServiceServer).ExportTracking(ctx, req.(*ExportTrackingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// TrackingService_ServiceDesc is the grpc.ServiceDesc for TrackingService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var TrackingService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "distribuidores.v1.TrackingService",
	HandlerType: (*TrackingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetTracking",
			Handler:    _TrackingService_GetTracking_Handler,
		},
		{
			MethodName: "ExportTracking",
			Handler:    _TrackingService_ExportTracking_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "distribuidores/v1/distribuidores.proto",
}
