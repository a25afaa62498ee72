package v1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	AvailabilityService_AddSlot_FullMethodName         = "/timebank.v1.AvailabilityService/AddSlot"
	AvailabilityService_RemoveSlot_FullMethodName      = "/timebank.v1.AvailabilityService/RemoveSlot"
	AvailabilityService_UpdateSlot_FullMethodName      = "/timebank.v1.AvailabilityService/UpdateSlot"
	AvailabilityService_GetAvailability_FullMethodName = "/timebank.v1.AvailabilityService/GetAvailability"
)

type AvailabilityServiceClient interface {
	AddSlot(ctx context.Context, in *AddSlotRequest, opts ...grpc.CallOption) (*SlotsResponse, error)
	RemoveSlot(ctx context.Context, in *RemoveSlotRequest, opts ...grpc.CallOption) (*SlotsResponse, error)
	UpdateSlot(ctx context.Context, in *UpdateSlotRequest, opts ...grpc.CallOption) (*UpdateSlotResponse, error)
	GetAvailability(ctx context.Context, in *GetAvailabilityRequest, opts ...grpc.CallOption) (*SlotsResponse, error)
}

type availabilityServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAvailabilityServiceClient(cc grpc.ClientConnInterface) AvailabilityServiceClient {
	return &availabilityServiceClient{cc}
}

func (c *availabilityServiceClient) AddSlot(ctx context.Context, in *AddSlotRequest, opts ...grpc.CallOption) (*SlotsResponse, error) {
	out := new(SlotsResponse)
	if err := c.cc.Invoke(ctx, AvailabilityService_AddSlot_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *availabilityServiceClient) RemoveSlot(ctx context.Context, in *RemoveSlotRequest, opts ...grpc.CallOption) (*SlotsResponse, error) {
	out := new(SlotsResponse)
	if err := c.cc.Invoke(ctx, AvailabilityService_RemoveSlot_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *availabilityServiceClient) UpdateSlot(ctx context.Context, in *UpdateSlotRequest, opts ...grpc.CallOption) (*UpdateSlotResponse, error) {
	out := new(UpdateSlotResponse)
	if err := c.cc.Invoke(ctx, AvailabilityService_UpdateSlot_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *availabilityServiceClient) GetAvailability(ctx context.Context, in *GetAvailabilityRequest, opts ...grpc.CallOption) (*SlotsResponse, error) {
	out := new(SlotsResponse)
	if err := c.cc.Invoke(ctx, AvailabilityService_GetAvailability_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

// AvailabilityServiceServer must embed UnimplementedAvailabilityServiceServer for forward compatibility.
type AvailabilityServiceServer interface {
	AddSlot(context.Context, *AddSlotRequest) (*SlotsResponse, error)
	RemoveSlot(context.Context, *RemoveSlotRequest) (*SlotsResponse, error)
	UpdateSlot(context.Context, *UpdateSlotRequest) (*UpdateSlotResponse, error)
	GetAvailability(context.Context, *GetAvailabilityRequest) (*SlotsResponse, error)
	mustEmbedUnimplementedAvailabilityServiceServer()
}

type UnimplementedAvailabilityServiceServer struct{}

func (UnimplementedAvailabilityServiceServer) AddSlot(context.Context, *AddSlotRequest) (*SlotsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddSlot not implemented")
}
func (UnimplementedAvailabilityServiceServer) RemoveSlot(context.Context, *RemoveSlotRequest) (*SlotsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveSlot not implemented")
}
func (UnimplementedAvailabilityServiceServer) UpdateSlot(context.Context, *UpdateSlotRequest) (*UpdateSlotResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateSlot not implemented")
}
func (UnimplementedAvailabilityServiceServer) GetAvailability(context.Context, *GetAvailabilityRequest) (*SlotsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetAvailability not implemented")
}
func (UnimplementedAvailabilityServiceServer) mustEmbedUnimplementedAvailabilityServiceServer() {}

func RegisterAvailabilityServiceServer(s grpc.ServiceRegistrar, srv AvailabilityServiceServer) {
	s.RegisterService(&AvailabilityService_ServiceDesc, srv)
}

func _AvailabilityService_AddSlot_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(AddSlotRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AvailabilityServiceServer).AddSlot(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AvailabilityService_AddSlot_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AvailabilityServiceServer).AddSlot(ctx, req.(*AddSlotRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AvailabilityService_RemoveSlot_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RemoveSlotRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AvailabilityServiceServer).RemoveSlot(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AvailabilityService_RemoveSlot_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AvailabilityServiceServer).RemoveSlot(ctx, req.(*RemoveSlotRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AvailabilityService_UpdateSlot_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UpdateSlotRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AvailabilityServiceServer).UpdateSlot(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AvailabilityService_UpdateSlot_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AvailabilityServiceServer).UpdateSlot(ctx, req.(*UpdateSlotRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AvailabilityService_GetAvailability_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetAvailabilityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AvailabilityServiceServer).GetAvailability(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AvailabilityService_GetAvailability_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AvailabilityServiceServer).GetAvailability(ctx, req.(*GetAvailabilityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var AvailabilityService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "timebank.v1.AvailabilityService",
	HandlerType: (*AvailabilityServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "AddSlot",
			Handler:    _AvailabilityService_AddSlot_Handler,
		},
		{
			MethodName: "RemoveSlot",
			Handler:    _AvailabilityService_RemoveSlot_Handler,
		},
		{
			MethodName: "UpdateSlot",
			Handler:    _AvailabilityService_UpdateSlot_Handler,
		},
		{
			MethodName: "GetAvailability",
			Handler:    _AvailabilityService_GetAvailability_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "timebank/v1/availability",
}
