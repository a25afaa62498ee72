package v1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	ChatService_LoadConversation_FullMethodName = "/timebank.v1.ChatService/LoadConversation"
	ChatService_SendText_FullMethodName         = "/timebank.v1.ChatService/SendText"
	ChatService_SendVoice_FullMethodName        = "/timebank.v1.ChatService/SendVoice"
)

type ChatServiceClient interface {
	LoadConversation(ctx context.Context, in *LoadConversationRequest, opts ...grpc.CallOption) (*ConversationResponse, error)
	SendText(ctx context.Context, in *SendTextRequest, opts ...grpc.CallOption) (*MessageResponse, error)
	SendVoice(ctx context.Context, in *SendVoiceRequest, opts ...grpc.CallOption) (*MessageResponse, error)
}

type chatServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewChatServiceClient(cc grpc.ClientConnInterface) ChatServiceClient {
	return &chatServiceClient{cc}
}

func (c *chatServiceClient) LoadConversation(ctx context.Context, in *LoadConversationRequest, opts ...grpc.CallOption) (*ConversationResponse, error) {
	out := new(ConversationResponse)
	if err := c.cc.Invoke(ctx, ChatService_LoadConversation_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *chatServiceClient) SendText(ctx context.Context, in *SendTextRequest, opts ...grpc.CallOption) (*MessageResponse, error) {
	out := new(MessageResponse)
	if err := c.cc.Invoke(ctx, ChatService_SendText_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *chatServiceClient) SendVoice(ctx context.Context, in *SendVoiceRequest, opts ...grpc.CallOption) (*MessageResponse, error) {
	out := new(MessageResponse)
	if err := c.cc.Invoke(ctx, ChatService_SendVoice_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

// ChatServiceServer must embed UnimplementedChatServiceServer for forward compatibility.
type ChatServiceServer interface {
	LoadConversation(context.Context, *LoadConversationRequest) (*ConversationResponse, error)
	SendText(context.Context, *SendTextRequest) (*MessageResponse, error)
	SendVoice(context.Context, *SendVoiceRequest) (*MessageResponse, error)
	mustEmbedUnimplementedChatServiceServer()
}

type UnimplementedChatServiceServer struct{}

func (UnimplementedChatServiceServer) LoadConversation(context.Context, *LoadConversationRequest) (*ConversationResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method LoadConversation not implemented")
}
func (UnimplementedChatServiceServer) SendText(context.Context, *SendTextRequest) (*MessageResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SendText not implemented")
}
func (UnimplementedChatServiceServer) SendVoice(context.Context, *SendVoiceRequest) (*MessageResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SendVoice not implemented")
}
func (UnimplementedChatServiceServer) mustEmbedUnimplementedChatServiceServer() {}

func RegisterChatServiceServer(s grpc.ServiceRegistrar, srv ChatServiceServer) {
	s.RegisterService(&ChatService_ServiceDesc, srv)
}

func _ChatService_LoadConversation_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(LoadConversationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChatServiceServer).LoadConversation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ChatService_LoadConversation_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ChatServiceServer).LoadConversation(ctx, req.(*LoadConversationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ChatService_SendText_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SendTextRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChatServiceServer).SendText(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ChatService_SendText_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ChatServiceServer).SendText(ctx, req.(*SendTextRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ChatService_SendVoice_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SendVoiceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChatServiceServer).SendVoice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ChatService_SendVoice_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ChatServiceServer).SendVoice(ctx, req.(*SendVoiceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var ChatService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "timebank.v1.ChatService",
	HandlerType: (*ChatServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "LoadConversation",
			Handler:    _ChatService_LoadConversation_Handler,
		},
		{
			MethodName: "SendText",
			Handler:    _ChatService_SendText_Handler,
		},
		{
			MethodName: "SendVoice",
			Handler:    _ChatService_SendVoice_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "timebank/v1/chat",
}
