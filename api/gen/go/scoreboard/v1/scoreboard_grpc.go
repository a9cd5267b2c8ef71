package scoreboardv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	ScoreboardService_ServiceName = "scoreboard.v1.ScoreboardService"

	ScoreboardService_StartMatch_FullMethodName            = "/scoreboard.v1.ScoreboardService/StartMatch"
	ScoreboardService_UpdateScore_FullMethodName           = "/scoreboard.v1.ScoreboardService/UpdateScore"
	ScoreboardService_FinishMatch_FullMethodName           = "/scoreboard.v1.ScoreboardService/FinishMatch"
	ScoreboardService_ListMatchesInProgress_FullMethodName = "/scoreboard.v1.ScoreboardService/ListMatchesInProgress"
)

// ScoreboardServiceClient is the client API for ScoreboardService.
type ScoreboardServiceClient interface {
	StartMatch(ctx context.Context, in *StartMatchRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	UpdateScore(ctx context.Context, in *UpdateScoreRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	FinishMatch(ctx context.Context, in *FinishMatchRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	ListMatchesInProgress(ctx context.Context, in *ListMatchesInProgressRequest, opts ...grpc.CallOption) (*ListMatchesInProgressResponse, error)
}

type scoreboardServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewScoreboardServiceClient returns a client bound to cc.
func NewScoreboardServiceClient(cc grpc.ClientConnInterface) ScoreboardServiceClient {
	return &scoreboardServiceClient{cc}
}

func (c *scoreboardServiceClient) StartMatch(ctx context.Context, in *StartMatchRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, ScoreboardService_StartMatch_FullMethodName, in.ToStruct(), out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *scoreboardServiceClient) UpdateScore(ctx context.Context, in *UpdateScoreRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, ScoreboardService_UpdateScore_FullMethodName, in.ToStruct(), out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *scoreboardServiceClient) FinishMatch(ctx context.Context, in *FinishMatchRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, ScoreboardService_FinishMatch_FullMethodName, in.ToStruct(), out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *scoreboardServiceClient) ListMatchesInProgress(ctx context.Context, in *ListMatchesInProgressRequest, opts ...grpc.CallOption) (*ListMatchesInProgressResponse, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, ScoreboardService_ListMatchesInProgress_FullMethodName, in.ToStruct(), out, opts...); err != nil {
		return nil, err
	}
	resp, err := ListMatchesInProgressResponseFromStruct(out)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "decode list matches response: %v", err)
	}
	return resp, nil
}

// ScoreboardServiceServer is the server API for ScoreboardService.
// Implementations must embed UnimplementedScoreboardServiceServer.
type ScoreboardServiceServer interface {
	StartMatch(context.Context, *StartMatchRequest) (*emptypb.Empty, error)
	UpdateScore(context.Context, *UpdateScoreRequest) (*emptypb.Empty, error)
	FinishMatch(context.Context, *FinishMatchRequest) (*emptypb.Empty, error)
	ListMatchesInProgress(context.Context, *ListMatchesInProgressRequest) (*ListMatchesInProgressResponse, error)
	mustEmbedUnimplementedScoreboardServiceServer()
}

// UnimplementedScoreboardServiceServer answers every RPC with Unimplemented.
type UnimplementedScoreboardServiceServer struct{}

func (UnimplementedScoreboardServiceServer) StartMatch(context.Context, *StartMatchRequest) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method StartMatch not implemented")
}

func (UnimplementedScoreboardServiceServer) UpdateScore(context.Context, *UpdateScoreRequest) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateScore not implemented")
}

func (UnimplementedScoreboardServiceServer) FinishMatch(context.Context, *FinishMatchRequest) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method FinishMatch not implemented")
}

func (UnimplementedScoreboardServiceServer) ListMatchesInProgress(context.Context, *ListMatchesInProgressRequest) (*ListMatchesInProgressResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListMatchesInProgress not implemented")
}

func (UnimplementedScoreboardServiceServer) mustEmbedUnimplementedScoreboardServiceServer() {}

// RegisterScoreboardServiceServer registers srv on s.
func RegisterScoreboardServiceServer(s grpc.ServiceRegistrar, srv ScoreboardServiceServer) {
	s.RegisterService(&ScoreboardService_ServiceDesc, srv)
}

// decodeRequest reads the wire Struct and converts it with from. Malformed
// fields are reported as InvalidArgument.
func decodeRequest[T any](dec func(any) error, from func(*structpb.Struct) (*T, error)) (*T, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	req, err := from(in)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return req, nil
}

func _ScoreboardService_StartMatch_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in, err := decodeRequest(dec, StartMatchRequestFromStruct)
	if err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScoreboardServiceServer).StartMatch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ScoreboardService_StartMatch_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ScoreboardServiceServer).StartMatch(ctx, req.(*StartMatchRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ScoreboardService_UpdateScore_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in, err := decodeRequest(dec, UpdateScoreRequestFromStruct)
	if err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScoreboardServiceServer).UpdateScore(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ScoreboardService_UpdateScore_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ScoreboardServiceServer).UpdateScore(ctx, req.(*UpdateScoreRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ScoreboardService_FinishMatch_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in, err := decodeRequest(dec, FinishMatchRequestFromStruct)
	if err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScoreboardServiceServer).FinishMatch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ScoreboardService_FinishMatch_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ScoreboardServiceServer).FinishMatch(ctx, req.(*FinishMatchRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ScoreboardService_ListMatchesInProgress_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in, err := decodeRequest(dec, ListMatchesInProgressRequestFromStruct)
	if err != nil {
		return nil, err
	}
	call := func(ctx context.Context, req any) (any, error) {
		resp, err := srv.(ScoreboardServiceServer).ListMatchesInProgress(ctx, req.(*ListMatchesInProgressRequest))
		if err != nil {
			return nil, err
		}
		return resp.ToStruct(), nil
	}
	if interceptor == nil {
		return call(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ScoreboardService_ListMatchesInProgress_FullMethodName,
	}
	return interceptor(ctx, in, info, call)
}

// ScoreboardService_ServiceDesc is the grpc.ServiceDesc for ScoreboardService.
var ScoreboardService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ScoreboardService_ServiceName,
	HandlerType: (*ScoreboardServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "StartMatch",
			Handler:    _ScoreboardService_StartMatch_Handler,
		},
		{
			MethodName: "UpdateScore",
			Handler:    _ScoreboardService_UpdateScore_Handler,
		},
		{
			MethodName: "FinishMatch",
			Handler:    _ScoreboardService_FinishMatch_Handler,
		},
		{
			MethodName: "ListMatchesInProgress",
			Handler:    _ScoreboardService_ListMatchesInProgress_Handler,
		},
	},
	Streams: []grpc.StreamDesc{},
}
