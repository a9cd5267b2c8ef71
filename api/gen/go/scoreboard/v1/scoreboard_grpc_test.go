package scoreboardv1

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

type fakeScoreboardServer struct {
	UnimplementedScoreboardServiceServer
	mu         sync.Mutex
	lastUpdate *UpdateScoreRequest
	lastList   *ListMatchesInProgressRequest
}

func (f *fakeScoreboardServer) UpdateScore(_ context.Context, in *UpdateScoreRequest) (*emptypb.Empty, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastUpdate = in
	return &emptypb.Empty{}, nil
}

func (f *fakeScoreboardServer) ListMatchesInProgress(_ context.Context, in *ListMatchesInProgressRequest) (*ListMatchesInProgressResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastList = in
	return &ListMatchesInProgressResponse{Matches: []*Match{
		{HomeTeam: "Spain", AwayTeam: "Brazil", HomeScore: 10, AwayScore: 2, TotalScore: 12, Sequence: 1},
	}}, nil
}

func startFakeServer(t *testing.T, srv ScoreboardServiceServer, opts ...grpc.ServerOption) *grpc.ClientConn {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	server := grpc.NewServer(opts...)
	RegisterScoreboardServiceServer(server, srv)
	go func() {
		_ = server.Serve(lis)
	}()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestScoreboardServiceClientRoundTrip(t *testing.T) {
	fake := &fakeScoreboardServer{}
	var (
		mu          sync.Mutex
		intercepted []string
	)
	interceptor := func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		mu.Lock()
		intercepted = append(intercepted, info.FullMethod)
		mu.Unlock()
		return handler(ctx, req)
	}
	client := NewScoreboardServiceClient(startFakeServer(t, fake, grpc.UnaryInterceptor(interceptor)))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.UpdateScore(ctx, &UpdateScoreRequest{HomeTeam: "Spain", AwayTeam: "Brazil", HomeScore: 10, AwayScore: 2}); err != nil {
		t.Fatalf("update score: %v", err)
	}
	fake.mu.Lock()
	lastUpdate := fake.lastUpdate
	fake.mu.Unlock()
	if lastUpdate.GetHomeScore() != 10 || lastUpdate.GetAwayTeam() != "Brazil" {
		t.Fatalf("server saw %+v", lastUpdate)
	}

	resp, err := client.ListMatchesInProgress(ctx, &ListMatchesInProgressRequest{Filter: `home_team = "Spain"`, PageSize: 3})
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	fake.mu.Lock()
	lastList := fake.lastList
	fake.mu.Unlock()
	if lastList.GetFilter() != `home_team = "Spain"` || lastList.GetPageSize() != 3 {
		t.Fatalf("server saw %+v", lastList)
	}
	if len(resp.GetMatches()) != 1 || resp.Matches[0].GetTotalScore() != 12 {
		t.Fatalf("response = %+v", resp.GetMatches())
	}

	mu.Lock()
	defer mu.Unlock()
	want := []string{ScoreboardService_UpdateScore_FullMethodName, ScoreboardService_ListMatchesInProgress_FullMethodName}
	if len(intercepted) != len(want) || intercepted[0] != want[0] || intercepted[1] != want[1] {
		t.Fatalf("intercepted = %v, want %v", intercepted, want)
	}
}

func TestScoreboardServiceUnimplemented(t *testing.T) {
	client := NewScoreboardServiceClient(startFakeServer(t, &fakeScoreboardServer{}))
	_, err := client.StartMatch(context.Background(), &StartMatchRequest{HomeTeam: "Mexico", AwayTeam: "Canada"})
	if status.Code(err) != codes.Unimplemented {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.Unimplemented)
	}
}

func TestScoreboardServiceRejectsMalformedRequest(t *testing.T) {
	conn := startFakeServer(t, &fakeScoreboardServer{})
	in := &structpb.Struct{Fields: map[string]*structpb.Value{
		"home_team":  structpb.NewStringValue("Mexico"),
		"away_team":  structpb.NewStringValue("Canada"),
		"home_score": structpb.NewStringValue("one"),
	}}
	err := conn.Invoke(context.Background(), ScoreboardService_UpdateScore_FullMethodName, in, new(emptypb.Empty))
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.InvalidArgument)
	}
}

func TestServiceDescDeclaresUnaryMethods(t *testing.T) {
	desc := ScoreboardService_ServiceDesc
	if desc.ServiceName != ScoreboardService_ServiceName {
		t.Fatalf("service name = %q", desc.ServiceName)
	}
	if desc.Metadata != nil {
		t.Fatalf("metadata = %v, want none for a hand-maintained contract", desc.Metadata)
	}
	if len(desc.Streams) != 0 || len(desc.Methods) != 4 {
		t.Fatalf("methods = %d streams = %d, want 4 unary methods", len(desc.Methods), len(desc.Streams))
	}
}
