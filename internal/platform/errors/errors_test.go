package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestGRPCCodeMapping(t *testing.T) {
	tests := []struct {
		code Code
		want codes.Code
	}{
		{CodeMatchTeamNameEmpty, codes.InvalidArgument},
		{CodeMatchNegativeScore, codes.InvalidArgument},
		{CodeMatchScoreOutOfRange, codes.InvalidArgument},
		{CodeFilterInvalid, codes.InvalidArgument},
		{CodeMatchAlreadyInProgress, codes.AlreadyExists},
		{CodeMatchNotFound, codes.NotFound},
		{CodeUnknown, codes.Internal},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.GRPCCode(); got != tt.want {
				t.Fatalf("GRPCCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorIsMatchesByCode(t *testing.T) {
	sentinel := New(CodeMatchNotFound, "match not found")
	other := WithMetadata(CodeMatchNotFound, "no live match Spain vs Brazil", map[string]string{"HomeTeam": "Spain"})
	wrapped := fmt.Errorf("finish: %w", other)

	if !stderrors.Is(wrapped, sentinel) {
		t.Fatal("expected wrapped error to match sentinel by code")
	}
	if stderrors.Is(wrapped, New(CodeMatchNegativeScore, "x")) {
		t.Fatal("expected different code not to match")
	}
}

func TestWrapUnwrapsCause(t *testing.T) {
	cause := stderrors.New("parse failure")
	err := Wrap(CodeFilterInvalid, "invalid filter", cause)
	if !stderrors.Is(err, cause) {
		t.Fatal("expected cause in chain")
	}
	if GetCode(fmt.Errorf("list: %w", err)) != CodeFilterInvalid {
		t.Fatalf("GetCode = %v", GetCode(err))
	}
	if GetCode(cause) != CodeUnknown {
		t.Fatal("expected unknown code for plain error")
	}
}

func TestHandleErrorAttachesDetails(t *testing.T) {
	err := WithMetadata(CodeMatchAlreadyInProgress, "duplicate", map[string]string{
		"HomeTeam": "Mexico",
		"AwayTeam": "Canada",
	})

	grpcErr := HandleError(fmt.Errorf("start: %w", err), "en-US")
	st, ok := status.FromError(grpcErr)
	if !ok {
		t.Fatalf("expected status error, got %v", grpcErr)
	}
	if st.Code() != codes.AlreadyExists {
		t.Fatalf("code = %v, want %v", st.Code(), codes.AlreadyExists)
	}

	var info *errdetails.ErrorInfo
	var localized *errdetails.LocalizedMessage
	for _, detail := range st.Details() {
		switch d := detail.(type) {
		case *errdetails.ErrorInfo:
			info = d
		case *errdetails.LocalizedMessage:
			localized = d
		}
	}
	if info == nil || info.GetReason() != string(CodeMatchAlreadyInProgress) || info.GetDomain() != Domain {
		t.Fatalf("unexpected error info: %v", info)
	}
	if localized == nil {
		t.Fatal("expected localized message")
	}
	if localized.GetMessage() != "A match between Mexico and Canada is already in progress." {
		t.Fatalf("localized message = %q", localized.GetMessage())
	}
}

func TestHandleErrorPassthrough(t *testing.T) {
	if HandleError(nil, "") != nil {
		t.Fatal("expected nil for nil error")
	}
	original := status.Error(codes.Unavailable, "down")
	if got := HandleError(original, ""); status.Code(got) != codes.Unavailable {
		t.Fatalf("expected status passthrough, got %v", got)
	}
	if got := HandleError(stderrors.New("boom"), ""); status.Code(got) != codes.Internal {
		t.Fatalf("expected internal, got %v", got)
	}
}
