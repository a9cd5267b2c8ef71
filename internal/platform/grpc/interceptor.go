package grpc

import (
	"context"
	"log"
	"time"

	"github.com/louisbranch/scoreboard/internal/platform/id"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// RequestIDHeader carries the per-call request identifier in metadata.
const RequestIDHeader = "x-request-id"

type requestIDKey struct{}

// RequestIDFromContext returns the request identifier assigned by
// LoggingUnaryInterceptor, or "" when none is set.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(requestIDKey{}).(string)
	return value
}

// LoggingUnaryInterceptor assigns a request ID to every unary call, echoes it
// in the response header, and logs the method, status code and duration.
// An incoming x-request-id is reused.
func LoggingUnaryInterceptor(logf func(string, ...any)) gogrpc.UnaryServerInterceptor {
	if logf == nil {
		logf = log.Printf
	}
	return func(ctx context.Context, req any, info *gogrpc.UnaryServerInfo, handler gogrpc.UnaryHandler) (any, error) {
		requestID := incomingRequestID(ctx)
		if requestID == "" {
			generated, err := id.NewID()
			if err == nil {
				requestID = generated
			}
		}
		if requestID != "" {
			ctx = context.WithValue(ctx, requestIDKey{}, requestID)
			_ = gogrpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, requestID))
		}

		start := time.Now()
		resp, err := handler(ctx, req)
		logf("%s request_id=%s code=%s duration=%s", info.FullMethod, requestID, status.Code(err), time.Since(start).Round(time.Microsecond))
		return resp, err
	}
}

func incomingRequestID(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get(RequestIDHeader)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
