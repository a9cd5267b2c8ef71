package grpc

import (
	"context"
	"strings"

	"google.golang.org/grpc/metadata"
)

// LocaleHeader carries the caller's preferred locale for error messages.
const LocaleHeader = "x-locale"

// LocaleFromIncoming returns the locale sent by the caller, or "".
func LocaleFromIncoming(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get(LocaleHeader)
	if len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0])
}

// WithOutgoingLocale attaches locale to outgoing call metadata. An empty
// locale leaves ctx unchanged.
func WithOutgoingLocale(ctx context.Context, locale string) context.Context {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, LocaleHeader, locale)
}
