package llm

import "context"

type ctxKey int

const purposeCtxKey ctxKey = iota

// WithPurpose tags the context with what this request is for ("drill-gen",
// "coaching"). The logging decorator stamps the tag onto the event row.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeCtxKey, purpose)
}

// PurposeFrom reads the purpose tag, "unknown" when the caller never set one.
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeCtxKey).(string); ok {
		return p
	}
	return "unknown"
}
