package envkit

import "context"

type ctxKey struct{}

// WithContext attaches the deployment tag to a context.
func WithContext(ctx context.Context, tag Tag) context.Context {
	return context.WithValue(ctx, ctxKey{}, tag)
}

// FromContext retrieves the deployment tag from a context. It returns the
// zero Tag ("") when none was attached.
func FromContext(ctx context.Context) Tag {
	if ctx == nil {
		return ""
	}
	tag, _ := ctx.Value(ctxKey{}).(Tag)
	return tag
}
