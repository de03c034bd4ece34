package weave

import "context"

type contextKey int

const (
	contextKeyTxIndex contextKey = iota
)

// WithTxIndex attaches the position of the currently executed transaction
// within its block.
func WithTxIndex(ctx context.Context, index uint32) context.Context {
	return context.WithValue(ctx, contextKeyTxIndex, index)
}

// GetTxIndex returns the position of the currently executed transaction
// within its block. Not every host provides this information, callers must
// fall back to a default when it is missing.
func GetTxIndex(ctx context.Context) (uint32, bool) {
	val, ok := ctx.Value(contextKeyTxIndex).(uint32)
	return val, ok
}
