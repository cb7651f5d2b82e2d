package model

import (
	"context"
)

// ContextManager carries the signed-in owner through request contexts.
type ContextManager interface {
	SetOwnerToContext(ctx context.Context, owner string) context.Context
	GetOwnerFromContext(ctx context.Context) (string, bool)
}
