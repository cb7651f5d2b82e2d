package context

import (
	"context"
)

type ownerKey struct{}

// Manager stores the signed-in owner in request contexts.
type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

// SetOwnerToContext returns a copy of ctx carrying owner.
func (m *Manager) SetOwnerToContext(ctx context.Context, owner string) context.Context {
	return context.WithValue(ctx, ownerKey{}, owner)
}

// GetOwnerFromContext returns the owner set by SetOwnerToContext. An empty
// owner counts as absent.
func (m *Manager) GetOwnerFromContext(ctx context.Context) (string, bool) {
	owner, ok := ctx.Value(ownerKey{}).(string)
	if !ok || owner == "" {
		return "", false
	}
	return owner, true
}
