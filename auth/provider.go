package auth

import (
	"context"
	"net/http"
)

// Resolver attaches credentials for one resource to outbound requests.
type Resolver interface {
	// Token returns bearer token material for Authorization headers.
	Token(ctx context.Context) (string, error)

	// Client returns an HTTP client that injects credentials into every
	// request it sends.
	Client(ctx context.Context) *http.Client
}

// Provider yields credential resolvers scoped to a resource id.
// Implementations must be safe for concurrent use.
type Provider interface {
	// Resolver returns a resolver whose credentials are valid for the given
	// resource. Returns ErrNoSession (possibly wrapped) when no credential
	// source exists for it.
	Resolver(ctx context.Context, resourceID string) (Resolver, error)
}
