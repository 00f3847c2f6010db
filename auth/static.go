package auth

import (
	"context"

	"golang.org/x/oauth2"
)

// StaticProvider serves one fixed access token for every resource. Meant for
// development environments and tests; production code should use
// OAuth2Provider or a custom Provider.
type StaticProvider struct {
	resolver *TokenResolver
}

// NewStaticProvider creates a provider around a fixed access token.
func NewStaticProvider(accessToken string, opts ...Option) (*StaticProvider, error) {
	if accessToken == "" {
		return nil, ErrMissingToken
	}

	src := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	})
	return &StaticProvider{resolver: NewTokenResolver(src, opts...)}, nil
}

// Resolver implements Provider. The resource id is required but otherwise
// ignored; every resource resolves to the same token.
func (p *StaticProvider) Resolver(ctx context.Context, resourceID string) (Resolver, error) {
	if resourceID == "" {
		return nil, ErrMissingResourceID
	}
	return p.resolver, nil
}
