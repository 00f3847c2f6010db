package auth

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"
)

// TokenSourceFunc returns the token source holding credentials for one
// resource. Successful results are cached per resource id; returning an
// error means no session exists for that resource, and the next lookup
// calls it again.
type TokenSourceFunc func(ctx context.Context, resourceID string) (oauth2.TokenSource, error)

// OAuth2Provider adapts oauth2 token sources into resource-scoped resolvers.
// Resolvers are cached per resource id, and concurrent lookups for the same
// id collapse into a single source construction. Token refresh is handled by
// oauth2.ReuseTokenSource, so repeated sends reuse a valid token instead of
// refreshing every time.
type OAuth2Provider struct {
	sources    TokenSourceFunc
	httpClient *http.Client

	group singleflight.Group

	mu    sync.RWMutex
	cache map[string]*TokenResolver
}

// NewOAuth2Provider creates a provider backed by the given token source
// func.
func NewOAuth2Provider(sources TokenSourceFunc, opts ...Option) (*OAuth2Provider, error) {
	if sources == nil {
		return nil, ErrNilTokenSource
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &OAuth2Provider{
		sources:    sources,
		httpClient: o.httpClient,
		cache:      make(map[string]*TokenResolver),
	}, nil
}

// Resolver implements Provider.
func (p *OAuth2Provider) Resolver(ctx context.Context, resourceID string) (Resolver, error) {
	if resourceID == "" {
		return nil, ErrMissingResourceID
	}

	p.mu.RLock()
	if r, ok := p.cache[resourceID]; ok {
		p.mu.RUnlock()
		return r, nil
	}
	p.mu.RUnlock()

	v, err, _ := p.group.Do(resourceID, func() (any, error) {
		// Re-check the cache: an earlier flight may have populated it.
		p.mu.RLock()
		r, ok := p.cache[resourceID]
		p.mu.RUnlock()
		if ok {
			return r, nil
		}

		src, err := p.sources(ctx, resourceID)
		if err != nil {
			return nil, errors.Join(ErrNoSession, err)
		}
		if src == nil {
			return nil, errors.Join(ErrNoSession, ErrNilTokenSource)
		}

		r = newTokenResolver(oauth2.ReuseTokenSource(nil, src), p.httpClient)
		p.mu.Lock()
		p.cache[resourceID] = r
		p.mu.Unlock()
		return r, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*TokenResolver), nil
}

// TokenResolver resolves credentials from an oauth2 token source.
type TokenResolver struct {
	src        oauth2.TokenSource
	httpClient *http.Client
}

// NewTokenResolver wraps an existing token source into a Resolver. Use this
// to plug custom credential stores directly into a transport.
func NewTokenResolver(src oauth2.TokenSource, opts ...Option) *TokenResolver {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return newTokenResolver(src, o.httpClient)
}

func newTokenResolver(src oauth2.TokenSource, httpClient *http.Client) *TokenResolver {
	return &TokenResolver{src: src, httpClient: httpClient}
}

// Token implements Resolver.
func (r *TokenResolver) Token(ctx context.Context) (string, error) {
	tok, err := r.src.Token()
	if err != nil {
		return "", errors.Join(ErrTokenUnavailable, err)
	}
	return tok.AccessToken, nil
}

// Client implements Resolver. The returned client attaches a bearer token to
// every request and refreshes it as needed.
func (r *TokenResolver) Client(ctx context.Context) *http.Client {
	if r.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, r.httpClient)
	}
	return oauth2.NewClient(ctx, r.src)
}
