// Package auth abstracts credential resolution for outbound mail requests.
//
// The dispatcher never acquires tokens itself. It asks a Provider for a
// Resolver scoped to the configured service resource id, and hands the
// resolver to the transport. How tokens were obtained in the first place
// (interactive sign-in, refresh tokens, service accounts) stays outside this
// module.
//
// # Providers
//
// Two implementations are included:
//
//   - OAuth2Provider adapts oauth2.TokenSource factories into resource-scoped
//     resolvers, with per-resource caching and token reuse.
//   - StaticProvider serves one fixed token for every resource, for
//     development and tests.
//
// Custom providers implement the Provider interface:
//
//	type SessionProvider struct{ sessions *session.Store }
//
//	func (p *SessionProvider) Resolver(ctx context.Context, resourceID string) (auth.Resolver, error) {
//		tok, ok := p.sessions.TokenFor(resourceID)
//		if !ok {
//			return nil, auth.ErrNoSession
//		}
//		return auth.NewTokenResolver(oauth2.StaticTokenSource(tok)), nil
//	}
//
// # Resolvers
//
// A Resolver exposes credentials the two ways Go mail SDKs consume them:
// as raw bearer token material for Authorization headers, and as an
// *http.Client that injects credentials into every request.
package auth
