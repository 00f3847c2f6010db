package auth

import "net/http"

// Option configures a provider or resolver.
type Option func(*options)

type options struct {
	httpClient *http.Client
}

// WithHTTPClient sets the base HTTP client used for token refresh and for
// clients returned by Resolver.Client. This is useful for testing with
// httptest servers or injecting custom transports.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}
