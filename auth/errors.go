package auth

import "errors"

var (
	// ErrMissingResourceID is returned when a resolver is requested without
	// a resource id.
	ErrMissingResourceID = errors.New("auth: missing resource id")

	// ErrMissingToken is returned when a static provider is created without
	// an access token.
	ErrMissingToken = errors.New("auth: missing access token")

	// ErrNilTokenSource is returned when an OAuth2 provider is created
	// without a token source func, or when the func yields a nil source.
	ErrNilTokenSource = errors.New("auth: token source is required")

	// ErrNoSession is returned when no credential source exists for the
	// requested resource.
	ErrNoSession = errors.New("auth: no credential source for resource")

	// ErrTokenUnavailable is returned when the underlying token source
	// cannot produce a token.
	ErrTokenUnavailable = errors.New("auth: failed to obtain token")
)
