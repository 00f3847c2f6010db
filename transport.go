package mailbridge

import (
	"context"

	"github.com/mailbridge/mailbridge/auth"
)

// Transport delivers a prepared message through a hosted mail service.
type Transport interface {
	// SendMessage delivers the message and returns the provider-assigned
	// message id. saveToSent requests a copy in the sender's sent folder;
	// transports that keep one unconditionally may ignore the flag.
	// Returns an error if delivery fails.
	SendMessage(ctx context.Context, msg *Message, saveToSent bool) (string, error)
}

// TransportFactory builds a Transport bound to a service endpoint with
// credentials attached. The dispatcher invokes it once per send, after
// configuration validation and credential resolution have succeeded.
type TransportFactory func(ctx context.Context, endpointURI string, creds auth.Resolver) (Transport, error)
