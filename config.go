package mailbridge

// Config holds the two service settings every send depends on. Both are
// opaque to this package: the resource id scopes credential resolution and
// the endpoint URI is where the transport delivers the message. Neither is
// validated beyond being non-empty.
//
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	ServiceResourceID  string `env:"MAIL_SERVICE_RESOURCE_ID"`
	ServiceEndpointURI string `env:"MAIL_SERVICE_ENDPOINT_URI"`
}

// missingFields reports which required settings are still unset, in
// declaration order.
func (c Config) missingFields() []string {
	var missing []string
	if c.ServiceResourceID == "" {
		missing = append(missing, "ServiceResourceID")
	}
	if c.ServiceEndpointURI == "" {
		missing = append(missing, "ServiceEndpointURI")
	}
	return missing
}
