package resend

// Config holds Resend transport configuration. The API key is not here: it
// comes from the credential resolver at construction time.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	SenderEmail string `env:"RESEND_FROM_EMAIL"`
	SenderName  string `env:"RESEND_FROM_NAME"`
}
