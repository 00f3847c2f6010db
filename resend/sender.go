package resend

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v3"

	"github.com/mailbridge/mailbridge"
	"github.com/mailbridge/mailbridge/auth"
)

// Sender delivers messages through the Resend API.
type Sender struct {
	client *resend.Client
	config Config
}

// New creates a Resend transport. The credential resolver supplies the API
// key; cfg provides the default sender identity.
func New(ctx context.Context, cfg Config, creds auth.Resolver) (*Sender, error) {
	if creds == nil {
		return nil, fmt.Errorf("resend: credential resolver is required")
	}

	apiKey, err := creds.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("resend: resolve api key: %w", err)
	}

	return &Sender{
		client: resend.NewClient(apiKey),
		config: cfg,
	}, nil
}

// NewFactory returns a transport factory for the dispatcher. The Resend API
// endpoint is fixed, so the configured endpoint URI is ignored.
func NewFactory(cfg Config) mailbridge.TransportFactory {
	return func(ctx context.Context, _ string, creds auth.Resolver) (mailbridge.Transport, error) {
		return New(ctx, cfg, creds)
	}
}

// SendMessage implements mailbridge.Transport. Resend has no sent-items
// concept, so saveToSent has no effect here.
func (s *Sender) SendMessage(ctx context.Context, msg *mailbridge.Message, saveToSent bool) (string, error) {
	sent, err := s.client.Emails.SendWithContext(ctx, s.request(msg))
	if err != nil {
		return "", fmt.Errorf("resend: failed to send email: %w", err)
	}

	return sent.Id, nil
}

func (s *Sender) request(msg *mailbridge.Message) *resend.SendEmailRequest {
	from := s.config.SenderEmail
	if s.config.SenderName != "" {
		from = fmt.Sprintf("%s <%s>", s.config.SenderName, s.config.SenderEmail)
	}
	if msg.From != nil {
		from = msg.From.EmailAddress.String()
	}

	req := &resend.SendEmailRequest{
		From:    from,
		To:      addresses(msg.ToRecipients),
		Subject: msg.Subject,
		Cc:      addresses(msg.CcRecipients),
		Bcc:     addresses(msg.BccRecipients),
	}
	if len(msg.ReplyTo) > 0 {
		req.ReplyTo = msg.ReplyTo[0].EmailAddress.String()
	}

	switch msg.Body.ContentType {
	case mailbridge.BodyTypeText:
		req.Text = msg.Body.Content
	default:
		req.Html = msg.Body.Content
	}

	return req
}

func addresses(recipients []mailbridge.Recipient) []string {
	if len(recipients) == 0 {
		return nil
	}
	out := make([]string, len(recipients))
	for i, r := range recipients {
		out[i] = r.EmailAddress.String()
	}
	return out
}
