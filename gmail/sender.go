// Package gmail delivers mail through the Gmail API.
package gmail

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/mailbridge/mailbridge"
	"github.com/mailbridge/mailbridge/auth"
)

// Config holds Gmail transport configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	SenderAddress string `env:"GMAIL_SENDER_ADDRESS"`
	SenderName    string `env:"GMAIL_SENDER_NAME"`
}

// Sender sends messages as the configured mailbox via the Gmail API.
type Sender struct {
	svc  *gmail.Service
	from string
}

// New creates a Gmail transport. The credential resolver must yield tokens
// with the gmail.send scope for the sender mailbox.
func New(ctx context.Context, cfg Config, creds auth.Resolver, opts ...option.ClientOption) (*Sender, error) {
	if cfg.SenderAddress == "" {
		return nil, fmt.Errorf("gmail: sender address is required")
	}
	if creds == nil {
		return nil, fmt.Errorf("gmail: credential resolver is required")
	}

	all := append([]option.ClientOption{option.WithHTTPClient(creds.Client(ctx))}, opts...)
	svc, err := gmail.NewService(ctx, all...)
	if err != nil {
		return nil, fmt.Errorf("gmail: create service: %w", err)
	}

	from := cfg.SenderAddress
	if cfg.SenderName != "" {
		from = fmt.Sprintf("%s <%s>", cfg.SenderName, cfg.SenderAddress)
	}

	return &Sender{svc: svc, from: from}, nil
}

// NewFactory returns a transport factory for the dispatcher. A non-empty
// endpoint URI overrides the Gmail API base URL.
func NewFactory(cfg Config) mailbridge.TransportFactory {
	return func(ctx context.Context, endpointURI string, creds auth.Resolver) (mailbridge.Transport, error) {
		var opts []option.ClientOption
		if endpointURI != "" {
			opts = append(opts, option.WithEndpoint(endpointURI))
		}
		return New(ctx, cfg, creds, opts...)
	}
}

// SendMessage implements mailbridge.Transport. Gmail keeps a copy in the
// sent folder regardless, so saveToSent has no effect here.
func (s *Sender) SendMessage(ctx context.Context, msg *mailbridge.Message, saveToSent bool) (string, error) {
	raw := base64.URLEncoding.EncodeToString(rfc822Message(s.from, msg))

	sent, err := s.svc.Users.Messages.Send("me", &gmail.Message{Raw: raw}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("gmail: send: %w", err)
	}

	return sent.Id, nil
}

// rfc822Message builds the raw RFC 822 payload the Gmail API expects.
func rfc822Message(from string, msg *mailbridge.Message) []byte {
	if msg.From != nil {
		from = msg.From.EmailAddress.String()
	}

	headers := []string{
		"From: " + from,
		"To: " + addressList(msg.ToRecipients),
	}
	if cc := addressList(msg.CcRecipients); cc != "" {
		headers = append(headers, "Cc: "+cc)
	}
	if bcc := addressList(msg.BccRecipients); bcc != "" {
		headers = append(headers, "Bcc: "+bcc)
	}
	if replyTo := addressList(msg.ReplyTo); replyTo != "" {
		headers = append(headers, "Reply-To: "+replyTo)
	}

	contentType := "text/html; charset=UTF-8"
	if msg.Body.ContentType == mailbridge.BodyTypeText {
		contentType = "text/plain; charset=UTF-8"
	}

	headers = append(headers,
		"Subject: "+msg.Subject,
		"MIME-Version: 1.0",
		"Content-Type: "+contentType,
		"",
		msg.Body.Content,
	)

	return []byte(strings.Join(headers, "\r\n"))
}

func addressList(recipients []mailbridge.Recipient) string {
	if len(recipients) == 0 {
		return ""
	}
	addrs := make([]string, len(recipients))
	for i, r := range recipients {
		addrs[i] = r.EmailAddress.String()
	}
	return strings.Join(addrs, ", ")
}
