// Package outlook delivers mail through Outlook-style REST endpoints.
package outlook

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mailbridge/mailbridge"
	"github.com/mailbridge/mailbridge/auth"
)

const (
	sendMailPath   = "/me/sendmail"
	defaultTimeout = 10 * time.Second
)

// Config holds Outlook transport configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Timeout time.Duration `env:"OUTLOOK_TIMEOUT" envDefault:"10s"`
}

// Client posts messages to the endpoint's sendmail operation, authorizing
// each request with a bearer token from the credential resolver.
type Client struct {
	rest     *resty.Client
	endpoint string
	creds    auth.Resolver
}

// New creates a transport bound to the endpoint with credentials attached.
func New(endpoint string, creds auth.Resolver, cfg Config) (*Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	rest := resty.New()
	rest.SetTimeout(timeout)
	rest.SetRetryCount(0)

	return NewWithClient(endpoint, creds, rest)
}

// NewWithClient creates a transport using a caller-supplied resty client,
// for tests and custom transports.
func NewWithClient(endpoint string, creds auth.Resolver, rest *resty.Client) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(endpoint), "/")
	if trimmed == "" {
		return nil, fmt.Errorf("outlook: endpoint is required")
	}
	if _, err := url.ParseRequestURI(trimmed); err != nil {
		return nil, fmt.Errorf("outlook: invalid endpoint: %w", err)
	}
	if creds == nil {
		return nil, fmt.Errorf("outlook: credential resolver is required")
	}
	if rest == nil {
		return nil, fmt.Errorf("outlook: resty client is required")
	}

	if rest.GetClient().Timeout == 0 {
		rest.SetTimeout(defaultTimeout)
	}
	rest.SetRetryCount(0)

	return &Client{
		rest:     rest,
		endpoint: trimmed,
		creds:    creds,
	}, nil
}

// Factory adapts New to the dispatcher's transport factory signature.
func Factory(ctx context.Context, endpointURI string, creds auth.Resolver) (mailbridge.Transport, error) {
	return New(endpointURI, creds, Config{})
}

// SendMessage implements mailbridge.Transport.
func (c *Client) SendMessage(ctx context.Context, msg *mailbridge.Message, saveToSent bool) (string, error) {
	token, err := c.creds.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("outlook: resolve token: %w", err)
	}

	resp, err := c.rest.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(token).
		SetBody(newSendMailRequest(msg, saveToSent)).
		Post(c.endpoint + sendMailPath)
	if err != nil {
		return "", fmt.Errorf("outlook: send request: %w", err)
	}

	status := resp.StatusCode()
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return "", &APIError{StatusCode: status, Body: strings.TrimSpace(resp.String())}
	}

	return messageID(resp), nil
}

// messageID extracts the provider-assigned message id from the response.
// The sendmail operation usually answers 202 with an empty body, so a
// missing id is not an error.
func messageID(resp *resty.Response) string {
	var body struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.ID != "" {
		return body.ID
	}

	for _, key := range []string{"X-Message-Id", "X-Request-Id"} {
		if v := strings.TrimSpace(resp.Header().Get(key)); v != "" {
			return v
		}
	}
	return ""
}

type sendMailRequest struct {
	Message         wireMessage `json:"message"`
	SaveToSentItems bool        `json:"saveToSentItems"`
}

type wireMessage struct {
	Subject       string          `json:"subject"`
	Body          wireBody        `json:"body"`
	From          *wireRecipient  `json:"from,omitempty"`
	ReplyTo       []wireRecipient `json:"replyTo,omitempty"`
	ToRecipients  []wireRecipient `json:"toRecipients"`
	CcRecipients  []wireRecipient `json:"ccRecipients,omitempty"`
	BccRecipients []wireRecipient `json:"bccRecipients,omitempty"`
}

type wireBody struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

type wireRecipient struct {
	EmailAddress wireAddress `json:"emailAddress"`
}

type wireAddress struct {
	Address string `json:"address"`
	Name    string `json:"name,omitempty"`
}

func newSendMailRequest(msg *mailbridge.Message, saveToSent bool) sendMailRequest {
	wire := wireMessage{
		Subject: msg.Subject,
		Body: wireBody{
			ContentType: string(msg.Body.ContentType),
			Content:     msg.Body.Content,
		},
		ReplyTo:       wireRecipients(msg.ReplyTo),
		ToRecipients:  wireRecipients(msg.ToRecipients),
		CcRecipients:  wireRecipients(msg.CcRecipients),
		BccRecipients: wireRecipients(msg.BccRecipients),
	}
	if msg.From != nil {
		from := wireRecipient{EmailAddress: wireAddress(msg.From.EmailAddress)}
		wire.From = &from
	}
	return sendMailRequest{Message: wire, SaveToSentItems: saveToSent}
}

func wireRecipients(recipients []mailbridge.Recipient) []wireRecipient {
	if len(recipients) == 0 {
		return nil
	}
	out := make([]wireRecipient, len(recipients))
	for i, r := range recipients {
		out[i] = wireRecipient{EmailAddress: wireAddress(r.EmailAddress)}
	}
	return out
}
