package mailbridge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/mailbridge/mailbridge/auth"
	"github.com/mailbridge/mailbridge/logger"
)

// Copies of sent mail are always kept in the sender's sent folder.
const saveToSentItems = true

// Dispatcher validates service settings and orchestrates asynchronous mail
// sends. It holds no persisted state; the two service settings are the only
// mutable fields and may be replaced at any time via the setters.
type Dispatcher struct {
	creds     auth.Provider
	transport TransportFactory
	renderer  *Renderer
	log       *slog.Logger

	mu  sync.RWMutex
	cfg Config
}

// New creates a Dispatcher with the given credential provider and transport
// factory. Service settings can be supplied up front with WithConfig or
// later through the setters.
func New(creds auth.Provider, transport TransportFactory, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		creds:     creds,
		transport: transport,
		log:       logger.NewNope(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SetServiceResourceID replaces the resource id credentials are scoped to.
// The new value overwrites the previous one unconditionally.
func (d *Dispatcher) SetServiceResourceID(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cfg.ServiceResourceID = id
}

// SetServiceEndpointURI replaces the mail service endpoint.
// The new value overwrites the previous one unconditionally.
func (d *Dispatcher) SetServiceEndpointURI(uri string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cfg.ServiceEndpointURI = uri
}

// IsReady reports whether both service settings are non-empty and sends can
// be dispatched.
func (d *Dispatcher) IsReady() bool {
	return len(d.config().missingFields()) == 0
}

func (d *Dispatcher) config() Config {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.cfg
}

// SendMail composes a single-recipient HTML message and dispatches it. The
// call never blocks on the network and never returns an error directly;
// every failure resolves the returned Delivery. The recipient address is
// passed through without validation.
//
// Sends attempted before both service settings are set resolve immediately
// with ErrConfigurationMissing and touch no collaborator.
func (d *Dispatcher) SendMail(ctx context.Context, to, subject, body string) *Delivery {
	dl := newDelivery()
	log := d.log.With(
		slog.String("dispatch_id", dl.ID()),
		slog.String("to", to),
	)

	cfg := d.config()
	if missing := cfg.missingFields(); len(missing) > 0 {
		err := fmt.Errorf("%w: %s not set", ErrConfigurationMissing, strings.Join(missing, ", "))
		log.ErrorContext(ctx, "mail rejected", slog.String("error", err.Error()))
		dl.resolve("", err)
		return dl
	}

	creds, err := d.creds.Resolver(ctx, cfg.ServiceResourceID)
	if err != nil {
		err = errors.Join(ErrAuthFailed, err)
		log.ErrorContext(ctx, "credential resolution failed", slog.String("error", err.Error()))
		dl.resolve("", err)
		return dl
	}

	client, err := d.transport(ctx, cfg.ServiceEndpointURI, creds)
	if err != nil {
		err = errors.Join(ErrSendFailed, err)
		log.ErrorContext(ctx, "transport construction failed", slog.String("error", err.Error()))
		dl.resolve("", err)
		return dl
	}

	go d.dispatch(ctx, log, client, NewMessage(to, subject, body), dl)
	return dl
}

// SendTemplate renders a markdown template and dispatches the result as an
// HTML message. The subject comes from the template's frontmatter. Requires
// a renderer configured with WithRenderer; render failures resolve the
// Delivery like any other send failure.
func (d *Dispatcher) SendTemplate(ctx context.Context, to, template string, data any) *Delivery {
	if d.renderer == nil {
		dl := newDelivery()
		d.log.ErrorContext(ctx, "mail rejected",
			slog.String("dispatch_id", dl.ID()),
			slog.String("error", ErrNoRenderer.Error()),
		)
		dl.resolve("", ErrNoRenderer)
		return dl
	}

	mail, err := d.renderer.Render(template, data)
	if err != nil {
		dl := newDelivery()
		d.log.ErrorContext(ctx, "mail rejected",
			slog.String("dispatch_id", dl.ID()),
			slog.String("template", template),
			slog.String("error", err.Error()),
		)
		dl.resolve("", err)
		return dl
	}

	return d.SendMail(ctx, to, mail.Subject, mail.HTML)
}

// dispatch performs the remote call and resolves the delivery. It runs on
// its own goroutine; a panicking transport resolves the delivery instead of
// crashing the process.
func (d *Dispatcher) dispatch(ctx context.Context, log *slog.Logger, client Transport, msg *Message, dl *Delivery) {
	defer func() {
		if rec := recover(); rec != nil {
			err := errors.Join(ErrSendFailed, fmt.Errorf("transport panic: %v", rec))
			log.ErrorContext(ctx, "mail send failed", slog.String("error", err.Error()))
			dl.resolve("", err)
		}
	}()

	messageID, err := client.SendMessage(ctx, msg, saveToSentItems)
	if err != nil {
		err = errors.Join(ErrSendFailed, err)
		log.ErrorContext(ctx, "mail send failed", slog.String("error", err.Error()))
		dl.resolve("", err)
		return
	}

	log.InfoContext(ctx, "mail sent", slog.String("message_id", messageID))
	dl.resolve(messageID, nil)
}
