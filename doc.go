// Package mailbridge composes and sends email through a hosted mail service
// on behalf of an already signed-in user.
//
// The package is thin orchestration: it validates that the service resource id
// and endpoint URI are configured, obtains a credential resolver from an
// authentication provider, constructs a transport bound to the endpoint, and
// dispatches the message asynchronously. The caller observes the outcome
// through a Delivery, a single-assignment future that resolves exactly once.
//
// # Architecture
//
// The package consists of four main components:
//
//   - Dispatcher: validates configuration and orchestrates each send
//   - Transport: interface that mail service clients implement
//   - Delivery: asynchronous result of one dispatched send
//   - Renderer: converts markdown templates with YAML frontmatter to HTML bodies
//
// Transports live in subpackages (outlook, gmail, resend) and are plugged in
// through a TransportFactory. Credential resolution is abstracted behind the
// auth subpackage so token acquisition flows stay outside this package.
//
// # Usage
//
// Basic usage with the Outlook transport and a static token:
//
//	import (
//		"context"
//		"os"
//
//		"github.com/mailbridge/mailbridge"
//		"github.com/mailbridge/mailbridge/auth"
//		"github.com/mailbridge/mailbridge/outlook"
//	)
//
//	func main() {
//		ctx := context.Background()
//
//		creds, err := auth.NewStaticProvider(os.Getenv("MAIL_ACCESS_TOKEN"))
//		if err != nil {
//			panic(err)
//		}
//
//		d := mailbridge.New(creds, outlook.Factory, mailbridge.WithConfig(mailbridge.Config{
//			ServiceResourceID:  "https://outlook.office365.com/",
//			ServiceEndpointURI: "https://outlook.office365.com/api/v1.0",
//		}))
//
//		delivery := d.SendMail(ctx, "user@example.com", "Welcome", "<p>Hello!</p>")
//		if err := delivery.Wait(ctx); err != nil {
//			panic(err)
//		}
//	}
//
// Both service settings can also be supplied after construction, for flows
// where the endpoint is discovered at runtime:
//
//	d.SetServiceResourceID(resourceID)
//	d.SetServiceEndpointURI(endpointURI)
//	if d.IsReady() {
//		d.SendMail(ctx, to, subject, body)
//	}
//
// # Sending
//
// SendMail never blocks on the network and never returns an error directly.
// Every failure, including calling it before the service settings are
// configured, surfaces through the returned Delivery:
//
//	delivery := d.SendMail(ctx, to, subject, body)
//	select {
//	case <-delivery.Done():
//		if err := delivery.Err(); err != nil {
//			// inspect with errors.Is: ErrConfigurationMissing, ErrAuthFailed, ErrSendFailed
//		}
//	case <-ctx.Done():
//	}
//
// On success the provider-assigned message id is available via
// Delivery.MessageID.
//
// # Templates
//
// Templates are markdown files with optional YAML frontmatter:
//
//	---
//	Subject: Welcome {{.Name}}!
//	---
//
//	# Welcome
//
//	Hello {{.Name}}, glad to have you on board.
//
// Configure a Renderer with WithRenderer and use SendTemplate to render and
// dispatch in one call. Subject fields support Go template syntax.
//
// # Errors
//
// The package defines several error variables for specific failure cases:
//
//   - ErrConfigurationMissing: SendMail called before both service settings were set
//   - ErrAuthFailed: credential resolver could not be obtained
//   - ErrSendFailed: transport construction or mail delivery failed
//   - ErrNoRenderer: SendTemplate called without a configured renderer
//   - ErrTemplateNotFound: template file not found
//   - ErrRenderFailed: template rendering failed
//   - ErrInvalidFrontmatter: invalid YAML frontmatter
package mailbridge
