package mailbridge

import "errors"

var (
	// ErrConfigurationMissing indicates SendMail was called before both the
	// service resource id and the service endpoint URI were set.
	ErrConfigurationMissing = errors.New("service resource id and service endpoint uri must be set before sending mail")

	// ErrAuthFailed indicates no credential resolver could be obtained for
	// the configured service resource.
	ErrAuthFailed = errors.New("failed to resolve credentials")

	// ErrSendFailed indicates transport construction or mail delivery failed.
	ErrSendFailed = errors.New("failed to send mail")

	// ErrNoRenderer indicates SendTemplate was called on a dispatcher
	// without a configured renderer.
	ErrNoRenderer = errors.New("no template renderer configured")

	// ErrTemplateNotFound indicates the template file was not found.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrRenderFailed indicates template rendering failed.
	ErrRenderFailed = errors.New("failed to render template")

	// ErrInvalidFrontmatter indicates invalid YAML frontmatter.
	ErrInvalidFrontmatter = errors.New("invalid frontmatter")
)
