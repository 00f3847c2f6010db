package mailbridge

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"sync"
	texttemplate "text/template"

	"github.com/yuin/goldmark"
)

// Renderer converts markdown mail templates with YAML frontmatter into
// ready-to-send subjects and HTML bodies. Parsed templates are cached; the
// renderer is safe for concurrent use.
type Renderer struct {
	fs          fs.FS
	md          goldmark.Markdown
	templateDir string

	mu    sync.RWMutex
	cache map[string]*mailTemplate
}

// mailTemplate holds a parsed template for reuse across renders.
type mailTemplate struct {
	subject *texttemplate.Template // nil when frontmatter has no Subject
	body    *texttemplate.Template
}

// RendererConfig configures the renderer.
type RendererConfig struct {
	TemplateDir string // Default: "."
}

// NewRenderer creates a renderer reading templates from the root of the
// given filesystem.
func NewRenderer(filesystem fs.FS) *Renderer {
	return NewRendererWithConfig(filesystem, RendererConfig{})
}

// NewRendererWithConfig creates a renderer with custom config.
func NewRendererWithConfig(filesystem fs.FS, cfg RendererConfig) *Renderer {
	if cfg.TemplateDir == "" {
		cfg.TemplateDir = "."
	}
	return &Renderer{
		fs:          filesystem,
		md:          goldmark.New(),
		templateDir: cfg.TemplateDir,
		cache:       make(map[string]*mailTemplate),
	}
}

// RenderedMail is the output of rendering one template with data.
type RenderedMail struct {
	Subject string // empty when the template declares no Subject
	HTML    string
	Text    string // processed markdown before HTML conversion
}

// Render executes the named template with data and converts the result to
// HTML. The subject is taken from the template's frontmatter and supports Go
// template syntax.
func (r *Renderer) Render(name string, data any) (*RenderedMail, error) {
	tmpl, err := r.getTemplate(name)
	if err != nil {
		return nil, err
	}

	var markdown bytes.Buffer
	if err := tmpl.body.Execute(&markdown, data); err != nil {
		return nil, fmt.Errorf("%w: execute %s: %v", ErrRenderFailed, name, err)
	}

	var html bytes.Buffer
	if err := r.md.Convert(markdown.Bytes(), &html); err != nil {
		return nil, fmt.Errorf("%w: convert %s: %v", ErrRenderFailed, name, err)
	}

	var subject string
	if tmpl.subject != nil {
		var buf bytes.Buffer
		if err := tmpl.subject.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("%w: execute subject of %s: %v", ErrRenderFailed, name, err)
		}
		subject = buf.String()
	}

	return &RenderedMail{
		Subject: subject,
		HTML:    html.String(),
		Text:    markdown.String(),
	}, nil
}

// getTemplate returns a cached template or parses and caches it.
func (r *Renderer) getTemplate(name string) (*mailTemplate, error) {
	r.mu.RLock()
	if tmpl, ok := r.cache[name]; ok {
		r.mu.RUnlock()
		return tmpl, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	// Double-check after acquiring write lock
	if tmpl, ok := r.cache[name]; ok {
		return tmpl, nil
	}

	content, err := fs.ReadFile(r.fs, path.Join(r.templateDir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, name, err)
	}

	parsed, err := ParseTemplate(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	body, err := texttemplate.New(name).Parse(parsed.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrRenderFailed, name, err)
	}

	tmpl := &mailTemplate{body: body}
	if raw, ok := parsed.Metadata["Subject"].(string); ok {
		subject, err := texttemplate.New(name + ":subject").Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: parse subject of %s: %v", ErrRenderFailed, name, err)
		}
		tmpl.subject = subject
	}

	r.cache[name] = tmpl
	return tmpl, nil
}
