package mailbridge

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	fs := fstest.MapFS{
		"welcome.md": &fstest.MapFile{
			Data: []byte(`---
Subject: Welcome {{.Name}}!
---
Hello **{{.Name}}**, glad to have you.
`),
		},
	}

	r := NewRenderer(fs)
	mail, err := r.Render("welcome.md", map[string]string{"Name": "Alice"})

	require.NoError(t, err)
	require.Equal(t, "Welcome Alice!", mail.Subject)
	require.Contains(t, mail.HTML, "<strong>Alice</strong>")
	require.Contains(t, mail.Text, "**Alice**")
	require.NotContains(t, mail.HTML, "{{")
}

func TestRenderer_Render_NoFrontmatter(t *testing.T) {
	t.Parallel()

	fs := fstest.MapFS{
		"plain.md": &fstest.MapFile{
			Data: []byte(`Just a body with {{.Value}}.`),
		},
	}

	r := NewRenderer(fs)
	mail, err := r.Render("plain.md", map[string]string{"Value": "data"})

	require.NoError(t, err)
	require.Empty(t, mail.Subject)
	require.Contains(t, mail.HTML, "Just a body with data.")
}

func TestRenderer_Render_TemplateNotFound(t *testing.T) {
	t.Parallel()

	r := NewRenderer(fstest.MapFS{})
	mail, err := r.Render("missing.md", nil)

	require.ErrorIs(t, err, ErrTemplateNotFound)
	require.Nil(t, mail)
}

func TestRenderer_Render_BadBodyTemplate(t *testing.T) {
	t.Parallel()

	fs := fstest.MapFS{
		"broken.md": &fstest.MapFile{
			Data: []byte(`Hello {{.Unclosed`),
		},
	}

	r := NewRenderer(fs)
	_, err := r.Render("broken.md", nil)

	require.ErrorIs(t, err, ErrRenderFailed)
}

func TestRenderer_Render_BadSubjectTemplate(t *testing.T) {
	t.Parallel()

	fs := fstest.MapFS{
		"broken.md": &fstest.MapFile{
			Data: []byte(`---
Subject: "Hi {{.Unclosed"
---
Body
`),
		},
	}

	r := NewRenderer(fs)
	_, err := r.Render("broken.md", nil)

	require.ErrorIs(t, err, ErrRenderFailed)
}

func TestRenderer_Render_ExecuteFailure(t *testing.T) {
	t.Parallel()

	fs := fstest.MapFS{
		"strict.md": &fstest.MapFile{
			Data: []byte(`Hello {{.Name.Missing}}`),
		},
	}

	r := NewRenderer(fs)
	_, err := r.Render("strict.md", map[string]string{"Name": "Alice"})

	require.ErrorIs(t, err, ErrRenderFailed)
}

func TestRenderer_Render_CachesTemplates(t *testing.T) {
	t.Parallel()

	fs := fstest.MapFS{
		"note.md": &fstest.MapFile{
			Data: []byte(`Value: {{.V}}`),
		},
	}

	r := NewRenderer(fs)

	first, err := r.Render("note.md", map[string]string{"V": "one"})
	require.NoError(t, err)
	require.Contains(t, first.HTML, "one")

	// Fresh data flows through the cached template.
	second, err := r.Render("note.md", map[string]string{"V": "two"})
	require.NoError(t, err)
	require.Contains(t, second.HTML, "two")
	require.NotContains(t, second.HTML, "one")
}

func TestRenderer_Render_TemplateDir(t *testing.T) {
	t.Parallel()

	fs := fstest.MapFS{
		"emails/welcome.md": &fstest.MapFile{
			Data: []byte(`Hi there`),
		},
	}

	r := NewRendererWithConfig(fs, RendererConfig{TemplateDir: "emails"})
	mail, err := r.Render("welcome.md", nil)

	require.NoError(t, err)
	require.Contains(t, mail.HTML, "Hi there")
}
