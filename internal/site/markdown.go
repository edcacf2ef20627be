package site

import (
	"bytes"
	"embed"

	"github.com/a-h/templ"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"

	"catalogsite/views/models"
)

//go:embed copy/*.md
var copyFS embed.FS

// Markdown renders the site's own page copy. Raw HTML in the source is
// dropped by goldmark and the output is sanitized before it is mounted.
// Catalog content is never passed through it; cards escape that as text.
type Markdown struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewMarkdown() *Markdown {
	return &Markdown{
		md:     goldmark.New(goldmark.WithRendererOptions(html.WithHardWraps())),
		policy: bluemonday.UGCPolicy(),
	}
}

// Render converts content to sanitized HTML; on a conversion error the escaped text is returned.
func (m *Markdown) Render(content string) string {
	var buf bytes.Buffer
	if err := m.md.Convert([]byte(content), &buf); err != nil {
		return templ.EscapeString(content)
	}
	return string(m.policy.SanitizeBytes(buf.Bytes()))
}

// pageCopy is the static prose for the About and Contact pages.
type pageCopy struct {
	about   models.Prose
	contact models.Prose
}

func loadCopy(m *Markdown) (pageCopy, error) {
	about, err := copyFS.ReadFile("copy/about.md")
	if err != nil {
		return pageCopy{}, err
	}
	contact, err := copyFS.ReadFile("copy/contact.md")
	if err != nil {
		return pageCopy{}, err
	}
	return pageCopy{
		about:   models.Prose{HTML: m.Render(string(about))},
		contact: models.Prose{HTML: m.Render(string(contact))},
	}, nil
}
