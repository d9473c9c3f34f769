// Package markdown renders post and comment bodies to HTML fragments.
// Rendering is memoized by source text so identical markdown is parsed once.
package markdown

import (
	"bytes"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Rendered output for distinct texts is small and long-lived; the bound only
// guards against pathological churn.
const cacheSize = 512

// Renderer converts markdown to HTML with a per-text memo cache.
type Renderer struct {
	md    goldmark.Markdown
	cache *lru.Cache[string, string]
}

// NewRenderer returns a GFM-flavored renderer. Raw HTML in the source is not
// passed through; bodies are user-authored.
func NewRenderer() *Renderer {
	cache, _ := lru.New[string, string](cacheSize)
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Linkify),
		),
		cache: cache,
	}
}

// Render converts text to an HTML fragment, serving repeats from cache.
func (r *Renderer) Render(text string) (string, error) {
	if html, ok := r.cache.Get(text); ok {
		return html, nil
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(text), &buf); err != nil {
		return "", err
	}
	html := buf.String()
	r.cache.Add(text, html)
	return html, nil
}
