package export

import (
	"bytes"
	_ "embed"
	htmltemplate "html/template"
	"strings"
	"text/template"

	"content-studio/internal/content"
)

//go:embed meta.html.tmpl
var metaTpl string

//go:embed alt.html.tmpl
var altTpl string

//go:embed card.md.tmpl
var cardTpl string

//go:embed text.tmpl
var textTpl string

var (
	metaCompiled = htmltemplate.Must(htmltemplate.New("meta").Parse(metaTpl))
	altCompiled  = htmltemplate.Must(htmltemplate.New("alt").Parse(altTpl))
	cardCompiled = template.Must(template.New("card").Parse(cardTpl))
	textCompiled = template.Must(template.New("text").Parse(textTpl))
)

// MetaHTML renders the <title> and description <meta> tags.
func MetaHTML(m content.MetaTags) (string, error) {
	var buf bytes.Buffer
	if err := metaCompiled.Execute(&buf, m); err != nil {
		return "", err
	}
	return trim(buf.String()), nil
}

// AltTagsHTML renders one <img> tag per line.
func AltTagsHTML(tags []content.ImageAlt) (string, error) {
	var buf bytes.Buffer
	if err := altCompiled.Execute(&buf, tags); err != nil {
		return "", err
	}
	return trim(buf.String()), nil
}

// CardMarkdown renders a product card as Markdown.
func CardMarkdown(c content.ProductCard) (string, error) {
	var buf bytes.Buffer
	if err := cardCompiled.Execute(&buf, c); err != nil {
		return "", err
	}
	return trim(buf.String()), nil
}

// Text renders any generated content as plain text.
func Text(c content.GeneratedContent) (string, error) {
	var buf bytes.Buffer
	if err := textCompiled.Execute(&buf, c); err != nil {
		return "", err
	}
	return trim(buf.String()), nil
}

// HTML renders the HTML snippets for content kinds that have them: meta
// and alt tags for meta-tags, <img> tags for a product card gallery, and an
// escaped paragraph otherwise.
func HTML(c content.GeneratedContent) (string, error) {
	switch c.Kind {
	case content.KindMetaTags:
		head, err := MetaHTML(c.Meta())
		if err != nil {
			return "", err
		}
		imgs, err := AltTagsHTML(c.AltTags)
		if err != nil {
			return "", err
		}
		return joinNonEmpty(head, imgs), nil
	case content.KindProductCard:
		var b strings.Builder
		b.WriteString("<h1>" + htmltemplate.HTMLEscapeString(c.Title) + "</h1>\n")
		for _, p := range c.Paragraphs {
			b.WriteString("<p>" + htmltemplate.HTMLEscapeString(p) + "</p>\n")
		}
		if c.CallToAction != "" {
			b.WriteString("<p><strong>" + htmltemplate.HTMLEscapeString(c.CallToAction) + "</strong></p>\n")
		}
		imgs, err := AltTagsHTML(c.OptimizedImages)
		if err != nil {
			return "", err
		}
		return joinNonEmpty(trim(b.String()), imgs), nil
	case content.KindShortDescription:
		return "<p>" + htmltemplate.HTMLEscapeString(c.ShortDescription) + "</p>", nil
	default:
		return "<h1>" + htmltemplate.HTMLEscapeString(c.Title) + "</h1>", nil
	}
}

// Markdown renders product cards through the card template and everything
// else as plain text.
func Markdown(c content.GeneratedContent) (string, error) {
	if c.Kind == content.KindProductCard {
		return CardMarkdown(c.Card())
	}
	return Text(c)
}

func trim(s string) string {
	return strings.TrimRight(s, " \n")
}

func joinNonEmpty(parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "\n")
}
