package export

import (
	"testing"
	"time"

	"content-studio/internal/content"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetaHTML(t *testing.T) {
	got, err := MetaHTML(content.MetaTags{MetaTitle: "Acme Phone - Electronics", MetaDescription: "Great phone."})
	require.NoError(t, err)
	assert.Equal(t, "<title>Acme Phone - Electronics</title>\n<meta name=\"description\" content=\"Great phone.\" />", got)
}

func TestMetaHTMLEscapesAttribute(t *testing.T) {
	got, err := MetaHTML(content.MetaTags{MetaTitle: "T", MetaDescription: `"quoted" & <b>`})
	require.NoError(t, err)
	assert.Contains(t, got, `content="&#34;quoted&#34; &amp; &lt;b&gt;"`)
}

func TestAltTagsHTML(t *testing.T) {
	got, err := AltTagsHTML([]content.ImageAlt{
		{URL: "a.jpg", AltText: "Acme Phone - Immagine principale"},
		{URL: "b.jpg", AltText: "Acme Phone - Dettaglio"},
	})
	require.NoError(t, err)
	assert.Equal(t, "<img src=\"a.jpg\" alt=\"Acme Phone - Immagine principale\" />\n<img src=\"b.jpg\" alt=\"Acme Phone - Dettaglio\" />", got)

	got, err = AltTagsHTML(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCardMarkdown(t *testing.T) {
	got, err := CardMarkdown(content.ProductCard{
		Title:            "T",
		ShortDescription: "S",
		Paragraphs:       []string{"P1", "P2"},
		CallToAction:     "C",
		OptimizedImages:  []content.ImageAlt{{URL: "u.jpg", AltText: "a"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "# T\n\n_S_\n\nP1\n\nP2\n\n**C**\n\n![a](u.jpg)", got)

	got, err = CardMarkdown(content.ProductCard{Title: "T", ShortDescription: "S", Paragraphs: []string{"P1"}})
	require.NoError(t, err)
	assert.Equal(t, "# T\n\n_S_\n\nP1", got)
}

func TestTextAndHTMLForEveryKind(t *testing.T) {
	p := content.ProductAttributes{Name: "Phone", Brand: "Acme", Category: "Electronics", Images: []string{"a.jpg"}}
	style := content.DefaultStyle()
	for _, kind := range content.Kinds {
		c := content.Generate(kind, p, style)

		txt, err := Text(c)
		require.NoError(t, err, kind)
		assert.NotEmpty(t, txt, kind)

		html, err := HTML(c)
		require.NoError(t, err, kind)
		assert.NotEmpty(t, html, kind)

		md, err := Markdown(c)
		require.NoError(t, err, kind)
		assert.NotEmpty(t, md, kind)
	}
}

func TestHTMLMetaTags(t *testing.T) {
	c := content.Generate(content.KindMetaTags, content.ProductAttributes{Name: "Phone", Brand: "Acme", Category: "Electronics", Images: []string{"a.jpg"}}, content.DefaultStyle())
	got, err := HTML(c)
	require.NoError(t, err)
	assert.Contains(t, got, "<title>Acme Phone - Electronics</title>\n")
	assert.Contains(t, got, "\n<img src=\"a.jpg\" alt=\"Acme Phone - Immagine principale del prodotto Electronics\" />")
}

func TestExpandVars(t *testing.T) {
	now := time.Date(2025, 10, 24, 23, 30, 0, 0, time.UTC)
	got := ExpandVars("out/{.Slug}-{.Kind}-{.CurrentDate}.md", Vars{Now: now, Slug: "electronics/phone", Kind: "meta-tags"})
	assert.Equal(t, "out/electronics-phone-meta-tags-2025-10-24.md", got)

	assert.Equal(t, "product.txt", ExpandVars("{.Slug}.txt", Vars{Now: now}))
	assert.Equal(t, "", ExpandVars("", Vars{}))
}
