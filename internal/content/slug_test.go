package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var slugInputs = []string{
	"Smart Phone X!!",
	"  --Hello   World--  ",
	"a - b",
	"Caffè Espresso",
	"snake_case Stays",
	"Dimensioni: 10 x 5 x 2 cm",
	"---",
	"",
	"già-slug",
	"Tab\tand\nnewline",
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Smart Phone X!!":       "smart-phone-x",
		"  --Hello   World--  ": "hello-world",
		"a - b":                 "a-b",
		"Caffè Espresso":        "caff-espresso",
		"snake_case Stays":      "snake_case-stays",
		"---":                   "",
		"Tab\tand\nnewline":     "tab-and-newline",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), "input %q", in)
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	for _, in := range slugInputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once), "input %q", in)
	}
}

func TestSlugifyHyphenShape(t *testing.T) {
	for _, in := range slugInputs {
		s := Slugify(in)
		assert.NotContains(t, s, "--", "input %q", in)
		assert.False(t, strings.HasPrefix(s, "-"), "input %q", in)
		assert.False(t, strings.HasSuffix(s, "-"), "input %q", in)
	}
}

func TestSEOURL(t *testing.T) {
	assert.Equal(t, "home-audio/smart-phone", SEOURL(ProductAttributes{Name: "Smart Phone", Category: "Home Audio"}))
	assert.Equal(t, "smart-phone", SEOURL(ProductAttributes{Name: "Smart Phone"}))
	assert.Equal(t, "", SEOURL(ProductAttributes{}))
}

func TestAltText(t *testing.T) {
	p := ProductAttributes{Name: "Phone", Brand: "Acme", Category: "Electronics", Features: []string{"Waterproof"}}

	assert.Equal(t, "Acme Phone - Immagine principale del prodotto Electronics", AltText(p, 0))
	assert.Equal(t, "Acme Phone - Dettaglio del prodotto Waterproof", AltText(p, 1))
	assert.Equal(t, "Acme Phone - Vista alternativa del prodotto", AltText(p, 2))
	assert.Equal(t, "Acme Phone - Electronics immagine 4", AltText(p, 3))

	p.Category = ""
	assert.Equal(t, "Acme Phone - Prodotto immagine 6", AltText(p, 5))
	assert.Equal(t, "Acme Phone - Immagine principale del prodotto", AltText(p, 0))
}

func TestAltTextWithoutBrand(t *testing.T) {
	p := ProductAttributes{Name: "Phone", Features: []string{"Waterproof", "Slim"}}
	assert.Equal(t, "Phone - Vista Slim del prodotto", AltText(p, 2))
}
