package content

import (
	"fmt"
	"strings"
)

// Slugify lowercases s, joins whitespace-separated words with hyphens,
// strips every character outside [A-Za-z0-9_-], collapses hyphen runs and
// trims hyphens from both ends. Slugify(Slugify(s)) == Slugify(s).
func Slugify(s string) string {
	s = strings.Join(strings.Fields(strings.ToLower(s)), "-")
	var b strings.Builder
	b.Grow(len(s))
	prevHyphen := false
	for _, r := range s {
		switch {
		case r == '-':
			if prevHyphen {
				continue
			}
			prevHyphen = true
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			prevHyphen = false
		default:
			continue
		}
		b.WriteRune(r)
	}
	return strings.Trim(b.String(), "-")
}

// SEOURL returns the slugified name, prefixed with "<category-slug>/" when a
// category is present.
func SEOURL(p ProductAttributes) string {
	return seoURL(resolve(p))
}

func seoURL(f fields) string {
	u := Slugify(f.name)
	if f.category != "" {
		u = Slugify(f.category) + "/" + u
	}
	return u
}

// AltText builds the SEO alt text for the image at position index.
func AltText(p ProductAttributes, index int) string {
	return altText(resolve(p), index)
}

func altText(f fields, index int) string {
	head := f.brand + " " + f.name
	var s string
	switch index {
	case 0:
		s = head + " - Immagine principale del prodotto " + f.category
	case 1:
		s = head + " - Dettaglio del prodotto " + f.feature(0, "")
	case 2:
		s = head + " - Vista " + f.feature(1, "alternativa") + " del prodotto"
	default:
		s = fmt.Sprintf("%s - %s immagine %d", head, or(f.category, "Prodotto"), index+1)
	}
	return collapse(s)
}

func altTags(f fields) []ImageAlt {
	out := make([]ImageAlt, 0, len(f.images))
	for i, img := range f.images {
		out = append(out, ImageAlt{URL: img, AltText: altText(f, i)})
	}
	return out
}

// Product-card gallery. The card shows at most three images and falls back
// to placeholders when the product has none.
var (
	cardImageViews = []string{"Vista principale", "Dettaglio prodotto", "In uso"}

	placeholderImages = []string{
		"https://via.placeholder.com/600x400?text=Immagine+Principale",
		"https://via.placeholder.com/600x400?text=Dettaglio",
		"https://via.placeholder.com/600x400?text=In+Uso",
	}
)

func cardImages(f fields) []ImageAlt {
	urls := firstN(f.images, len(cardImageViews))
	if len(urls) == 0 {
		urls = placeholderImages
	}
	out := make([]ImageAlt, 0, len(urls))
	for i, u := range urls {
		out = append(out, ImageAlt{
			URL:     u,
			AltText: collapse(f.brand + " " + f.name + " - " + cardImageViews[i]),
		})
	}
	return out
}
