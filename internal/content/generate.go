package content

import (
	"strings"
	"unicode/utf8"
)

// ImageAlt pairs an image URL with its alt text.
type ImageAlt struct {
	URL     string `json:"url" yaml:"url"`
	AltText string `json:"alt_text" yaml:"alt_text"`
}

// ProductCard is the output of GenerateProductCard.
type ProductCard struct {
	Title            string     `json:"title"`
	ShortDescription string     `json:"short_description"`
	Paragraphs       []string   `json:"paragraphs"`
	CallToAction     string     `json:"call_to_action,omitempty"`
	OptimizedImages  []ImageAlt `json:"optimized_images,omitempty"`
}

// MetaTags is the output of GenerateMetaTags.
type MetaTags struct {
	MetaTitle       string     `json:"meta_title"`
	MetaDescription string     `json:"meta_description"`
	AltTags         []ImageAlt `json:"alt_tags"`
	SEOURL          string     `json:"seo_url"`
}

// GeneratedContent is the kind-agnostic result of Generate. Only the fields
// of the requested kind are set.
type GeneratedContent struct {
	Kind             Kind       `json:"kind"`
	Title            string     `json:"title,omitempty"`
	ShortDescription string     `json:"short_description,omitempty"`
	Paragraphs       []string   `json:"paragraphs,omitempty"`
	CallToAction     string     `json:"call_to_action,omitempty"`
	OptimizedImages  []ImageAlt `json:"optimized_images,omitempty"`
	MetaTitle        string     `json:"meta_title,omitempty"`
	MetaDescription  string     `json:"meta_description,omitempty"`
	SEOURL           string     `json:"seo_url,omitempty"`
	AltTags          []ImageAlt `json:"alt_tags,omitempty"`
}

// Card returns the product-card view of c.
func (c GeneratedContent) Card() ProductCard {
	return ProductCard{
		Title:            c.Title,
		ShortDescription: c.ShortDescription,
		Paragraphs:       c.Paragraphs,
		CallToAction:     c.CallToAction,
		OptimizedImages:  c.OptimizedImages,
	}
}

// Meta returns the meta-tags view of c.
func (c GeneratedContent) Meta() MetaTags {
	return MetaTags{
		MetaTitle:       c.MetaTitle,
		MetaDescription: c.MetaDescription,
		AltTags:         c.AltTags,
		SEOURL:          c.SEOURL,
	}
}

// Generate dispatches on kind. An unknown kind yields a title.
func Generate(kind Kind, p ProductAttributes, style StyleConfig) GeneratedContent {
	switch kind {
	case KindShortDescription:
		return GeneratedContent{Kind: kind, ShortDescription: GenerateShortDescription(p, style)}
	case KindProductCard:
		c := GenerateProductCard(p, style)
		return GeneratedContent{
			Kind:             kind,
			Title:            c.Title,
			ShortDescription: c.ShortDescription,
			Paragraphs:       c.Paragraphs,
			CallToAction:     c.CallToAction,
			OptimizedImages:  c.OptimizedImages,
		}
	case KindMetaTags:
		m := GenerateMetaTags(p, style)
		return GeneratedContent{
			Kind:            kind,
			MetaTitle:       m.MetaTitle,
			MetaDescription: m.MetaDescription,
			SEOURL:          m.SEOURL,
			AltTags:         m.AltTags,
		}
	default:
		return GeneratedContent{Kind: KindTitle, Title: GenerateTitle(p, style)}
	}
}

// GenerateTitle builds a product title from the tone template plus the first
// two selected keywords.
func GenerateTitle(p ProductAttributes, style StyleConfig) string {
	f := resolve(p)
	title := titleTemplates.pick(style.Tone)(f)
	if kw := firstN(SelectKeywords(style.Keywords), 2); len(kw) > 0 {
		title += " - " + strings.Join(kw, " ")
	}
	return collapse(title)
}

// GenerateShortDescription builds a preview description fitted to
// style.MinChars and style.MaxChars.
func GenerateShortDescription(p ProductAttributes, style StyleConfig) string {
	style = style.Normalize()
	f := resolve(p)
	return shortDescription(f, style)
}

func shortDescription(f fields, style StyleConfig) string {
	parts := []string{descriptionOpening(style.Tone, style.Target)(f)}
	if style.HighlightBenefits {
		switch {
		case len(f.benefits) > 0:
			parts = append(parts, "Offre "+strings.Join(firstN(f.benefits, 2), " e ")+".")
		case len(f.features) > 0:
			parts = append(parts, "Caratterizzato da "+strings.Join(firstN(f.features, 2), " e ")+".")
		}
	}
	parts = append(parts, descriptionClosing(style.Target))

	filler := or(f.brand, "Questo prodotto") + strings.TrimPrefix(genericFiller, "Questo prodotto")
	return FitWith(collapse(strings.Join(parts, " ")), Budget{Min: style.MinChars, Max: style.MaxChars}, filler)
}

// GenerateProductCard builds a complete product card.
// Paragraphs are composed intro, benefits, technical, custom sections, then
// filler up to style.ParagraphCount; each is fitted to style.CharsPerParagraph.
func GenerateProductCard(p ProductAttributes, style StyleConfig) ProductCard {
	style = style.Normalize()
	f := resolve(p)

	card := ProductCard{
		Title:            collapse(cardTitleTemplates.pick(style.Tone)(f)),
		ShortDescription: collapse(f.brand + " " + f.name + " è un " + f.noun() + " che offre " + joinOr(firstN(f.benefits, 2), " e ", "qualità e affidabilità") + ". Ideale per ogni esigenza."),
	}

	paragraphs := []string{collapse(cardIntroTemplates.pick(style.Tone)(f))}
	if style.Emphasis == EmphasisBenefits || style.Emphasis == EmphasisBalanced {
		paragraphs = append(paragraphs, collapse(cardBenefitsParagraph(f)))
	}
	if style.Emphasis == EmphasisTechnical || style.Emphasis == EmphasisBalanced {
		paragraphs = append(paragraphs, collapse(cardTechnicalParagraph(f)))
	}
	for _, s := range style.CustomSections {
		if strings.TrimSpace(s) != "" {
			paragraphs = append(paragraphs, s)
		}
	}
	for len(paragraphs) < style.ParagraphCount {
		paragraphs = append(paragraphs, collapse(cardFillerParagraph(f)))
	}

	paragraphs = paragraphs[:style.ParagraphCount]
	card.Paragraphs = make([]string, len(paragraphs))
	for i, para := range paragraphs {
		card.Paragraphs[i] = Fit(para, Budget{Max: style.CharsPerParagraph})
	}

	if style.IncludeCTA {
		card.CallToAction = collapse(cardCallToAction(f))
	}
	if style.IncludeImages {
		card.OptimizedImages = cardImages(f)
	}
	return card
}

// GenerateMetaTags builds the meta title, meta description, SEO URL and one
// alt text per product image.
func GenerateMetaTags(p ProductAttributes, style StyleConfig) MetaTags {
	style = style.Normalize()
	f := resolve(p)

	var keywords []string
	if style.IncludeKeywords {
		keywords = SelectKeywords(style.Keywords)
	}

	title := f.name + " - " + or(f.category, "Prodotto")
	if style.IncludeBrand && f.brand != "" {
		title = f.brand + " " + title
	}
	if len(keywords) > 0 {
		title += " | " + keywords[0]
	}

	return MetaTags{
		MetaTitle:       Fit(collapse(title), Budget{Max: MetaTitleMax}),
		MetaDescription: Fit(metaDescription(f, style.IncludeBrand, keywords), Budget{Max: style.MetaDescriptionLength}),
		AltTags:         altTags(f),
		SEOURL:          seoURL(f),
	}
}

func metaDescription(f fields, includeBrand bool, keywords []string) string {
	if f.description != "" {
		return f.description
	}
	parts := []string{or(f.name, "Prodotto"), prefixed("di categoria ", f.category)}
	switch {
	case len(f.benefits) > 0:
		parts = append(parts, "che offre "+strings.Join(firstN(f.benefits, 2), " e ")+".")
	case len(f.features) > 0:
		parts = append(parts, "con "+strings.Join(firstN(f.features, 2), " e ")+".")
	default:
		parts = append(parts, "di alta qualità.")
	}
	if includeBrand && f.brand != "" {
		parts = append(parts, "Scopri "+f.brand+" per prodotti di eccellenza.")
	}
	if len(keywords) > 0 {
		parts = append(parts, strings.Join(firstN(keywords, 2), ", ")+".")
	}
	return collapse(strings.Join(parts, " "))
}

// SelectKeywords trims keywords, drops blanks and duplicates, and keeps the
// first-seen order.
func SelectKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	seen := make(map[string]struct{}, len(keywords))
	for _, k := range keywords {
		k = clean(k)
		if k == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// ParseKeywordList splits a comma-separated keyword list.
func ParseKeywordList(s string) []string {
	return SelectKeywords(strings.Split(s, ","))
}

// Length reports the length of s as counted by the budgets.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}

func joinOr(list []string, sep, fallback string) string {
	if len(list) == 0 {
		return fallback
	}
	return strings.Join(list, sep)
}
