package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"content-studio/internal/content"

	"github.com/spf13/pflag"
)

// styleFlags are the per-call style options shared by generate and submit.
// Only flags the user set override the configured style.
type styleFlags struct {
	fs *pflag.FlagSet

	tone, target, emphasis                             string
	minChars, maxChars, metaLength, paragraphs, perPar int
	keywords                                           []string
	suggested                                          []int
	sections                                           []string
	noKeywords, noBrand, noCTA, noImages, noBenefits   bool
}

func addStyleFlags(fs *pflag.FlagSet) *styleFlags {
	f := &styleFlags{fs: fs}
	fs.StringVar(&f.tone, "tone", "", "tone: formal, colloquial, technical, creative")
	fs.StringVar(&f.target, "target", "", "target audience: general, technical, business, casual")
	fs.StringVar(&f.emphasis, "emphasis", "", "product card emphasis: benefits, technical, balanced")
	fs.IntVar(&f.minChars, "min-chars", 0, "short description minimum length")
	fs.IntVar(&f.maxChars, "max-chars", 0, "short description maximum length")
	fs.IntVar(&f.metaLength, "meta-length", 0, "meta description maximum length")
	fs.IntVar(&f.paragraphs, "paragraphs", 0, "product card paragraph count")
	fs.IntVar(&f.perPar, "chars-per-paragraph", 0, "product card paragraph maximum length")
	fs.StringSliceVarP(&f.keywords, "keyword", "k", nil, "custom keyword (repeatable, comma-separated)")
	fs.IntSliceVar(&f.suggested, "suggested", nil, "select suggested keywords by number (see `keywords`)")
	fs.StringArrayVar(&f.sections, "section", nil, "custom product card section (repeatable)")
	fs.BoolVar(&f.noKeywords, "no-keywords", false, "leave keywords out of meta tags")
	fs.BoolVar(&f.noBrand, "no-brand", false, "leave the brand out of meta tags")
	fs.BoolVar(&f.noCTA, "no-cta", false, "omit the product card call to action")
	fs.BoolVar(&f.noImages, "no-images", false, "omit the product card images")
	fs.BoolVar(&f.noBenefits, "no-benefits", false, "do not highlight benefits in short descriptions")
	return f
}

// selectedKeywords resolves --suggested numbers against the suggested list
// and appends the custom keywords.
func (f *styleFlags) selectedKeywords(suggested []string) ([]string, error) {
	out := make([]string, 0, len(f.suggested)+len(f.keywords))
	for _, n := range f.suggested {
		if n < 1 || n > len(suggested) {
			return nil, fmt.Errorf("suggested keyword %d out of range 1-%d", n, len(suggested))
		}
		out = append(out, suggested[n-1])
	}
	out = append(out, f.keywords...)
	return content.SelectKeywords(out), nil
}

// apply overlays the changed flags onto base.
func (f *styleFlags) apply(base content.StyleConfig, suggested []string) (content.StyleConfig, error) {
	s := base
	var err error
	if f.fs.Changed("tone") {
		if s.Tone, err = content.ParseTone(f.tone); err != nil {
			return s, err
		}
	}
	if f.fs.Changed("target") {
		if s.Target, err = content.ParseTarget(f.target); err != nil {
			return s, err
		}
	}
	if f.fs.Changed("emphasis") {
		if s.Emphasis, err = content.ParseEmphasis(f.emphasis); err != nil {
			return s, err
		}
	}
	setInt(f.fs, "min-chars", f.minChars, &s.MinChars)
	setInt(f.fs, "max-chars", f.maxChars, &s.MaxChars)
	setInt(f.fs, "meta-length", f.metaLength, &s.MetaDescriptionLength)
	setInt(f.fs, "paragraphs", f.paragraphs, &s.ParagraphCount)
	setInt(f.fs, "chars-per-paragraph", f.perPar, &s.CharsPerParagraph)

	if f.fs.Changed("keyword") || f.fs.Changed("suggested") {
		if s.Keywords, err = f.selectedKeywords(suggested); err != nil {
			return s, err
		}
	}
	if f.fs.Changed("section") {
		s.CustomSections = f.sections
	}
	s.IncludeKeywords = s.IncludeKeywords && !f.noKeywords
	s.IncludeBrand = s.IncludeBrand && !f.noBrand
	s.IncludeCTA = s.IncludeCTA && !f.noCTA
	s.IncludeImages = s.IncludeImages && !f.noImages
	s.HighlightBenefits = s.HighlightBenefits && !f.noBenefits
	return s.Normalize(), nil
}

// form encodes the changed flags as job options for the queue.
// Custom sections are joined with blank lines, as content.StyleFromForm expects.
func (f *styleFlags) form(suggested []string) (map[string]string, error) {
	m := map[string]string{}
	for flag, key := range map[string]string{
		"tone":     content.FormTone,
		"target":   content.FormTarget,
		"emphasis": content.FormEmphasis,
	} {
		if f.fs.Changed(flag) {
			m[key] = f.fs.Lookup(flag).Value.String()
		}
	}
	for flag, key := range map[string]string{
		"min-chars":           content.FormMinChars,
		"max-chars":           content.FormMaxChars,
		"meta-length":         content.FormMetaDescriptionLength,
		"paragraphs":          content.FormParagraphCount,
		"chars-per-paragraph": content.FormCharsPerParagraph,
	} {
		if f.fs.Changed(flag) {
			m[key] = f.fs.Lookup(flag).Value.String()
		}
	}
	if f.fs.Changed("keyword") || f.fs.Changed("suggested") {
		kw, err := f.selectedKeywords(suggested)
		if err != nil {
			return nil, err
		}
		m[content.FormKeywords] = strings.Join(kw, ",")
	}
	if f.fs.Changed("section") {
		m[content.FormCustomSections] = strings.Join(f.sections, "\n\n")
	}
	for flag, key := range map[string]string{
		"no-keywords": content.FormIncludeKeywords,
		"no-brand":    content.FormIncludeBrand,
		"no-cta":      content.FormIncludeCTA,
		"no-images":   content.FormIncludeImages,
		"no-benefits": content.FormHighlightBenefits,
	} {
		if f.fs.Changed(flag) {
			off, _ := strconv.ParseBool(f.fs.Lookup(flag).Value.String())
			m[key] = strconv.FormatBool(!off)
		}
	}
	return m, nil
}

func setInt(fs *pflag.FlagSet, name string, v int, dst *int) {
	if fs.Changed(name) {
		*dst = v
	}
}
