package content

import (
	"strconv"
	"strings"
)

// Form keys understood by StyleFromForm.
const (
	FormTone                  = "tone"
	FormTarget                = "target"
	FormEmphasis              = "emphasis"
	FormMinChars              = "min_chars"
	FormMaxChars              = "max_chars"
	FormMetaDescriptionLength = "meta_description_length"
	FormParagraphCount        = "paragraph_count"
	FormCharsPerParagraph     = "chars_per_paragraph"
	FormIncludeKeywords       = "include_keywords"
	FormIncludeBrand          = "include_brand"
	FormIncludeCTA            = "include_cta"
	FormIncludeImages         = "include_images"
	FormHighlightBenefits     = "highlight_benefits"
	FormKeywords              = "keywords"
	FormCustomSections        = "custom_sections"
)

// StyleFromForm overlays string-valued form options onto base and returns
// the normalized result. Unknown keys are ignored. Non-numeric budgets
// coerce to their floor; unparseable booleans keep the base value.
// Keywords are comma-separated; custom sections are separated by blank lines.
func StyleFromForm(base StyleConfig, form map[string]string) StyleConfig {
	s := base
	for key, raw := range form {
		v := strings.TrimSpace(raw)
		switch key {
		case FormTone:
			s.Tone = Tone(strings.ToLower(v))
		case FormTarget:
			s.Target = Target(strings.ToLower(v))
		case FormEmphasis:
			s.Emphasis = Emphasis(strings.ToLower(v))
		case FormMinChars:
			s.MinChars = CoerceInt(v, MinCharsFloor)
		case FormMaxChars:
			s.MaxChars = CoerceInt(v, 0)
		case FormMetaDescriptionLength:
			s.MetaDescriptionLength = CoerceInt(v, MetaDescriptionLengthFloor)
		case FormParagraphCount:
			s.ParagraphCount = CoerceInt(v, ParagraphCountFloor)
		case FormCharsPerParagraph:
			s.CharsPerParagraph = CoerceInt(v, CharsPerParagraphFloor)
		case FormIncludeKeywords:
			s.IncludeKeywords = coerceBool(v, s.IncludeKeywords)
		case FormIncludeBrand:
			s.IncludeBrand = coerceBool(v, s.IncludeBrand)
		case FormIncludeCTA:
			s.IncludeCTA = coerceBool(v, s.IncludeCTA)
		case FormIncludeImages:
			s.IncludeImages = coerceBool(v, s.IncludeImages)
		case FormHighlightBenefits:
			s.HighlightBenefits = coerceBool(v, s.HighlightBenefits)
		case FormKeywords:
			s.Keywords = ParseKeywordList(raw)
		case FormCustomSections:
			s.CustomSections = splitSections(raw)
		}
	}
	return s.Normalize()
}

// CoerceInt parses raw as an integer no lower than floor. Input that is
// not a number yields floor.
func CoerceInt(raw string, floor int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return floor
	}
	return max(n, floor)
}

func coerceBool(raw string, fallback bool) bool {
	switch strings.ToLower(raw) {
	case "on", "yes", "y":
		return true
	case "off", "no", "n":
		return false
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return b
}

func splitSections(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	var out []string
	for _, s := range strings.Split(raw, "\n\n") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
