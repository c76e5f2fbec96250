package content

import (
	"fmt"
	"strings"
)

// Tone is the writing style applied to generated text.
type Tone string

const (
	ToneFormal     Tone = "formal"
	ToneColloquial Tone = "colloquial"
	ToneTechnical  Tone = "technical"
	ToneCreative   Tone = "creative"
)

// Target is the audience a short or meta description is written for.
type Target string

const (
	TargetGeneral   Target = "general"
	TargetTechnical Target = "technical"
	TargetBusiness  Target = "business"
	TargetCasual    Target = "casual"
)

// Emphasis selects which body paragraphs a product card carries.
type Emphasis string

const (
	EmphasisBenefits  Emphasis = "benefits"
	EmphasisTechnical Emphasis = "technical"
	EmphasisBalanced  Emphasis = "balanced"
)

// Tones lists the known tones in display order.
var Tones = []Tone{ToneFormal, ToneColloquial, ToneTechnical, ToneCreative}

// Targets lists the known targets in display order.
var Targets = []Target{TargetGeneral, TargetTechnical, TargetBusiness, TargetCasual}

// Emphases lists the known emphasis values in display order.
var Emphases = []Emphasis{EmphasisBenefits, EmphasisTechnical, EmphasisBalanced}

// ParseTone matches s case-insensitively against the known tones.
func ParseTone(s string) (Tone, error) {
	return parseEnum(s, Tones, "tone")
}

// ParseTarget matches s case-insensitively against the known targets.
func ParseTarget(s string) (Target, error) {
	return parseEnum(s, Targets, "target")
}

// ParseEmphasis matches s case-insensitively against the known emphasis values.
func ParseEmphasis(s string) (Emphasis, error) {
	return parseEnum(s, Emphases, "emphasis")
}

func parseEnum[T ~string](s string, known []T, what string) (T, error) {
	v := T(strings.ToLower(strings.TrimSpace(s)))
	for _, k := range known {
		if k == v {
			return k, nil
		}
	}
	return v, fmt.Errorf("unknown %s %q (want one of %v)", what, s, known)
}

// Budget floors. Budgets below them are raised, never rejected.
const (
	MinCharsFloor              = 50
	CharsGap                   = 20
	MetaDescriptionLengthFloor = 120
	ParagraphCountFloor        = 1
	CharsPerParagraphFloor     = 100
	MetaTitleMax               = 65
)

// StyleConfig carries every per-call style option. Each generator reads
// only the fields relevant to its kind.
type StyleConfig struct {
	Tone     Tone     `json:"tone" yaml:"tone" mapstructure:"tone"`
	Target   Target   `json:"target" yaml:"target" mapstructure:"target"`
	Emphasis Emphasis `json:"emphasis" yaml:"emphasis" mapstructure:"emphasis"`

	MinChars              int `json:"min_chars" yaml:"min_chars" mapstructure:"min_chars"`
	MaxChars              int `json:"max_chars" yaml:"max_chars" mapstructure:"max_chars"`
	MetaDescriptionLength int `json:"meta_description_length" yaml:"meta_description_length" mapstructure:"meta_description_length"`
	ParagraphCount        int `json:"paragraph_count" yaml:"paragraph_count" mapstructure:"paragraph_count"`
	CharsPerParagraph     int `json:"chars_per_paragraph" yaml:"chars_per_paragraph" mapstructure:"chars_per_paragraph"`

	IncludeKeywords   bool `json:"include_keywords" yaml:"include_keywords" mapstructure:"include_keywords"`
	IncludeBrand      bool `json:"include_brand" yaml:"include_brand" mapstructure:"include_brand"`
	IncludeCTA        bool `json:"include_cta" yaml:"include_cta" mapstructure:"include_cta"`
	IncludeImages     bool `json:"include_images" yaml:"include_images" mapstructure:"include_images"`
	HighlightBenefits bool `json:"highlight_benefits" yaml:"highlight_benefits" mapstructure:"highlight_benefits"`

	Keywords       []string `json:"keywords,omitempty" yaml:"keywords,omitempty" mapstructure:"keywords"`
	CustomSections []string `json:"custom_sections,omitempty" yaml:"custom_sections,omitempty" mapstructure:"custom_sections"`
}

// DefaultStyle returns the options the dashboard starts with.
func DefaultStyle() StyleConfig {
	return StyleConfig{
		Tone:                  ToneFormal,
		Target:                TargetGeneral,
		Emphasis:              EmphasisBalanced,
		MinChars:              80,
		MaxChars:              160,
		MetaDescriptionLength: 160,
		ParagraphCount:        3,
		CharsPerParagraph:     200,
		IncludeKeywords:       true,
		IncludeBrand:          true,
		IncludeCTA:            true,
		IncludeImages:         true,
		HighlightBenefits:     true,
	}
}

// Normalize clamps every numeric budget to its nearest valid value.
func (s StyleConfig) Normalize() StyleConfig {
	s.MinChars, s.MaxChars = ClampChars(s.MinChars, s.MaxChars)
	s.MetaDescriptionLength = max(s.MetaDescriptionLength, MetaDescriptionLengthFloor)
	s.ParagraphCount = max(s.ParagraphCount, ParagraphCountFloor)
	s.CharsPerParagraph = max(s.CharsPerParagraph, CharsPerParagraphFloor)
	return s
}

// ClampChars floors minChars at MinCharsFloor and keeps maxChars at least
// CharsGap above it.
func ClampChars(minChars, maxChars int) (int, int) {
	minChars = max(minChars, MinCharsFloor)
	maxChars = max(maxChars, minChars+CharsGap)
	minChars = min(minChars, maxChars-CharsGap)
	return minChars, maxChars
}
