package content

import (
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ProductAttributes is the sparse product record supplied by the caller.
// Every field is optional.
type ProductAttributes struct {
	Name           string            `json:"name,omitempty" yaml:"name,omitempty"`
	Brand          string            `json:"brand,omitempty" yaml:"brand,omitempty"`
	Category       string            `json:"category,omitempty" yaml:"category,omitempty"`
	MainFeature    string            `json:"main_feature,omitempty" yaml:"main_feature,omitempty"`
	Description    string            `json:"description,omitempty" yaml:"description,omitempty"`
	Features       []string          `json:"features,omitempty" yaml:"features,omitempty"`
	Benefits       []string          `json:"benefits,omitempty" yaml:"benefits,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty" yaml:"specifications,omitempty"`
	Images         []string          `json:"images,omitempty" yaml:"images,omitempty"`
}

type spec struct {
	label string
	value string
}

// fields is the resolved view of ProductAttributes the templates read from.
type fields struct {
	name        string
	brand       string
	category    string
	mainFeature string
	description string
	features    []string
	benefits    []string
	specs       []spec
	images      []string
}

func resolve(p ProductAttributes) fields {
	f := fields{
		name:        clean(p.Name),
		brand:       clean(p.Brand),
		category:    clean(p.Category),
		mainFeature: clean(p.MainFeature),
		description: clean(p.Description),
		features:    cleanList(p.Features),
		benefits:    cleanList(p.Benefits),
		images:      cleanList(p.Images),
		specs:       make([]spec, 0, len(p.Specifications)),
	}
	for k, v := range p.Specifications {
		k = clean(k)
		if k == "" {
			continue
		}
		f.specs = append(f.specs, spec{label: k, value: clean(v)})
	}
	// map order is random; keep output deterministic
	sort.Slice(f.specs, func(i, j int) bool { return f.specs[i].label < f.specs[j].label })
	return f
}

func clean(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = clean(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// feature returns the i-th feature or fallback when absent.
func (f fields) feature(i int, fallback string) string {
	return at(f.features, i, fallback)
}

// benefit returns the i-th benefit or fallback when absent.
func (f fields) benefit(i int, fallback string) string {
	return at(f.benefits, i, fallback)
}

func at(list []string, i int, fallback string) string {
	if i < len(list) {
		return list[i]
	}
	return fallback
}

// or returns s, or fallback when s is empty.
func or(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// firstN returns at most n leading elements of list.
func firstN(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}

// collapse squeezes whitespace runs into single spaces and trims the edges.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
