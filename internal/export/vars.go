package export

import (
	"strings"
	"time"
)

// Vars are the values available to ExpandVars.
type Vars struct {
	Now  time.Time
	Slug string
	Kind string
}

// ExpandVars performs simple placeholder substitutions for output paths
// and other config-provided strings.
//
// Supported variables:
// - {.CurrentDate} => formatted as YYYY-MM-DD (UTC)
// - {.Slug}        => product slug, "product" when empty
// - {.Kind}        => content kind
func ExpandVars(s string, v Vars) string {
	if strings.TrimSpace(s) == "" {
		return s
	}
	slug := v.Slug
	if slug == "" {
		slug = "product"
	}
	r := strings.NewReplacer(
		"{.CurrentDate}", v.Now.UTC().Format("2006-01-02"),
		"{.Slug}", strings.ReplaceAll(slug, "/", "-"),
		"{.Kind}", v.Kind,
	)
	return r.Replace(s)
}
