package productfile

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"content-studio/internal/content"

	"gopkg.in/yaml.v3"
)

// Load reads product attributes from path. Markdown files (.md, .markdown)
// carry the attributes as frontmatter and the body becomes the description
// when the frontmatter sets none. Any other file is decoded as YAML, which
// also accepts JSON.
func Load(path string) (content.ProductAttributes, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return content.ProductAttributes{}, err
	}
	p, err := Decode(bytes.NewReader(b), isMarkdown(path))
	if err != nil {
		return content.ProductAttributes{}, fmt.Errorf("decode product %s: %w", path, err)
	}
	return p, nil
}

// Decode reads product attributes from r, as Markdown with frontmatter when
// markdown is set or as a plain YAML/JSON document otherwise.
func Decode(r io.Reader, markdown bool) (content.ProductAttributes, error) {
	var p content.ProductAttributes
	if !markdown {
		if err := yaml.NewDecoder(r).Decode(&p); err != nil && err != io.EOF {
			return p, err
		}
		return p, nil
	}
	doc, err := Parse(r)
	if err != nil {
		return p, err
	}
	if err := doc.Decode(&p); err != nil {
		return p, err
	}
	if strings.TrimSpace(p.Description) == "" {
		p.Description = strings.TrimSpace(doc.Body)
	}
	return p, nil
}

// Encode writes p as Markdown: attributes in frontmatter, description as body.
func Encode(w io.Writer, p content.ProductAttributes) error {
	desc := p.Description
	p.Description = ""
	fm, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(fm)
	buf.WriteString("---\n")
	if desc = strings.TrimSpace(desc); desc != "" {
		buf.WriteString("\n" + desc + "\n")
	}
	_, err = w.Write(buf.Bytes())
	return err
}

// Sample returns the demo product the dashboard opens with.
func Sample() content.ProductAttributes {
	return content.ProductAttributes{
		Name:        "Prodotto di esempio",
		Brand:       "BrandTest",
		Category:    "Elettronica",
		MainFeature: "Intelligenza Artificiale",
		Features:    []string{"Resistente all'acqua", "Batteria a lunga durata", "Design ergonomico"},
		Benefits:    []string{"Risparmio di tempo", "Facilità d'uso", "Maggiore produttività"},
		Specifications: map[string]string{
			"Dimensioni": "10 x 5 x 2 cm",
			"Peso":       "250g",
			"Materiale":  "Alluminio",
			"Colore":     "Nero",
		},
		Images: []string{
			"https://via.placeholder.com/600x400?text=Prodotto+Principale",
			"https://via.placeholder.com/600x400?text=Dettaglio",
			"https://via.placeholder.com/600x400?text=In+Uso",
		},
	}
}

func isMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}
