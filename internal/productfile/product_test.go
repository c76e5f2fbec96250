package productfile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMarkdownUsesBodyAsDescription(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phone.md")
	src := "---\nname: Phone\nbrand: Acme\nspecifications:\n  Peso: 250g\n---\n\nUno smartphone robusto.\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Phone", p.Name)
	assert.Equal(t, "Acme", p.Brand)
	assert.Equal(t, map[string]string{"Peso": "250g"}, p.Specifications)
	assert.Equal(t, "Uno smartphone robusto.", p.Description)
}

func TestLoadMarkdownKeepsFrontmatterDescription(t *testing.T) {
	p, err := Decode(strings.NewReader("---\ndescription: Dal frontmatter\n---\nCorpo\n"), true)
	require.NoError(t, err)
	assert.Equal(t, "Dal frontmatter", p.Description)
}

func TestLoadJSONAndYAML(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "p.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"name":"Phone","main_feature":"5G","images":["a.jpg"]}`), 0o644))
	p, err := Load(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "5G", p.MainFeature)
	assert.Equal(t, []string{"a.jpg"}, p.Images)

	yamlPath := filepath.Join(dir, "p.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("name: Phone\nbenefits: [veloce, leggero]\n"), 0o644))
	p, err = Load(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"veloce", "leggero"}, p.Benefits)
}

func TestLoadEmptyYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	p, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, p.Name)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: [unterminated\n"), 0o644))
	_, err := Load(path)
	assert.ErrorContains(t, err, "decode product")
}

func TestEncodeRoundTrip(t *testing.T) {
	want := Sample()
	want.Description = "Descrizione di prova."

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, want))
	assert.True(t, strings.HasPrefix(buf.String(), "---\n"))

	got, err := Decode(&buf, true)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
