package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"content-studio/internal/content"
	"content-studio/internal/export"
	"content-studio/internal/productfile"

	"github.com/spf13/cobra"
)

var (
	genProduct string
	genFormat  string
	genOut     string
	genStyle   *styleFlags
)

// generateCmd groups the per-kind generation subcommands.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate content for a product",
	Long: `Generate a title, short description, product card or SEO meta tags for
the product read from --product. Style flags override the configured style
for this call only.`,
}

func kindCommand(use, short string, kind content.Kind, aliases ...string) *cobra.Command {
	return &cobra.Command{
		Use:     use,
		Aliases: aliases,
		Short:   short,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, kind)
		},
	}
}

func runGenerate(cmd *cobra.Command, kind content.Kind) error {
	cfg := GetConfig()
	d, err := cfg.ParseDurations()
	if err != nil {
		return err
	}
	p, err := loadProduct(genProduct)
	if err != nil {
		return err
	}
	style, err := genStyle.apply(cfg.Generator.Style, cfg.Keywords.Suggested)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	g := content.Generator{Latency: d.Latency}
	gc, err := g.Generate(ctx, content.Request{Kind: kind, Product: p, Style: style})
	if err != nil {
		return fmt.Errorf("generate %s: %w", kind, err)
	}
	slog.Debug("generated content", "kind", kind, "took", time.Since(start))
	return writeContent(cmd.OutOrStdout(), gc, p, genFormat, genOut)
}

// loadProduct reads the product file, falling back to the sample product
// when path is empty.
func loadProduct(path string) (content.ProductAttributes, error) {
	if strings.TrimSpace(path) == "" {
		slog.Info("no product file given, using the sample product")
		return productfile.Sample(), nil
	}
	return productfile.Load(path)
}

// render formats gc as text, json, html or markdown.
func render(gc content.GeneratedContent, format string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return export.Text(gc)
	case "json":
		b, err := json.MarshalIndent(gc, "", "  ")
		if err != nil {
			return "", err
		}
		return string(b), nil
	case "html":
		return export.HTML(gc)
	case "markdown", "md":
		return export.Markdown(gc)
	default:
		return "", fmt.Errorf("unknown format %q (text, json, html, markdown)", format)
	}
}

// writeContent renders gc and writes it to out, or to w when out is empty.
// out may use the {.CurrentDate}, {.Slug} and {.Kind} placeholders.
func writeContent(w io.Writer, gc content.GeneratedContent, p content.ProductAttributes, format, out string) error {
	s, err := render(gc, format)
	if err != nil {
		return err
	}
	if strings.TrimSpace(out) == "" {
		_, err = fmt.Fprintln(w, s)
		return err
	}
	path := export.ExpandVars(out, export.Vars{
		Now:  time.Now(),
		Slug: content.Slugify(p.Name),
		Kind: string(gc.Kind),
	})
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(path, []byte(s+"\n"), 0o644); err != nil {
		return err
	}
	slog.Info("content written", "path", path)
	return nil
}

func init() {
	pf := generateCmd.PersistentFlags()
	pf.StringVarP(&genProduct, "product", "p", "", "product file (.md with frontmatter, .yaml or .json); sample product when empty")
	pf.StringVarP(&genFormat, "format", "f", "text", "output format: text, json, html, markdown")
	pf.StringVarP(&genOut, "out", "o", "", "write to this path instead of stdout (supports {.CurrentDate}, {.Slug}, {.Kind})")
	genStyle = addStyleFlags(pf)

	generateCmd.AddCommand(
		kindCommand("title", "Generate a product title", content.KindTitle),
		kindCommand("description", "Generate a short description", content.KindShortDescription, "short"),
		kindCommand("card", "Generate a product card", content.KindProductCard),
		kindCommand("meta", "Generate SEO meta tags and image alt texts", content.KindMetaTags, "seo"),
	)
	rootCmd.AddCommand(generateCmd)
}
