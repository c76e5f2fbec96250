package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"content-studio/internal/productfile"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	sampleFormat string
	sampleOut    string
)

// sampleCmd writes the demo product so it can be edited and fed back to
// generate or submit.
var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Write the sample product file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := productfile.Sample()
		var buf bytes.Buffer
		switch strings.ToLower(sampleFormat) {
		case "md", "markdown":
			if err := productfile.Encode(&buf, p); err != nil {
				return err
			}
		case "yaml", "yml":
			if err := yaml.NewEncoder(&buf).Encode(p); err != nil {
				return err
			}
		case "json":
			enc := json.NewEncoder(&buf)
			enc.SetIndent("", "  ")
			if err := enc.Encode(p); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown format %q (md, yaml, json)", sampleFormat)
		}

		var w io.Writer = cmd.OutOrStdout()
		if sampleOut != "" {
			f, err := os.Create(sampleOut)
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
		}
		_, err := w.Write(buf.Bytes())
		return err
	},
}

func init() {
	sampleCmd.Flags().StringVarP(&sampleFormat, "format", "f", "md", "file format: md, yaml, json")
	sampleCmd.Flags().StringVarP(&sampleOut, "out", "o", "", "write to this path instead of stdout")
	rootCmd.AddCommand(sampleCmd)
}
