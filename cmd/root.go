package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"content-studio/internal/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	appCfg  config.Config
)

// rootCmd is the base command called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "content-studio",
	Short:         "Content Studio CLI",
	Long:          "Generate product titles, short descriptions, product cards and SEO meta tags from product data.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml)")
}

func initConfig() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "error reading .env: %v\n", err)
		os.Exit(1)
	}

	v := viper.GetViper()
	setDefaults(v, config.Defaults())
	v.SetEnvPrefix("CONTENT_STUDIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/content-studio")
		v.AddConfigPath("configs")
	}

	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			fmt.Fprintf(os.Stderr, "error reading config: %v\n", err)
			os.Exit(1)
		}
	} else {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", v.ConfigFileUsed())
	}

	if err := v.Unmarshal(&appCfg); err != nil {
		fmt.Fprintf(os.Stderr, "error parsing config: %v\n", err)
		os.Exit(1)
	}

	appCfg.FillDefaults()
	initLogger(appCfg.App.LogLevel)
}

// setDefaults registers every default so env overrides apply to keys that
// no config file mentions.
func setDefaults(v *viper.Viper, d config.Config) {
	st := d.Generator.Style
	for key, val := range map[string]any{
		"app.log_level":                           d.App.LogLevel,
		"redis.addr":                              d.Redis.Addr,
		"redis.username":                          d.Redis.Username,
		"redis.password":                          d.Redis.Password,
		"redis.db":                                d.Redis.DB,
		"generator.latency":                       d.Generator.Latency,
		"generator.style.tone":                    string(st.Tone),
		"generator.style.target":                  string(st.Target),
		"generator.style.emphasis":                string(st.Emphasis),
		"generator.style.min_chars":               st.MinChars,
		"generator.style.max_chars":               st.MaxChars,
		"generator.style.meta_description_length": st.MetaDescriptionLength,
		"generator.style.paragraph_count":         st.ParagraphCount,
		"generator.style.chars_per_paragraph":     st.CharsPerParagraph,
		"generator.style.include_keywords":        st.IncludeKeywords,
		"generator.style.include_brand":           st.IncludeBrand,
		"generator.style.include_cta":             st.IncludeCTA,
		"generator.style.include_images":          st.IncludeImages,
		"generator.style.highlight_benefits":      st.HighlightBenefits,
		"keywords.suggested":                      d.Keywords.Suggested,
		"worker.queue":                            d.Worker.Queue,
		"worker.concurrency":                      d.Worker.Concurrency,
		"worker.poll_timeout":                     d.Worker.PollTimeout,
		"worker.result_ttl":                       d.Worker.ResultTTL,
		"worker.lock_ttl":                         d.Worker.LockTTL,
	} {
		v.SetDefault(key, val)
	}
}

func initLogger(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		fmt.Fprintf(os.Stderr, "unknown app.log_level %q, using info\n", level)
		lvl = slog.LevelInfo
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(h))
}

// GetConfig exposes the loaded configuration to subcommands.
func GetConfig() config.Config {
	return appCfg
}
