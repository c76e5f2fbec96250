package config

import (
	"time"

	"content-studio/internal/content"
)

// AppConfig holds application-level settings.
type AppConfig struct {
	LogLevel string `mapstructure:"log_level"`
}

// RedisConfig holds redis connection settings.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// GeneratorConfig controls content generation.
type GeneratorConfig struct {
	Latency string              `mapstructure:"latency"` // duration string, e.g., "1500ms"
	Style   content.StyleConfig `mapstructure:"style"`   // defaults for every call
}

// KeywordsConfig lists the keywords offered for selection.
type KeywordsConfig struct {
	Suggested []string `mapstructure:"suggested"`
}

// WorkerConfig controls the queued generation path.
type WorkerConfig struct {
	Queue       string `mapstructure:"queue"`
	Concurrency int    `mapstructure:"concurrency"`
	PollTimeout string `mapstructure:"poll_timeout"` // blocking pop timeout
	ResultTTL   string `mapstructure:"result_ttl"`
	LockTTL     string `mapstructure:"lock_ttl"` // per-session in-flight guard
}

// Config is the top-level configuration structure.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Generator GeneratorConfig `mapstructure:"generator"`
	Keywords  KeywordsConfig  `mapstructure:"keywords"`
	Worker    WorkerConfig    `mapstructure:"worker"`
}

// DefaultSuggestedKeywords are offered when none are configured.
var DefaultSuggestedKeywords = []string{
	"miglior prezzo",
	"alta qualità",
	"spedizione veloce",
	"garanzia estesa",
	"novità",
	"bestseller",
	"offerta speciale",
}

// Defaults returns the configuration used when no file or env overrides
// are present. FillDefaults cannot tell a false style toggle from an unset
// one, so the toggles must be registered as viper defaults from this value.
func Defaults() Config {
	c := Config{Generator: GeneratorConfig{Style: content.DefaultStyle()}}
	c.FillDefaults()
	return c
}

// FillDefaults applies default values if not provided.
func (c *Config) FillDefaults() {
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "127.0.0.1:6379"
	}
	if c.Generator.Latency == "" {
		c.Generator.Latency = "0s"
	}
	def := content.DefaultStyle()
	st := &c.Generator.Style
	if st.Tone == "" {
		st.Tone = def.Tone
	}
	if st.Target == "" {
		st.Target = def.Target
	}
	if st.Emphasis == "" {
		st.Emphasis = def.Emphasis
	}
	if st.MinChars == 0 {
		st.MinChars = def.MinChars
	}
	if st.MaxChars == 0 {
		st.MaxChars = def.MaxChars
	}
	if st.MetaDescriptionLength == 0 {
		st.MetaDescriptionLength = def.MetaDescriptionLength
	}
	if st.ParagraphCount == 0 {
		st.ParagraphCount = def.ParagraphCount
	}
	if st.CharsPerParagraph == 0 {
		st.CharsPerParagraph = def.CharsPerParagraph
	}
	*st = st.Normalize()
	if len(c.Keywords.Suggested) == 0 {
		c.Keywords.Suggested = append([]string(nil), DefaultSuggestedKeywords...)
	}
	if c.Worker.Queue == "" {
		c.Worker.Queue = "content:jobs"
	}
	if c.Worker.Concurrency <= 0 {
		c.Worker.Concurrency = 1
	}
	if c.Worker.PollTimeout == "" {
		c.Worker.PollTimeout = "5s"
	}
	if c.Worker.ResultTTL == "" {
		c.Worker.ResultTTL = "1h"
	}
	if c.Worker.LockTTL == "" {
		c.Worker.LockTTL = "2m"
	}
}

// Durations parses the duration strings of the configuration.
type Durations struct {
	Latency     time.Duration
	PollTimeout time.Duration
	ResultTTL   time.Duration
	LockTTL     time.Duration
}

// ParseDurations validates and parses every duration string.
func (c Config) ParseDurations() (Durations, error) {
	var d Durations
	for _, f := range []struct {
		name string
		raw  string
		dst  *time.Duration
	}{
		{"generator.latency", c.Generator.Latency, &d.Latency},
		{"worker.poll_timeout", c.Worker.PollTimeout, &d.PollTimeout},
		{"worker.result_ttl", c.Worker.ResultTTL, &d.ResultTTL},
		{"worker.lock_ttl", c.Worker.LockTTL, &d.LockTTL},
	} {
		v, err := time.ParseDuration(f.raw)
		if err != nil {
			return Durations{}, &DurationError{Key: f.name, Err: err}
		}
		*f.dst = v
	}
	return d, nil
}

// DurationError reports an unparseable duration setting.
type DurationError struct {
	Key string
	Err error
}

func (e *DurationError) Error() string { return "invalid " + e.Key + ": " + e.Err.Error() }

func (e *DurationError) Unwrap() error { return e.Err }
