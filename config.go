package l10n

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config captures engine and loader setup.
type Config struct {
	DefaultLanguage string
	Languages       []string
	Resources       []string
	Location        string
	Source          Source
	Poll            bool
	PollInterval    time.Duration
	Logger          *slog.Logger

	pluralRules PluralRules
	hooks       []LookupHook
	httpClient  *http.Client
}

// Option mutates Config during construction.
type Option func(*Config) error

// NewConfig builds Config via supplied options.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	cfg.Languages = normalizeLocales(cfg.Languages)
	cfg.DefaultLanguage = normalizeLocale(cfg.DefaultLanguage)

	if cfg.DefaultLanguage == "" && len(cfg.Languages) > 0 {
		cfg.DefaultLanguage = cfg.Languages[0]
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}

	return cfg, nil
}

// WithDefaultLanguage sets the initial language identifier.
func WithDefaultLanguage(language string) Option {
	return func(c *Config) error {
		c.DefaultLanguage = language
		return nil
	}
}

// WithLanguages declares the managed language identifiers.
func WithLanguages(languages ...string) Option {
	return func(c *Config) error {
		c.Languages = append(c.Languages, languages...)
		return nil
	}
}

// WithResources sets the document names fetched and merged per language.
func WithResources(resources ...string) Option {
	return func(c *Config) error {
		c.Resources = append(c.Resources, resources...)
		return nil
	}
}

// WithLocation sets the base location for documents: a directory path, or an
// http(s) URL served in the same layout.
func WithLocation(location string) Option {
	return func(c *Config) error {
		c.Location = location
		return nil
	}
}

// WithSource installs an explicit document source, overriding WithLocation.
func WithSource(source Source) Option {
	return func(c *Config) error {
		c.Source = source
		return nil
	}
}

// WithHTTPClient sets the client used when the location is a URL.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Config) error {
		c.httpClient = client
		return nil
	}
}

// WithPolling opts into periodic reload checks.
func WithPolling() Option {
	return func(c *Config) error {
		c.Poll = true
		return nil
	}
}

// WithPollInterval overrides the reload cadence.
func WithPollInterval(interval time.Duration) Option {
	return func(c *Config) error {
		c.PollInterval = interval
		return nil
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithPluralRules replaces the built-in plural rule table.
func WithPluralRules(rules PluralRules) Option {
	return func(c *Config) error {
		c.pluralRules = rules
		return nil
	}
}

// WithLookupHooks registers hooks around engine lookups.
func WithLookupHooks(hooks ...LookupHook) Option {
	return func(c *Config) error {
		for _, hook := range hooks {
			if hook == nil {
				continue
			}
			c.hooks = append(c.hooks, hook)
		}
		return nil
	}
}

// EnvConfig is the environment surface parsed by FromEnv.
type EnvConfig struct {
	Language     string        `env:"L10N_LANGUAGE"`
	Languages    []string      `env:"L10N_LANGUAGES" envSeparator:","`
	Location     string        `env:"L10N_LOCATION"`
	Resources    []string      `env:"L10N_RESOURCES" envSeparator:","`
	Poll         bool          `env:"L10N_POLL"`
	PollInterval time.Duration `env:"L10N_POLL_INTERVAL"`
}

var dotenvOnce sync.Once

// FromEnv populates the config from L10N_* environment variables. A .env
// file in the working directory is loaded once, if present.
func FromEnv() Option {
	return func(c *Config) error {
		dotenvOnce.Do(func() {
			_ = godotenv.Load()
		})

		var ec EnvConfig
		if err := env.Parse(&ec); err != nil {
			return fmt.Errorf("l10n: parse environment: %w", err)
		}

		if ec.Language != "" {
			c.DefaultLanguage = ec.Language
		}
		if len(ec.Languages) > 0 {
			c.Languages = append(c.Languages, ec.Languages...)
		}
		if ec.Location != "" {
			c.Location = ec.Location
		}
		if len(ec.Resources) > 0 {
			c.Resources = append(c.Resources, ec.Resources...)
		}
		if ec.Poll {
			c.Poll = true
		}
		if ec.PollInterval > 0 {
			c.PollInterval = ec.PollInterval
		}
		return nil
	}
}

func (cfg *Config) source() (Source, error) {
	if cfg.Source != nil {
		return cfg.Source, nil
	}
	if cfg.Location == "" {
		return nil, ErrNoSource
	}
	if strings.HasPrefix(cfg.Location, "http://") || strings.HasPrefix(cfg.Location, "https://") {
		return NewHTTPSource(cfg.Location, cfg.httpClient), nil
	}
	return NewFileSource(cfg.Location), nil
}

func (cfg *Config) logger() *slog.Logger {
	return cfg.Logger
}

// Build assembles the engine, loader, and optional reload poller. When the
// polling opt-in is set the poller is started before returning.
func (cfg *Config) Build() (*Localizer, error) {
	if cfg == nil {
		return nil, ErrNoSource
	}

	source, err := cfg.source()
	if err != nil {
		return nil, err
	}

	engine := NewEngine(
		WithEngineLanguage(cfg.DefaultLanguage),
		WithEngineSelector(NewPluralSelector(cfg.pluralRules)),
		WithEngineHooks(cfg.hooks...),
	)

	loaderOpts := []LoaderOption{
		WithLoaderResources(cfg.Resources...),
		WithLoaderManagedLanguages(cfg.Languages...),
		WithLoaderLogger(cfg.logger()),
	}
	loader, err := NewLoader(engine, source, loaderOpts...)
	if err != nil {
		return nil, err
	}

	localizer := &Localizer{
		Engine: engine,
		loader: loader,
		poller: NewPoller(loader, cfg.PollInterval, cfg.Logger),
	}

	if cfg.Poll {
		if err := localizer.StartPolling(); err != nil {
			return nil, err
		}
	}

	return localizer, nil
}
