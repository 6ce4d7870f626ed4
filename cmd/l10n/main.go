// Command l10n resolves translation keys against a locale directory or URL.
//
// Usage:
//
//	l10n -location ./locales -lang en app.greeting name=Ada
//	l10n -location ./locales -lang fr -count 3 inbox.messages
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/goliatone/go-l10n"
)

type cliConfig struct {
	location  string
	language  string
	resources string
	count     int
	plural    bool
	key       string
	args      []any
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		reportError(err)
	}

	if err := run(cfg); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "l10n: %v\n", err)
	os.Exit(1)
}

func parseFlags() (cliConfig, error) {
	var cfg cliConfig

	flag.StringVar(&cfg.location, "location", "", "locale directory or base URL (defaults to $L10N_LOCATION)")
	flag.StringVar(&cfg.language, "lang", "en", "language identifier to load")
	flag.StringVar(&cfg.resources, "resources", "", "comma separated resource names (defaults to \"translation\")")
	flag.IntVar(&cfg.count, "count", 0, "count for plural lookup; implies plural selection when set")
	flag.Parse()

	if flag.NArg() == 0 {
		return cliConfig{}, errors.New("a key path argument is required")
	}

	cfg.key = flag.Arg(0)
	cfg.plural = flagWasSet("count")

	named := l10n.M{}
	for _, raw := range flag.Args()[1:] {
		name, value, found := strings.Cut(raw, "=")
		if found && name != "" {
			named[name] = value
			continue
		}
		cfg.args = append(cfg.args, raw)
	}
	if len(named) > 0 {
		cfg.args = append(cfg.args, named)
	}

	return cfg, nil
}

func flagWasSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func run(cfg cliConfig) error {
	opts := []l10n.Option{
		l10n.FromEnv(),
		l10n.WithDefaultLanguage(cfg.language),
	}
	if cfg.location != "" {
		opts = append(opts, l10n.WithLocation(cfg.location))
	}
	if cfg.resources != "" {
		var names []string
		for _, name := range strings.Split(cfg.resources, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
		opts = append(opts, l10n.WithResources(names...))
	}

	localizer, err := l10n.New(opts...)
	if err != nil {
		return err
	}
	defer localizer.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := localizer.Load(ctx); err != nil {
		return err
	}

	var result any
	if cfg.plural {
		result = localizer.LookupPlural(cfg.key, cfg.count, cfg.args...)
	} else {
		result = localizer.Lookup(cfg.key, cfg.args...)
	}

	fmt.Println(result)
	return nil
}
