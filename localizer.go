package l10n

import "context"

// Localizer bundles the engine with its loader and reload poller. Lookup and
// LookupPlural come from the embedded Engine; everything else is loading
// lifecycle.
type Localizer struct {
	*Engine
	loader *Loader
	poller *Poller
}

// New builds a ready-to-use Localizer from options. It is shorthand for
// NewConfig followed by Build.
func New(opts ...Option) (*Localizer, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return cfg.Build()
}

// SetLanguage switches the active language and loads its documents.
func (l *Localizer) SetLanguage(ctx context.Context, language string) error {
	return l.loader.SetLanguage(ctx, language)
}

// Load loads documents for the current language without switching it. Useful
// for the initial load after construction.
func (l *Localizer) Load(ctx context.Context) error {
	return l.loader.Load(ctx, l.Engine.Language())
}

// Managed reports whether the loader accepts the language identifier.
func (l *Localizer) Managed(language string) bool {
	return l.loader.Managed(language)
}

// StartPolling schedules periodic reload checks.
func (l *Localizer) StartPolling() error {
	return l.poller.Start()
}

// StopPolling cancels the reload schedule, waiting for a running check.
func (l *Localizer) StopPolling() {
	l.poller.Stop()
}

// Close releases background resources. The engine remains usable for
// lookups against the last published document.
func (l *Localizer) Close() error {
	l.poller.Stop()
	return nil
}
