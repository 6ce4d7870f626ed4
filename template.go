package l10n

// HelperConfig configures template helper exports.
type HelperConfig struct {
	// LookupKey names the plain lookup helper. Defaults to "t".
	LookupKey string
	// PluralKey names the plural lookup helper. Defaults to "tn".
	PluralKey string
}

// TemplateHelpers exposes lookup helpers for use as template funcs, e.g. with
// html/template's Funcs. Helpers follow the engine's never-fail contract, so
// rendering cannot break on missing translations.
func TemplateHelpers(l Lookuper, cfg HelperConfig) map[string]any {
	lookupKey := cfg.LookupKey
	if lookupKey == "" {
		lookupKey = "t"
	}
	pluralKey := cfg.PluralKey
	if pluralKey == "" {
		pluralKey = "tn"
	}

	return map[string]any{
		lookupKey: func(keyPath string, args ...any) any {
			return l.Lookup(keyPath, args...)
		},
		pluralKey: func(keyPath string, count int, args ...any) any {
			return l.LookupPlural(keyPath, count, args...)
		},
	}
}
