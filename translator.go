package l10n

// Lookuper resolves values for dot-separated key paths. Both *Engine and
// *Localizer satisfy it.
type Lookuper interface {
	Lookup(keyPath string, args ...any) any
	LookupPlural(keyPath string, count int, args ...any) any
}

var (
	_ Lookuper = (*Engine)(nil)
	_ Lookuper = (*Localizer)(nil)
)
