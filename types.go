package l10n

// Document is a nested key-value translation tree for one language. Values
// are primitives, sequences, or further Documents; depth is caller defined.
// Keys within one level are unique, last write wins on construction.
type Document = map[string]any

// M is a shorthand for named formatter arguments.
type M = map[string]any

// PluralForm tags one of the two supported plural variants.
type PluralForm string

const (
	FormSingular PluralForm = "singular"
	FormPlural   PluralForm = "plural"
)

// PluralRule maps a count to a plural form.
type PluralRule func(count int) PluralForm

// PluralRules associates language identifiers with their plural rule.
type PluralRules map[string]PluralRule

// Clone returns an independent copy of the rule table.
func (r PluralRules) Clone() PluralRules {
	if r == nil {
		return nil
	}
	out := make(PluralRules, len(r))
	for lang, rule := range r {
		out[lang] = rule
	}
	return out
}

// PluralEntry is the conventional shape of a pluralizable document node.
// It is a convention only; documents are never validated against it, and a
// missing form simply resolves as not found for that count.
type PluralEntry struct {
	Singular string `json:"singular" yaml:"singular"`
	Plural   string `json:"plural" yaml:"plural"`
}

// Doc returns the entry as the document node lookups descend into.
func (e PluralEntry) Doc() Document {
	return Document{
		string(FormSingular): e.Singular,
		string(FormPlural):   e.Plural,
	}
}

// asDocument reports whether a value is a document for resolution and merge
// purposes: a non-nil string-keyed map. Arrays and primitives are leaves.
func asDocument(value any) (Document, bool) {
	doc, ok := value.(map[string]any)
	if !ok || doc == nil {
		return nil, false
	}
	return doc, true
}
