package l10n

// Two-form pluralization: every language resolves a count to either the
// singular or the plural variant. Languages that need more than two
// categories are out of scope for this model.

// ExactOneRule treats exactly one as singular. This is the behavior of
// English and most of the languages shipped in the default table.
var ExactOneRule PluralRule = func(count int) PluralForm {
	if count == 1 {
		return FormSingular
	}
	return FormPlural
}

// UpToOneRule treats zero and one as singular, the French convention.
var UpToOneRule PluralRule = func(count int) PluralForm {
	if count <= 1 {
		return FormSingular
	}
	return FormPlural
}

// DefaultPluralRules returns the built-in rule table.
func DefaultPluralRules() PluralRules {
	return PluralRules{
		"en": ExactOneRule,
		"de": ExactOneRule,
		"es": ExactOneRule,
		"it": ExactOneRule,
		"nl": ExactOneRule,
		"pt": ExactOneRule,
		"fr": UpToOneRule,
	}
}

// PluralSelector picks the plural form for a language and count. The rule
// table is copied at construction and never changes afterwards, so a selector
// is safe for concurrent use.
type PluralSelector struct {
	rules    PluralRules
	fallback PluralRule
}

// NewPluralSelector builds a selector over the given rule table. A nil table
// selects the built-in rules; unknown languages use the default rule.
func NewPluralSelector(rules PluralRules) *PluralSelector {
	if rules == nil {
		rules = DefaultPluralRules()
	}
	return &PluralSelector{
		rules:    rules.Clone(),
		fallback: ExactOneRule,
	}
}

// Select resolves the plural form for language and count. Regional tags fall
// back to their parent language before the default rule kicks in.
func (s *PluralSelector) Select(language string, count int) PluralForm {
	if s == nil {
		return ExactOneRule(count)
	}

	if rule, ok := s.rules[language]; ok {
		return rule(count)
	}

	for _, parent := range localeParentChain(language) {
		if rule, ok := s.rules[parent]; ok {
			return rule(count)
		}
	}

	return s.fallback(count)
}
