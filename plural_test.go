package l10n

import "testing"

func TestPluralSelectorSelect(t *testing.T) {
	selector := NewPluralSelector(nil)

	tests := []struct {
		language string
		count    int
		want     PluralForm
	}{
		{language: "en", count: 0, want: FormPlural},
		{language: "en", count: 1, want: FormSingular},
		{language: "en", count: 5, want: FormPlural},
		{language: "fr", count: 0, want: FormSingular},
		{language: "fr", count: 1, want: FormSingular},
		{language: "fr", count: 2, want: FormPlural},
		{language: "de", count: 0, want: FormPlural},
		{language: "de", count: 1, want: FormSingular},
		// unknown languages fall back to the default rule
		{language: "xx", count: 1, want: FormSingular},
		{language: "xx", count: 2, want: FormPlural},
		// regional tags inherit their parent's rule
		{language: "fr-CA", count: 0, want: FormSingular},
		{language: "en-US", count: 3, want: FormPlural},
	}

	for _, tc := range tests {
		if got := selector.Select(tc.language, tc.count); got != tc.want {
			t.Fatalf("Select(%q, %d) = %q want %q", tc.language, tc.count, got, tc.want)
		}
	}
}

func TestPluralSelectorCustomRules(t *testing.T) {
	rules := PluralRules{
		"zz": func(count int) PluralForm {
			if count == 0 {
				return FormSingular
			}
			return FormPlural
		},
	}
	selector := NewPluralSelector(rules)

	if got := selector.Select("zz", 0); got != FormSingular {
		t.Fatalf("Select(zz, 0) = %q", got)
	}
	if got := selector.Select("zz", 1); got != FormPlural {
		t.Fatalf("Select(zz, 1) = %q", got)
	}
	// languages outside a custom table still use the default rule
	if got := selector.Select("en", 1); got != FormSingular {
		t.Fatalf("Select(en, 1) = %q", got)
	}
}

func TestPluralSelectorIsolatedFromCallerTable(t *testing.T) {
	rules := DefaultPluralRules()
	selector := NewPluralSelector(rules)

	rules["en"] = func(int) PluralForm { return FormPlural }

	if got := selector.Select("en", 1); got != FormSingular {
		t.Fatalf("selector observed caller mutation, Select(en, 1) = %q", got)
	}
}

func TestLocaleParentChain(t *testing.T) {
	if chain := localeParentChain("en-US"); len(chain) == 0 || chain[0] != "en" {
		t.Fatalf("localeParentChain(en-US) = %v", chain)
	}
	if chain := localeParentChain(""); chain != nil {
		t.Fatalf("localeParentChain(\"\") = %v", chain)
	}
}
