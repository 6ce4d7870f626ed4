package l10n

import (
	"strings"
	"testing"
	"text/template"
)

func TestTemplateHelpers(t *testing.T) {
	engine := NewEngine(WithEngineLanguage("en"))
	engine.OnDocumentReady(Document{
		"nav": Document{"home": "Home"},
		"inbox": Document{
			"singular": "{{}} message",
			"plural":   "{{}} messages",
		},
	})

	tpl := template.New("page").Funcs(TemplateHelpers(engine, HelperConfig{}))
	tpl, err := tpl.Parse(`{{t "nav.home"}} | {{tn "inbox" 4}} | {{t "nav.missing"}}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	var out strings.Builder
	if err := tpl.Execute(&out, nil); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if got := out.String(); got != "Home | 4 messages | nav.missing" {
		t.Fatalf("rendered %q", got)
	}
}

func TestTemplateHelpersCustomKeys(t *testing.T) {
	engine := NewEngine()
	engine.OnDocumentReady(Document{"k": "v"})

	funcs := TemplateHelpers(engine, HelperConfig{LookupKey: "tr", PluralKey: "trn"})
	if _, ok := funcs["tr"]; !ok {
		t.Fatal("missing tr helper")
	}
	if _, ok := funcs["trn"]; !ok {
		t.Fatal("missing trn helper")
	}
	if _, ok := funcs["t"]; ok {
		t.Fatal("default key exported despite override")
	}
}
