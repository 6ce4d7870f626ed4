package l10n

import (
	"context"
	"testing"
	"time"
)

func newPollerFixture(t *testing.T) (*Poller, *Engine, *stubSource) {
	t.Helper()

	source := &stubSource{
		docs:   map[string]Document{"en/translation": {"k": "one"}},
		prints: map[string]string{"en/translation": "v1"},
	}
	engine := NewEngine(WithEngineLanguage("en"))
	loader, err := NewLoader(engine, source)
	if err != nil {
		t.Fatalf("NewLoader: %v", err)
	}
	return NewPoller(loader, time.Minute, nil), engine, source
}

func TestPollerStartStop(t *testing.T) {
	poller, _, _ := newPollerFixture(t)

	if poller.Running() {
		t.Fatal("running before Start")
	}
	if err := poller.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !poller.Running() {
		t.Fatal("not running after Start")
	}
	if err := poller.Start(); err != nil {
		t.Fatalf("second Start: %v", err)
	}

	poller.Stop()
	if poller.Running() {
		t.Fatal("running after Stop")
	}
	poller.Stop()
}

func TestPollerTickReloadsOnChange(t *testing.T) {
	poller, engine, source := newPollerFixture(t)

	if err := poller.loader.Load(context.Background(), "en"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	fetched := source.fetches

	// fingerprints unchanged, the tick must not fetch documents again
	poller.tick()
	if source.fetches != fetched {
		t.Fatalf("tick refetched a fresh document: %d fetches", source.fetches)
	}

	source.docs["en/translation"] = Document{"k": "two"}
	source.prints["en/translation"] = "v2"

	poller.tick()
	if got := engine.Lookup("k"); got != "two" {
		t.Fatalf("k = %v after change", got)
	}
}

func TestPollerTickWithoutLanguage(t *testing.T) {
	poller, engine, source := newPollerFixture(t)
	engine.SetLanguage("")

	poller.tick()
	if source.fetches != 0 {
		t.Fatalf("tick fetched without an active language: %d fetches", source.fetches)
	}
}

func TestPollerDefaultInterval(t *testing.T) {
	poller, _, _ := newPollerFixture(t)
	if poller.interval != time.Minute {
		t.Fatalf("interval = %v", poller.interval)
	}

	fallback := NewPoller(poller.loader, 0, nil)
	if fallback.interval != DefaultPollInterval {
		t.Fatalf("fallback interval = %v", fallback.interval)
	}
}
