package l10n

import (
	"errors"
	"testing"
)

func TestResolve(t *testing.T) {
	doc := Document{
		"app": Document{
			"title": "My App",
			"menu": Document{
				"items": []any{"Home", "About"},
			},
		},
		"count":       5,
		" spaced ":    "never reachable",
		"plainstring": "leaf",
	}

	tests := []struct {
		name    string
		key     string
		want    any
		wantErr error
	}{
		{name: "nested string", key: "app.title", want: "My App"},
		{name: "top level non-string", key: "count", want: 5},
		{name: "intermediate document", key: "app.menu", want: nil},
		{name: "sequence value", key: "app.menu.items", want: nil},
		{name: "missing top level", key: "nope", wantErr: ErrKeyNotFound},
		{name: "missing nested", key: "app.missing", wantErr: ErrKeyNotFound},
		{name: "descend into leaf", key: "plainstring.deeper", wantErr: ErrKeyNotFound},
		{name: "descend into sequence", key: "app.menu.items.0", wantErr: ErrKeyNotFound},
		{name: "empty key", key: "", wantErr: ErrMalformedKey},
		{name: "whitespace first segment", key: "   .x", wantErr: ErrMalformedKey},
		{name: "leading dot", key: ".x", wantErr: ErrMalformedKey},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Resolve(doc, tc.key)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("Resolve(%q) err = %v want %v", tc.key, err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q): %v", tc.key, err)
			}
			if tc.want != nil && got != tc.want {
				t.Fatalf("Resolve(%q) = %v want %v", tc.key, got, tc.want)
			}
			if got == nil {
				t.Fatalf("Resolve(%q) returned nil value", tc.key)
			}
		})
	}
}

// Only the first segment is trimmed; later segments must match verbatim.
func TestResolveTrimsFirstSegmentOnly(t *testing.T) {
	doc := Document{
		"app": Document{
			"title":  "Trimmed",
			" title": "Spaced",
		},
	}

	got, err := Resolve(doc, "  app .title")
	if err != nil || got != "Trimmed" {
		t.Fatalf("Resolve with padded first segment = %v, %v", got, err)
	}

	got, err = Resolve(doc, "app. title")
	if err != nil || got != "Spaced" {
		t.Fatalf("second segment must not be trimmed, got %v, %v", got, err)
	}

	if _, err := Resolve(doc, "app.title "); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("trailing segment whitespace must miss, got %v", err)
	}
}

func TestResolveNilDocument(t *testing.T) {
	if _, err := Resolve(nil, "any.key"); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
	if _, err := Resolve(nil, " .key"); !errors.Is(err, ErrMalformedKey) {
		t.Fatalf("malformed key beats missing document, got %v", err)
	}
}
