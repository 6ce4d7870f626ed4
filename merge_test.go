package l10n

import (
	"reflect"
	"testing"
)

func TestMergeLaterWins(t *testing.T) {
	a := Document{
		"title": "A",
		"nested": Document{
			"keep":     "from a",
			"override": "a value",
		},
		"list": []any{"a1", "a2"},
	}
	b := Document{
		"title": "B",
		"nested": Document{
			"override": "b value",
			"added":    "from b",
		},
		"list": []any{"b1"},
	}

	got := Merge(a, b)

	want := Document{
		"title": "B",
		"nested": Document{
			"keep":     "from a",
			"override": "b value",
			"added":    "from b",
		},
		"list": []any{"b1"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Merge() = %#v want %#v", got, want)
	}
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	a := Document{"nested": Document{"x": "a"}, "s": "a"}
	b := Document{"nested": Document{"y": "b"}, "s": "b"}

	_ = Merge(a, b)

	if !reflect.DeepEqual(a, Document{"nested": Document{"x": "a"}, "s": "a"}) {
		t.Fatalf("first input mutated: %#v", a)
	}
	if !reflect.DeepEqual(b, Document{"nested": Document{"y": "b"}, "s": "b"}) {
		t.Fatalf("second input mutated: %#v", b)
	}
}

func TestMergeSkipsNilInputs(t *testing.T) {
	got := Merge(nil, Document{"k": "v"}, nil)
	if !reflect.DeepEqual(got, Document{"k": "v"}) {
		t.Fatalf("Merge() = %#v", got)
	}

	if got := Merge(); len(got) != 0 || got == nil {
		t.Fatalf("Merge() with no inputs = %#v", got)
	}
}

func TestMergeArraysReplacedWholesale(t *testing.T) {
	a := Document{"items": []any{"one", "two", "three"}}
	b := Document{"items": []any{"solo"}}

	got := Merge(a, b)
	if !reflect.DeepEqual(got["items"], []any{"solo"}) {
		t.Fatalf("items = %#v", got["items"])
	}
}

func TestStrictMergeUpdatesExistingKeysOnly(t *testing.T) {
	target := Document{"a": 1, "b": 2}
	got := StrictMerge(target, Document{"b": 3, "c": 4})

	if !reflect.DeepEqual(target, Document{"a": 1, "b": 3}) {
		t.Fatalf("target = %#v", target)
	}
	if reflect.ValueOf(got).Pointer() != reflect.ValueOf(target).Pointer() {
		t.Fatal("StrictMerge must return the target itself")
	}
}

func TestStrictMergeNestedSchema(t *testing.T) {
	target := Document{
		"app": Document{
			"title": "default",
			"meta":  Document{"version": "1"},
		},
	}

	StrictMerge(target, Document{
		"app": Document{
			"title":   "updated",
			"meta":    Document{"version": "2", "extra": "no"},
			"unknown": "dropped",
		},
		"new": "dropped",
	})

	want := Document{
		"app": Document{
			"title": "updated",
			"meta":  Document{"version": "2"},
		},
	}
	if !reflect.DeepEqual(target, want) {
		t.Fatalf("target = %#v want %#v", target, want)
	}
}

func TestStrictMergeEmptyTargetNoop(t *testing.T) {
	target := Document{}
	got := StrictMerge(target, Document{"a": 1})

	if len(target) != 0 {
		t.Fatalf("empty target gained keys: %#v", target)
	}
	if reflect.ValueOf(got).Pointer() != reflect.ValueOf(target).Pointer() {
		t.Fatal("StrictMerge must return the target itself")
	}
}

func TestStrictMergeReplacesDocumentWithLeaf(t *testing.T) {
	target := Document{"node": Document{"a": 1}}
	StrictMerge(target, Document{"node": "leaf"})

	if target["node"] != "leaf" {
		t.Fatalf("node = %#v", target["node"])
	}
}
