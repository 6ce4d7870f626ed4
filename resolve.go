package l10n

import "strings"

// Resolve walks a dot-separated key path through a nested document and
// returns the terminal value, which may be of any type.
//
// Only the first segment is trimmed of surrounding whitespace; descent uses
// the remaining segments verbatim. An empty first segment yields
// ErrMalformedKey. A segment that is absent, or a descent into a non-document
// value, yields ErrKeyNotFound. The document is never mutated.
func Resolve(doc Document, keyPath string) (any, error) {
	segments := strings.Split(keyPath, ".")

	first := strings.TrimSpace(segments[0])
	if first == "" {
		return nil, ErrMalformedKey
	}

	current, ok := doc[first]
	if !ok {
		return nil, ErrKeyNotFound
	}

	for _, segment := range segments[1:] {
		node, isDoc := asDocument(current)
		if !isDoc {
			return nil, ErrKeyNotFound
		}
		current, ok = node[segment]
		if !ok {
			return nil, ErrKeyNotFound
		}
	}

	return current, nil
}
