package l10n

import "errors"

// ErrMalformedKey indicates a key path whose first segment is empty after trimming.
var ErrMalformedKey = errors.New("l10n: malformed key path")

// ErrKeyNotFound indicates that a key path did not resolve to a value.
var ErrKeyNotFound = errors.New("l10n: key not found")

// ErrLanguageNotManaged indicates a load request for a language outside the managed set.
var ErrLanguageNotManaged = errors.New("l10n: language not managed")

// ErrNoSource indicates that a loader was built without a document source.
var ErrNoSource = errors.New("l10n: no document source configured")

// ErrResourceNotFound indicates that a source has no document for a language/resource pair.
var ErrResourceNotFound = errors.New("l10n: resource not found")
