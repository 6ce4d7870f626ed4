package l10n

import (
	"errors"
	"sync"
)

// DefaultTextKey is the named-argument key that carries a caller supplied
// fallback text for missing keys.
const DefaultTextKey = "defaultTxt"

// malformedKeyText is what lookups render for an unusable key path.
const malformedKeyText = "unknown"

// Engine resolves key paths against the currently loaded document, applying
// placeholder formatting and plural selection. It holds the single active
// document, the active language, and a loading flag; the document is only
// ever replaced wholesale, so readers never observe a partial merge.
//
// Lookups never fail: missing keys, malformed paths, absent documents, and
// wrong argument counts all degrade to defined fallback values.
type Engine struct {
	mu       sync.RWMutex
	document Document
	language string
	loading  bool

	selector *PluralSelector
	hooks    []LookupHook
}

// EngineOption configures an Engine during construction.
type EngineOption func(*Engine)

// WithEngineLanguage sets the initial active language.
func WithEngineLanguage(language string) EngineOption {
	return func(e *Engine) {
		e.language = normalizeLocale(language)
	}
}

// WithEngineSelector replaces the plural selector.
func WithEngineSelector(selector *PluralSelector) EngineOption {
	return func(e *Engine) {
		if selector != nil {
			e.selector = selector
		}
	}
}

// WithEngineHooks registers lookup hooks, run in registration order.
func WithEngineHooks(hooks ...LookupHook) EngineOption {
	return func(e *Engine) {
		for _, hook := range hooks {
			if hook == nil {
				continue
			}
			e.hooks = append(e.hooks, hook)
		}
	}
}

// NewEngine builds an engine with no document loaded.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		selector: NewPluralSelector(nil),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(e)
	}
	return e
}

// SetLanguage switches the active language used for plural selection.
func (e *Engine) SetLanguage(language string) {
	e.mu.Lock()
	e.language = normalizeLocale(language)
	e.mu.Unlock()
}

// Language returns the active language identifier.
func (e *Engine) Language() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.language
}

// Loading reports whether a document load is in flight.
func (e *Engine) Loading() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.loading
}

// BeginLoad raises the loading flag ahead of a document load.
func (e *Engine) BeginLoad() {
	e.mu.Lock()
	e.loading = true
	e.mu.Unlock()
}

// SetLoading overrides the loading flag without touching the document.
func (e *Engine) SetLoading(loading bool) {
	e.mu.Lock()
	e.loading = loading
	e.mu.Unlock()
}

// OnDocumentReady replaces the active document wholesale and clears the
// loading flag. The replacement is atomic from any reader's perspective.
func (e *Engine) OnDocumentReady(document Document) {
	e.mu.Lock()
	e.document = document
	e.loading = false
	e.mu.Unlock()
}

// OnLoadFailed degrades the engine to an empty document rather than an error
// state: lookups keep answering with their not-found fallbacks.
func (e *Engine) OnLoadFailed() {
	e.mu.Lock()
	e.document = Document{}
	e.loading = false
	e.mu.Unlock()
}

// Lookup resolves a key path against the current document. String values are
// formatted with the given arguments; any other resolved value is returned
// as-is. A trailing map argument may carry DefaultTextKey with fallback text
// for missing keys; the fallback is formatted with the same arguments.
func (e *Engine) Lookup(keyPath string, args ...any) any {
	e.mu.RLock()
	document, language, loading := e.document, e.language, e.loading
	e.mu.RUnlock()

	if len(e.hooks) == 0 {
		return lookup(document, loading, keyPath, args)
	}

	ctx := &LookupContext{
		Language: language,
		Key:      keyPath,
		Args:     args,
	}

	for _, hook := range e.hooks {
		hook.BeforeLookup(ctx)
	}

	ctx.Result = lookup(document, loading, ctx.Key, ctx.Args)

	for _, hook := range e.hooks {
		hook.AfterLookup(ctx)
	}

	return ctx.Result
}

// LookupPlural selects the singular or plural variant of a key by count and
// resolves it through Lookup. The count is prepended to the positional
// arguments, so positional placeholders can render it.
func (e *Engine) LookupPlural(keyPath string, count int, args ...any) any {
	form := e.selector.Select(e.Language(), count)

	merged := make([]any, 0, len(args)+1)
	merged = append(merged, count)
	merged = append(merged, args...)

	return e.Lookup(keyPath+"."+string(form), merged...)
}

func lookup(document Document, loading bool, keyPath string, args []any) any {
	defaultText, hasDefault := defaultTextFromArgs(args)

	if hasDefault && (document == nil || loading) {
		return ""
	}
	if document == nil && loading {
		return ""
	}

	value, err := Resolve(document, keyPath)
	switch {
	case errors.Is(err, ErrMalformedKey):
		return malformedKeyText
	case errors.Is(err, ErrKeyNotFound):
		if hasDefault {
			return Format(defaultText, args...)
		}
		return keyPath
	}

	if text, ok := value.(string); ok {
		return Format(text, args...)
	}

	return value
}

func defaultTextFromArgs(args []any) (string, bool) {
	_, bag := splitFormatArgs(args)
	if bag == nil {
		return "", false
	}
	value, ok := bag[DefaultTextKey]
	if !ok {
		return "", false
	}
	return stringify(value), true
}
