package l10n

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"
)

// DefaultResource is the conventional document name fetched when no resource
// list is configured.
const DefaultResource = "translation"

// Loader fetches raw documents from a Source, merges them, and publishes the
// merged document to the engine. It is the only component that touches I/O.
//
// Loads for the same language are collapsed into a single fetch. Publishing
// carries a monotonic ticket: a load only reaches the engine when no
// later-requested load has published before it, so racing loads cannot roll
// the document back.
type Loader struct {
	engine    *Engine
	source    Source
	resources []string
	managed   map[string]struct{}
	logger    *slog.Logger

	group singleflight.Group

	mu           sync.Mutex
	tickets      uint64
	published    uint64
	fingerprints map[string]string
}

// LoaderOption configures a Loader during construction.
type LoaderOption func(*Loader)

// WithLoaderResources sets the document names fetched and merged per
// language, in merge order.
func WithLoaderResources(resources ...string) LoaderOption {
	return func(l *Loader) {
		for _, resource := range resources {
			if resource == "" {
				continue
			}
			l.resources = append(l.resources, resource)
		}
	}
}

// WithLoaderManagedLanguages restricts loads to the given identifiers. Loads
// for anything else are skipped with a diagnostic. An empty set manages
// every language.
func WithLoaderManagedLanguages(languages ...string) LoaderOption {
	return func(l *Loader) {
		for _, language := range normalizeLocales(languages) {
			l.managed[language] = struct{}{}
		}
	}
}

// WithLoaderLogger sets the diagnostics logger.
func WithLoaderLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoader wires a loader to the engine it publishes into.
func NewLoader(engine *Engine, source Source, opts ...LoaderOption) (*Loader, error) {
	if engine == nil {
		return nil, errors.New("l10n: loader requires an engine")
	}
	if source == nil {
		return nil, ErrNoSource
	}

	l := &Loader{
		engine:       engine,
		source:       source,
		managed:      make(map[string]struct{}),
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		fingerprints: make(map[string]string),
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(l)
	}

	if len(l.resources) == 0 {
		l.resources = []string{DefaultResource}
	}

	return l, nil
}

// Managed reports whether the loader will load documents for language.
// Regional tags count as managed when a parent language is.
func (l *Loader) Managed(language string) bool {
	if len(l.managed) == 0 {
		return true
	}

	normalized := normalizeLocale(language)
	if _, ok := l.managed[normalized]; ok {
		return true
	}
	for _, parent := range localeParentChain(normalized) {
		if _, ok := l.managed[parent]; ok {
			return true
		}
	}
	return false
}

// SetLanguage switches the engine to language and loads its documents.
func (l *Loader) SetLanguage(ctx context.Context, language string) error {
	normalized := normalizeLocale(language)
	if !l.Managed(normalized) {
		l.logger.Warn("skipping load for unmanaged language",
			slog.String("language", normalized))
		return fmt.Errorf("%w: %s", ErrLanguageNotManaged, normalized)
	}

	l.engine.SetLanguage(normalized)
	return l.Load(ctx, normalized)
}

// Load fetches and merges every configured resource for language and
// publishes the result. On failure the engine degrades to an empty document
// and the underlying error is returned.
func (l *Loader) Load(ctx context.Context, language string) error {
	normalized := normalizeLocale(language)
	if !l.Managed(normalized) {
		l.logger.Warn("skipping load for unmanaged language",
			slog.String("language", normalized))
		return fmt.Errorf("%w: %s", ErrLanguageNotManaged, normalized)
	}

	ticket := l.nextTicket()
	l.engine.BeginLoad()

	value, err, shared := l.group.Do(normalized, func() (any, error) {
		return l.fetchMerged(ctx, normalized)
	})
	if err != nil {
		l.logger.Error("document load failed",
			slog.String("language", normalized),
			slog.Any("error", err))
		l.publishFailure(ticket)
		return err
	}

	result := value.(loadResult)
	if shared {
		l.logger.Debug("joined in-flight load", slog.String("language", normalized))
	}
	l.publish(ticket, result)
	return nil
}

// Fresh reports whether the documents published for language still match the
// source fingerprints. It never fetches full documents.
func (l *Loader) Fresh(ctx context.Context, language string) bool {
	normalized := normalizeLocale(language)

	l.mu.Lock()
	known := make(map[string]string, len(l.fingerprints))
	for key, print := range l.fingerprints {
		known[key] = print
	}
	l.mu.Unlock()

	if len(known) == 0 {
		return false
	}

	for _, resource := range l.resources {
		key := normalized + "/" + resource
		current, err := l.source.Fingerprint(ctx, normalized, resource)
		if err != nil {
			if known[key] == "" {
				continue
			}
			return false
		}
		if current != known[key] {
			return false
		}
	}
	return true
}

type loadResult struct {
	document     Document
	fingerprints map[string]string
}

func (l *Loader) fetchMerged(ctx context.Context, language string) (loadResult, error) {
	documents := make([]Document, 0, len(l.resources))
	prints := make(map[string]string, len(l.resources))

	for _, resource := range l.resources {
		doc, err := l.source.Fetch(ctx, language, resource)
		if err != nil {
			if errors.Is(err, ErrResourceNotFound) {
				l.logger.Debug("resource missing, skipping",
					slog.String("language", language),
					slog.String("resource", resource))
				continue
			}
			return loadResult{}, err
		}

		documents = append(documents, doc)
		if print, err := l.source.Fingerprint(ctx, language, resource); err == nil {
			prints[language+"/"+resource] = print
		}
	}

	if len(documents) == 0 {
		return loadResult{}, fmt.Errorf("%w: no documents for %s", ErrResourceNotFound, language)
	}

	return loadResult{document: Merge(documents...), fingerprints: prints}, nil
}

func (l *Loader) nextTicket() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tickets++
	return l.tickets
}

func (l *Loader) publish(ticket uint64, result loadResult) {
	l.mu.Lock()
	if ticket <= l.published {
		l.mu.Unlock()
		l.engine.SetLoading(false)
		return
	}
	l.published = ticket
	l.fingerprints = result.fingerprints
	l.mu.Unlock()

	l.engine.OnDocumentReady(result.document)
}

func (l *Loader) publishFailure(ticket uint64) {
	l.mu.Lock()
	stale := ticket <= l.published
	if !stale {
		l.published = ticket
		l.fingerprints = map[string]string{}
	}
	l.mu.Unlock()

	if stale {
		// A newer load already published; do not wipe its document.
		l.engine.SetLoading(false)
		return
	}
	l.engine.OnLoadFailed()
}
