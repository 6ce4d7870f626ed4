package l10n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Source produces raw translation documents for a language/resource pair.
// Fingerprint returns an opaque freshness token; the reload poller only
// re-runs the full load path when a fingerprint changes.
type Source interface {
	Fetch(ctx context.Context, language, resource string) (Document, error)
	Fingerprint(ctx context.Context, language, resource string) (string, error)
}

var documentExtensions = []string{".json", ".yaml", ".yml"}

// FileSource reads documents from a directory laid out as
// {root}/{language}/{resource}.json (or .yaml/.yml).
type FileSource struct {
	root string
}

var _ Source = (*FileSource)(nil)

// NewFileSource builds a source over the given root directory.
func NewFileSource(root string) *FileSource {
	return &FileSource{root: root}
}

func (s *FileSource) locate(language, resource string) (string, error) {
	for _, ext := range documentExtensions {
		path := filepath.Join(s.root, language, resource+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s/%s under %s", ErrResourceNotFound, language, resource, s.root)
}

func (s *FileSource) Fetch(ctx context.Context, language, resource string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := s.locate(language, resource)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("l10n: read %s: %w", path, err)
	}

	doc, err := decodeDocument(path, data)
	if err != nil {
		return nil, fmt.Errorf("l10n: decode %s: %w", path, err)
	}
	return doc, nil
}

// Fingerprint derives the freshness token from the file's size and mtime.
func (s *FileSource) Fingerprint(ctx context.Context, language, resource string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path, err := s.locate(language, resource)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("l10n: stat %s: %w", path, err)
	}

	return path + ":" + strconv.FormatInt(info.Size(), 10) + ":" +
		strconv.FormatInt(info.ModTime().UnixNano(), 10), nil
}

// FSSource reads documents from an fs.FS with the same layout as FileSource.
// It suits embedded locale bundles; fingerprints are static because embedded
// content cannot change at runtime.
type FSSource struct {
	fsys fs.FS
}

var _ Source = (*FSSource)(nil)

func NewFSSource(fsys fs.FS) *FSSource {
	return &FSSource{fsys: fsys}
}

func (s *FSSource) locate(language, resource string) (string, error) {
	for _, ext := range documentExtensions {
		name := language + "/" + resource + ext
		if _, err := fs.Stat(s.fsys, name); err == nil {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: %s/%s", ErrResourceNotFound, language, resource)
}

func (s *FSSource) Fetch(ctx context.Context, language, resource string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name, err := s.locate(language, resource)
	if err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("l10n: read %s: %w", name, err)
	}

	doc, err := decodeDocument(name, data)
	if err != nil {
		return nil, fmt.Errorf("l10n: decode %s: %w", name, err)
	}
	return doc, nil
}

func (s *FSSource) Fingerprint(ctx context.Context, language, resource string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.locate(language, resource)
}

// HTTPSource fetches documents from {base}/{language}/{resource}.json.
type HTTPSource struct {
	base   string
	client *http.Client
}

var _ Source = (*HTTPSource)(nil)

// NewHTTPSource builds a source over the given base URL. A nil client uses
// http.DefaultClient.
func NewHTTPSource(base string, client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{
		base:   strings.TrimRight(base, "/"),
		client: client,
	}
}

func (s *HTTPSource) resourceURL(language, resource string) string {
	return s.base + "/" + url.PathEscape(language) + "/" + url.PathEscape(resource) + ".json"
}

func (s *HTTPSource) Fetch(ctx context.Context, language, resource string) (Document, error) {
	target := s.resourceURL(language, resource)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("l10n: build request %s: %w", target, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("l10n: fetch %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, target)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("l10n: fetch %s: unexpected status %s", target, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("l10n: fetch %s: %w", target, err)
	}

	doc, err := decodeDocument(target, data)
	if err != nil {
		return nil, fmt.Errorf("l10n: decode %s: %w", target, err)
	}
	return doc, nil
}

// Fingerprint issues a HEAD request and uses validator headers as the
// freshness token, falling back to the content length.
func (s *HTTPSource) Fingerprint(ctx context.Context, language, resource string) (string, error) {
	target := s.resourceURL(language, resource)

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target, nil)
	if err != nil {
		return "", fmt.Errorf("l10n: build request %s: %w", target, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("l10n: head %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", fmt.Errorf("%w: %s", ErrResourceNotFound, target)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("l10n: head %s: unexpected status %s", target, resp.Status)
	}

	if etag := resp.Header.Get("ETag"); etag != "" {
		return target + ":" + etag, nil
	}
	if modified := resp.Header.Get("Last-Modified"); modified != "" {
		return target + ":" + modified, nil
	}
	return target + ":" + resp.Header.Get("Content-Length"), nil
}

func decodeDocument(path string, data []byte) (Document, error) {
	var doc Document

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("yaml parse error: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("json parse error: %w", err)
		}
	}

	if doc == nil {
		return nil, errors.New("empty translation document")
	}
	return doc, nil
}
