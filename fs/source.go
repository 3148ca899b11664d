// Package fs provides file-based access to saved listing pages.
package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"unicode/utf8"

	"github.com/fwojciec/storelist"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// DefaultEncoding is the text encoding pages are read in unless overridden.
const DefaultEncoding = "utf-8"

// Ensure Source implements storelist.Source at compile time.
var _ storelist.Source = (*Source)(nil)

// Source lists and reads listing pages from the local filesystem.
type Source struct {
	encoding string
	enc      encoding.Encoding
}

// Option configures a Source.
type Option func(*Source)

// WithEncoding sets the fixed text encoding files are decoded with.
// The name is any WHATWG encoding label, e.g. "utf-8", "shift_jis", "euc-jp".
func WithEncoding(name string) Option {
	return func(s *Source) {
		s.encoding = name
	}
}

// NewSource creates a new Source.
// Returns EINVALID if the configured encoding is unknown.
func NewSource(opts ...Option) (*Source, error) {
	s := &Source{encoding: DefaultEncoding}
	for _, opt := range opts {
		opt(s)
	}

	enc, err := htmlindex.Get(s.encoding)
	if err != nil {
		return nil, storelist.Errorf(storelist.EINVALID, "unknown encoding %q", s.encoding)
	}
	// UTF-8 is validated strictly in Read instead of decoded with replacement.
	if name, _ := htmlindex.Name(enc); name != "utf-8" {
		s.enc = enc
	}

	return s, nil
}

// List returns the regular files directly inside dir, sorted by path.
// Subdirectories are skipped.
func (s *Source) List(ctx context.Context, dir string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, storelist.Errorf(storelist.ENOTFOUND, "directory %q does not exist or is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %q: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		// Stat follows symlinks so linked files are listed too.
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		paths = append(paths, path)
	}
	sort.Strings(paths)

	return paths, nil
}

// Read returns the content of the file at path decoded as text.
func (s *Source) Read(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", storelist.Errorf(storelist.ENOTFOUND, "file %q not found", path)
	} else if err != nil {
		return "", fmt.Errorf("failed to read file %q: %w", path, err)
	}

	if s.enc == nil {
		if !utf8.Valid(data) {
			return "", storelist.Errorf(storelist.EINVALID, "file %q is not valid %s", path, s.encoding)
		}
		return string(data), nil
	}

	decoded, err := s.enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", storelist.Errorf(storelist.EINVALID, "file %q is not valid %s: %v", path, s.encoding, err)
	}
	return string(decoded), nil
}
