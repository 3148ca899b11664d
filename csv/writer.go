// Package csv writes extracted stores to a CSV file.
package csv

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/fwojciec/storelist"
)

// DefaultPath is the output file written in the working directory.
const DefaultPath = "stores.csv"

// Ensure Writer implements storelist.StoreWriter at compile time.
var _ storelist.StoreWriter = (*Writer)(nil)

// Writer writes stores as name,address rows.
// Rows are written to path+".tmp" and renamed over path once complete, so a
// failed run never leaves a partial file behind.
type Writer struct {
	path   string
	header bool
}

// Option configures a Writer.
type Option func(*Writer)

// WithHeader prepends the storelist.Header row when enabled.
func WithHeader(enabled bool) Option {
	return func(w *Writer) {
		w.header = enabled
	}
}

// NewWriter creates a new Writer for the file at path.
func NewWriter(path string, opts ...Option) *Writer {
	w := &Writer{path: path}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Path returns the output file path.
func (w *Writer) Path() string {
	return w.path
}

func (w *Writer) tempPath() string {
	return w.path + ".tmp"
}

// WriteStores writes stores to the output file, replacing any previous content.
func (w *Writer) WriteStores(ctx context.Context, stores []storelist.Store) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := w.writeTemp(stores); err != nil {
		_ = os.Remove(w.tempPath())
		return err
	}

	if err := os.Rename(w.tempPath(), w.path); err != nil {
		_ = os.Remove(w.tempPath())
		return fmt.Errorf("failed to replace %q: %w", w.path, err)
	}

	return nil
}

func (w *Writer) writeTemp(stores []storelist.Store) (err error) {
	f, err := os.Create(w.tempPath())
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", w.tempPath(), err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close %q: %w", w.tempPath(), cerr)
		}
	}()

	cw := csv.NewWriter(f)
	cw.UseCRLF = true

	if w.header {
		if err := cw.Write(storelist.Header()); err != nil {
			return err
		}
	}
	for _, s := range stores {
		if err := cw.Write(s.Record()); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
