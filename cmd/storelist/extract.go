package main

import (
	"context"
	"fmt"

	"github.com/fwojciec/storelist"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	var stores []storelist.Store
	if c.Mode == ModeFile {
		stores = c.extractFile(deps, c.Path)
	} else {
		stores = c.extractDir(deps)
	}

	if len(stores) == 0 {
		fmt.Fprintln(deps.Stdout, "no store information could be extracted")
		return nil
	}

	if err := deps.Writer.WriteStores(deps.Ctx, stores); err != nil {
		fmt.Fprintf(deps.Stderr, "error writing stores: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "CSV file %q created\n", c.Output)
	return nil
}

// extractDir extracts every file in the directory in path order.
// A missing directory is reported and yields no stores.
func (c *ExtractCmd) extractDir(deps *Dependencies) []storelist.Store {
	paths, err := deps.Source.List(deps.Ctx, c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stdout, "error: %s\n", storelist.ErrorMessage(err))
		return nil
	}

	var stores []storelist.Store
	for _, path := range paths {
		fmt.Fprintln(deps.Stdout, path)
		stores = append(stores, c.extractFile(deps, path)...)
	}
	return stores
}

// extractFile extracts the stores of one file.
// An unreadable file is reported and yields no stores.
func (c *ExtractCmd) extractFile(deps *Dependencies, path string) []storelist.Store {
	text, err := deps.Source.Read(deps.Ctx, path)
	if err != nil {
		fmt.Fprintf(deps.Stdout, "error: %s\n", storelist.ErrorMessage(err))
		return nil
	}

	stores := deps.Extractor.Extract(text).Stores
	for i := range stores {
		stores[i].File = path
	}
	return stores
}

// Ensure MultiWriter implements storelist.StoreWriter at compile time.
var _ storelist.StoreWriter = MultiWriter(nil)

// MultiWriter writes the same stores to each writer in turn,
// stopping at the first failure.
type MultiWriter []storelist.StoreWriter

// WriteStores implements storelist.StoreWriter.
func (w MultiWriter) WriteStores(ctx context.Context, stores []storelist.Store) error {
	for _, next := range w {
		if err := next.WriteStores(ctx, stores); err != nil {
			return err
		}
	}
	return nil
}
