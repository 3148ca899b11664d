package mock

import (
	"context"

	"github.com/fwojciec/storelist"
)

var _ storelist.StoreWriter = (*StoreWriter)(nil)

// StoreWriter is a mock implementation of storelist.StoreWriter.
type StoreWriter struct {
	WriteStoresFn func(ctx context.Context, stores []storelist.Store) error
}

func (w *StoreWriter) WriteStores(ctx context.Context, stores []storelist.Store) error {
	return w.WriteStoresFn(ctx, stores)
}
