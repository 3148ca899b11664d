package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/storelist"
	"github.com/fwojciec/storelist/mock"
	storeslog "github.com/fwojciec/storelist/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingStoreWriter_WriteStores(t *testing.T) {
	t.Parallel()

	t.Run("logs sink and count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		var written []storelist.Store
		inner := &mock.StoreWriter{
			WriteStoresFn: func(ctx context.Context, stores []storelist.Store) error {
				written = stores
				return nil
			},
		}
		stores := []storelist.Store{{Name: "A", Address: "1"}, {Name: "B", Address: "2"}}

		err := storeslog.NewLoggingStoreWriter(inner, "csv", logger).WriteStores(context.Background(), stores)

		require.NoError(t, err)
		assert.Equal(t, stores, written)
		output := buf.String()
		assert.Contains(t, output, "msg=\"write stores\"")
		assert.Contains(t, output, "sink=csv")
		assert.Contains(t, output, "count=2")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.StoreWriter{
			WriteStoresFn: func(ctx context.Context, stores []storelist.Store) error {
				return errors.New("disk full")
			},
		}

		err := storeslog.NewLoggingStoreWriter(inner, "sqlite", logger).WriteStores(context.Background(), nil)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"disk full\"")
	})
}
