package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/storelist/mock"
	storeslog "github.com/fwojciec/storelist/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSource_List(t *testing.T) {
	t.Parallel()

	t.Run("logs directory and count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Source{
			ListFn: func(ctx context.Context, dir string) ([]string, error) {
				return []string{"input/a.html", "input/b.html"}, nil
			},
		}

		paths, err := storeslog.NewLoggingSource(inner, logger).List(context.Background(), "input")

		require.NoError(t, err)
		assert.Equal(t, []string{"input/a.html", "input/b.html"}, paths)
		output := buf.String()
		assert.Contains(t, output, "msg=list")
		assert.Contains(t, output, "dir=input")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Source{
			ListFn: func(ctx context.Context, dir string) ([]string, error) {
				return nil, errors.New("no such directory")
			},
		}

		_, err := storeslog.NewLoggingSource(inner, logger).List(context.Background(), "missing")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"no such directory\"")
	})
}

func TestLoggingSource_Read(t *testing.T) {
	t.Parallel()

	t.Run("logs path and bytes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Source{
			ReadFn: func(ctx context.Context, path string) (string, error) {
				return "<html>content</html>", nil
			},
		}

		text, err := storeslog.NewLoggingSource(inner, logger).Read(context.Background(), "p1.html")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", text)
		output := buf.String()
		assert.Contains(t, output, "msg=read")
		assert.Contains(t, output, "path=p1.html")
		assert.Contains(t, output, "bytes=20")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Source{
			ReadFn: func(ctx context.Context, path string) (string, error) {
				return "", errors.New("permission denied")
			},
		}

		_, err := storeslog.NewLoggingSource(inner, logger).Read(context.Background(), "p1.html")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"permission denied\"")
	})
}
