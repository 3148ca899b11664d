package mock

import (
	"context"

	"github.com/fwojciec/storelist"
)

var _ storelist.Source = (*Source)(nil)

// Source is a mock implementation of storelist.Source.
type Source struct {
	ListFn func(ctx context.Context, dir string) ([]string, error)
	ReadFn func(ctx context.Context, path string) (string, error)
}

func (s *Source) List(ctx context.Context, dir string) ([]string, error) {
	return s.ListFn(ctx, dir)
}

func (s *Source) Read(ctx context.Context, path string) (string, error) {
	return s.ReadFn(ctx, path)
}
