package mock

import "github.com/fwojciec/storelist"

var _ storelist.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of storelist.Extractor.
type Extractor struct {
	ExtractFn func(html string) *storelist.ExtractResult
}

func (e *Extractor) Extract(html string) *storelist.ExtractResult {
	return e.ExtractFn(html)
}
