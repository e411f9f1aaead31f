package mock

import (
	"context"

	"github.com/fwojciec/schemagen"
)

var _ schemagen.URLSource = (*URLSource)(nil)

// URLSource is a mock implementation of schemagen.URLSource.
type URLSource struct {
	DiscoverFn func(ctx context.Context, siteURL string) ([]string, error)
}

func (s *URLSource) Discover(ctx context.Context, siteURL string) ([]string, error) {
	return s.DiscoverFn(ctx, siteURL)
}
