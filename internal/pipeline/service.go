package pipeline

import (
	"context"
	"fmt"

	"interndash/internal"
	"interndash/internal/cache"
	"interndash/internal/logging"
	"interndash/internal/source"
)

// Service runs the fetch + normalize + materialize cycle for one configured
// sheet, reusing the memoized grid within its freshness window.
type Service struct {
	src   source.GridSource
	cache *cache.Cache
	key   string
	log   *logging.Logger
}

func NewService(src source.GridSource, c *cache.Cache, key string, log *logging.Logger) *Service {
	return &Service{src: src, cache: c, key: key, log: log}
}

// Records returns every listing in sheet order. An empty sheet yields an
// empty slice; only the upstream fetch can fail.
func (s *Service) Records(ctx context.Context) ([]internal.ListingRecord, error) {
	grid, hit := s.cache.Get(s.key)
	if !hit {
		fetched, err := s.src.FetchGrid(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetch grid: %w", err)
		}
		s.cache.Put(s.key, fetched)
		grid = fetched
		s.log.Info("grid fetched", "key", s.key, "rows", len(grid))
	}

	return MaterializeRecords(NormalizeGrid(grid)), nil
}
