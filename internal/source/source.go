package source

import (
	"context"

	"interndash/internal"
)

// GridSource produces the raw sheet grid the pipeline consumes. The fetch
// owns credentials, coordinates, and transport; the pipeline never opens a
// connection itself.
type GridSource interface {
	FetchGrid(ctx context.Context) (internal.RawGrid, error)
}
