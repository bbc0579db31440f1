package outline

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ConvertAll converts several outlines concurrently. The i-th path of the result
// belongs to the i-th outline.
//
// Conversion stops at the first outline that fails to convert or when ctx is done,
// and the error is returned. opts.OnDegenerate may be called from several goroutines
// at once.
func ConvertAll(ctx context.Context, outlines [][]Vertex, opts ConvertOptions) ([]Path, error) {
	paths := make([]Path, len(outlines))
	g, ctx := errgroup.WithContext(ctx)
	for i, vertices := range outlines {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := ConvertOpt(vertices, opts)
			if err != nil {
				return fmt.Errorf("outline %d: %w", i, err)
			}
			paths[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
