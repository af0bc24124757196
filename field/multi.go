package field

import (
	"context"
	"fmt"
	"runtime"

	"github.com/arloliu/soa/encoding"
	"golang.org/x/sync/errgroup"
)

// ReadFields reads independent field files concurrently.
//
// At most GOMAXPROCS files are open at once. The first failure cancels the
// remaining reads that have not started and is returned; no partial result is
// returned. out[i] holds the values of paths[i].
func ReadFields[T encoding.Scalar](ctx context.Context, paths []string, opts ...encoding.Option) ([][]T, error) {
	if _, err := encoding.NewConfig(opts...); err != nil {
		return nil, err
	}

	out := make([][]T, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			values, err := ReadField[T](path, opts...)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			out[i] = values

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
