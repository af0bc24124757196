package field

import (
	"context"
	"io"

	"github.com/arloliu/soa/encoding"
	"github.com/arloliu/soa/store"
)

// Put writes values as a flat field blob called name.
//
// The blob is committed only if every element was written; otherwise it is
// aborted and any previous blob with the same name is left as it was.
func Put[T encoding.Scalar](ctx context.Context, s store.Store, name string, values []T, opts ...encoding.Option) (int, error) {
	cfg, err := encoding.NewConfig(opts...)
	if err != nil {
		return 0, err
	}

	var n int
	err = store.WriteBlob(ctx, s, name, func(w io.Writer) error {
		var werr error
		n, werr = writeField(w, values, cfg, cfg.Logger().WithBlob(name))

		return werr
	})

	return n, err
}

// Get reads the flat field blob called name.
func Get[T encoding.Scalar](ctx context.Context, s store.Store, name string, opts ...encoding.Option) ([]T, error) {
	cfg, err := encoding.NewConfig(opts...)
	if err != nil {
		return nil, err
	}

	var values []T
	err = store.ReadBlob(ctx, s, name, func(r io.Reader, size int64) error {
		var rerr error
		values, rerr = readField[T](encoding.NewSizedReader(r, size, cfg), cfg.Logger().WithBlob(name))

		return rerr
	})
	if err != nil {
		return nil, err
	}

	return values, nil
}
