package polygon

import (
	"context"
	"io"

	"github.com/arloliu/soa/encoding"
	"github.com/arloliu/soa/store"
)

// Put validates c and writes it as a polygon blob called name.
//
// An invalid collection is rejected before the blob is created. A failed
// write aborts the blob.
func Put[T encoding.Scalar](ctx context.Context, s store.Store, name string, c *Collection[T], opts ...encoding.Option) error {
	cfg, err := encoding.NewConfig(opts...)
	if err != nil {
		return err
	}

	log := cfg.Logger().WithBlob(name)
	if err := c.Validate(); err != nil {
		log.LogRejected(ctx, err)
		return err
	}

	return store.WriteBlob(ctx, s, name, func(w io.Writer) error {
		return writeCollection(w, c, cfg, log)
	})
}

// Get reads the polygon blob called name.
func Get[T encoding.Scalar](ctx context.Context, s store.Store, name string, opts ...encoding.Option) (*Collection[T], error) {
	cfg, err := encoding.NewConfig(opts...)
	if err != nil {
		return nil, err
	}

	var c *Collection[T]
	err = store.ReadBlob(ctx, s, name, func(r io.Reader, size int64) error {
		var rerr error
		c, rerr = readCollection[T](encoding.NewSizedReader(r, size, cfg), cfg.Logger().WithBlob(name))

		return rerr
	})
	if err != nil {
		return nil, err
	}

	return c, nil
}
