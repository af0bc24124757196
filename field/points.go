package field

import (
	"context"
	"fmt"
	"io"

	"github.com/arloliu/soa/encoding"
	"github.com/arloliu/soa/errs"
	"github.com/arloliu/soa/internal/fileio"
	"github.com/arloliu/soa/internal/logging"
)

// WritePoints writes a point file: the x coordinates then the y coordinates,
// each as its own section.
//
// x and y must have the same length; otherwise errs.ErrLengthMismatch is
// returned and no file is created.
func WritePoints[T encoding.Scalar](path string, x, y []T, opts ...encoding.Option) error {
	cfg, err := encoding.NewConfig(opts...)
	if err != nil {
		return err
	}

	log := cfg.Logger().WithPath(path)
	if err := checkPoints(x, y); err != nil {
		log.LogRejected(context.Background(), err)
		return err
	}

	return fileio.Create(path, func(w io.Writer) error {
		return writePoints(w, x, y, cfg, log)
	})
}

// WritePointsTo writes x and y to w as two sections.
func WritePointsTo[T encoding.Scalar](w io.Writer, x, y []T, opts ...encoding.Option) error {
	cfg, err := encoding.NewConfig(opts...)
	if err != nil {
		return err
	}

	if err := checkPoints(x, y); err != nil {
		cfg.Logger().LogRejected(context.Background(), err)
		return err
	}

	return writePoints(w, x, y, cfg, cfg.Logger())
}

// ReadPoints reads a point file written by WritePoints.
//
// A file whose two sections differ in length is rejected with
// errs.ErrLengthMismatch.
func ReadPoints[T encoding.Scalar](path string, opts ...encoding.Option) (x, y []T, err error) {
	cfg, err := encoding.NewConfig(opts...)
	if err != nil {
		return nil, nil, err
	}

	err = fileio.Open(path, func(r io.Reader, size int64) error {
		var rerr error
		x, y, rerr = readPoints[T](encoding.NewSizedReader(r, size, cfg), cfg.Logger().WithPath(path))

		return rerr
	})
	if err != nil {
		return nil, nil, err
	}

	return x, y, nil
}

// ReadPointsFrom reads two coordinate sections from r.
func ReadPointsFrom[T encoding.Scalar](r io.Reader, opts ...encoding.Option) (x, y []T, err error) {
	cfg, err := encoding.NewConfig(opts...)
	if err != nil {
		return nil, nil, err
	}

	return readPoints[T](encoding.NewReader(r, cfg), cfg.Logger())
}

func checkPoints[T encoding.Scalar](x, y []T) error {
	if len(x) != len(y) {
		return fmt.Errorf("%w: %d x values, %d y values", errs.ErrLengthMismatch, len(x), len(y))
	}

	return nil
}

func writePoints[T encoding.Scalar](w io.Writer, x, y []T, cfg *encoding.Config, log *logging.Logger) error {
	ctx := context.Background()
	ew := encoding.NewWriter(w, cfg)

	for _, s := range []struct {
		name   string
		values []T
	}{{"x", x}, {"y", y}} {
		n, err := encoding.WriteArray(ew, s.values)
		log.LogWrite(ctx, s.name, len(s.values), n, err)
		if err != nil {
			return fmt.Errorf("section %s: %w", s.name, err)
		}
	}

	return nil
}

func readPoints[T encoding.Scalar](r *encoding.Reader, log *logging.Logger) ([]T, []T, error) {
	ctx := context.Background()

	x, err := encoding.ReadArray[T](r)
	log.LogRead(ctx, "x", len(x), err)
	if err != nil {
		return nil, nil, fmt.Errorf("section x: %w", err)
	}

	y, err := encoding.ReadArray[T](r)
	log.LogRead(ctx, "y", len(y), err)
	if err != nil {
		return nil, nil, fmt.Errorf("section y: %w", err)
	}

	if err := checkPoints(x, y); err != nil {
		return nil, nil, err
	}

	return x, y, nil
}
