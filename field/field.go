package field

import (
	"context"
	"io"

	"github.com/arloliu/soa/encoding"
	"github.com/arloliu/soa/internal/fileio"
	"github.com/arloliu/soa/internal/logging"
)

const sectionName = "values"

// WriteField writes values to path as a flat field file, creating or
// truncating it.
//
// Returns the number of elements written. On error the file may hold a
// partial section; write through a store.LocalStore for atomic replacement.
func WriteField[T encoding.Scalar](path string, values []T, opts ...encoding.Option) (int, error) {
	cfg, err := encoding.NewConfig(opts...)
	if err != nil {
		return 0, err
	}

	var n int
	err = fileio.Create(path, func(w io.Writer) error {
		var werr error
		n, werr = writeField(w, values, cfg, cfg.Logger().WithPath(path))

		return werr
	})

	return n, err
}

// WriteFieldTo writes values to w as a flat field stream.
func WriteFieldTo[T encoding.Scalar](w io.Writer, values []T, opts ...encoding.Option) (int, error) {
	cfg, err := encoding.NewConfig(opts...)
	if err != nil {
		return 0, err
	}

	return writeField(w, values, cfg, cfg.Logger())
}

// ReadField reads a flat field file written with the same T and options.
//
// Bytes after the section are ignored.
func ReadField[T encoding.Scalar](path string, opts ...encoding.Option) ([]T, error) {
	cfg, err := encoding.NewConfig(opts...)
	if err != nil {
		return nil, err
	}

	var values []T
	err = fileio.Open(path, func(r io.Reader, size int64) error {
		var rerr error
		values, rerr = readField[T](encoding.NewSizedReader(r, size, cfg), cfg.Logger().WithPath(path))

		return rerr
	})
	if err != nil {
		return nil, err
	}

	return values, nil
}

// ReadFieldFrom reads one flat field section from r.
func ReadFieldFrom[T encoding.Scalar](r io.Reader, opts ...encoding.Option) ([]T, error) {
	cfg, err := encoding.NewConfig(opts...)
	if err != nil {
		return nil, err
	}

	return readField[T](encoding.NewReader(r, cfg), cfg.Logger())
}

// ReadTimestamps reads a field of int64 timestamps.
func ReadTimestamps(path string, opts ...encoding.Option) ([]int64, error) {
	return ReadField[int64](path, opts...)
}

// ReadInt32 reads a field of int32 values.
func ReadInt32(path string, opts ...encoding.Option) ([]int32, error) {
	return ReadField[int32](path, opts...)
}

// ReadUint32 reads a field of uint32 values.
func ReadUint32(path string, opts ...encoding.Option) ([]uint32, error) {
	return ReadField[uint32](path, opts...)
}

func writeField[T encoding.Scalar](w io.Writer, values []T, cfg *encoding.Config, log *logging.Logger) (int, error) {
	n, err := encoding.WriteArray(encoding.NewWriter(w, cfg), values)
	log.LogWrite(context.Background(), sectionName, len(values), n, err)

	return n, err
}

func readField[T encoding.Scalar](r *encoding.Reader, log *logging.Logger) ([]T, error) {
	values, err := encoding.ReadArray[T](r)
	log.LogRead(context.Background(), sectionName, len(values), err)
	if err != nil {
		return nil, err
	}

	return values, nil
}
