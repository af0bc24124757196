package polygon

import (
	"context"
	"fmt"
	"io"

	"github.com/arloliu/soa/encoding"
	"github.com/arloliu/soa/internal/fileio"
	"github.com/arloliu/soa/internal/logging"
)

// Section names in file order.
const (
	SectionGroupLength   = "group_length"
	SectionFeatureLength = "feature_length"
	SectionRingLength    = "ring_length"
	SectionX             = "x"
	SectionY             = "y"
)

// SectionNames lists the section names in file order.
var SectionNames = []string{SectionGroupLength, SectionFeatureLength, SectionRingLength, SectionX, SectionY}

// SectionWidths returns the element width of each section, in file order,
// for coordinates coordWidth bytes wide.
func SectionWidths(coordWidth int) []int {
	return []int{4, 4, 4, coordWidth, coordWidth}
}

// Write validates c and writes it to path as a polygon file.
//
// If c is invalid, Write returns errs.ErrInvariantViolation and neither
// creates path nor modifies an existing file there.
func Write[T encoding.Scalar](path string, c *Collection[T], opts ...encoding.Option) error {
	cfg, err := encoding.NewConfig(opts...)
	if err != nil {
		return err
	}

	log := cfg.Logger().WithPath(path)
	if err := c.Validate(); err != nil {
		log.LogRejected(context.Background(), err)
		return err
	}

	return fileio.Create(path, func(w io.Writer) error {
		return writeCollection(w, c, cfg, log)
	})
}

// WriteTo validates c and writes it to w. Nothing is written if c is invalid.
func WriteTo[T encoding.Scalar](w io.Writer, c *Collection[T], opts ...encoding.Option) error {
	cfg, err := encoding.NewConfig(opts...)
	if err != nil {
		return err
	}

	if err := c.Validate(); err != nil {
		cfg.Logger().LogRejected(context.Background(), err)
		return err
	}

	return writeCollection(w, c, cfg, cfg.Logger())
}

// Read reads a polygon file written with the same T and options.
//
// The counters are derived from the section lengths and the result is
// validated; a file that decodes to an inconsistent collection is rejected
// with errs.ErrInvariantViolation. Bytes after the y section are ignored.
func Read[T encoding.Scalar](path string, opts ...encoding.Option) (*Collection[T], error) {
	cfg, err := encoding.NewConfig(opts...)
	if err != nil {
		return nil, err
	}

	var c *Collection[T]
	err = fileio.Open(path, func(r io.Reader, size int64) error {
		var rerr error
		c, rerr = readCollection[T](encoding.NewSizedReader(r, size, cfg), cfg.Logger().WithPath(path))

		return rerr
	})
	if err != nil {
		return nil, err
	}

	return c, nil
}

// ReadFrom reads a polygon collection from r.
func ReadFrom[T encoding.Scalar](r io.Reader, opts ...encoding.Option) (*Collection[T], error) {
	cfg, err := encoding.NewConfig(opts...)
	if err != nil {
		return nil, err
	}

	return readCollection[T](encoding.NewReader(r, cfg), cfg.Logger())
}

func writeCollection[T encoding.Scalar](w io.Writer, c *Collection[T], cfg *encoding.Config, log *logging.Logger) error {
	ctx := context.Background()
	ew := encoding.NewWriter(w, cfg)

	for i, lengths := range [][]uint32{c.GroupLength, c.FeatureLength, c.RingLength} {
		n, err := encoding.WriteArray(ew, lengths)
		log.LogWrite(ctx, SectionNames[i], len(lengths), n, err)
		if err != nil {
			return fmt.Errorf("section %s: %w", SectionNames[i], err)
		}
	}

	for i, coords := range [][]T{c.X, c.Y} {
		name := SectionNames[3+i]
		n, err := encoding.WriteArray(ew, coords)
		log.LogWrite(ctx, name, len(coords), n, err)
		if err != nil {
			return fmt.Errorf("section %s: %w", name, err)
		}
	}

	return nil
}

func readCollection[T encoding.Scalar](r *encoding.Reader, log *logging.Logger) (*Collection[T], error) {
	ctx := context.Background()

	var lengths [3][]uint32
	for i := range lengths {
		values, err := encoding.ReadArray[uint32](r)
		log.LogRead(ctx, SectionNames[i], len(values), err)
		if err != nil {
			return nil, fmt.Errorf("section %s: %w", SectionNames[i], err)
		}
		lengths[i] = values
	}

	var coords [2][]T
	for i := range coords {
		name := SectionNames[3+i]
		values, err := encoding.ReadArray[T](r)
		log.LogRead(ctx, name, len(values), err)
		if err != nil {
			return nil, fmt.Errorf("section %s: %w", name, err)
		}
		coords[i] = values
	}

	c := &Collection[T]{
		NumGroup:      len(lengths[0]),
		NumFeature:    len(lengths[1]),
		NumRing:       len(lengths[2]),
		NumVertex:     len(coords[0]),
		GroupLength:   lengths[0],
		FeatureLength: lengths[1],
		RingLength:    lengths[2],
		X:             coords[0],
		Y:             coords[1],
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("decoded collection: %w", err)
	}

	return c, nil
}
