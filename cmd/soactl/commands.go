package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/arloliu/soa/encoding"
	"github.com/arloliu/soa/format"
	"github.com/arloliu/soa/geo"
	"github.com/arloliu/soa/internal/fileio"
	"github.com/arloliu/soa/internal/hash"
	"github.com/arloliu/soa/polygon"
	"github.com/arloliu/soa/section"
)

// codecFlags are the out-of-band parameters shared by commands that decode files.
type codecFlags struct {
	typeName string
	endian   string
	maxBytes uint64
}

func (c *codecFlags) register(fs *flag.FlagSet, defaultType string) {
	fs.StringVar(&c.typeName, "type", defaultType, "element type (int8..uint64, float32, float64, timestamp)")
	fs.StringVar(&c.endian, "endian", "native", "byte order: native, little or big")
	fs.Uint64Var(&c.maxBytes, "max-section-bytes", section.DefaultMaxSectionBytes, "largest accepted section payload, 0 for no limit")
}

func (c *codecFlags) scalarType() (format.ScalarType, error) {
	return format.ParseScalarType(c.typeName)
}

func (c *codecFlags) options(e *env) ([]encoding.Option, error) {
	opts := []encoding.Option{
		encoding.WithMaxSectionBytes(c.maxBytes),
		encoding.WithLogger(e.log.Logger),
	}

	switch strings.ToLower(c.endian) {
	case "native", "":
		opts = append(opts, encoding.WithNativeEndian())
	case "little", "le":
		opts = append(opts, encoding.WithLittleEndian())
	case "big", "be":
		opts = append(opts, encoding.WithBigEndian())
	default:
		return nil, fmt.Errorf("unknown byte order %q", c.endian)
	}

	return opts, nil
}

func newFlagSet(e *env, name, args string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	fs.Usage = func() {
		fmt.Fprintf(e.stderr, "Usage: soactl %s [options] %s\n", name, args)
		fs.PrintDefaults()
	}

	return fs
}

func parseArgs(fs *flag.FlagSet, args []string, want int) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != want {
		fs.Usage()
		return errUsage
	}

	return nil
}

func runInspect(_ context.Context, e *env, args []string) error {
	fs := newFlagSet(e, "inspect", "FILE")
	var cf codecFlags
	cf.register(fs, "float64")
	kind := fs.String("kind", "polygon", "file kind: field, points or polygon")
	if err := parseArgs(fs, args, 1); err != nil {
		return err
	}

	st, err := cf.scalarType()
	if err != nil {
		return err
	}
	opts, err := cf.options(e)
	if err != nil {
		return err
	}
	cfg, err := encoding.NewConfig(opts...)
	if err != nil {
		return err
	}

	var names []string
	var widths []int
	switch *kind {
	case "field":
		names, widths = []string{"values"}, []int{st.Size()}
	case "points":
		names, widths = []string{"x", "y"}, []int{st.Size(), st.Size()}
	case "polygon":
		names, widths = polygon.SectionNames, polygon.SectionWidths(st.Size())
	default:
		return fmt.Errorf("unknown kind %q", *kind)
	}

	path := fs.Arg(0)

	return fileio.Open(path, func(r io.Reader, size int64) error {
		infos, scanErr := section.Scan(r, cfg.Engine(), widths, cfg.MaxSectionBytes())

		tw := tabwriter.NewWriter(e.stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "SECTION\tOFFSET\tCOUNT\tWIDTH\tBYTES")
		for _, info := range infos {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\n", names[info.Index], info.Offset, info.Count, info.Width, info.Size)
		}
		if err := tw.Flush(); err != nil {
			return err
		}

		if scanErr != nil {
			return scanErr
		}

		end := int64(0)
		if len(infos) > 0 {
			end = infos[len(infos)-1].End()
		}
		fmt.Fprintf(e.stdout, "file %s: %d bytes, %d trailing\n", path, size, size-end)

		return nil
	})
}

func runDump(_ context.Context, e *env, args []string) error {
	fs := newFlagSet(e, "dump", "FILE")
	var cf codecFlags
	cf.register(fs, "")
	if err := parseArgs(fs, args, 1); err != nil {
		return err
	}
	if cf.typeName == "" {
		fs.Usage()
		return errUsage
	}

	st, err := cf.scalarType()
	if err != nil {
		return err
	}
	opts, err := cf.options(e)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(e.stdout)
	if err := dumpField(bw, fs.Arg(0), st, opts); err != nil {
		return err
	}

	return bw.Flush()
}

func runDigest(_ context.Context, e *env, args []string) error {
	fs := newFlagSet(e, "digest", "FILE...")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errUsage
	}

	for _, path := range fs.Args() {
		sum, err := hash.DigestFile(path)
		if err != nil {
			return err
		}
		fmt.Fprintf(e.stdout, "%016x  %s\n", sum, path)
	}

	return nil
}

func runGeoJSON(_ context.Context, e *env, args []string) error {
	fs := newFlagSet(e, "geojson", "FILE")
	var cf codecFlags
	cf.register(fs, "float64")
	out := fs.String("o", "", "output file (default stdout)")
	if err := parseArgs(fs, args, 1); err != nil {
		return err
	}

	c, err := readPolygons(fs.Arg(0), &cf, e)
	if err != nil {
		return err
	}

	data, err := geo.MarshalGeoJSON(c)
	if err != nil {
		return err
	}

	if *out == "" {
		_, err = fmt.Fprintln(e.stdout, string(data))
		return err
	}

	return os.WriteFile(*out, data, 0o644)
}

func runFlatGeobuf(_ context.Context, e *env, args []string) error {
	fs := newFlagSet(e, "fgb", "FILE")
	var cf codecFlags
	cf.register(fs, "float64")
	out := fs.String("o", "", "output file")
	index := fs.Bool("index", true, "include a spatial index")
	if err := parseArgs(fs, args, 1); err != nil {
		return err
	}
	if *out == "" {
		fs.Usage()
		return errUsage
	}

	c, err := readPolygons(fs.Arg(0), &cf, e)
	if err != nil {
		return err
	}

	return fileio.Create(*out, func(w io.Writer) error {
		return geo.WriteFlatGeobuf(w, c, *index)
	})
}

func readPolygons(path string, cf *codecFlags, e *env) (*polygon.Collection[float64], error) {
	st, err := cf.scalarType()
	if err != nil {
		return nil, err
	}
	opts, err := cf.options(e)
	if err != nil {
		return nil, err
	}

	return readPolygonsAs(path, st, opts)
}
