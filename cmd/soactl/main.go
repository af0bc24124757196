// Command soactl inspects, converts and transfers SoA files.
//
// Usage:
//
//	soactl inspect [-kind field|points|polygon] [-type T] [-endian E] FILE
//	soactl dump    -type T [-endian E] FILE
//	soactl digest  FILE...
//	soactl geojson [-type T] [-endian E] [-o OUT] FILE
//	soactl fgb     [-type T] [-endian E] [-index] -o OUT FILE
//	soactl push    -store URL FILE NAME
//	soactl pull    -store URL NAME FILE
//
// Store URLs are a local directory, file:///dir, s3://bucket/prefix or
// minio://endpoint/bucket/prefix.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/arloliu/soa/internal/logging"
)

type command struct {
	name    string
	summary string
	run     func(ctx context.Context, env *env, args []string) error
}

var commands = []command{
	{"inspect", "list the sections of a file", runInspect},
	{"dump", "print the values of a flat field file", runDump},
	{"digest", "print the xxHash64 digest of files", runDigest},
	{"geojson", "convert a polygon file to GeoJSON", runGeoJSON},
	{"fgb", "convert a polygon file to FlatGeobuf", runFlatGeobuf},
	{"push", "upload a local file to a store", runPush},
	{"pull", "download a blob from a store", runPull},
}

var errUsage = errors.New("usage")

// env carries process-wide dependencies into commands.
type env struct {
	stdout io.Writer
	stderr io.Writer
	log    *logging.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	global := flag.NewFlagSet("soactl", flag.ContinueOnError)
	global.SetOutput(stderr)
	verbose := global.Bool("v", false, "verbose logging")
	jsonLogs := global.Bool("json", false, "log as JSON")
	global.Usage = func() { usage(stderr) }

	if err := global.Parse(args); err != nil {
		return 2
	}
	if global.NArg() < 1 {
		usage(stderr)
		return 2
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	log := logging.NewText(level)
	if *jsonLogs {
		log = logging.NewJSON(level)
	}

	e := &env{stdout: stdout, stderr: stderr, log: log}
	name, rest := global.Arg(0), global.Args()[1:]

	for _, cmd := range commands {
		if cmd.name != name {
			continue
		}

		err := cmd.run(ctx, e, rest)
		switch {
		case err == nil:
			return 0
		case errors.Is(err, errUsage), errors.Is(err, flag.ErrHelp):
			return 2
		default:
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}

	fmt.Fprintf(stderr, "unknown command %q\n", name)
	usage(stderr)

	return 2
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: soactl [-v] [-json] <command> [options] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", cmd.name, cmd.summary)
	}
}
