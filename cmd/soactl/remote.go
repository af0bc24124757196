package main

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/arloliu/soa/store"
	miniostore "github.com/arloliu/soa/store/minio"
	s3store "github.com/arloliu/soa/store/s3"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// openStore resolves a store URL.
//
//	/some/dir, file:///some/dir    local directory
//	s3://bucket/prefix             AWS S3, credentials from the default chain
//	minio://host:port/bucket/prefix MinIO, credentials from MINIO_ACCESS_KEY
//	                               and MINIO_SECRET_KEY, TLS unless MINIO_INSECURE is set
func openStore(ctx context.Context, raw string) (store.Store, error) {
	if !strings.Contains(raw, "://") {
		return store.NewLocalStore(raw), nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse store url: %w", err)
	}

	prefix := strings.TrimPrefix(u.Path, "/")

	switch u.Scheme {
	case "file":
		return store.NewLocalStore(u.Path), nil

	case "s3":
		if u.Host == "" {
			return nil, fmt.Errorf("store url %q has no bucket", raw)
		}
		cfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}

		return s3store.NewStore(s3.NewFromConfig(cfg), u.Host, prefix), nil

	case "minio":
		bucket, rest, _ := strings.Cut(prefix, "/")
		if u.Host == "" || bucket == "" {
			return nil, fmt.Errorf("store url %q needs minio://endpoint/bucket[/prefix]", raw)
		}
		client, err := miniostore.NewClient(u.Host, os.Getenv("MINIO_ACCESS_KEY"), os.Getenv("MINIO_SECRET_KEY"), os.Getenv("MINIO_INSECURE") == "")
		if err != nil {
			return nil, err
		}

		return miniostore.NewStore(client, bucket, rest), nil

	default:
		return nil, fmt.Errorf("unsupported store scheme %q", u.Scheme)
	}
}

func runPush(ctx context.Context, e *env, args []string) error {
	fs := newFlagSet(e, "push", "FILE NAME")
	storeURL := fs.String("store", "", "destination store URL")
	if err := parseArgs(fs, args, 2); err != nil {
		return err
	}
	if *storeURL == "" {
		fs.Usage()
		return errUsage
	}

	s, err := openStore(ctx, *storeURL)
	if err != nil {
		return err
	}

	src, name := fs.Arg(0), fs.Arg(1)
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	n, err := store.Upload(ctx, s, name, f)
	if err != nil {
		return err
	}
	e.log.InfoContext(ctx, "pushed", "path", src, "blob", name, "bytes", n)

	return nil
}

func runPull(ctx context.Context, e *env, args []string) error {
	fs := newFlagSet(e, "pull", "NAME FILE")
	storeURL := fs.String("store", "", "source store URL")
	if err := parseArgs(fs, args, 2); err != nil {
		return err
	}
	if *storeURL == "" {
		fs.Usage()
		return errUsage
	}

	s, err := openStore(ctx, *storeURL)
	if err != nil {
		return err
	}

	name, dst := fs.Arg(0), fs.Arg(1)
	// stage through a local store so a failed download leaves dst as it was
	local := store.NewLocalStore(filepath.Dir(dst))
	var n int64
	err = store.WriteBlob(ctx, local, filepath.Base(dst), func(w io.Writer) error {
		var derr error
		n, derr = store.Download(ctx, s, name, w)

		return derr
	})
	if err != nil {
		return err
	}
	e.log.InfoContext(ctx, "pulled", "blob", name, "path", dst, "bytes", n)

	return nil
}
