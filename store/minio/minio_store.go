package minio

import (
	"context"
	"errors"
	"io"
	"path"
	"sync/atomic"

	"github.com/arloliu/soa/store"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var errAborted = errors.New("upload aborted")

// Store implements store.Store for MinIO and S3-compatible storage.
type Store struct {
	client *minio.Client
	bucket string
	prefix string
}

var _ store.Store = (*Store)(nil)

// NewStore creates a MinIO store.
// rootPrefix is prepended to all keys (e.g. "geometry/").
func NewStore(client *minio.Client, bucket, rootPrefix string) *Store {
	return &Store{
		client: client,
		bucket: bucket,
		prefix: rootPrefix,
	}
}

// NewClient creates a MinIO client with static credentials.
func NewClient(endpoint, accessKey, secretKey string, secure bool) (*minio.Client, error) {
	return minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: secure,
	})
}

func (s *Store) key(name string) string {
	return path.Join(s.prefix, name)
}

// Create starts a streaming upload.
func (s *Store) Create(ctx context.Context, name string) (store.WritableBlob, error) {
	key := s.key(name)
	pr, pw := io.Pipe()

	blob := &writableBlob{
		pw:   pw,
		done: make(chan error, 1),
	}

	go func() {
		_, err := s.client.PutObject(ctx, s.bucket, key, pr, -1, minio.PutObjectOptions{
			ContentType: "application/octet-stream",
		})
		_ = pr.CloseWithError(err)
		blob.done <- err
	}()

	return blob, nil
}

// Open opens an object for reading.
func (s *Store) Open(ctx context.Context, name string) (store.Blob, error) {
	key := s.key(name)

	info, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return nil, mapError(err)
	}

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, mapError(err)
	}

	return &blob{Object: obj, size: info.Size}, nil
}

// Delete removes an object. A missing object is not an error.
func (s *Store) Delete(ctx context.Context, name string) error {
	err := s.client.RemoveObject(ctx, s.bucket, s.key(name), minio.RemoveObjectOptions{})
	if err != nil && !errors.Is(mapError(err), store.ErrNotFound) {
		return err
	}

	return nil
}

func mapError(err error) error {
	if isNotFound(minio.ToErrorResponse(err).Code) {
		return store.ErrNotFound
	}

	return err
}

func isNotFound(code string) bool {
	return code == "NoSuchKey" || code == "NotFound"
}

type blob struct {
	*minio.Object
	size int64
}

func (b *blob) Size() int64 {
	return b.size
}

type writableBlob struct {
	pw       *io.PipeWriter
	done     chan error
	finished atomic.Bool
}

func (b *writableBlob) Write(p []byte) (int, error) {
	if b.finished.Load() {
		return 0, io.ErrClosedPipe
	}

	return b.pw.Write(p)
}

func (b *writableBlob) Close() error {
	if !b.finished.CompareAndSwap(false, true) {
		return io.ErrClosedPipe
	}
	if err := b.pw.Close(); err != nil {
		return err
	}

	return <-b.done
}

// Abort fails the pipe so PutObject never completes the object, then waits
// for the upload goroutine to exit.
func (b *writableBlob) Abort() error {
	if !b.finished.CompareAndSwap(false, true) {
		return nil
	}
	_ = b.pw.CloseWithError(errAborted)
	<-b.done

	return nil
}
