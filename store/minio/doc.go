// Package minio implements store.Store on MinIO and other S3-compatible
// object stores using github.com/minio/minio-go/v7.
//
// Uploads stream through an io.Pipe into PutObject with an unknown size, so a
// section encoder can write directly into an object without staging it on
// disk. The object only becomes visible once the upload completes.
package minio
