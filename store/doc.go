// Package store provides named blob storage for SoA files.
//
// The codecs in field and polygon never touch the file system directly when
// given a Store: they stream sections into a WritableBlob and only Close
// commits it. A failed encode calls Abort instead, so a reader never sees a
// partially written blob under the target name.
//
// Implementations:
//   - LocalStore: files under a root directory, committed by rename
//   - MemoryStore: process-local map, for tests
//   - store/minio: MinIO and other S3-compatible servers
//   - store/s3: Amazon S3 through aws-sdk-go-v2
package store
