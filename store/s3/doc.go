// Package s3 implements store.Store on Amazon S3 using aws-sdk-go-v2.
//
// Writes stream through the feature/s3/manager uploader, which switches to a
// multipart upload for large objects. Reads issue a single GetObject and
// stream the body.
package s3
