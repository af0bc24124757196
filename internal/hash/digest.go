// Package hash computes content digests of SoA files.
//
// Digests live outside the file format; they are used by tooling and tests to
// compare files byte for byte.
package hash

import (
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
)

// Digest computes the xxHash64 of everything read from r.
func Digest(r io.Reader) (uint64, error) {
	h := xxhash.New()
	if _, err := io.Copy(h, r); err != nil {
		return 0, err
	}

	return h.Sum64(), nil
}

// DigestBytes computes the xxHash64 of data.
func DigestBytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// DigestFile computes the xxHash64 of the file at path.
func DigestFile(path string) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	return Digest(f)
}
