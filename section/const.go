package section

const (
	// HeaderSize is the fixed size of a section header in bytes.
	HeaderSize = 8

	// DefaultMaxSectionBytes is the default upper bound on a single section payload
	// accepted by readers (1 GiB).
	DefaultMaxSectionBytes = 1 << 30
)
