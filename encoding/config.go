package encoding

import (
	"fmt"
	"log/slog"

	"github.com/arloliu/soa/endian"
	"github.com/arloliu/soa/errs"
	"github.com/arloliu/soa/internal/logging"
	"github.com/arloliu/soa/internal/options"
	"github.com/arloliu/soa/section"
)

// Config holds the out-of-band parameters shared by a writer and the reader
// of the same file.
type Config struct {
	engine          endian.EndianEngine
	maxSectionBytes uint64
	logger          *logging.Logger
}

// Option configures a Config.
type Option = options.Option[*Config]

// DefaultConfig returns a Config using host byte order, a 1 GiB section limit
// and no logging.
func DefaultConfig() *Config {
	return &Config{
		engine:          endian.Native(),
		maxSectionBytes: section.DefaultMaxSectionBytes,
		logger:          logging.Noop(),
	}
}

// NewConfig creates a Config from DefaultConfig with opts applied.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := DefaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Engine returns the byte order engine.
func (c *Config) Engine() endian.EndianEngine {
	return c.engine
}

// MaxSectionBytes returns the largest section payload a reader accepts (0 means unlimited).
func (c *Config) MaxSectionBytes() uint64 {
	return c.maxSectionBytes
}

// Logger returns the configured logger.
func (c *Config) Logger() *logging.Logger {
	return c.logger
}

// WithNativeEndian writes and reads element bytes in host byte order. This is the default.
func WithNativeEndian() Option {
	return options.NoError(func(c *Config) {
		c.engine = endian.Native()
	})
}

// WithLittleEndian pins little-endian byte order for headers and elements.
func WithLittleEndian() Option {
	return options.NoError(func(c *Config) {
		c.engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian pins big-endian byte order for headers and elements.
func WithBigEndian() Option {
	return options.NoError(func(c *Config) {
		c.engine = endian.GetBigEndianEngine()
	})
}

// WithMaxSectionBytes bounds the payload size a reader accepts from a section header.
// Zero disables the limit.
func WithMaxSectionBytes(n uint64) Option {
	return options.NoError(func(c *Config) {
		c.maxSectionBytes = n
	})
}

// WithLogger sets the logger used by the codecs.
func WithLogger(l *slog.Logger) Option {
	return options.New(func(c *Config) error {
		if l == nil {
			return fmt.Errorf("%w: nil logger", errs.ErrInvalidOption)
		}
		c.logger = logging.New(l)

		return nil
	})
}
