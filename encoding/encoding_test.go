package encoding

import (
	"bufio"
	"bytes"
	"errors"
	"log/slog"
	"math"
	"testing"

	"github.com/arloliu/soa/endian"
	"github.com/arloliu/soa/errs"
	"github.com/arloliu/soa/format"
	"github.com/arloliu/soa/section"
	"github.com/stretchr/testify/require"
)

var errInjected = errors.New("injected fault error")

// faultyWriter accepts up to limit bytes and fails after that.
type faultyWriter struct {
	buf   bytes.Buffer
	limit int
}

func (f *faultyWriter) Write(p []byte) (int, error) {
	room := f.limit - f.buf.Len()
	if room <= 0 {
		return 0, errInjected
	}
	if len(p) > room {
		f.buf.Write(p[:room])
		return room, errInjected
	}

	return f.buf.Write(p)
}

func roundTrip[T Scalar](t *testing.T, values []T, opts ...Option) []T {
	t.Helper()

	cfg, err := NewConfig(opts...)
	require.NoError(t, err)

	var buf bytes.Buffer
	w := NewWriter(&buf, cfg)
	n, err := WriteArray(w, values)
	require.NoError(t, err)
	require.Equal(t, len(values), n)
	require.Equal(t, int64(section.HeaderSize+len(values)*SizeOf[T]()), w.BytesWritten())
	require.Equal(t, 1, w.Sections())

	r := NewSizedReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()), cfg)
	got, err := ReadArray[T](r)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, int64(0), r.Remaining())
	require.Equal(t, int64(buf.Len()), r.BytesRead())

	return got
}

func testRoundTrip[T Scalar](t *testing.T, inputs [][]T) {
	for _, opts := range [][]Option{nil, {WithLittleEndian()}, {WithBigEndian()}} {
		for _, in := range inputs {
			got := roundTrip(t, in, opts...)
			require.Len(t, got, len(in))
			if len(in) > 0 {
				require.Equal(t, in, got)
			}
		}
	}
}

func TestRoundTrip_AllTypes(t *testing.T) {
	t.Run("int8", func(t *testing.T) { testRoundTrip(t, [][]int8{{}, {0}, {-1, -2}, {math.MinInt8, math.MaxInt8}}) })
	t.Run("int16", func(t *testing.T) { testRoundTrip(t, [][]int16{{}, {0}, {-1, -2}, {math.MinInt16, math.MaxInt16}}) })
	t.Run("int32", func(t *testing.T) { testRoundTrip(t, [][]int32{{}, {0}, {0, 1, 2}, {-1, -2}, {math.MinInt32, math.MaxInt32}}) })
	t.Run("int64", func(t *testing.T) { testRoundTrip(t, [][]int64{{}, {0}, {0, 1, 2}, {-1, -2}, {math.MinInt64, math.MaxInt64}}) })
	t.Run("uint8", func(t *testing.T) { testRoundTrip(t, [][]uint8{{}, {0}, {255, 1}}) })
	t.Run("uint16", func(t *testing.T) { testRoundTrip(t, [][]uint16{{}, {0}, {math.MaxUint16, 1}}) })
	t.Run("uint32", func(t *testing.T) { testRoundTrip(t, [][]uint32{{}, {0}, {0, 1, 2}, {math.MaxUint32}}) })
	t.Run("uint64", func(t *testing.T) { testRoundTrip(t, [][]uint64{{}, {0}, {math.MaxUint64, 7}}) })
	t.Run("float32", func(t *testing.T) {
		testRoundTrip(t, [][]float32{{}, {0}, {-1.5, 3.25}, {math.MaxFloat32, math.SmallestNonzeroFloat32}})
	})
	t.Run("float64", func(t *testing.T) {
		testRoundTrip(t, [][]float64{{}, {1.0}, {1.0, 2.0, 3.0, 4.0}, {-0.0, math.Inf(1), math.Inf(-1)}})
	})
}

type Timestamp int64

func TestRoundTrip_NamedType(t *testing.T) {
	in := []Timestamp{-5, 0, 1700000000000000}
	require.Equal(t, in, roundTrip(t, in))
	require.Equal(t, format.TypeInt64, ScalarTypeOf[Timestamp]())
}

func TestRoundTrip_NaNBits(t *testing.T) {
	nan := math.Float64frombits(0x7ff8000000000001)
	got := roundTrip(t, []float64{nan}, WithBigEndian())
	require.Equal(t, math.Float64bits(nan), math.Float64bits(got[0]))
}

func TestWriteArray_EmptyLayout(t *testing.T) {
	var buf bytes.Buffer
	n, err := WriteArray(NewWriter(&buf, nil), []int64{})
	require.NoError(t, err)
	require.Equal(t, 0, n)
	require.Equal(t, make([]byte, section.HeaderSize), buf.Bytes())

	got, err := ReadArray[int64](NewReader(&buf, nil))
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestWriteArray_Layout(t *testing.T) {
	var buf bytes.Buffer
	cfg, err := NewConfig(WithLittleEndian())
	require.NoError(t, err)

	_, err = WriteArray(NewWriter(&buf, cfg), []int32{-1, -2})
	require.NoError(t, err)
	require.Equal(t, []byte{
		2, 0, 0, 0, 0, 0, 0, 0,
		0xFF, 0xFF, 0xFF, 0xFF,
		0xFE, 0xFF, 0xFF, 0xFF,
	}, buf.Bytes())

	buf.Reset()
	cfg, err = NewConfig(WithBigEndian())
	require.NoError(t, err)

	_, err = WriteArray(NewWriter(&buf, cfg), []uint16{0x0102})
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 1, 0x01, 0x02}, buf.Bytes())
}

func TestWriteArray_NativeMatchesEngine(t *testing.T) {
	values := []uint32{1, 2, 3}

	var native, pinned bytes.Buffer
	_, err := WriteArray(NewWriter(&native, DefaultConfig()), values)
	require.NoError(t, err)

	opt := WithBigEndian()
	if endian.IsNativeLittleEndian() {
		opt = WithLittleEndian()
	}
	cfg, err := NewConfig(opt)
	require.NoError(t, err)
	_, err = WriteArray(NewWriter(&pinned, cfg), values)
	require.NoError(t, err)

	require.Equal(t, native.Bytes(), pinned.Bytes())
}

func TestWriteArray_SwappedLeavesInputUntouched(t *testing.T) {
	opt := WithBigEndian()
	if endian.IsNativeBigEndian() {
		opt = WithLittleEndian()
	}

	// more than one pooled chunk
	values := make([]uint64, 3*1024*8+5)
	for i := range values {
		values[i] = uint64(i) * 0x0101010101
	}
	orig := append([]uint64(nil), values...)

	got := roundTrip(t, values, opt)
	require.Equal(t, orig, values)
	require.Equal(t, orig, got)
}

func TestWriteArray_CountMismatch(t *testing.T) {
	t.Run("payload cut short", func(t *testing.T) {
		fw := &faultyWriter{limit: section.HeaderSize + 2*4 + 1}
		w := NewWriter(fw, nil)

		n, err := WriteArray(w, []int32{1, 2, 3, 4})
		require.ErrorIs(t, err, errs.ErrCountMismatch)
		require.ErrorIs(t, err, errInjected)
		require.Equal(t, 2, n)
		require.Equal(t, 0, w.Sections())
	})

	t.Run("payload cut short swapped", func(t *testing.T) {
		opt := WithBigEndian()
		if endian.IsNativeBigEndian() {
			opt = WithLittleEndian()
		}
		cfg, err := NewConfig(opt)
		require.NoError(t, err)

		fw := &faultyWriter{limit: section.HeaderSize + 8}
		n, err := WriteArray(NewWriter(fw, cfg), []float64{1, 2, 3})
		require.ErrorIs(t, err, errs.ErrCountMismatch)
		require.Equal(t, 1, n)
	})

	t.Run("header fails", func(t *testing.T) {
		fw := &faultyWriter{limit: 3}
		n, err := WriteArray(NewWriter(fw, nil), []int32{1})
		require.ErrorIs(t, err, errInjected)
		require.NotErrorIs(t, err, errs.ErrCountMismatch)
		require.Equal(t, 0, n)
	})

	t.Run("buffered flush cut short", func(t *testing.T) {
		fw := &faultyWriter{limit: section.HeaderSize + 3*4 + 2}
		bw := bufio.NewWriter(fw)
		w := NewWriter(bw, nil)

		n, err := WriteArray(w, []int32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
		require.ErrorIs(t, err, errs.ErrCountMismatch)
		require.ErrorIs(t, err, errInjected)
		require.Equal(t, 3, n)
		require.Equal(t, int64(fw.limit), w.BytesWritten())
		require.Equal(t, 0, w.Sections())
	})

	t.Run("buffered header cut short", func(t *testing.T) {
		fw := &faultyWriter{limit: 5}
		w := NewWriter(bufio.NewWriter(fw), nil)

		n, err := WriteArray(w, []int32{1, 2})
		require.ErrorIs(t, err, errs.ErrCountMismatch)
		require.Equal(t, 0, n)

		fw = &faultyWriter{limit: 5}
		n, err = WriteArray(NewWriter(bufio.NewWriter(fw), nil), []int32{})
		require.ErrorIs(t, err, errInjected)
		require.NotErrorIs(t, err, errs.ErrCountMismatch)
		require.Equal(t, 0, n)
	})

	t.Run("buffered sections flushed one by one", func(t *testing.T) {
		var buf bytes.Buffer
		bw := bufio.NewWriter(&buf)
		w := NewWriter(bw, nil)

		_, err := WriteArray(w, []uint16{1, 2})
		require.NoError(t, err)
		require.Equal(t, 0, bw.Buffered())
		require.Equal(t, section.HeaderSize+4, buf.Len())
	})
}

func TestReadArray_Truncated(t *testing.T) {
	var buf bytes.Buffer
	_, err := WriteArray(NewWriter(&buf, nil), []int64{1, 2, 3})
	require.NoError(t, err)
	data := buf.Bytes()

	t.Run("short payload", func(t *testing.T) {
		_, err := ReadArray[int64](NewReader(bytes.NewReader(data[:len(data)-4]), nil))
		require.ErrorIs(t, err, errs.ErrTruncated)
	})

	t.Run("short payload sized", func(t *testing.T) {
		short := data[:len(data)-4]
		_, err := ReadArray[int64](NewSizedReader(bytes.NewReader(short), int64(len(short)), nil))
		require.ErrorIs(t, err, errs.ErrTruncated)
	})

	t.Run("short header", func(t *testing.T) {
		_, err := ReadArray[int64](NewReader(bytes.NewReader(data[:5]), nil))
		require.ErrorIs(t, err, errs.ErrTruncated)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := ReadArray[int64](NewReader(bytes.NewReader(nil), nil))
		require.ErrorIs(t, err, errs.ErrTruncated)
	})
}

func TestReadArray_HugeHeader(t *testing.T) {
	engine := endian.Native()
	data := section.Header{Count: 1 << 40}.Bytes(engine)

	t.Run("limit", func(t *testing.T) {
		_, err := ReadArray[float64](NewReader(bytes.NewReader(data), nil))
		require.ErrorIs(t, err, errs.ErrSectionTooLarge)
	})

	t.Run("sized source", func(t *testing.T) {
		cfg, err := NewConfig(WithMaxSectionBytes(0))
		require.NoError(t, err)

		_, err = ReadArray[float64](NewSizedReader(bytes.NewReader(data), int64(len(data)), cfg))
		require.ErrorIs(t, err, errs.ErrTruncated)
	})

	t.Run("overflow", func(t *testing.T) {
		cfg, err := NewConfig(WithMaxSectionBytes(0))
		require.NoError(t, err)

		overflow := section.Header{Count: math.MaxUint64}.Bytes(engine)
		_, err = ReadArray[float64](NewReader(bytes.NewReader(overflow), cfg))
		require.ErrorIs(t, err, errs.ErrSectionTooLarge)
	})
}

func TestReadArray_WrongTypeReinterprets(t *testing.T) {
	var buf bytes.Buffer
	_, err := WriteArray(NewWriter(&buf, nil), []int32{-1, -2})
	require.NoError(t, err)

	got, err := ReadArray[uint32](NewReader(&buf, nil))
	require.NoError(t, err)
	require.Equal(t, []uint32{math.MaxUint32, math.MaxUint32 - 1}, got)
}

func TestReadArray_Consecutive(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, nil)
	_, err := WriteArray(w, []uint32{4})
	require.NoError(t, err)
	_, err = WriteArray(w, []float32{1, 2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, 2, w.Sections())

	r := NewSizedReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()), nil)
	lengths, err := ReadArray[uint32](r)
	require.NoError(t, err)
	xs, err := ReadArray[float32](r)
	require.NoError(t, err)

	require.Equal(t, []uint32{4}, lengths)
	require.Equal(t, []float32{1, 2, 3, 4}, xs)
	require.Equal(t, 2, r.Sections())
	require.Equal(t, int64(0), r.Remaining())
}

func TestConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, endian.Native(), cfg.Engine())
	require.Equal(t, uint64(section.DefaultMaxSectionBytes), cfg.MaxSectionBytes())
	require.NotNil(t, cfg.Logger())

	cfg, err := NewConfig(WithBigEndian(), WithMaxSectionBytes(64), WithLogger(slog.Default()))
	require.NoError(t, err)
	require.Equal(t, endian.GetBigEndianEngine(), cfg.Engine())
	require.Equal(t, uint64(64), cfg.MaxSectionBytes())

	cfg, err = NewConfig(WithBigEndian(), WithNativeEndian())
	require.NoError(t, err)
	require.Equal(t, endian.Native(), cfg.Engine())

	_, err = NewConfig(WithLogger(nil))
	require.ErrorIs(t, err, errs.ErrInvalidOption)
}

func TestScalarTypeOf(t *testing.T) {
	require.Equal(t, format.TypeInt8, ScalarTypeOf[int8]())
	require.Equal(t, format.TypeUint16, ScalarTypeOf[uint16]())
	require.Equal(t, format.TypeInt32, ScalarTypeOf[int32]())
	require.Equal(t, format.TypeUint32, ScalarTypeOf[uint32]())
	require.Equal(t, format.TypeFloat32, ScalarTypeOf[float32]())
	require.Equal(t, format.TypeFloat64, ScalarTypeOf[float64]())

	require.Equal(t, 1, SizeOf[uint8]())
	require.Equal(t, 8, SizeOf[float64]())
	require.Equal(t, ScalarTypeOf[int16]().Size(), SizeOf[int16]())
}
