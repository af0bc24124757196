package store

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errRead = errors.New("read failed")

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errRead
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	_, err := m.Open(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	n, err := Upload(ctx, m, "b", bytes.NewReader([]byte("payload")))
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)

	b, err := m.Open(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, int64(7), b.Size())
	data, err := io.ReadAll(b)
	require.NoError(t, err)
	require.NoError(t, b.Close())
	assert.Equal(t, "payload", string(data))

	got, ok := m.Bytes("b")
	require.True(t, ok)
	got[0] = 'X'
	again, _ := m.Bytes("b")
	assert.Equal(t, "payload", string(again))

	assert.Equal(t, []string{"b"}, m.Names())
	require.NoError(t, m.Delete(ctx, "b"))
	assert.Empty(t, m.Names())
}

func TestMemoryStore_FailedUploadAborts(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	_, err := Upload(ctx, m, "b", bytes.NewReader([]byte("old")))
	require.NoError(t, err)

	_, err = Upload(ctx, m, "b", io.MultiReader(bytes.NewReader([]byte("new")), failingReader{}))
	require.ErrorIs(t, err, errRead)

	data, ok := m.Bytes("b")
	require.True(t, ok)
	assert.Equal(t, "old", string(data))
}

func TestMemoryStore_Concurrent(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := string(rune('a' + i))
			_, err := Upload(ctx, m, name, bytes.NewReader([]byte(name)))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, m.Names(), 16)
}
