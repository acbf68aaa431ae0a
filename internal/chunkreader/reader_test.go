package chunkreader_test

import (
	"errors"
	"io"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toulis9999/mini-payments/internal/chunkreader"
)

func TestNextChunk_EmptyInputIsEOF(t *testing.T) {
	r := chunkreader.New(strings.NewReader(""), ' ', 4)

	_, err := r.NextChunk()
	assert.True(t, errors.Is(err, io.EOF))
}

func TestNextChunk_AllDelimitersYieldEmptyChunksThenEOF(t *testing.T) {
	r := chunkreader.New(strings.NewReader("   "), ' ', 4)

	for i := 0; i < 3; i++ {
		chunk, err := r.NextChunk()
		require.NoError(t, err)
		assert.Empty(t, chunk)
	}

	_, err := r.NextChunk()
	assert.True(t, errors.Is(err, io.EOF))
}

func TestNextChunk_OversizedRunFusesImmediately(t *testing.T) {
	r := chunkreader.New(strings.NewReader("qqqe   qwe etc"), ' ', 4)

	_, err := r.NextChunk()
	assert.True(t, errors.Is(err, chunkreader.ErrToleranceExceeded))

	// sticky: every subsequent call returns the same error.
	for i := 0; i < 3; i++ {
		_, err := r.NextChunk()
		assert.True(t, errors.Is(err, chunkreader.ErrToleranceExceeded))
	}
}

func TestNextChunk_WorkedExample(t *testing.T) {
	r := chunkreader.New(strings.NewReader("qqq   qwe  qwee "), ' ', 4)

	chunk, err := r.NextChunk()
	require.NoError(t, err)
	assert.Equal(t, "qqq", string(chunk))

	chunk, err = r.NextChunk()
	require.NoError(t, err)
	assert.Empty(t, chunk)

	chunk, err = r.NextChunk()
	require.NoError(t, err)
	assert.Empty(t, chunk)

	chunk, err = r.NextChunk()
	require.NoError(t, err)
	assert.Equal(t, "qwe", string(chunk))

	chunk, err = r.NextChunk()
	require.NoError(t, err)
	assert.Empty(t, chunk)

	_, err = r.NextChunk()
	assert.True(t, errors.Is(err, chunkreader.ErrToleranceExceeded))
}

func TestNextChunk_TrailingUnterminatedChunkIsValid(t *testing.T) {
	r := chunkreader.New(strings.NewReader("ab\ncd"), '\n', 10)

	chunk, err := r.NextChunk()
	require.NoError(t, err)
	assert.Equal(t, "ab", string(chunk))

	chunk, err = r.NextChunk()
	require.NoError(t, err)
	assert.Equal(t, "cd", string(chunk))

	_, err = r.NextChunk()
	assert.True(t, errors.Is(err, io.EOF))
}

func TestNextChunk_Framing(t *testing.T) {
	input := "alpha\nbeta\ngamma\n"
	r := chunkreader.New(strings.NewReader(input), '\n', 64)

	var got []string
	for {
		chunk, err := r.NextChunk()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		got = append(got, string(chunk))
	}

	assert.Equal(t, []string{"alpha", "beta", "gamma"}, got)
}

// errReader always fails with a given error.
type errReader struct{ err error }

func (e errReader) Read(p []byte) (int, error) { return 0, e.err }

func TestNextChunk_NonRetryableIOError(t *testing.T) {
	boom := errors.New("disk exploded")
	r := chunkreader.New(errReader{err: boom}, '\n', 16)

	_, err := r.NextChunk()
	assert.True(t, errors.Is(err, boom))
}

// interruptThenReader returns syscall.EINTR once, then defers to an inner reader.
type interruptThenReader struct {
	inner     io.Reader
	triggered bool
}

func (r *interruptThenReader) Read(p []byte) (int, error) {
	if !r.triggered {
		r.triggered = true
		return 0, syscall.EINTR
	}

	return r.inner.Read(p)
}

func TestNextChunk_RetriesOnInterrupt(t *testing.T) {
	r := chunkreader.New(&interruptThenReader{inner: strings.NewReader("ok\n")}, '\n', 16)

	chunk, err := r.NextChunk()
	require.NoError(t, err)
	assert.Equal(t, "ok", string(chunk))
}
