package files

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atlas/buffer"
)

func TestReadWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\r\n\ttwo\n\nthree"), 0o644))

	b := buffer.New(4)
	require.NoError(t, Read(path, b))
	require.Equal(t, 4, b.Lines())
	assert.Equal(t, "one", string(b.Rows.Raw(0)))
	assert.Equal(t, "    two", string(b.Rows.Render(1)))
	assert.False(t, b.Dirty())

	b.InsertChar('!')
	n, err := Write(path, b)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "!one\n\ttwo\n\nthree\n", string(content))
	assert.Equal(t, int64(len(content)), n)

	again := buffer.New(4)
	require.NoError(t, Read(path, again))
	assert.Equal(t, b.Bytes(), again.Bytes())
}

func TestWrite_Truncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.txt")
	require.NoError(t, os.WriteFile(path, []byte("a much longer previous content\n"), 0o644))

	b := buffer.New(4)
	b.InsertChar('x')
	_, err := Write(path, b)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x\n", string(content))
}

func TestRead_Missing(t *testing.T) {
	err := Read(filepath.Join(t.TempDir(), "missing.txt"), buffer.New(4))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestWrite_Fails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir.txt")
	_, err := Write(path, buffer.New(4))
	assert.Error(t, err)
}

func TestStampOf(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.txt")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o644))

	s1, err := StampOf(path)
	require.NoError(t, err)
	assert.Equal(t, int64(3), s1.Size)

	s2, err := StampOf(path)
	require.NoError(t, err)
	assert.True(t, s1.Equal(s2))

	require.NoError(t, os.WriteFile(path, []byte("abcd"), 0o644))
	s3, err := StampOf(path)
	require.NoError(t, err)
	assert.False(t, s1.Equal(s3))
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "watched.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\n"), 0o644))

	w, err := Watch(path, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	// other files in the directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))
	select {
	case <-w.Changes():
		t.Fatal("unexpected change")
	case <-time.After(200 * time.Millisecond):
	}

	require.NoError(t, os.WriteFile(path, []byte("b\n"), 0o644))
	select {
	case <-w.Changes():
	case <-time.After(5 * time.Second):
		t.Fatal("no change")
	}
}
