package dict

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "CAT  K AE1 T\nDOG  D AO1 G\n"

func TestOpen_Plain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cmudict.dict")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	assertEntries(t, path)
}

func TestOpen_Gzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cmudict.dict.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	w := gzip.NewWriter(f)
	_, err = io.WriteString(w, sample)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	assertEntries(t, path)
}

func TestOpen_Zstd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cmudict.dict.zst")
	f, err := os.Create(path)
	require.NoError(t, err)
	w, err := zstd.NewWriter(f)
	require.NoError(t, err)
	_, err = io.WriteString(w, sample)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	assertEntries(t, path)
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.dict"))
	assert.Error(t, err)
}

func TestDefaultPath_Env(t *testing.T) {
	t.Setenv(EnvPath, "/tmp/custom.dict")
	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.dict", p)
}

func assertEntries(t *testing.T, path string) {
	t.Helper()
	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	entries, err := Parse(r)
	require.NoError(t, err)
	assert.Equal(t, []Entry{{"cat", "K AE1 T"}, {"dog", "D AO1 G"}}, entries)
}
