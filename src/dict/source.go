package dict

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	gap "github.com/muesli/go-app-paths"
)

// EnvPath names the environment variable that overrides DefaultPath.
const EnvPath = "PRONOUNCING_DICT"

// DefaultFilename is the dictionary file looked up in the user's data directory.
const DefaultFilename = "cmudict.dict"

// DefaultPath returns the dictionary location used when none is configured: $PRONOUNCING_DICT
// if set, otherwise DefaultFilename inside the user data directory.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}
	scope := gap.NewScope(gap.User, "pronouncing")
	p, err := scope.DataPath(DefaultFilename)
	if err != nil {
		return "", fmt.Errorf("could not resolve data directory: %w", err)
	}
	return p, nil
}

// Open opens the dictionary at path. Files ending in .gz or .zst are decompressed on the fly.
// The caller must close the returned reader.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open dictionary: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("could not read gzip dictionary %s: %w", path, err)
		}
		return &decompressor{Reader: zr, close: func() { zr.Close() }, file: f}, nil
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("could not read zstd dictionary %s: %w", path, err)
		}
		return &decompressor{Reader: zr, close: zr.Close, file: f}, nil
	}
	return f, nil
}

type decompressor struct {
	io.Reader
	close func()
	file  *os.File
}

func (d *decompressor) Close() error {
	d.close()
	return d.file.Close()
}
