package pronouncing

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/kalexmills/pronouncing/src/dict"
)

// DefaultSource opens the dictionary read by Init(nil). It is read while Init holds its
// lock; replace it before the first lookup.
var DefaultSource = func() (io.ReadCloser, error) {
	path, err := dict.DefaultPath()
	if err != nil {
		return nil, err
	}
	log.Debug("opening default dictionary", "path", path)
	return dict.Open(path)
}

var (
	defaultMu   sync.Mutex
	defaultDict atomic.Pointer[Dictionary]
)

// Init loads the default dictionary from src, or from DefaultSource when src is nil. Only
// the first successful call has any effect; later calls return nil without reading src.
// Concurrent callers block until the load finishes. If loading fails the default stays
// unset, the error wraps ErrDictionaryLoad, and Init may be called again.
func Init(src io.Reader) error {
	if defaultDict.Load() != nil {
		return nil
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultDict.Load() != nil {
		return nil
	}

	if src == nil {
		rc, err := DefaultSource()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrDictionaryLoad, err)
		}
		defer rc.Close()
		src = rc
	}
	entries, stats, err := dict.Parser{}.ParseWithStats(src)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDictionaryLoad, err)
	}
	d := New(entries)
	defaultDict.Store(d)
	log.Info("loaded dictionary",
		"entries", humanize.Comma(int64(stats.Entries)),
		"words", humanize.Comma(int64(len(d.Words()))),
		"rhymes", humanize.Comma(int64(len(d.index.Rhymes))))
	return nil
}

// Default returns the default dictionary, loading it on first use.
func Default() (*Dictionary, error) {
	if d := defaultDict.Load(); d != nil {
		return d, nil
	}
	if err := Init(nil); err != nil {
		return nil, err
	}
	return defaultDict.Load(), nil
}

// PhonesForWord calls PhonesForWord on the default dictionary.
func PhonesForWord(word string) ([]string, error) {
	d, err := Default()
	if err != nil {
		return nil, err
	}
	return d.PhonesForWord(word), nil
}

// StressesForWord calls StressesForWord on the default dictionary.
func StressesForWord(word string) ([]string, error) {
	d, err := Default()
	if err != nil {
		return nil, err
	}
	return d.StressesForWord(word), nil
}

// Search calls Search on the default dictionary.
func Search(pattern string) ([]string, error) {
	d, err := Default()
	if err != nil {
		return nil, err
	}
	return d.Search(pattern)
}

// SearchStresses calls SearchStresses on the default dictionary.
func SearchStresses(pattern string) ([]string, error) {
	d, err := Default()
	if err != nil {
		return nil, err
	}
	return d.SearchStresses(pattern)
}

// Rhymes calls Rhymes on the default dictionary.
func Rhymes(word string) ([]string, error) {
	d, err := Default()
	if err != nil {
		return nil, err
	}
	return d.Rhymes(word), nil
}
