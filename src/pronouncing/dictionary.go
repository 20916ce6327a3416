// Package pronouncing answers phonetic questions from a CMU-style pronouncing dictionary:
// the phones and stresses of a word, the words matching a phone or stress pattern, and the
// words that rhyme with a word.
//
// A Dictionary is built once and never modified, so it can be shared by any number of
// goroutines. The package-level functions use a default Dictionary that is loaded on first
// use; see Init.
package pronouncing

import (
	"io"
	"regexp"
	"strings"

	"github.com/kalexmills/pronouncing/src/dict"
	"github.com/sahilm/fuzzy"
)

// Dictionary is an immutable, indexed pronouncing dictionary.
type Dictionary struct {
	entries []dict.Entry
	index   *Index
}

// New indexes entries. The slice must not be modified afterwards.
func New(entries []dict.Entry) *Dictionary {
	return &Dictionary{
		entries: entries,
		index:   BuildIndex(entries),
	}
}

// Load parses r and indexes the result.
func Load(r io.Reader) (*Dictionary, error) {
	entries, err := dict.Parse(r)
	if err != nil {
		return nil, err
	}
	return New(entries), nil
}

// Entries returns the dictionary's entries in file order. Callers must not modify it.
func (d *Dictionary) Entries() []dict.Entry {
	return d.entries
}

// Words returns each distinct word once, in order of first appearance.
func (d *Dictionary) Words() []string {
	return d.index.order
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// PhonesForWord returns every pronunciation of word in dictionary order, or nil if the word
// is unknown. Lookup is case-insensitive.
//
//	d.PhonesForWord("permit") // ["P ER0 M IH1 T", "P ER1 M IH2 T"]
func (d *Dictionary) PhonesForWord(word string) []string {
	return d.index.Words[strings.ToLower(word)]
}

// StressesForWord returns the stress pattern of each of word's pronunciations.
func (d *Dictionary) StressesForWord(word string) []string {
	phones := d.PhonesForWord(word)
	if len(phones) == 0 {
		return nil
	}
	result := make([]string, len(phones))
	for i, p := range phones {
		result[i] = Stresses(p)
	}
	return result
}

// Search returns, in dictionary order, the word of every entry whose phones match pattern.
// The pattern is anchored at word boundaries so it cannot match part of a phone. A word
// with several matching pronunciations is listed once per pronunciation.
//
//	d.Search("ER1 P AH0") // ["interpolate", "purple", ...]
func (d *Dictionary) Search(pattern string) ([]string, error) {
	re, err := regexp.Compile(`\b(?:` + pattern + `)\b`)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}
	return d.match(re, func(phones string) string { return phones }), nil
}

// SearchStresses is Search over each entry's stress pattern instead of its phones. The
// pattern is not anchored.
//
//	d.SearchStresses("^020120$") // ["gubernatorial"]
func (d *Dictionary) SearchStresses(pattern string) ([]string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}
	return d.match(re, Stresses), nil
}

func (d *Dictionary) match(re *regexp.Regexp, key func(string) string) []string {
	var matches []string
	for _, e := range d.entries {
		if re.MatchString(key(e.Phones)) {
			matches = append(matches, e.Word)
		}
	}
	return matches
}

// Rhymes returns the words sharing the rhyming part of word's first pronunciation, in
// dictionary order, without word itself. Only the first pronunciation is considered.
func (d *Dictionary) Rhymes(word string) []string {
	word = strings.ToLower(word)
	phones := d.PhonesForWord(word)
	if len(phones) == 0 {
		return nil
	}
	bucket := d.index.Rhymes[RhymingPart(phones[0])]

	result := make([]string, 0, len(bucket))
	removed := false
	for _, w := range bucket {
		if !removed && w == word {
			removed = true
			continue
		}
		result = append(result, w)
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

// Suggest returns up to limit known words that fuzzily match word, best match first. It is
// meant for spelling help when PhonesForWord finds nothing.
func (d *Dictionary) Suggest(word string, limit int) []string {
	if limit <= 0 {
		return nil
	}
	matches := fuzzy.Find(strings.ToLower(word), d.index.order)
	if len(matches) > limit {
		matches = matches[:limit]
	}
	result := make([]string, len(matches))
	for i, m := range matches {
		result[i] = m.Str
	}
	return result
}
