// Package dict reads CMU-formatted pronouncing dictionaries.
//
// A dictionary is line oriented. Lines starting with ';' are comments; every other line
// holds a word, a run of whitespace, and the word's phones:
//
//	ADOLESCENT  AE2 D AH0 L EH1 S AH0 N T
//	ADOLESCENT(1)  AE2 D OW0 L EH1 S AH0 N T
//
// The "(1)" suffix marks an alternate pronunciation and is dropped when the word is
// normalized.
package dict

import "strings"

// Entry pairs a normalized word with one of its pronunciations, exactly as written in
// the dictionary.
type Entry struct {
	Word   string
	Phones string
}

// NormalizeWord lowercases word and strips a trailing pronunciation-variant marker.
func NormalizeWord(word string) string {
	// a leading '(' is part of the word, e.g. "(PAREN"
	if i := strings.IndexByte(word, '('); i > 0 {
		word = word[:i]
	}
	return strings.ToLower(word)
}
