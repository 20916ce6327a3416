// Package haiku counts syllables in free text using a pronouncing dictionary and checks
// whether a message is a 5-7-5 haiku.
package haiku

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/kalexmills/pronouncing/src/pronouncing"
)

// maxCompoundLength bounds the compound-word search, which is exponential in the worst case.
const maxCompoundLength = 1000

var AbbrevRegex = regexp.MustCompile(`^([A-Z\.]+|[a-z])$`)

// Counter counts syllables against a dictionary. It is safe for concurrent use.
type Counter struct {
	dict *pronouncing.Dictionary
	trie *TrieNode
}

// NewCounter indexes the vocabulary of d for compound-word splitting.
func NewCounter(d *pronouncing.Dictionary) *Counter {
	trie := &TrieNode{}
	for _, word := range d.Words() {
		trie.Insert(word)
	}
	return &Counter{dict: d, trie: trie}
}

// CountSyllables returns the number of syllables in word, or false if it cannot be counted.
// Words are looked up by their first pronunciation; unknown words fall back to plural and
// "-y" forms, abbreviations, and splits into known words.
func (c *Counter) CountSyllables(word string) (int, bool) {
	cleaned := cleanWord(word)
	if cleaned == "" {
		// punctuation is silent; numbers and other scripts can't be counted
		return 0, !strings.ContainsFunc(word, isAlphanumeric)
	}
	count, ok := c.countWord(cleaned)
	if ok {
		return count, true
	}
	count, ok = countAbbreviation(word)
	if ok {
		return count, true
	}
	count, ok = c.countCompound(cleaned)
	if ok {
		return count, true
	}
	return 0, false
}

func (c *Counter) lookup(word string) (int, bool) {
	phones := c.dict.PhonesForWord(word)
	if len(phones) == 0 {
		return 0, false
	}
	return pronouncing.SyllableCount(phones[0]), true
}

func (c *Counter) countWord(cleaned string) (int, bool) {
	if count, ok := c.lookup(cleaned); ok {
		return count, true
	}
	n := len(cleaned)
	if cleaned[n-1] == 'y' {
		if count, ok := c.lookup(cleaned[:n-1]); ok {
			return count + 1, true
		}
	}
	if cleaned[n-1] == 's' {
		if count, ok := c.lookup(cleaned[:n-1]); ok {
			return count, true
		}
	}
	return 0, false
}

// countCompound finds the split of cleaned into known words with the fewest syllables.
// The trie ends the search as soon as no word starts with the current prefix.
func (c *Counter) countCompound(cleaned string) (int, bool) {
	if len(cleaned) > maxCompoundLength {
		return 0, false
	}
	if cleaned == "" {
		return 0, true
	}
	curr := c.trie
	best, found := 0, false
	for i := 0; i < len(cleaned); i++ {
		curr = curr.Child(cleaned[i])
		if curr == nil {
			break
		}
		if !curr.IsWord() {
			continue
		}
		count, _ := c.lookup(cleaned[:i+1])
		rest, ok := c.countCompound(cleaned[i+1:])
		if ok && (!found || count+rest < best) {
			best, found = count+rest, true
		}
	}
	return best, found
}

func countAbbreviation(word string) (int, bool) {
	if !isAbbreviation(word) {
		return 0, false
	}
	count := 0
	for _, c := range word {
		if 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z' {
			count++
		}
		if c == 'W' || c == 'w' {
			count += 2 // W is 3 syllables; 2 more than the 1 we added above
		}
	}
	return count, true
}

func isAbbreviation(word string) bool {
	trimmed := strings.TrimFunc(word, func(r rune) bool {
		return !('A' <= r && r <= 'Z') && !('a' <= r && r <= 'z')
	})
	return AbbrevRegex.MatchString(trimmed)
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

var requoter = strings.NewReplacer("’", "'", "‘", "'")

func cleanWord(s string) string {
	return strip(strings.ToLower(requoter.Replace(s)))
}

func strip(s string) string {
	var result strings.Builder
	for i := 0; i < len(s); i++ {
		b := s[i]
		if ('a' <= b && b <= 'z') || b == '\'' {
			result.WriteByte(b)
		}
	}
	return strings.Trim(result.String(), "'")
}
