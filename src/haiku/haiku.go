package haiku

import (
	"fmt"
	"regexp"
	"strings"
)

var lineSyllables = [3]int{5, 7, 5}

var EmojiRegex = regexp.MustCompile(`\:.+\:`)

// IsHaiku returns nil if str is three lines of 5, 7 and 5 syllables, and otherwise an error
// explaining why not. Discord emoji codes such as :wink: are ignored.
func (c *Counter) IsHaiku(str string) error {
	trimmed := strings.Trim(str, " \n\t")
	cleaned := cleanEmoji(trimmed)
	lines := strings.Split(cleaned, "\n")
	if len(lines) != len(lineSyllables) {
		return fmt.Errorf("a haiku has %d lines, found %d", len(lineSyllables), len(lines))
	}
	for i, line := range lines {
		count, err := c.lineSyllableCount(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
		if count != lineSyllables[i] {
			return fmt.Errorf("line %d has %d syllables, expected %d", i+1, count, lineSyllables[i])
		}
	}
	return nil
}

func cleanEmoji(s string) string {
	return strings.TrimSpace(EmojiRegex.ReplaceAllString(s, ""))
}

func (c *Counter) lineSyllableCount(line string) (int, error) {
	count := 0
	for _, word := range strings.Fields(line) {
		syllables, ok := c.CountSyllables(word)
		if !ok {
			return 0, fmt.Errorf("unknown word %s", word)
		}
		count += syllables
	}
	return count, nil
}
