package dict

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"golang.org/x/text/encoding/charmap"
)

// maxLineLength bounds a single dictionary line; CMU lines are well under 200 bytes.
const maxLineLength = 1024 * 1024

// separators are the only characters that split a word from its phones. Non-ASCII spaces
// such as NBSP belong to the word.
const separators = " \t\r\v\f"

var utf8BOM = []byte("\xef\xbb\xbf")

// ParseError reports a dictionary line that could not be split into a word and its phones.
type ParseError struct {
	Line   int // 1-based
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// ParseStats counts what a parse saw.
type ParseStats struct {
	Lines    int
	Comments int
	Blank    int
	Entries  int
	Skipped  int // malformed lines dropped with SkipMalformed
	Recoded  int // lines that were not valid UTF-8 and were read as Latin-1
}

// Parser converts dictionary text into entries. The zero value aborts on the first
// malformed line.
type Parser struct {
	// SkipMalformed drops malformed lines, logging each, instead of failing the parse.
	SkipMalformed bool
	Logger        *log.Logger
}

// Parse reads every entry from r in line order with the default Parser.
func Parse(r io.Reader) ([]Entry, error) {
	return Parser{}.Parse(r)
}

// Parse reads every entry from r in line order.
func (p Parser) Parse(r io.Reader) ([]Entry, error) {
	entries, _, err := p.ParseWithStats(r)
	return entries, err
}

// ParseWithStats is Parse, also reporting line counts. On error no entries are returned.
func (p Parser) ParseWithStats(r io.Reader) ([]Entry, ParseStats, error) {
	logger := p.Logger
	if logger == nil {
		logger = log.Default()
	}

	var (
		entries []Entry
		stats   ParseStats
	)
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for s.Scan() {
		stats.Lines++
		raw := s.Bytes()
		if stats.Lines == 1 {
			raw = bytes.TrimPrefix(raw, utf8BOM)
		}
		line, recoded := decodeLine(raw)
		if recoded {
			stats.Recoded++
			logger.Debug("recoded line as latin-1", "line", stats.Lines)
		}

		line = strings.Trim(line, separators)
		switch {
		case line == "":
			stats.Blank++
			continue
		case strings.HasPrefix(line, ";"):
			stats.Comments++
			continue
		}

		entry, err := parseLine(line)
		if err != nil {
			err.Line = stats.Lines
			if !p.SkipMalformed {
				return nil, stats, err
			}
			stats.Skipped++
			logger.Warn("could not parse dictionary line, skipping", "err", err)
			continue
		}
		entries = append(entries, entry)
		stats.Entries++
	}
	if err := s.Err(); err != nil {
		return nil, stats, fmt.Errorf("could not read dictionary: %w", err)
	}
	return entries, stats, nil
}

// parseLine splits a trimmed, non-empty, non-comment line at its first run of ASCII
// whitespace. Both halves are non-empty because the line has no leading or trailing
// separator.
func parseLine(line string) (Entry, *ParseError) {
	i := strings.IndexAny(line, separators)
	if i < 0 {
		return Entry{}, &ParseError{Text: line, Reason: "no separator between word and phones"}
	}
	word, phones := line[:i], strings.Trim(line[i:], separators)
	return Entry{Word: NormalizeWord(word), Phones: phones}, nil
}

// decodeLine returns the line as UTF-8, reading it as ISO-8859-1 when it is not valid
// UTF-8.
func decodeLine(b []byte) (string, bool) {
	if utf8.Valid(b) {
		return string(b), false
	}
	// every byte sequence is valid Latin-1, so the decoder cannot fail
	decoded, _ := charmap.ISO8859_1.NewDecoder().Bytes(b)
	return string(decoded), true
}
