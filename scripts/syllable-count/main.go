// Command syllable-count prints each dictionary word with the distinct syllable counts of
// its pronunciations, sorted by word:
//
//	syllable-count [DICT]
package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/kalexmills/pronouncing/src/dict"
	"github.com/kalexmills/pronouncing/src/pronouncing"
)

func main() {
	path, err := dictPath()
	if err != nil {
		log.Fatal("could not find dictionary", "err", err)
	}
	rc, err := dict.Open(path)
	if err != nil {
		log.Fatal("could not open dictionary", "err", err)
	}
	entries, err := dict.Parse(rc)
	rc.Close()
	if err != nil {
		log.Fatal("could not parse dictionary", "path", path, "err", err)
	}

	w := bufio.NewWriter(os.Stdout)
	for _, wc := range countSyllables(entries) {
		fmt.Fprint(w, wc.word)
		for _, count := range wc.counts {
			fmt.Fprintf(w, " %d", count)
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		log.Fatal("could not write output", "err", err)
	}
}

func dictPath() (string, error) {
	if len(os.Args) > 1 {
		return os.Args[1], nil
	}
	return dict.DefaultPath()
}

type wordCounts struct {
	word   string
	counts []int
}

// countSyllables collects the distinct syllable counts of each word in the order they first
// appear, and sorts the words.
func countSyllables(entries []dict.Entry) []wordCounts {
	byWord := make(map[string]*wordCounts)
	var result []*wordCounts
	for _, e := range entries {
		wc, ok := byWord[e.Word]
		if !ok {
			wc = &wordCounts{word: e.Word}
			byWord[e.Word] = wc
			result = append(result, wc)
		}
		count := pronouncing.SyllableCount(e.Phones)
		if !contains(wc.counts, count) {
			wc.counts = append(wc.counts, count)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].word < result[j].word
	})
	sorted := make([]wordCounts, len(result))
	for i, wc := range result {
		sorted[i] = *wc
	}
	return sorted
}

func contains(counts []int, count int) bool {
	for _, c := range counts {
		if c == count {
			return true
		}
	}
	return false
}
